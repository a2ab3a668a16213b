package interfaces

import (
	"context"
	"sales_service/internal/domain/entities"
)

//go:generate mockgen -source=sale_event_publisher_interface.go -destination=mocks/sale_event_publisher_interface.go -package=mock_interfaces

// ISaleEventPublisher records Sale lifecycle notifications for observability.
// It is called after the aggregate was persisted; it is not a durable message contract.
type ISaleEventPublisher interface {
	Publish(ctx context.Context, event entities.SaleEvent) error
}
