package interfaces

import (
	"context"
	"sales_service/internal/domain/entities"

	"github.com/google/uuid"
)

//go:generate mockgen -source=sale_repository_interface.go -destination=mocks/sale_repository_interface.go -package=mock_interfaces

// ISaleRepository abstracts persistence of the Sale aggregate.
//
// The aggregate is always loaded, mutated in memory and saved as one unit.
// There is no optimistic concurrency token: concurrent saves of the same sale
// are last-writer-wins.
//
//   - GetByID returns (nil, nil) when the sale does not exist.
//   - Update and Delete return false when the sale does not exist.

type ISaleRepository interface {
	Create(ctx context.Context, s *entities.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	Update(ctx context.Context, s *entities.Sale) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
