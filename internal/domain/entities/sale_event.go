package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleEventType names the lifecycle notifications of the Sale aggregate.
type SaleEventType string

const (
	SaleCreated   SaleEventType = "SaleCreated"
	SaleModified  SaleEventType = "SaleModified"
	SaleCancelled SaleEventType = "SaleCancelled"
	ItemCancelled SaleEventType = "ItemCancelled"
)

func (t SaleEventType) String() string {
	return string(t)
}

// SaleEvent is a notification observable after a successful aggregate
// operation. It is not a durable message contract.
//
// Sale is a copy taken when the event was emitted, so later mutations of the
// aggregate do not leak into already emitted events. Item is only set for
// ItemCancelled. Changed is false for an ItemCancelled emitted on an item
// that was already cancelled.
type SaleEvent struct {
	Type        SaleEventType
	SaleID      uuid.UUID
	SaleNumber  string
	Status      SaleStatus
	TotalAmount decimal.Decimal
	Sale        *Sale
	Item        *SaleItem
	Changed     bool
	OccurredAt  time.Time
}

func newSaleEvent(t SaleEventType, s *Sale, item *SaleItem) SaleEvent {
	return SaleEvent{
		Type:        t,
		SaleID:      s.id,
		SaleNumber:  s.saleNumber,
		Status:      s.status,
		TotalAmount: s.totalAmount,
		Sale:        s.clone(),
		Item:        item,
		Changed:     true,
		OccurredAt:  time.Now().UTC(),
	}
}

// IsZero reports whether the event is the empty value returned alongside
// errors and no-op operations.
func (e SaleEvent) IsZero() bool {
	return e.Type == ""
}
