package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleSnapshot is the persisted representation of a Sale. Repositories store
// and load snapshots; they never touch the aggregate's fields directly.
//
// Storage notes:
//   - Status is stored by name (Pending, Completed, Cancelled).
//   - item DiscountPercentage and TotalAmount are stored as computed at
//     creation and are not recomputed when loading.
type SaleSnapshot struct {
	ID           uuid.UUID
	SaleNumber   string
	SaleDate     time.Time
	CustomerID   uuid.UUID
	CustomerName string
	BranchID     uuid.UUID
	BranchName   string
	Status       SaleStatus
	TotalAmount  decimal.Decimal
	Items        []SaleItemSnapshot
}

// SaleItemSnapshot is the persisted representation of a SaleItem. SaleID is a
// plain back-reference to the owning sale.
type SaleItemSnapshot struct {
	ID                 uuid.UUID
	SaleID             uuid.UUID
	ProductID          uuid.UUID
	ProductDescription string
	Quantity           int
	UnitPrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	TotalAmount        decimal.Decimal
	IsCancelled        bool
}

func (s *Sale) Snapshot() SaleSnapshot {
	items := make([]SaleItemSnapshot, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, SaleItemSnapshot{
			ID:                 it.id,
			SaleID:             s.id,
			ProductID:          it.productID,
			ProductDescription: it.productDescription,
			Quantity:           it.quantity,
			UnitPrice:          it.unitPrice,
			DiscountPercentage: it.discountPercentage,
			TotalAmount:        it.totalAmount,
			IsCancelled:        it.cancelled,
		})
	}

	return SaleSnapshot{
		ID:           s.id,
		SaleNumber:   s.saleNumber,
		SaleDate:     s.saleDate,
		CustomerID:   s.customerID,
		CustomerName: s.customerName,
		BranchID:     s.branchID,
		BranchName:   s.branchName,
		Status:       s.status,
		TotalAmount:  s.totalAmount,
		Items:        items,
	}
}

// RestoreSale rebuilds a Sale from its persisted snapshot. The sale total is
// recomputed from the stored item totals so the total invariant holds for
// every loaded aggregate.
func RestoreSale(snap SaleSnapshot) (*Sale, error) {
	if !snap.Status.IsValid() {
		return nil, ErrInvalidSaleStatus
	}

	items := make([]SaleItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, SaleItem{
			id:                 it.ID,
			productID:          it.ProductID,
			productDescription: it.ProductDescription,
			quantity:           it.Quantity,
			unitPrice:          it.UnitPrice,
			discountPercentage: it.DiscountPercentage,
			totalAmount:        it.TotalAmount,
			cancelled:          it.IsCancelled,
		})
	}

	s := &Sale{
		id:           snap.ID,
		saleNumber:   snap.SaleNumber,
		saleDate:     snap.SaleDate,
		customerID:   snap.CustomerID,
		customerName: snap.CustomerName,
		branchID:     snap.BranchID,
		branchName:   snap.BranchName,
		status:       snap.Status,
		items:        items,
	}
	s.recalculateTotal()
	return s, nil
}
