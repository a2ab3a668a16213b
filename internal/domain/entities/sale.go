package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the aggregate root of a commercial sale and the only entry point for
// mutations of its items.
//
// Invariants:
//   - totalAmount always equals the sum of the non-cancelled items' totals.
//   - the item set is fixed at construction; items are only ever cancelled.
//   - Cancelled is terminal: Complete fails and Cancel is a no-op.
//
// Operations return the notification they emit (see SaleEvent) instead of
// accumulating it on the aggregate.
type Sale struct {
	id           uuid.UUID
	saleNumber   string
	saleDate     time.Time
	customerID   uuid.UUID
	customerName string
	branchID     uuid.UUID
	branchName   string
	status       SaleStatus
	totalAmount  decimal.Decimal
	items        []SaleItem
}

// NewSale builds a Pending sale from a non-empty set of items. A zero saleDate
// defaults to the current time.
func NewSale(
	saleNumber string,
	saleDate time.Time,
	customerID uuid.UUID,
	customerName string,
	branchID uuid.UUID,
	branchName string,
	items []SaleItem,
) (*Sale, SaleEvent, error) {
	if strings.TrimSpace(saleNumber) == "" {
		return nil, SaleEvent{}, ErrMissingSaleNumber
	}
	if customerID == uuid.Nil {
		return nil, SaleEvent{}, ErrMissingCustomer
	}
	if branchID == uuid.Nil {
		return nil, SaleEvent{}, ErrMissingBranch
	}
	if len(items) == 0 {
		return nil, SaleEvent{}, ErrEmptyItemList
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.id]; dup {
			return nil, SaleEvent{}, ErrDuplicateSaleItem
		}
		seen[it.id] = struct{}{}
	}

	if saleDate.IsZero() {
		saleDate = time.Now().UTC()
	}

	s := &Sale{
		id:           uuid.New(),
		saleNumber:   saleNumber,
		saleDate:     saleDate,
		customerID:   customerID,
		customerName: customerName,
		branchID:     branchID,
		branchName:   branchName,
		status:       SaleStatusPending,
		items:        append([]SaleItem(nil), items...),
	}
	s.recalculateTotal()

	return s, newSaleEvent(SaleCreated, s, nil), nil
}

// Complete marks the sale as completed. Completing an already completed sale
// is allowed and emits the notification again.
func (s *Sale) Complete() (SaleEvent, error) {
	if s.IsCancelled() {
		return SaleEvent{}, ErrSaleAlreadyCancelled
	}

	s.status = SaleStatusCompleted
	return newSaleEvent(SaleModified, s, nil), nil
}

// Cancel cancels the whole sale. The boolean is false when the sale was
// already cancelled; nothing changes and no notification is emitted then.
func (s *Sale) Cancel() (SaleEvent, bool) {
	if s.IsCancelled() {
		return SaleEvent{}, false
	}

	s.status = SaleStatusCancelled
	return newSaleEvent(SaleCancelled, s, nil), true
}

// CancelItem cancels one item by id and recomputes the sale total. It is not
// guarded by the sale status.
func (s *Sale) CancelItem(itemID uuid.UUID) (SaleEvent, error) {
	idx := s.indexOf(itemID)
	if idx < 0 {
		return SaleEvent{}, ErrItemNotFound
	}

	changed := !s.items[idx].cancelled
	s.items[idx].cancel()
	s.recalculateTotal()

	item := s.items[idx]
	evt := newSaleEvent(ItemCancelled, s, &item)
	evt.Changed = changed
	return evt, nil
}

// recalculateTotal is the only writer of totalAmount.
func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for _, it := range s.items {
		if it.cancelled {
			continue
		}
		total = total.Add(it.totalAmount)
	}
	s.totalAmount = total
}

func (s *Sale) indexOf(itemID uuid.UUID) int {
	for i := range s.items {
		if s.items[i].id == itemID {
			return i
		}
	}
	return -1
}

func (s *Sale) ID() uuid.UUID                { return s.id }
func (s *Sale) SaleNumber() string           { return s.saleNumber }
func (s *Sale) SaleDate() time.Time          { return s.saleDate }
func (s *Sale) CustomerID() uuid.UUID        { return s.customerID }
func (s *Sale) CustomerName() string         { return s.customerName }
func (s *Sale) BranchID() uuid.UUID          { return s.branchID }
func (s *Sale) BranchName() string           { return s.branchName }
func (s *Sale) Status() SaleStatus           { return s.status }
func (s *Sale) TotalAmount() decimal.Decimal { return s.totalAmount }
func (s *Sale) IsCancelled() bool            { return s.status == SaleStatusCancelled }

// Items returns a copy of the items in insertion order.
func (s *Sale) Items() []SaleItem {
	return append([]SaleItem(nil), s.items...)
}

// Item looks up an item by id.
func (s *Sale) Item(itemID uuid.UUID) (SaleItem, bool) {
	idx := s.indexOf(itemID)
	if idx < 0 {
		return SaleItem{}, false
	}
	return s.items[idx], true
}

// ActiveItemCount returns how many items are not cancelled.
func (s *Sale) ActiveItemCount() int {
	n := 0
	for _, it := range s.items {
		if !it.cancelled {
			n++
		}
	}
	return n
}

func (s *Sale) clone() *Sale {
	c := *s
	c.items = s.Items()
	return &c
}
