package entities

// SaleStatus represents the lifecycle of a sale.
//
// Transitions:
//   - Pending   -> Completed (Complete)
//   - Pending   -> Cancelled (Cancel)
//   - Completed -> Completed (Complete, re-entrant)
//   - Completed -> Cancelled (Cancel)
//   - Cancelled -> Cancelled (Cancel, no-op)
//
// Cancelled -> Completed is the only forbidden transition.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "Pending"
	SaleStatusCompleted SaleStatus = "Completed"
	SaleStatusCancelled SaleStatus = "Cancelled"
)

func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

func (s SaleStatus) String() string {
	return string(s)
}
