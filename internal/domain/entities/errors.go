package entities

import "errors"

// Domain invariant violations raised by the Sale aggregate. The aggregate is
// left unconstructed or unmutated whenever one of these is returned.
var (
	ErrEmptyItemList         = errors.New("sale must have at least one item")
	ErrInvalidQuantity       = errors.New("quantity must be greater than zero")
	ErrQuantityLimitExceeded = errors.New("it is not possible to sell above 20 identical items")
	ErrInvalidUnitPrice      = errors.New("unit price must be greater than zero")
	ErrMissingSaleNumber     = errors.New("sale number is required")
	ErrMissingCustomer       = errors.New("customer id is required")
	ErrMissingBranch         = errors.New("branch id is required")
	ErrSaleAlreadyCancelled  = errors.New("cannot complete a cancelled sale")
	ErrItemNotFound          = errors.New("item not found in sale")
	ErrDuplicateSaleItem     = errors.New("sale item id must be unique within the sale")
	ErrInvalidSaleStatus     = errors.New("invalid sale status")
)
