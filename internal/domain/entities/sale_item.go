package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxItemQuantity is the maximum number of identical items sold in one line.
	MaxItemQuantity = 20

	moneyPlaces = 2
)

// discountTier maps an inclusive quantity range to a fixed discount percentage.
type discountTier struct {
	minQuantity int
	maxQuantity int
	percentage  decimal.Decimal
}

// Evaluated in order; the first matching tier wins.
var discountTiers = []discountTier{
	{minQuantity: 1, maxQuantity: 3, percentage: decimal.Zero},
	{minQuantity: 4, maxQuantity: 9, percentage: decimal.NewFromInt(10)},
	{minQuantity: 10, maxQuantity: MaxItemQuantity, percentage: decimal.NewFromInt(20)},
}

var hundred = decimal.NewFromInt(100)

// SaleItem is one priced, discountable product line owned by a Sale.
//
// Domain notes:
//   - discountPercentage and totalAmount are computed once, at construction,
//     and never recomputed afterwards.
//   - the only mutation is cancellation, routed through the owning Sale.
type SaleItem struct {
	id                 uuid.UUID
	productID          uuid.UUID
	productDescription string
	quantity           int
	unitPrice          decimal.Decimal
	discountPercentage decimal.Decimal
	totalAmount        decimal.Decimal
	cancelled          bool
}

// NewSaleItem validates the line, assigns its discount tier and computes its total.
func NewSaleItem(productID uuid.UUID, productDescription string, quantity int, unitPrice decimal.Decimal) (SaleItem, error) {
	if quantity <= 0 {
		return SaleItem{}, ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return SaleItem{}, ErrQuantityLimitExceeded
	}
	if !unitPrice.IsPositive() {
		return SaleItem{}, ErrInvalidUnitPrice
	}

	discount := DiscountForQuantity(quantity)
	return SaleItem{
		id:                 uuid.New(),
		productID:          productID,
		productDescription: productDescription,
		quantity:           quantity,
		unitPrice:          unitPrice,
		discountPercentage: discount,
		totalAmount:        lineTotal(unitPrice, quantity, discount),
	}, nil
}

// DiscountForQuantity returns the discount percentage for a quantity within
// 1..MaxItemQuantity. Quantities outside every tier get no discount.
func DiscountForQuantity(quantity int) decimal.Decimal {
	for _, tier := range discountTiers {
		if quantity >= tier.minQuantity && quantity <= tier.maxQuantity {
			return tier.percentage
		}
	}
	return decimal.Zero
}

func lineTotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	net := gross.Sub(gross.Mul(discount).Div(hundred))
	return net.RoundBank(moneyPlaces)
}

func (i SaleItem) ID() uuid.UUID                       { return i.id }
func (i SaleItem) ProductID() uuid.UUID                { return i.productID }
func (i SaleItem) ProductDescription() string          { return i.productDescription }
func (i SaleItem) Quantity() int                       { return i.quantity }
func (i SaleItem) UnitPrice() decimal.Decimal          { return i.unitPrice }
func (i SaleItem) DiscountPercentage() decimal.Decimal { return i.discountPercentage }
func (i SaleItem) TotalAmount() decimal.Decimal        { return i.totalAmount }
func (i SaleItem) IsCancelled() bool                   { return i.cancelled }

// cancel is monotonic: once cancelled, an item stays cancelled.
func (i *SaleItem) cancel() {
	if i.cancelled {
		return
	}
	i.cancelled = true
}
