package request

import (
	"errors"
	"fmt"
	"sales_service/internal/usecase"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSaleIdentifier = errors.New("invalid sale identifier")
)

type SaleItemRequest struct {
	ProductID          string          `json:"product_id" binding:"required,uuid"`
	ProductDescription string          `json:"product_description" binding:"required,max=200"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price" swaggertype:"string" example:"10.50"`
}

// CreateSaleRequest is the payload for POST /v1/sales.
//
// Quantity, unit price and the number of items are validated by the sale
// aggregate so its error codes reach the client unchanged.
type CreateSaleRequest struct {
	SaleNumber   string            `json:"sale_number" binding:"max=50"`
	SaleDate     *time.Time        `json:"sale_date"`
	CustomerID   string            `json:"customer_id" binding:"required,uuid"`
	CustomerName string            `json:"customer_name" binding:"required,max=200"`
	BranchID     string            `json:"branch_id" binding:"required,uuid"`
	BranchName   string            `json:"branch_name" binding:"required,max=200"`
	Items        []SaleItemRequest `json:"items" binding:"dive"`
}

// ToInput converts the bound payload into the use case command.
func (r CreateSaleRequest) ToInput() (usecase.CreateSaleInput, error) {
	customerID, err := uuid.Parse(r.CustomerID)
	if err != nil {
		return usecase.CreateSaleInput{}, fmt.Errorf("%w: customer_id", ErrInvalidSaleIdentifier)
	}
	branchID, err := uuid.Parse(r.BranchID)
	if err != nil {
		return usecase.CreateSaleInput{}, fmt.Errorf("%w: branch_id", ErrInvalidSaleIdentifier)
	}

	in := usecase.CreateSaleInput{
		SaleNumber:   r.SaleNumber,
		CustomerID:   customerID,
		CustomerName: r.CustomerName,
		BranchID:     branchID,
		BranchName:   r.BranchName,
		Items:        make([]usecase.CreateSaleItemInput, 0, len(r.Items)),
	}
	if r.SaleDate != nil {
		in.SaleDate = r.SaleDate.UTC()
	}

	for i, it := range r.Items {
		productID, err := uuid.Parse(it.ProductID)
		if err != nil {
			return usecase.CreateSaleInput{}, fmt.Errorf("%w: items[%d].product_id", ErrInvalidSaleIdentifier, i)
		}
		in.Items = append(in.Items, usecase.CreateSaleItemInput{
			ProductID:          productID,
			ProductDescription: it.ProductDescription,
			Quantity:           it.Quantity,
			UnitPrice:          it.UnitPrice,
		})
	}
	return in, nil
}
