package response

import (
	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase"
	"time"
)

type SaleItemResponse struct {
	ID                 string `json:"id"`
	ProductID          string `json:"product_id"`
	ProductDescription string `json:"product_description"`
	Quantity           int    `json:"quantity"`
	UnitPrice          string `json:"unit_price" example:"100.00"`
	DiscountPercentage string `json:"discount_percentage" example:"10.00"`
	TotalAmount        string `json:"total_amount" example:"450.00"`
	IsCancelled        bool   `json:"is_cancelled"`
}

type SaleResponse struct {
	ID           string             `json:"id"`
	SaleNumber   string             `json:"sale_number"`
	SaleDate     time.Time          `json:"sale_date"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	BranchID     string             `json:"branch_id"`
	BranchName   string             `json:"branch_name"`
	TotalAmount  string             `json:"total_amount" example:"1050.00"`
	Status       string             `json:"status" example:"Pending"`
	IsCancelled  bool               `json:"is_cancelled"`
	Items        []SaleItemResponse `json:"items"`
}

// SaleStatusResponse is returned by the lifecycle transitions.
type SaleStatusResponse struct {
	ID          string `json:"id"`
	SaleNumber  string `json:"sale_number"`
	Status      string `json:"status" example:"Completed"`
	TotalAmount string `json:"total_amount" example:"1050.00"`
}

type CancelSaleItemResponse struct {
	SaleID             string `json:"sale_id"`
	ItemID             string `json:"item_id"`
	ProductDescription string `json:"product_description"`
	TotalAmount        string `json:"total_amount" example:"600.00"`
}

type DeleteSaleResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func FromSale(s *entities.Sale) SaleResponse {
	items := s.Items()
	res := SaleResponse{
		ID:           s.ID().String(),
		SaleNumber:   s.SaleNumber(),
		SaleDate:     s.SaleDate(),
		CustomerID:   s.CustomerID().String(),
		CustomerName: s.CustomerName(),
		BranchID:     s.BranchID().String(),
		BranchName:   s.BranchName(),
		TotalAmount:  s.TotalAmount().StringFixed(2),
		Status:       s.Status().String(),
		IsCancelled:  s.IsCancelled(),
		Items:        make([]SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, FromSaleItem(it))
	}
	return res
}

func FromSaleItem(it entities.SaleItem) SaleItemResponse {
	return SaleItemResponse{
		ID:                 it.ID().String(),
		ProductID:          it.ProductID().String(),
		ProductDescription: it.ProductDescription(),
		Quantity:           it.Quantity(),
		UnitPrice:          it.UnitPrice().StringFixed(2),
		DiscountPercentage: it.DiscountPercentage().StringFixed(2),
		TotalAmount:        it.TotalAmount().StringFixed(2),
		IsCancelled:        it.IsCancelled(),
	}
}

func FromSaleStatus(s *entities.Sale) SaleStatusResponse {
	return SaleStatusResponse{
		ID:          s.ID().String(),
		SaleNumber:  s.SaleNumber(),
		Status:      s.Status().String(),
		TotalAmount: s.TotalAmount().StringFixed(2),
	}
}

func FromCancelSaleItem(res usecase.CancelSaleItemResult) CancelSaleItemResponse {
	return CancelSaleItemResponse{
		SaleID:             res.Sale.ID().String(),
		ItemID:             res.Item.ID().String(),
		ProductDescription: res.Item.ProductDescription(),
		TotalAmount:        res.Sale.TotalAmount().StringFixed(2),
	}
}
