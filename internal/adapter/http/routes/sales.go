package routes

import (
	"sales_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSales = "/sales"
)

func addSalesRoutes(rg *gin.RouterGroup, saleHandler *handlers.SaleHandler) {
	sales := rg.Group(PathSales)
	{
		sales.POST("", saleHandler.CreateSale)
		sales.GET("/:id", saleHandler.GetSale)
		// PUT keeps the "update sale" contract; the only update is completion.
		sales.PUT("/:id", saleHandler.CompleteSale)
		sales.PATCH("/:id/complete", saleHandler.CompleteSale)
		sales.POST("/:id/cancel", saleHandler.CancelSale)
		sales.POST("/:id/items/:item_id/cancel", saleHandler.CancelSaleItem)
		sales.DELETE("/:id", saleHandler.DeleteSale)
	}
}
