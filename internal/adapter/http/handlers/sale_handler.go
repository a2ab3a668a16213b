package handlers

import (
	"errors"
	"log"
	"net/http"
	request "sales_service/internal/adapter/http/dto/request"
	response "sales_service/internal/adapter/http/dto/response"
	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase"
	"sales_service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// SaleHandler handles HTTP requests for the sale lifecycle.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// CreateSale godoc
// @Summary      Create a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        sale  body      request.CreateSaleRequest  true  "Sale"
// @Success      201   {object}  response.SaleResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.CreateSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[sale][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		log.Printf("[sale][handler] create invalid identifiers err=%v", err)
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	sale, err := h.usecase.CreateSale(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}
	log.Printf("[sale][handler] create success sale_id=%s", sale.ID())

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// GetSale godoc
// @Summary      Get a sale by id
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.SaleResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	sale, err := h.usecase.GetSale(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, response.FromSale(sale))
}

// CompleteSale godoc
// @Summary      Complete a sale
// @Description  Completing an already completed sale succeeds again. Cancelled sales cannot be completed.
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.SaleStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sales/{id}/complete [patch]
// @Router       /sales/{id} [put]
func (h *SaleHandler) CompleteSale(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	sale, err := h.usecase.CompleteSale(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "complete", err)
		return
	}
	log.Printf("[sale][handler] complete success sale_id=%s", id)

	c.JSON(http.StatusOK, response.FromSaleStatus(sale))
}

// CancelSale godoc
// @Summary      Cancel a sale
// @Description  Cancelling an already cancelled sale is a no-op.
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.SaleStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sales/{id}/cancel [post]
func (h *SaleHandler) CancelSale(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	sale, err := h.usecase.CancelSale(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "cancel", err)
		return
	}
	log.Printf("[sale][handler] cancel success sale_id=%s", id)

	c.JSON(http.StatusOK, response.FromSaleStatus(sale))
}

// CancelSaleItem godoc
// @Summary      Cancel one item of a sale
// @Tags         sales
// @Produce      json
// @Param        id       path      string  true  "Sale ID"
// @Param        item_id  path      string  true  "Item ID"
// @Success      200      {object}  response.CancelSaleItemResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /sales/{id}/items/{item_id}/cancel [post]
func (h *SaleHandler) CancelSaleItem(c *gin.Context) {
	saleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}

	res, err := h.usecase.CancelSaleItem(c.Request.Context(), saleID, itemID)
	if err != nil {
		h.writeError(c, "cancel-item", err)
		return
	}
	log.Printf("[sale][handler] cancel-item success sale_id=%s item_id=%s", saleID, itemID)

	c.JSON(http.StatusOK, response.FromCancelSaleItem(res))
}

// DeleteSale godoc
// @Summary      Delete a sale
// @Tags         sales
// @Produce      json
// @Param        id   path      string  true  "Sale ID"
// @Success      200  {object}  response.DeleteSaleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.usecase.DeleteSale(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, "delete", err)
		return
	}
	if !deleted {
		h.writeError(c, "delete", usecase.ErrSaleNotFound)
		return
	}

	c.JSON(http.StatusOK, response.DeleteSaleResponse{ID: id.String(), Deleted: true})
}

func (h *SaleHandler) writeError(c *gin.Context, op string, err error) {
	appErr := mapSaleError(err)
	log.Printf("[sale][handler] %s failed path=%s code=%s err=%v", op, c.FullPath(), appErr.Code, err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		log.Printf("[sale][handler] invalid path param %s=%q", name, c.Param(name))
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return uuid.Nil, false
	}
	return id, true
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleInput), errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyItemList):
		return pkg.NewDomainErrorSimple("EMPTY_ITEM_LIST", "A sale must have at least one item", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, entities.ErrQuantityLimitExceeded):
		return pkg.NewDomainErrorSimple("QUANTITY_LIMIT_EXCEEDED", "It is not possible to sell more than 20 identical items", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidUnitPrice):
		return pkg.NewDomainErrorSimple("INVALID_UNIT_PRICE", "Unit price must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingSaleNumber):
		return pkg.NewDomainErrorSimple("MISSING_SALE_NUMBER", "Sale number is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingCustomer):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER", "Customer is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMissingBranch):
		return pkg.NewDomainErrorSimple("MISSING_BRANCH", "Branch is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrDuplicateSaleItem):
		return pkg.NewDomainErrorSimple("DUPLICATE_SALE_ITEM", "Sale items must be unique", http.StatusBadRequest)
	case errors.Is(err, entities.ErrSaleAlreadyCancelled):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_CANCELLED", "Sale is already cancelled", http.StatusConflict)
	case errors.Is(err, entities.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("SALE_ITEM_NOT_FOUND", "Sale item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
