package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase/interfaces"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxSaleNumberLength         = 50
	maxNameLength               = 200
	maxProductDescriptionLength = 200
)

var (
	ErrSaleNotFound     = errors.New("sale not found")
	ErrInvalidSaleID    = errors.New("invalid sale id")
	ErrInvalidItemID    = errors.New("invalid sale item id")
	ErrInvalidSaleInput = errors.New("invalid sale input")
)

// CreateSaleInput carries already-parsed values for a new sale.
type CreateSaleInput struct {
	SaleNumber   string
	SaleDate     time.Time
	CustomerID   uuid.UUID
	CustomerName string
	BranchID     uuid.UUID
	BranchName   string
	Items        []CreateSaleItemInput
}

type CreateSaleItemInput struct {
	ProductID          uuid.UUID
	ProductDescription string
	Quantity           int
	UnitPrice          decimal.Decimal
}

// CancelSaleItemResult is the outcome of an item cancellation: the mutated sale
// and the cancelled item.
type CancelSaleItemResult struct {
	Sale *entities.Sale
	Item entities.SaleItem
}

// ISaleUseCase exposes the sale operations invoked by external handlers.
//
//   - CreateSale     => new Pending sale
//   - GetSale        => load by id
//   - CompleteSale   => Pending/Completed -> Completed
//   - CancelSale     => any -> Cancelled (repeat is a no-op)
//   - CancelSaleItem => cancel one line and recompute the total
//   - DeleteSale     => remove the whole aggregate
//go:generate mockgen -destination=../adapter/http/handlers/mocks/sale_usecase.go -package=mocks sales_service/internal/usecase ISaleUseCase
type ISaleUseCase interface {
	CreateSale(ctx context.Context, in CreateSaleInput) (*entities.Sale, error)
	GetSale(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	CompleteSale(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	CancelSale(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	CancelSaleItem(ctx context.Context, saleID, itemID uuid.UUID) (CancelSaleItemResult, error)
	DeleteSale(ctx context.Context, id uuid.UUID) (bool, error)
}

type SaleUseCase struct {
	repo      interfaces.ISaleRepository
	publisher interfaces.ISaleEventPublisher
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(repo interfaces.ISaleRepository, publisher interfaces.ISaleEventPublisher) *SaleUseCase {
	return &SaleUseCase{repo: repo, publisher: publisher}
}

func (u *SaleUseCase) CreateSale(ctx context.Context, in CreateSaleInput) (*entities.Sale, error) {
	log.Printf("[sale][usecase] create start sale_number=%q items=%d", in.SaleNumber, len(in.Items))
	if err := validateCreateSaleInput(in); err != nil {
		log.Printf("[sale][usecase] create invalid input sale_number=%q err=%v", in.SaleNumber, err)
		return nil, err
	}

	items := make([]entities.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := entities.NewSaleItem(it.ProductID, it.ProductDescription, it.Quantity, it.UnitPrice)
		if err != nil {
			log.Printf("[sale][usecase] create rejected item product_id=%s quantity=%d err=%v", it.ProductID, it.Quantity, err)
			return nil, err
		}
		items = append(items, item)
	}

	sale, evt, err := entities.NewSale(
		strings.TrimSpace(in.SaleNumber),
		in.SaleDate,
		in.CustomerID,
		strings.TrimSpace(in.CustomerName),
		in.BranchID,
		strings.TrimSpace(in.BranchName),
		items,
	)
	if err != nil {
		log.Printf("[sale][usecase] create rejected sale_number=%q err=%v", in.SaleNumber, err)
		return nil, err
	}

	if err := u.repo.Create(ctx, sale); err != nil {
		log.Printf("[sale][usecase] repository create failed sale_id=%s err=%v", sale.ID(), err)
		return nil, err
	}
	u.publish(ctx, evt)

	log.Printf("[sale][usecase] create success sale_id=%s sale_number=%s total=%s", sale.ID(), sale.SaleNumber(), sale.TotalAmount().StringFixed(2))
	return sale, nil
}

func (u *SaleUseCase) GetSale(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	return u.load(ctx, id)
}

func (u *SaleUseCase) CompleteSale(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	sale, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	evt, err := sale.Complete()
	if err != nil {
		log.Printf("[sale][usecase] complete rejected sale_id=%s status=%s err=%v", id, sale.Status(), err)
		return nil, err
	}

	if err := u.save(ctx, sale); err != nil {
		return nil, err
	}
	u.publish(ctx, evt)
	return sale, nil
}

func (u *SaleUseCase) CancelSale(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	sale, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}

	evt, changed := sale.Cancel()
	if !changed {
		log.Printf("[sale][usecase] cancel no-op sale_id=%s already cancelled", id)
		return sale, nil
	}

	if err := u.save(ctx, sale); err != nil {
		return nil, err
	}
	u.publish(ctx, evt)
	return sale, nil
}

func (u *SaleUseCase) CancelSaleItem(ctx context.Context, saleID, itemID uuid.UUID) (CancelSaleItemResult, error) {
	if itemID == uuid.Nil {
		return CancelSaleItemResult{}, ErrInvalidItemID
	}

	sale, err := u.load(ctx, saleID)
	if err != nil {
		return CancelSaleItemResult{}, err
	}

	evt, err := sale.CancelItem(itemID)
	if err != nil {
		log.Printf("[sale][usecase] cancel-item rejected sale_id=%s item_id=%s err=%v", saleID, itemID, err)
		return CancelSaleItemResult{}, err
	}

	if err := u.save(ctx, sale); err != nil {
		return CancelSaleItemResult{}, err
	}
	u.publish(ctx, evt)

	item, _ := sale.Item(itemID)
	return CancelSaleItemResult{Sale: sale, Item: item}, nil
}

func (u *SaleUseCase) DeleteSale(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, ErrInvalidSaleID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[sale][usecase] repository delete failed sale_id=%s err=%v", id, err)
		return false, err
	}
	log.Printf("[sale][usecase] delete sale_id=%s deleted=%t", id, deleted)
	return deleted, nil
}

func (u *SaleUseCase) load(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidSaleID
	}

	sale, err := u.repo.GetByID(ctx, id)
	if err != nil {
		log.Printf("[sale][usecase] repository get failed sale_id=%s err=%v", id, err)
		return nil, err
	}
	if sale == nil {
		return nil, ErrSaleNotFound
	}
	return sale, nil
}

func (u *SaleUseCase) save(ctx context.Context, sale *entities.Sale) error {
	found, err := u.repo.Update(ctx, sale)
	if err != nil {
		log.Printf("[sale][usecase] repository update failed sale_id=%s err=%v", sale.ID(), err)
		return err
	}
	// Deleted between load and save.
	if !found {
		return ErrSaleNotFound
	}
	return nil
}

// publish never fails the operation: the aggregate is already persisted.
func (u *SaleUseCase) publish(ctx context.Context, evt entities.SaleEvent) {
	if u.publisher == nil || evt.IsZero() {
		return
	}
	if err := u.publisher.Publish(ctx, evt); err != nil {
		log.Printf("[sale][usecase] publish failed event=%s sale_id=%s err=%v", evt.Type, evt.SaleID, err)
	}
}

func validateCreateSaleInput(in CreateSaleInput) error {
	if utf8.RuneCountInString(strings.TrimSpace(in.SaleNumber)) > maxSaleNumberLength {
		return fmt.Errorf("%w: sale_number exceeds %d characters", ErrInvalidSaleInput, maxSaleNumberLength)
	}
	if err := validateName("customer_name", in.CustomerName); err != nil {
		return err
	}
	if err := validateName("branch_name", in.BranchName); err != nil {
		return err
	}
	for i, it := range in.Items {
		desc := strings.TrimSpace(it.ProductDescription)
		if desc == "" {
			return fmt.Errorf("%w: items[%d].product_description is required", ErrInvalidSaleInput, i)
		}
		if utf8.RuneCountInString(desc) > maxProductDescriptionLength {
			return fmt.Errorf("%w: items[%d].product_description exceeds %d characters", ErrInvalidSaleInput, i, maxProductDescriptionLength)
		}
		if it.ProductID == uuid.Nil {
			return fmt.Errorf("%w: items[%d].product_id is required", ErrInvalidSaleInput, i)
		}
		// prices are stored and shown in cents
		if it.UnitPrice.IsPositive() && !it.UnitPrice.Equal(it.UnitPrice.Truncate(2)) {
			return fmt.Errorf("%w: items[%d].unit_price has more than 2 decimal places", ErrInvalidSaleInput, i)
		}
	}
	return nil
}

func validateName(field, value string) error {
	v := strings.TrimSpace(value)
	if v == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidSaleInput, field)
	}
	if utf8.RuneCountInString(v) > maxNameLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidSaleInput, field, maxNameLength)
	}
	return nil
}
