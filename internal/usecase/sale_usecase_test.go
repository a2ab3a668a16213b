package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sales_service/internal/domain/entities"
	mock_interfaces "sales_service/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validInput() CreateSaleInput {
	return CreateSaleInput{
		SaleNumber:   " S-1001 ",
		SaleDate:     time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
		CustomerID:   uuid.New(),
		CustomerName: "Cliente",
		BranchID:     uuid.New(),
		BranchName:   "Filial Centro",
		Items: []CreateSaleItemInput{
			{ProductID: uuid.New(), ProductDescription: "Produto A", Quantity: 5, UnitPrice: decimal.NewFromInt(100)},
			{ProductID: uuid.New(), ProductDescription: "Produto B", Quantity: 15, UnitPrice: decimal.NewFromInt(50)},
		},
	}
}

func newSale(t *testing.T) *entities.Sale {
	t.Helper()
	a, err := entities.NewSaleItem(uuid.New(), "Produto A", 5, decimal.NewFromInt(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := entities.NewSaleItem(uuid.New(), "Produto B", 15, decimal.NewFromInt(50))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sale, _, err := entities.NewSale("S-1001", time.Now().UTC(), uuid.New(), "Cliente", uuid.New(), "Filial", []entities.SaleItem{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return sale
}

func TestSaleUseCase_CreateSale(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(in *CreateSaleInput)
		}{
			{name: "blank customer name", mutate: func(in *CreateSaleInput) { in.CustomerName = "  " }},
			{name: "blank branch name", mutate: func(in *CreateSaleInput) { in.BranchName = "" }},
			{name: "long sale number", mutate: func(in *CreateSaleInput) { in.SaleNumber = strings.Repeat("9", 51) }},
			{name: "long customer name", mutate: func(in *CreateSaleInput) { in.CustomerName = strings.Repeat("a", 201) }},
			{name: "blank description", mutate: func(in *CreateSaleInput) { in.Items[0].ProductDescription = " " }},
			{name: "nil product", mutate: func(in *CreateSaleInput) { in.Items[1].ProductID = uuid.Nil }},
			{name: "sub-cent price", mutate: func(in *CreateSaleInput) { in.Items[0].UnitPrice = decimal.RequireFromString("10.125") }},
			{name: "tiny price", mutate: func(in *CreateSaleInput) { in.Items[1].UnitPrice = decimal.RequireFromString("0.001") }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewSaleUseCase(nil, nil)
				in := validInput()
				tc.mutate(&in)
				_, err := uc.CreateSale(context.Background(), in)
				if !errors.Is(err, ErrInvalidSaleInput) {
					t.Fatalf("expected ErrInvalidSaleInput, got %v", err)
				}
			})
		}
	})

	t.Run("domain errors", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(in *CreateSaleInput)
			err    error
		}{
			{name: "no items", mutate: func(in *CreateSaleInput) { in.Items = nil }, err: entities.ErrEmptyItemList},
			{name: "zero quantity", mutate: func(in *CreateSaleInput) { in.Items[0].Quantity = 0 }, err: entities.ErrInvalidQuantity},
			{name: "above limit", mutate: func(in *CreateSaleInput) { in.Items[0].Quantity = 21 }, err: entities.ErrQuantityLimitExceeded},
			{name: "zero price", mutate: func(in *CreateSaleInput) { in.Items[1].UnitPrice = decimal.Zero }, err: entities.ErrInvalidUnitPrice},
			{name: "missing sale number", mutate: func(in *CreateSaleInput) { in.SaleNumber = " " }, err: entities.ErrMissingSaleNumber},
			{name: "missing customer", mutate: func(in *CreateSaleInput) { in.CustomerID = uuid.Nil }, err: entities.ErrMissingCustomer},
			{name: "missing branch", mutate: func(in *CreateSaleInput) { in.BranchID = uuid.Nil }, err: entities.ErrMissingBranch},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewSaleUseCase(nil, nil)
				in := validInput()
				tc.mutate(&in)
				_, err := uc.CreateSale(context.Background(), in)
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
			})
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.CreateSale(context.Background(), validInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *entities.Sale) error {
				if s.Status() != entities.SaleStatusPending || len(s.Items()) != 2 {
					t.Fatalf("unexpected sale: %+v", s.Snapshot())
				}
				return nil
			},
		)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt entities.SaleEvent) error {
				if evt.Type != entities.SaleCreated {
					t.Fatalf("expected SaleCreated, got %s", evt.Type)
				}
				return nil
			},
		)

		sale, err := uc.CreateSale(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.SaleNumber() != "S-1001" {
			t.Fatalf("expected trimmed sale number, got %q", sale.SaleNumber())
		}
		if !sale.TotalAmount().Equal(decimal.NewFromInt(1050)) {
			t.Fatalf("expected 1050 got %s", sale.TotalAmount())
		}
	})

	t.Run("cent price with trailing zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		in := validInput()
		in.Items[0].UnitPrice = decimal.RequireFromString("99.900")
		sale, err := uc.CreateSale(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sale.Items()[0].TotalAmount().Equal(decimal.RequireFromString("449.55")) {
			t.Fatalf("expected 449.55 got %s", sale.Items()[0].TotalAmount())
		}
	})

	t.Run("publish error is not returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker"))

		if _, err := uc.CreateSale(context.Background(), validInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSaleUseCase_GetSale(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil)
		_, err := uc.GetSale(context.Background(), uuid.Nil)
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		id := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := uc.GetSale(context.Background(), id)
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		id := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, errors.New("db"))

		_, err := uc.GetSale(context.Background(), id)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		sale := newSale(t)
		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)

		got, err := uc.GetSale(context.Background(), sale.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID() != sale.ID() {
			t.Fatalf("expected %s got %s", sale.ID(), got.ID())
		}
	})
}

func TestSaleUseCase_CompleteSale(t *testing.T) {
	t.Run("success publishes modified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)
		sale := newSale(t)

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)
		repo.EXPECT().Update(gomock.Any(), sale).Return(true, nil)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt entities.SaleEvent) error {
				if evt.Type != entities.SaleModified || evt.Status != entities.SaleStatusCompleted {
					t.Fatalf("unexpected event: %+v", evt)
				}
				return nil
			},
		)

		got, err := uc.CompleteSale(context.Background(), sale.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status() != entities.SaleStatusCompleted {
			t.Fatalf("expected Completed got %s", got.Status())
		}
	})

	t.Run("cancelled sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)
		sale := newSale(t)
		sale.Cancel()

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)

		_, err := uc.CompleteSale(context.Background(), sale.ID())
		if !errors.Is(err, entities.ErrSaleAlreadyCancelled) {
			t.Fatalf("expected ErrSaleAlreadyCancelled, got %v", err)
		}
	})

	t.Run("deleted before save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)
		sale := newSale(t)

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)
		repo.EXPECT().Update(gomock.Any(), sale).Return(false, nil)

		_, err := uc.CompleteSale(context.Background(), sale.ID())
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})

	t.Run("update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		sale := newSale(t)

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)
		repo.EXPECT().Update(gomock.Any(), sale).Return(false, errors.New("db"))

		_, err := uc.CompleteSale(context.Background(), sale.ID())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSaleUseCase_CancelSale(t *testing.T) {
	t.Run("success publishes cancelled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)
		sale := newSale(t)

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)
		repo.EXPECT().Update(gomock.Any(), sale).Return(true, nil)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt entities.SaleEvent) error {
				if evt.Type != entities.SaleCancelled {
					t.Fatalf("expected SaleCancelled, got %s", evt.Type)
				}
				return nil
			},
		)

		got, err := uc.CancelSale(context.Background(), sale.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsCancelled() {
			t.Fatalf("expected cancelled sale")
		}
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)
		sale := newSale(t)
		sale.Cancel()

		// no Update and no Publish expected
		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)

		got, err := uc.CancelSale(context.Background(), sale.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsCancelled() {
			t.Fatalf("expected cancelled sale")
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		id := uuid.New()
		repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)

		_, err := uc.CancelSale(context.Background(), id)
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})
}

func TestSaleUseCase_CancelSaleItem(t *testing.T) {
	t.Run("invalid item id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil)
		_, err := uc.CancelSaleItem(context.Background(), uuid.New(), uuid.Nil)
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		sale := newSale(t)
		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)

		_, err := uc.CancelSaleItem(context.Background(), sale.ID(), uuid.New())
		if !errors.Is(err, entities.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("success recomputes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		pub := mock_interfaces.NewMockISaleEventPublisher(ctrl)
		uc := NewSaleUseCase(repo, pub)
		sale := newSale(t)
		itemID := sale.Items()[0].ID()

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)
		repo.EXPECT().Update(gomock.Any(), sale).Return(true, nil)
		pub.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt entities.SaleEvent) error {
				if evt.Type != entities.ItemCancelled || evt.Item == nil || evt.Item.ID() != itemID {
					t.Fatalf("unexpected event: %+v", evt)
				}
				return nil
			},
		)

		res, err := uc.CancelSaleItem(context.Background(), sale.ID(), itemID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Item.IsCancelled() || res.Item.ID() != itemID {
			t.Fatalf("unexpected item: %+v", res.Item)
		}
		if !res.Sale.TotalAmount().Equal(decimal.NewFromInt(600)) {
			t.Fatalf("expected 600 got %s", res.Sale.TotalAmount())
		}
	})

	t.Run("allowed on cancelled sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		sale := newSale(t)
		sale.Cancel()
		itemID := sale.Items()[1].ID()

		repo.EXPECT().GetByID(gomock.Any(), sale.ID()).Return(sale, nil)
		repo.EXPECT().Update(gomock.Any(), sale).Return(true, nil)

		res, err := uc.CancelSaleItem(context.Background(), sale.ID(), itemID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Sale.TotalAmount().Equal(decimal.NewFromInt(450)) {
			t.Fatalf("expected 450 got %s", res.Sale.TotalAmount())
		}
	})
}

func TestSaleUseCase_DeleteSale(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSaleUseCase(nil, nil)
		_, err := uc.DeleteSale(context.Background(), uuid.Nil)
		if !errors.Is(err, ErrInvalidSaleID) {
			t.Fatalf("expected ErrInvalidSaleID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewSaleUseCase(repo, nil)
		id := uuid.New()
		repo.EXPECT().Delete(gomock.Any(), id).Return(false, errors.New("db"))

		_, err := uc.DeleteSale(context.Background(), id)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("deleted and missing", func(t *testing.T) {
		for _, want := range []bool{true, false} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockISaleRepository(ctrl)
			uc := NewSaleUseCase(repo, nil)
			id := uuid.New()
			repo.EXPECT().Delete(gomock.Any(), id).Return(want, nil)

			got, err := uc.DeleteSale(context.Background(), id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Fatalf("expected %t got %t", want, got)
			}
			ctrl.Finish()
		}
	})
}
