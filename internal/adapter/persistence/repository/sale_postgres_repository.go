package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sales_service/internal/domain/entities"
	"sales_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const salesSchema = `
CREATE TABLE IF NOT EXISTS sales (
	id            uuid PRIMARY KEY,
	sale_number   varchar(50)    NOT NULL,
	sale_date     timestamptz    NOT NULL,
	customer_id   uuid           NOT NULL,
	customer_name varchar(200)   NOT NULL,
	branch_id     uuid           NOT NULL,
	branch_name   varchar(200)   NOT NULL,
	status        varchar(20)    NOT NULL,
	total_amount  numeric(18,2)  NOT NULL,
	updated_at    timestamptz    NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS sale_items (
	id                  uuid PRIMARY KEY,
	sale_id             uuid          NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
	position            integer       NOT NULL,
	product_id          uuid          NOT NULL,
	product_description varchar(200)  NOT NULL,
	quantity            integer       NOT NULL,
	unit_price          numeric(18,2) NOT NULL,
	discount_percentage numeric(5,2)  NOT NULL,
	total_amount        numeric(18,2) NOT NULL,
	is_cancelled        boolean       NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_sale_items_sale_id ON sale_items (sale_id, position);
`

const (
	insertSaleQuery = `
		INSERT INTO sales (
			id, sale_number, sale_date, customer_id, customer_name,
			branch_id, branch_name, status, total_amount
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	insertSaleItemQuery = `
		INSERT INTO sale_items (
			id, sale_id, position, product_id, product_description,
			quantity, unit_price, discount_percentage, total_amount, is_cancelled
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	selectSaleQuery = `
		SELECT id, sale_number, sale_date, customer_id, customer_name,
			branch_id, branch_name, status, total_amount
		FROM sales
		WHERE id = $1`

	selectSaleItemsQuery = `
		SELECT id, sale_id, product_id, product_description, quantity,
			unit_price, discount_percentage, total_amount, is_cancelled
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY position`

	updateSaleQuery = `
		UPDATE sales
		SET status = $2, total_amount = $3, updated_at = NOW()
		WHERE id = $1`

	updateSaleItemQuery = `
		UPDATE sale_items
		SET is_cancelled = $3
		WHERE sale_id = $1 AND id = $2`

	deleteSaleQuery = `DELETE FROM sales WHERE id = $1`
)

// SalePostgresRepository persists Sale aggregates in PostgreSQL through lib/pq.
// A sale and its items are always written in one transaction.
type SalePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ISaleRepository = (*SalePostgresRepository)(nil)

func NewSalePostgresRepository(db *sql.DB) *SalePostgresRepository {
	return &SalePostgresRepository{db: db}
}

// EnsureSchema creates the sales tables when they do not exist yet.
func (r *SalePostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, salesSchema); err != nil {
		return fmt.Errorf("error creating sales schema: %w", err)
	}
	return nil
}

func (r *SalePostgresRepository) Create(ctx context.Context, s *entities.Sale) error {
	snap := s.Snapshot()
	return r.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, insertSaleQuery,
			snap.ID,
			snap.SaleNumber,
			snap.SaleDate,
			snap.CustomerID,
			snap.CustomerName,
			snap.BranchID,
			snap.BranchName,
			string(snap.Status),
			snap.TotalAmount,
		)
		if err != nil {
			return fmt.Errorf("error creating sale: %w", err)
		}

		for i, it := range snap.Items {
			_, err = tx.ExecContext(ctx, insertSaleItemQuery,
				it.ID,
				snap.ID,
				i,
				it.ProductID,
				it.ProductDescription,
				it.Quantity,
				it.UnitPrice,
				it.DiscountPercentage,
				it.TotalAmount,
				it.IsCancelled,
			)
			if err != nil {
				return fmt.Errorf("error creating sale item %s: %w", it.ID, err)
			}
		}
		return nil
	})
}

func (r *SalePostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	var (
		snap   entities.SaleSnapshot
		status string
	)
	err := r.db.QueryRowContext(ctx, selectSaleQuery, id).Scan(
		&snap.ID,
		&snap.SaleNumber,
		&snap.SaleDate,
		&snap.CustomerID,
		&snap.CustomerName,
		&snap.BranchID,
		&snap.BranchName,
		&status,
		&snap.TotalAmount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying sale: %w", err)
	}
	snap.Status = entities.SaleStatus(status)
	snap.SaleDate = snap.SaleDate.UTC()

	rows, err := r.db.QueryContext(ctx, selectSaleItemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("error querying sale items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it entities.SaleItemSnapshot
		if err := rows.Scan(
			&it.ID,
			&it.SaleID,
			&it.ProductID,
			&it.ProductDescription,
			&it.Quantity,
			&it.UnitPrice,
			&it.DiscountPercentage,
			&it.TotalAmount,
			&it.IsCancelled,
		); err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		snap.Items = append(snap.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return entities.RestoreSale(snap)
}

// Update writes the mutable state of a sale: its status, its total and the
// cancellation flag of each item. It reports false when the sale no longer exists.
func (r *SalePostgresRepository) Update(ctx context.Context, s *entities.Sale) (bool, error) {
	snap := s.Snapshot()
	found := false
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateSaleQuery, snap.ID, string(snap.Status), snap.TotalAmount)
		if err != nil {
			return fmt.Errorf("error updating sale: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("error reading affected rows: %w", err)
		}
		if n == 0 {
			return nil
		}
		found = true

		for _, it := range snap.Items {
			if _, err := tx.ExecContext(ctx, updateSaleItemQuery, snap.ID, it.ID, it.IsCancelled); err != nil {
				return fmt.Errorf("error updating sale item %s: %w", it.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *SalePostgresRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteSaleQuery, id)
	if err != nil {
		return false, fmt.Errorf("error deleting sale: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error reading affected rows: %w", err)
	}
	return n > 0, nil
}

func (r *SalePostgresRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
