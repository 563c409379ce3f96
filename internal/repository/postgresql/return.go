package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.com/modaluna/aftersales/internal/db"
	"gitlab.com/modaluna/aftersales/internal/repository"
	"gitlab.com/modaluna/aftersales/internal/storage"
)

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) storage.ReturnRepository {
	return &ReturnRepo{db: db}
}

func (r *ReturnRepo) Create(ctx context.Context, row *repository.ReturnRow) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO returns (
            order_ref, customer_phone, product_model, motive, refund_amount,
            shipping_cost, responsible, arrived, refunded, credit_note, cancelled,
            date, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id
    `, row.OrderRef, row.CustomerPhone, row.ProductModel, row.Motive, row.RefundAmount,
		row.ShippingCost, row.Responsible, row.Arrived, row.Refunded, row.CreditNote, row.Cancelled,
		row.Date, row.CreatedAt, row.UpdatedAt).Scan(&id)
	return id, err
}

func (r *ReturnRepo) GetByID(ctx context.Context, id int64) (*repository.ReturnRow, error) {
	var row repository.ReturnRow
	err := r.db.Get(ctx, &row, "SELECT * FROM returns WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.ReturnRow, error) {
	var row repository.ReturnRow
	err := tx.Get(ctx, &row, "SELECT * FROM returns WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ReturnRepo) Update(ctx context.Context, row *repository.ReturnRow) error {
	_, err := r.db.Exec(ctx, updateReturnQuery,
		row.OrderRef, row.CustomerPhone, row.ProductModel, row.Motive, row.RefundAmount,
		row.ShippingCost, row.Responsible, row.Arrived, row.Refunded, row.CreditNote, row.Cancelled,
		row.Date, row.UpdatedAt, row.ID)
	return err
}

func (r *ReturnRepo) UpdateTx(ctx context.Context, tx db.Tx, row *repository.ReturnRow) error {
	_, err := tx.Exec(ctx, updateReturnQuery,
		row.OrderRef, row.CustomerPhone, row.ProductModel, row.Motive, row.RefundAmount,
		row.ShippingCost, row.Responsible, row.Arrived, row.Refunded, row.CreditNote, row.Cancelled,
		row.Date, row.UpdatedAt, row.ID)
	return err
}

const updateReturnQuery = `
        UPDATE returns
        SET
            order_ref = $1,
            customer_phone = $2,
            product_model = $3,
            motive = $4,
            refund_amount = $5,
            shipping_cost = $6,
            responsible = $7,
            arrived = $8,
            refunded = $9,
            credit_note = $10,
            cancelled = $11,
            date = $12,
            updated_at = $13
        WHERE id = $14
    `

func (r *ReturnRepo) List(ctx context.Context) ([]*repository.ReturnRow, error) {
	var rows []*repository.ReturnRow
	err := r.db.Select(ctx, &rows, `
        SELECT * FROM returns
        ORDER BY date DESC, id DESC
    `)
	return rows, err
}
