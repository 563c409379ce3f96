package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"gitlab.com/modaluna/aftersales/internal/db"
	"gitlab.com/modaluna/aftersales/internal/repository"
	"gitlab.com/modaluna/aftersales/internal/storage"
)

type ExchangeRepo struct {
	db db.DB
}

func NewExchangeRepo(db db.DB) storage.ExchangeRepository {
	return &ExchangeRepo{db: db}
}

func (r *ExchangeRepo) Create(ctx context.Context, row *repository.ExchangeRow) (int64, error) {
	var id int64
	err := r.db.ExecQueryRow(ctx, `
        INSERT INTO exchanges (
            order_ref, customer_phone, customer_name, original_model, replacement_model,
            motive, diff_charged, diff_owed, carrier_ref, notes, warehouse_label,
            label_dispatched, arrived, shipped, registered, pair_order,
            date, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
        RETURNING id
    `, row.OrderRef, row.CustomerPhone, row.CustomerName, row.OriginalModel, row.ReplacementModel,
		row.Motive, row.DiffCharged, row.DiffOwed, row.CarrierRef, row.Notes, row.WarehouseLabel,
		row.LabelDispatched, row.Arrived, row.Shipped, row.Registered, row.PairOrder,
		row.Date, row.CreatedAt, row.UpdatedAt).Scan(&id)
	return id, err
}

func (r *ExchangeRepo) GetByID(ctx context.Context, id int64) (*repository.ExchangeRow, error) {
	var row repository.ExchangeRow
	err := r.db.Get(ctx, &row, "SELECT * FROM exchanges WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ExchangeRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.ExchangeRow, error) {
	var row repository.ExchangeRow
	err := tx.Get(ctx, &row, "SELECT * FROM exchanges WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *ExchangeRepo) Update(ctx context.Context, row *repository.ExchangeRow) error {
	_, err := r.db.Exec(ctx, updateExchangeQuery,
		row.OrderRef, row.CustomerPhone, row.CustomerName, row.OriginalModel, row.ReplacementModel,
		row.Motive, row.DiffCharged, row.DiffOwed, row.CarrierRef, row.Notes, row.WarehouseLabel,
		row.LabelDispatched, row.Arrived, row.Shipped, row.Registered, row.PairOrder,
		row.Date, row.UpdatedAt, row.ID)
	return err
}

func (r *ExchangeRepo) UpdateTx(ctx context.Context, tx db.Tx, row *repository.ExchangeRow) error {
	_, err := tx.Exec(ctx, updateExchangeQuery,
		row.OrderRef, row.CustomerPhone, row.CustomerName, row.OriginalModel, row.ReplacementModel,
		row.Motive, row.DiffCharged, row.DiffOwed, row.CarrierRef, row.Notes, row.WarehouseLabel,
		row.LabelDispatched, row.Arrived, row.Shipped, row.Registered, row.PairOrder,
		row.Date, row.UpdatedAt, row.ID)
	return err
}

const updateExchangeQuery = `
        UPDATE exchanges
        SET
            order_ref = $1,
            customer_phone = $2,
            customer_name = $3,
            original_model = $4,
            replacement_model = $5,
            motive = $6,
            diff_charged = $7,
            diff_owed = $8,
            carrier_ref = $9,
            notes = $10,
            warehouse_label = $11,
            label_dispatched = $12,
            arrived = $13,
            shipped = $14,
            registered = $15,
            pair_order = $16,
            date = $17,
            updated_at = $18
        WHERE id = $19
    `

func (r *ExchangeRepo) List(ctx context.Context) ([]*repository.ExchangeRow, error) {
	var rows []*repository.ExchangeRow
	err := r.db.Select(ctx, &rows, `
        SELECT * FROM exchanges
        ORDER BY date DESC, id DESC
    `)
	return rows, err
}
