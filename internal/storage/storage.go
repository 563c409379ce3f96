//go:generate mockgen -source ./storage.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.com/modaluna/aftersales/internal/db"
	"gitlab.com/modaluna/aftersales/internal/domain"
	"gitlab.com/modaluna/aftersales/internal/repository"
)

// AuditTopic is the Kafka topic flag-change audit events are published to
// through the outbox.
const AuditTopic = "aftersales_audit"

type ExchangeRepository interface {
	Create(ctx context.Context, row *repository.ExchangeRow) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.ExchangeRow, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.ExchangeRow, error)
	Update(ctx context.Context, row *repository.ExchangeRow) error
	UpdateTx(ctx context.Context, tx db.Tx, row *repository.ExchangeRow) error
	List(ctx context.Context) ([]*repository.ExchangeRow, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, row *repository.ReturnRow) (int64, error)
	GetByID(ctx context.Context, id int64) (*repository.ReturnRow, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.ReturnRow, error)
	Update(ctx context.Context, row *repository.ReturnRow) error
	UpdateTx(ctx context.Context, tx db.Tx, row *repository.ReturnRow) error
	List(ctx context.Context) ([]*repository.ReturnRow, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

// ExchangeFlagUpdate carries the flags a staff member toggled. Nil fields
// stay untouched; each flag is mutated independently as the matching
// physical or administrative event happens.
type ExchangeFlagUpdate struct {
	Arrived         *bool `json:"arrived,omitempty"`
	Shipped         *bool `json:"shipped,omitempty"`
	Registered      *bool `json:"registered,omitempty"`
	LabelDispatched *bool `json:"label_dispatched,omitempty"`
}

// ReturnFlagUpdate carries the flags toggled on a return.
type ReturnFlagUpdate struct {
	Arrived    *bool `json:"arrived,omitempty"`
	Refunded   *bool `json:"refunded,omitempty"`
	CreditNote *bool `json:"credit_note,omitempty"`
	Cancelled  *bool `json:"cancelled,omitempty"`
}

// PostgresStorage is the persistence facade. It translates between stored
// rows and domain records; every status leaving this layer is derived by
// the domain package, never read from the database.
type PostgresStorage struct {
	db        db.DB
	exchanges ExchangeRepository
	returns   ReturnRepository
	outbox    OutboxTaskRepository
	logger    *zap.Logger
}

func NewPostgresStorage(
	db db.DB,
	exchanges ExchangeRepository,
	returns ReturnRepository,
	outbox OutboxTaskRepository,
	logger *zap.Logger,
) *PostgresStorage {
	return &PostgresStorage{
		db:        db,
		exchanges: exchanges,
		returns:   returns,
		outbox:    outbox,
		logger:    logger,
	}
}

func (s *PostgresStorage) RegisterExchange(ctx context.Context, rec domain.ExchangeRecord) (int64, error) {
	if !domain.IsExchangeMotive(rec.Motive) {
		return 0, fmt.Errorf("unknown exchange motive %q", rec.Motive)
	}

	now := time.Now()
	rec.CreatedAt = now.UTC()
	rec.UpdatedAt = now.UTC()
	if rec.Date.IsZero() {
		// Business dates live on the local calendar shared by date filters
		// and monthly buckets; only audit timestamps are kept in UTC.
		rec.Date = now
	}

	id, err := s.exchanges.Create(ctx, exchangeToRow(rec))
	if err != nil {
		return 0, fmt.Errorf("failed to register exchange: %w", err)
	}
	return id, nil
}

func (s *PostgresStorage) GetExchange(ctx context.Context, id int64) (*domain.ExchangeRecord, error) {
	row, err := s.exchanges.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := exchangeFromRow(row)
	return &rec, nil
}

func (s *PostgresStorage) ListExchanges(ctx context.Context, filter domain.ExchangeFilter) ([]domain.ExchangeRecord, error) {
	rows, err := s.exchanges.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchanges: %w", err)
	}
	records := make([]domain.ExchangeRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, exchangeFromRow(row))
	}
	return filter.Apply(records), nil
}

// SetExchangeFlags applies a flag update inside one transaction and records
// an audit outbox task carrying the derived status before and after.
func (s *PostgresStorage) SetExchangeFlags(ctx context.Context, id int64, update ExchangeFlagUpdate, userID string) (*domain.ExchangeRecord, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.exchanges.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := exchangeFromRow(row).Status()

	if update.Arrived != nil {
		row.Arrived = *update.Arrived
	}
	if update.Shipped != nil {
		row.Shipped = *update.Shipped
	}
	if update.Registered != nil {
		row.Registered = *update.Registered
	}
	if update.LabelDispatched != nil {
		row.LabelDispatched = *update.LabelDispatched
	}
	row.UpdatedAt = time.Now().UTC()

	if err := s.exchanges.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to update exchange %d: %w", id, err)
	}

	rec := exchangeFromRow(row)
	if err := s.enqueueAudit(ctx, tx, "exchange", id, userID, string(oldStatus), string(rec.Status())); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit exchange flag update: %w", err)
	}

	s.logger.Info("exchange flags updated",
		zap.Int64("exchange_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(rec.Status())))
	return &rec, nil
}

func (s *PostgresStorage) RegisterReturn(ctx context.Context, rec domain.ReturnRecord) (int64, error) {
	if !domain.IsReturnMotive(rec.Motive) {
		return 0, fmt.Errorf("unknown return motive %q", rec.Motive)
	}

	now := time.Now()
	rec.CreatedAt = now.UTC()
	rec.UpdatedAt = now.UTC()
	if rec.Date.IsZero() {
		rec.Date = now
	}

	id, err := s.returns.Create(ctx, returnToRow(rec))
	if err != nil {
		return 0, fmt.Errorf("failed to register return: %w", err)
	}
	return id, nil
}

func (s *PostgresStorage) GetReturn(ctx context.Context, id int64) (*domain.ReturnRecord, error) {
	row, err := s.returns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := returnFromRow(row)
	return &rec, nil
}

func (s *PostgresStorage) ListReturns(ctx context.Context, filter domain.ReturnFilter) ([]domain.ReturnRecord, error) {
	rows, err := s.returns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}
	records := make([]domain.ReturnRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, returnFromRow(row))
	}
	return filter.Apply(records), nil
}

func (s *PostgresStorage) SetReturnFlags(ctx context.Context, id int64, update ReturnFlagUpdate, userID string) (*domain.ReturnRecord, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row, err := s.returns.GetByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := returnFromRow(row).Status()

	if update.Arrived != nil {
		row.Arrived = *update.Arrived
	}
	if update.Refunded != nil {
		row.Refunded = *update.Refunded
	}
	if update.CreditNote != nil {
		row.CreditNote = *update.CreditNote
	}
	if update.Cancelled != nil {
		row.Cancelled = *update.Cancelled
	}
	row.UpdatedAt = time.Now().UTC()

	if err := s.returns.UpdateTx(ctx, tx, row); err != nil {
		return nil, fmt.Errorf("failed to update return %d: %w", id, err)
	}

	rec := returnFromRow(row)
	if err := s.enqueueAudit(ctx, tx, "return", id, userID, string(oldStatus), string(rec.Status())); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit return flag update: %w", err)
	}

	s.logger.Info("return flags updated",
		zap.Int64("return_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(rec.Status())))
	return &rec, nil
}

func (s *PostgresStorage) enqueueAudit(ctx context.Context, tx db.Tx, entityType string, id int64, userID, oldStatus, newStatus string) error {
	payload, err := json.Marshal(repository.AuditLogPayload{
		Timestamp:  time.Now().UTC(),
		UserID:     userID,
		EntityType: entityType,
		EntityID:   fmt.Sprintf("%d", id),
		Handler:    "flag_update",
		OldStatus:  oldStatus,
		NewStatus:  newStatus,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal audit payload: %w", err)
	}

	task := &repository.OutboxTask{
		Payload: payload,
		Topic:   AuditTopic,
	}
	if err := s.outbox.CreateTx(ctx, tx, task); err != nil {
		return fmt.Errorf("failed to enqueue audit task: %w", err)
	}
	return nil
}

func exchangeToRow(rec domain.ExchangeRecord) *repository.ExchangeRow {
	return &repository.ExchangeRow{
		ID:               rec.ID,
		OrderRef:         rec.OrderRef,
		CustomerPhone:    rec.CustomerPhone,
		CustomerName:     rec.CustomerName,
		OriginalModel:    rec.OriginalModel,
		ReplacementModel: rec.ReplacementModel,
		Motive:           rec.Motive,
		DiffCharged:      rec.DiffCharged,
		DiffOwed:         rec.DiffOwed,
		CarrierRef:       rec.CarrierRef,
		Notes:            rec.Notes,
		WarehouseLabel:   rec.WarehouseLabel,
		LabelDispatched:  rec.LabelDispatched,
		Arrived:          rec.ArrivedAtWarehouse,
		Shipped:          rec.Shipped,
		Registered:       rec.RegisteredInSystem,
		PairOrder:        rec.IsPairOrder,
		Date:             rec.Date,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func exchangeFromRow(row *repository.ExchangeRow) domain.ExchangeRecord {
	return domain.ExchangeRecord{
		ID:                 row.ID,
		OrderRef:           row.OrderRef,
		CustomerPhone:      row.CustomerPhone,
		CustomerName:       row.CustomerName,
		OriginalModel:      row.OriginalModel,
		ReplacementModel:   row.ReplacementModel,
		Motive:             row.Motive,
		DiffCharged:        row.DiffCharged,
		DiffOwed:           row.DiffOwed,
		CarrierRef:         row.CarrierRef,
		Notes:              row.Notes,
		WarehouseLabel:     row.WarehouseLabel,
		LabelDispatched:    row.LabelDispatched,
		ArrivedAtWarehouse: row.Arrived,
		Shipped:            row.Shipped,
		RegisteredInSystem: row.Registered,
		IsPairOrder:        row.PairOrder,
		Date:               row.Date,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func returnToRow(rec domain.ReturnRecord) *repository.ReturnRow {
	return &repository.ReturnRow{
		ID:            rec.ID,
		OrderRef:      rec.OrderRef,
		CustomerPhone: rec.CustomerPhone,
		ProductModel:  rec.ProductModel,
		Motive:        rec.Motive,
		RefundAmount:  rec.RefundAmount,
		ShippingCost:  rec.ShippingCost,
		Responsible:   rec.Responsible,
		Arrived:       rec.ArrivedAtWarehouse,
		Refunded:      rec.MoneyRefunded,
		CreditNote:    rec.CreditNoteIssued,
		Cancelled:     rec.Cancelled,
		Date:          rec.Date,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func returnFromRow(row *repository.ReturnRow) domain.ReturnRecord {
	return domain.ReturnRecord{
		ID:                 row.ID,
		OrderRef:           row.OrderRef,
		CustomerPhone:      row.CustomerPhone,
		ProductModel:       row.ProductModel,
		Motive:             row.Motive,
		RefundAmount:       row.RefundAmount,
		ShippingCost:       row.ShippingCost,
		Responsible:        row.Responsible,
		ArrivedAtWarehouse: row.Arrived,
		MoneyRefunded:      row.Refunded,
		CreditNoteIssued:   row.CreditNote,
		Cancelled:          row.Cancelled,
		Date:               row.Date,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}
