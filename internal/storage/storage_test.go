package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.com/modaluna/aftersales/internal/db"
	mock_database "gitlab.com/modaluna/aftersales/internal/db/mocks"
	"gitlab.com/modaluna/aftersales/internal/domain"
	"gitlab.com/modaluna/aftersales/internal/repository"
	"gitlab.com/modaluna/aftersales/internal/storage"
	mock_storage "gitlab.com/modaluna/aftersales/internal/storage/mocks"
)

type storageMocks struct {
	db        *mock_database.MockDB
	tx        *mock_database.MockTx
	exchanges *mock_storage.MockExchangeRepository
	returns   *mock_storage.MockReturnRepository
	outbox    *mock_storage.MockOutboxTaskRepository
}

func newTestStorage(t *testing.T) (*storage.PostgresStorage, storageMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := storageMocks{
		db:        mock_database.NewMockDB(ctrl),
		tx:        mock_database.NewMockTx(ctrl),
		exchanges: mock_storage.NewMockExchangeRepository(ctrl),
		returns:   mock_storage.NewMockReturnRepository(ctrl),
		outbox:    mock_storage.NewMockOutboxTaskRepository(ctrl),
	}
	s := storage.NewPostgresStorage(m.db, m.exchanges, m.returns, m.outbox, zap.NewNop())
	return s, m
}

func TestRegisterExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("sets timestamps and defaults the business date", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.exchanges.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *repository.ExchangeRow) (int64, error) {
				assert.Equal(t, "PED-1042", row.OrderRef)
				assert.False(t, row.CreatedAt.IsZero())
				assert.False(t, row.Date.IsZero())
				assert.Equal(t, row.CreatedAt, row.UpdatedAt)
				// The defaulted business date is on the local calendar so it
				// agrees with date filters and monthly stats buckets; audit
				// timestamps stay in UTC.
				assert.Equal(t, time.Local, row.Date.Location())
				assert.Equal(t, time.UTC, row.CreatedAt.Location())
				return 7, nil
			})

		id, err := s.RegisterExchange(ctx, domain.ExchangeRecord{
			OrderRef: "PED-1042",
			Motive:   "size_change",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("rejects unknown motive without touching the repo", func(t *testing.T) {
		s, _ := newTestStorage(t)

		_, err := s.RegisterExchange(ctx, domain.ExchangeRecord{
			OrderRef: "PED-1042",
			Motive:   "teleported",
		})
		assert.Error(t, err)
	})
}

func TestListReturnsAppliesFilter(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStorage(t)

	rows := []*repository.ReturnRow{
		{ID: 1, OrderRef: "PED-1", Motive: "defective", Arrived: true},
		{ID: 2, OrderRef: "PED-2", Motive: "size_too_big"},
		{ID: 3, OrderRef: "PED-3", Motive: "defective", Arrived: true, Refunded: true},
	}

	m.returns.EXPECT().List(gomock.Any()).Return(rows, nil).Times(2)

	byMotive, err := s.ListReturns(ctx, domain.ReturnFilter{Motive: "defective"})
	require.NoError(t, err)
	assert.Len(t, byMotive, 2)

	byStatus, err := s.ListReturns(ctx, domain.ReturnFilter{Status: "arrived_unprocessed"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, int64(1), byStatus[0].ID)
}

func TestSetReturnFlags(t *testing.T) {
	ctx := context.Background()

	t.Run("applies flags in one transaction and enqueues the audit task", func(t *testing.T) {
		s, m := newTestStorage(t)

		stored := &repository.ReturnRow{
			ID:       3,
			OrderRef: "PED-77",
			Motive:   "defective",
			Arrived:  true,
		}

		m.db.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(m.tx), nil)
		m.returns.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(3)).Return(stored, nil)
		m.returns.EXPECT().
			UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, row *repository.ReturnRow) error {
				assert.True(t, row.Refunded)
				assert.True(t, row.Arrived)
				assert.False(t, row.UpdatedAt.IsZero())
				return nil
			})
		m.outbox.EXPECT().
			CreateTx(gomock.Any(), m.tx, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
				assert.Equal(t, storage.AuditTopic, task.Topic)

				var payload repository.AuditLogPayload
				require.NoError(t, json.Unmarshal(task.Payload, &payload))
				assert.Equal(t, "return", payload.EntityType)
				assert.Equal(t, "3", payload.EntityID)
				assert.Equal(t, "ana", payload.UserID)
				assert.Equal(t, "arrived_unprocessed", payload.OldStatus)
				assert.Equal(t, "money_refunded", payload.NewStatus)
				return nil
			})
		m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		refunded := true
		rec, err := s.SetReturnFlags(ctx, 3, storage.ReturnFlagUpdate{Refunded: &refunded}, "ana")
		require.NoError(t, err)
		assert.Equal(t, domain.ReturnMoneyRefunded, rec.Status())
	})

	t.Run("missing return rolls back", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(m.tx), nil)
		m.returns.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(99)).
			Return(nil, repository.ErrObjectNotFound)
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		arrived := true
		_, err := s.SetReturnFlags(ctx, 99, storage.ReturnFlagUpdate{Arrived: &arrived}, "ana")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("update failure never commits", func(t *testing.T) {
		s, m := newTestStorage(t)

		m.db.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(m.tx), nil)
		m.returns.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(3)).
			Return(&repository.ReturnRow{ID: 3, Motive: "defective"}, nil)
		m.returns.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).
			Return(errors.New("database error"))
		m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		arrived := true
		_, err := s.SetReturnFlags(ctx, 3, storage.ReturnFlagUpdate{Arrived: &arrived}, "ana")
		assert.Error(t, err)
	})
}

func TestSetExchangeFlags(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStorage(t)

	stored := &repository.ExchangeRow{
		ID:         7,
		OrderRef:   "PED-1042",
		Motive:     "size_change",
		Registered: true,
		Arrived:    true,
	}

	m.db.EXPECT().BeginTx(gomock.Any()).Return(db.Tx(m.tx), nil)
	m.exchanges.EXPECT().GetByIDTx(gomock.Any(), m.tx, int64(7)).Return(stored, nil)
	m.exchanges.EXPECT().UpdateTx(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.outbox.EXPECT().
		CreateTx(gomock.Any(), m.tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
			var payload repository.AuditLogPayload
			require.NoError(t, json.Unmarshal(task.Payload, &payload))
			assert.Equal(t, "ready_to_ship", payload.OldStatus)
			assert.Equal(t, "completed", payload.NewStatus)
			return nil
		})
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

	shipped := true
	rec, err := s.SetExchangeFlags(ctx, 7, storage.ExchangeFlagUpdate{Shipped: &shipped}, "ana")
	require.NoError(t, err)
	assert.Equal(t, domain.ExchangeCompleted, rec.Status())
}

func TestGetReturnStats(t *testing.T) {
	ctx := context.Background()
	s, m := newTestStorage(t)

	marchA := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.Local)
	marchB := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.Local)
	april := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local)

	rows := []*repository.ReturnRow{
		{ID: 1, Motive: "defective", RefundAmount: 100, Arrived: true, Refunded: true, Date: marchA},
		{ID: 2, Motive: "defective", RefundAmount: 50, Date: marchB},
		{ID: 3, Motive: "defective", RefundAmount: 30, Date: april},
	}

	m.returns.EXPECT().List(gomock.Any()).Return(rows, nil)

	stats, err := s.GetReturnStats(ctx, domain.ReturnFilter{})
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 180.0, stats.RefundSum, 0.001)
	assert.InDelta(t, 33.3, stats.PercentComplete, 0.001)
	require.Len(t, stats.Monthly, 2)
	assert.Equal(t, 2026, stats.Monthly[0].Year)
	assert.Equal(t, 3, stats.Monthly[0].Month)
	assert.Equal(t, 2, stats.Monthly[0].Total)
	assert.Equal(t, 4, stats.Monthly[1].Month)
}
