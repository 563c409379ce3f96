package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "gitlab.com/modaluna/aftersales/internal/db/mocks"
	"gitlab.com/modaluna/aftersales/internal/repository"
	"gitlab.com/modaluna/aftersales/internal/repository/postgresql"
)

// stubRow satisfies pgx.Row for ExecQueryRow expectations.
type stubRow struct {
	id  int64
	err error
}

func (r stubRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	if p, ok := dest[0].(*int64); ok {
		*p = r.id
	}
	return nil
}

func testExchangeRow() *repository.ExchangeRow {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	return &repository.ExchangeRow{
		ID:               7,
		OrderRef:         "PED-1042",
		CustomerPhone:    "3511234567",
		CustomerName:     "Marta",
		OriginalModel:    "Lienzo 38",
		ReplacementModel: "Lienzo 39",
		Motive:           "size_change",
		Registered:       true,
		Date:             now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestExchangeRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewExchangeRepo(mockDB)

		row := testExchangeRow()

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(),
				gomock.Eq(row.OrderRef), gomock.Eq(row.CustomerPhone), gomock.Eq(row.CustomerName),
				gomock.Eq(row.OriginalModel), gomock.Eq(row.ReplacementModel), gomock.Eq(row.Motive),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Eq(row.Registered), gomock.Any(),
				gomock.Eq(row.Date), gomock.Eq(row.CreatedAt), gomock.Eq(row.UpdatedAt)).
			Return(stubRow{id: 42})

		id, err := repo.Create(ctx, row)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewExchangeRepo(mockDB)

		expectedErr := errors.New("database error")

		mockDB.EXPECT().
			ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(stubRow{err: expectedErr})

		_, err := repo.Create(ctx, testExchangeRow())
		assert.Equal(t, expectedErr, err)
	})
}

func TestExchangeRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("exchange found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewExchangeRepo(mockDB)

		want := testExchangeRow()

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(want.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.ExchangeRow, _ string, _ int64) error {
				*dest = *want
				return nil
			})

		got, err := repo.GetByID(ctx, want.ID)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("exchange not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewExchangeRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(int64(99))).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestExchangeRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewExchangeRepo(mockDB)

		row := testExchangeRow()
		row.Arrived = true

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq(true), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq(row.ID)).
			Return(nil, nil)

		err := repo.Update(ctx, row)
		assert.NoError(t, err)
	})
}

func TestExchangeRepo_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewExchangeRepo(mockDB)

		want := []*repository.ExchangeRow{testExchangeRow()}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.ExchangeRow, _ string, _ ...interface{}) error {
				*dest = want
				return nil
			})

		got, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
