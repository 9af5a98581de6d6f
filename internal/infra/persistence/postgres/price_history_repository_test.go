package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceHistoryRepository_ListByModelNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPriceHistoryRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "price_history" WHERE model_id =`).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "price_history" WHERE model_id = .* ORDER BY price_date DESC LIMIT`).
		WithArgs(uint(3), 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "model_id", "price", "price_date", "source"}).
			AddRow(11, 3, 54.99, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "hobbylink").
			AddRow(10, 3, 49.99, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "hobbylink"))

	prices, total, err := repo.ListByModel(context.Background(), 3, repository.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, prices, 2)
	assert.InDelta(t, 54.99, prices[0].Price, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriceHistoryRepository_CreateUnknownModel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPriceHistoryRepository(db)

	mock.ExpectQuery(`INSERT INTO "price_history"`).
		WillReturnError(errors.New(`insert or update on table "price_history" violates foreign key constraint "fk_price_history_model" (SQLSTATE 23503)`))

	err := repo.Create(context.Background(), &entity.PriceHistory{ModelID: 99, Price: 10, PriceDate: time.Now(), Source: "ebay"})
	assert.ErrorIs(t, err, domainerrors.ErrModelNotFound)
}
