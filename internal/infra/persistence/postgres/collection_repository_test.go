package postgres

import (
	"context"
	"testing"

	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRepository_ToggleOn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery("WITH removed AS").
		WithArgs(uint(1), uint(7), uint(1), uint(7), nil).
		WillReturnRows(sqlmock.NewRows([]string{"removed", "inserted"}).AddRow(0, 1))

	state, err := repo.Toggle(context.Background(), 1, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, repository.ToggledOn, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_ToggleOff(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery("WITH removed AS").
		WithArgs(uint(1), uint(7), uint(1), uint(7), nil).
		WillReturnRows(sqlmock.NewRows([]string{"removed", "inserted"}).AddRow(1, 0))

	state, err := repo.Toggle(context.Background(), 1, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, repository.ToggledOff, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_ToggleLostRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPurchaseRepository(db)

	// Another transaction inserted between our DELETE and INSERT, so the
	// ON CONFLICT clause suppressed the insert and both counts come back zero.
	mock.ExpectQuery("WITH removed AS").
		WithArgs(uint(1), uint(7), uint(1), uint(7), nil).
		WillReturnRows(sqlmock.NewRows([]string{"removed", "inserted"}).AddRow(0, 0))

	state, err := repo.Toggle(context.Background(), 1, 7, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Empty(t, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_ToggleTargetsOwnTable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPurchaseRepository(db)

	notes := "birthday gift"
	mock.ExpectQuery("DELETE FROM user_model_purchases").
		WithArgs(uint(3), uint(9), uint(3), uint(9), &notes).
		WillReturnRows(sqlmock.NewRows([]string{"removed", "inserted"}).AddRow(0, 1))

	state, err := repo.Toggle(context.Background(), 3, 9, &notes)
	require.NoError(t, err)
	assert.Equal(t, repository.ToggledOn, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionRepository_ListModels(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "models" JOIN user_model_favorites`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT .* FROM "models" JOIN user_model_favorites`).
		WithArgs(uint(1), 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manufacturer_id", "name", "category", "status"}).
			AddRow(4, 2, "A-10 Thunderbolt II", "aircraft", "owned").
			AddRow(9, 2, "F-14 Tomcat", "aircraft", "wishlist"))
	mock.ExpectQuery(`SELECT \* FROM "manufacturers"`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Tamiya"))

	models, total, err := repo.ListModels(context.Background(), 1, repository.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, models, 2)
	assert.Equal(t, "A-10 Thunderbolt II", models[0].Name)
	assert.Equal(t, uint(9), models[1].ID)
}
