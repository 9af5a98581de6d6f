package postgres

import (
	"context"
	"errors"
	"testing"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelRepository_ListJoinsManufacturerFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModelRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "models" JOIN manufacturers ON manufacturers\.id = models\.manufacturer_id WHERE manufacturers\.name ILIKE`).
		WithArgs("%bandai%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "models" JOIN manufacturers ON manufacturers\.id = models\.manufacturer_id WHERE manufacturers\.name ILIKE`).
		WithArgs("%bandai%", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manufacturer_id", "name", "category", "status"}).
			AddRow(3, 2, "RX-78-2", "kit", "released"))
	mock.ExpectQuery(`SELECT \* FROM "manufacturers"`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Bandai"))

	models, total, err := repo.List(context.Background(), repository.ModelFilter{Manufacturer: "bandai"}, repository.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, models, 1)
	require.NotNil(t, models[0].Manufacturer)
	assert.Equal(t, "Bandai", models[0].Manufacturer.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelRepository_ListSeriesFilterMatchesSubstring(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModelRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "models" WHERE models\.series ILIKE`).
		WithArgs("%HG%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM "models" WHERE models\.series ILIKE`).
		WithArgs("%HG%", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manufacturer_id", "name", "series", "category", "status"}).
			AddRow(6, 2, "Zaku II", "HGUC", "kit", "released"))
	mock.ExpectQuery(`SELECT \* FROM "manufacturers"`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Bandai"))

	models, total, err := repo.List(context.Background(), repository.ModelFilter{Series: "HG"}, repository.Page{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, models, 1)
	require.NotNil(t, models[0].Series)
	assert.Equal(t, "HGUC", *models[0].Series)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModelRepository_FindByIDPreloadsManufacturer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModelRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "models" WHERE id = .* ORDER BY "models"\."id" LIMIT`).
		WithArgs(uint(3), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manufacturer_id", "name", "category", "status"}).
			AddRow(3, 2, "RX-78-2", "kit", "released"))
	mock.ExpectQuery(`SELECT \* FROM "manufacturers"`).
		WithArgs(uint(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(2, "Bandai"))

	found, err := repo.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "RX-78-2", found.Name)
	require.NotNil(t, found.Manufacturer)
	assert.Equal(t, "Bandai", found.Manufacturer.Name)
}

func TestModelRepository_FindVariantsOrdersByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModelRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "models" WHERE parent_id = .* ORDER BY name ASC`).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "manufacturer_id", "name", "category", "status"}).
			AddRow(4, 3, 2, "RX-78-2 Ver.Ka", "kit", "released").
			AddRow(5, 3, 2, "RX-78-2 clear", "kit", "announced"))

	variants, err := repo.FindVariants(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "RX-78-2 Ver.Ka", variants[0].Name)
}

func TestModelRepository_CreateUnknownManufacturer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModelRepository(db)

	mock.ExpectQuery(`INSERT INTO "models"`).
		WillReturnError(errors.New(`insert or update on table "models" violates foreign key constraint "fk_models_manufacturer" (SQLSTATE 23503)`))

	err := repo.Create(context.Background(), &entity.Model{ManufacturerID: 99, Name: "ghost", Category: "kit", Status: "released"})
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerNotFound)
}

func TestModelRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModelRepository(db)

	mock.ExpectExec(`UPDATE "models" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &entity.Model{ID: 99, ManufacturerID: 2, Name: "gone", Category: "kit", Status: "released"})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}
