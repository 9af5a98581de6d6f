package impl

import (
	"context"
	"log/slog"
	"testing"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	mockRepo "hangar/internal/mocks/repository"
	"hangar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestManufacturerService(txManager repository.TransactionManager, manufacturerRepo repository.ManufacturerRepository) usecase.ManufacturerUsecase {
	return NewManufacturerService(ManufacturerServiceParams{
		TxManager:        txManager,
		ManufacturerRepo: manufacturerRepo,
		Logger:           slog.Default(),
	})
}

func TestManufacturerService_List_PageArithmetic(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()
	page := repository.Page{Page: 3, PerPage: 20}

	items := []*entity.Manufacturer{{ID: 41, Name: "maker"}}
	mockManufacturerRepo.EXPECT().
		List(ctx, repository.ManufacturerFilter{Search: "mak"}, page).
		Return(items, int64(45), nil)

	result, err := manufacturerService.List(ctx, usecase.ListManufacturersInput{Search: "mak", Page: page})
	require.NoError(t, err)
	assert.EqualValues(t, 45, result.Total)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 20, result.PerPage)
	// ceil(45/20) = 3
	assert.Equal(t, 3, result.TotalPages)
}

func TestManufacturerService_List_NormalizesZeroPage(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()

	mockManufacturerRepo.EXPECT().
		List(ctx, repository.ManufacturerFilter{}, repository.Page{Page: 0, PerPage: 0}).
		Return([]*entity.Manufacturer{}, int64(0), nil)

	result, err := manufacturerService.List(ctx, usecase.ListManufacturersInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.PerPage)
	assert.Equal(t, 0, result.TotalPages)
	assert.NotNil(t, result.Items)
}

func TestManufacturerService_Get_NotFound(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()

	mockManufacturerRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrRecordNotFound)

	manufacturer, err := manufacturerService.Get(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerNotFound)
	assert.Nil(t, manufacturer)
}

func TestManufacturerService_Create(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()

	mockManufacturerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Manufacturer")).
		RunAndReturn(func(_ context.Context, manufacturer *entity.Manufacturer) error {
			manufacturer.ID = 7

			return nil
		})

	manufacturer, err := manufacturerService.Create(ctx, usecase.CreateManufacturerInput{
		Name:    "Tamiya",
		Country: strPtr("Japan"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), manufacturer.ID)
	assert.Equal(t, "Tamiya", manufacturer.Name)
	require.NotNil(t, manufacturer.Country)
	assert.Equal(t, "Japan", *manufacturer.Country)
}

func TestManufacturerService_Create_DuplicateName(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()

	mockManufacturerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Manufacturer")).
		Return(domainerrors.ErrManufacturerAlreadyExists)

	manufacturer, err := manufacturerService.Create(ctx, usecase.CreateManufacturerInput{Name: "Tamiya"})
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerAlreadyExists)
	assert.Nil(t, manufacturer)
}

func TestManufacturerService_Update_MergesOnlySentFields(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()
	stored := &entity.Manufacturer{
		ID:      5,
		Name:    "Tamiya",
		Country: strPtr("Japan"),
		Website: strPtr("https://www.tamiya.com"),
	}

	mockTx.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})
	mockFactory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
	mockManufacturerRepo.EXPECT().
		FindByID(ctx, uint(5)).
		Return(stored, nil)
	mockManufacturerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Manufacturer")).
		Return(nil)

	updated, err := manufacturerService.Update(ctx, 5, usecase.UpdateManufacturerInput{
		Country: strPtr("United States"),
	})
	require.NoError(t, err)
	// The sent field changed, the untouched fields survived.
	assert.Equal(t, "United States", *updated.Country)
	assert.Equal(t, "Tamiya", updated.Name)
	assert.Equal(t, "https://www.tamiya.com", *updated.Website)
}

func TestManufacturerService_Update_NotFound(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()

	mockTx.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})
	mockFactory.EXPECT().ManufacturerRepo().Return(mockManufacturerRepo)
	mockManufacturerRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrRecordNotFound)

	updated, err := manufacturerService.Update(ctx, 99, usecase.UpdateManufacturerInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerNotFound)
	assert.Nil(t, updated)
}

func TestManufacturerService_Delete_NotFound(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockManufacturerRepo := mockRepo.NewMockManufacturerRepository(t)
	manufacturerService := newTestManufacturerService(mockTx, mockManufacturerRepo)

	ctx := context.Background()

	mockManufacturerRepo.EXPECT().
		Delete(ctx, uint(99)).
		Return(repository.ErrRecordNotFound)

	err := manufacturerService.Delete(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerNotFound)
}
