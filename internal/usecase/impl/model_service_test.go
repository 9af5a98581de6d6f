package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	mockRepo "hangar/internal/mocks/repository"
	"hangar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type modelServiceMocks struct {
	tx               *mockRepo.MockTransactionManager
	modelRepo        *mockRepo.MockModelRepository
	manufacturerRepo *mockRepo.MockManufacturerRepository
	priceRepo        *mockRepo.MockPriceHistoryRepository
}

func newTestModelService(t *testing.T) (usecase.ModelUsecase, modelServiceMocks) {
	m := modelServiceMocks{
		tx:               mockRepo.NewMockTransactionManager(t),
		modelRepo:        mockRepo.NewMockModelRepository(t),
		manufacturerRepo: mockRepo.NewMockManufacturerRepository(t),
		priceRepo:        mockRepo.NewMockPriceHistoryRepository(t),
	}

	modelService := NewModelService(ModelServiceParams{
		TxManager:        m.tx,
		ModelRepo:        m.modelRepo,
		ManufacturerRepo: m.manufacturerRepo,
		PriceRepo:        m.priceRepo,
		Logger:           slog.Default(),
	})

	return modelService, m
}

func TestModelService_Create_UnknownManufacturer(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	m.manufacturerRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrRecordNotFound)

	model, err := modelService.Create(ctx, usecase.CreateModelInput{
		ManufacturerID: 99,
		Name:           "F-14 Tomcat",
		Category:       "aircraft",
		Status:         "wishlist",
	})
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerNotFound)
	assert.Nil(t, model)
}

func TestModelService_Create_WithParentVariant(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	m.manufacturerRepo.EXPECT().
		FindByID(ctx, uint(2)).
		Return(&entity.Manufacturer{ID: 2, Name: "Tamiya"}, nil)
	parentID := uint(4)
	m.modelRepo.EXPECT().
		FindByID(ctx, parentID).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil)
	m.modelRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Model")).
		RunAndReturn(func(_ context.Context, model *entity.Model) error {
			model.ID = 9

			return nil
		})

	model, err := modelService.Create(ctx, usecase.CreateModelInput{
		ManufacturerID: 2,
		ParentID:       &parentID,
		Name:           "F-14D Super Tomcat",
		Category:       "aircraft",
		Status:         "wishlist",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), model.ID)
	require.NotNil(t, model.ParentID)
	assert.Equal(t, uint(4), *model.ParentID)
}

func TestModelService_ListVariants_MissingParent(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrRecordNotFound)

	variants, err := modelService.ListVariants(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrModelNotFound)
	assert.Nil(t, variants)
}

func TestModelService_ListVariants(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil)
	m.modelRepo.EXPECT().
		FindVariants(ctx, uint(4)).
		Return([]*entity.Model{{ID: 9, Name: "F-14D Super Tomcat"}}, nil)

	variants, err := modelService.ListVariants(ctx, 4)
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, uint(9), variants[0].ID)
}

func TestModelService_Update_MergesOnlySentFields(t *testing.T) {
	modelService, m := newTestModelService(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	ctx := context.Background()

	rating := float32(8.5)
	stored := &entity.Model{
		ID:             4,
		ManufacturerID: 2,
		Name:           "F-14 Tomcat",
		Category:       "aircraft",
		Status:         "wishlist",
		Rating:         &rating,
	}

	m.tx.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})
	mockFactory.EXPECT().ModelRepo().Return(m.modelRepo)
	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(stored, nil)
	m.modelRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Model")).
		Return(nil)

	status := "owned"
	updated, err := modelService.Update(ctx, 4, usecase.UpdateModelInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "owned", updated.Status)
	// Untouched fields survive the merge.
	assert.Equal(t, "F-14 Tomcat", updated.Name)
	assert.Equal(t, uint(2), updated.ManufacturerID)
	require.NotNil(t, updated.Rating)
	assert.InDelta(t, 8.5, float64(*updated.Rating), 0.001)
}

func TestModelService_Update_ChecksNewManufacturer(t *testing.T) {
	modelService, m := newTestModelService(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	ctx := context.Background()

	m.tx.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})
	mockFactory.EXPECT().ModelRepo().Return(m.modelRepo)
	mockFactory.EXPECT().ManufacturerRepo().Return(m.manufacturerRepo)
	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, ManufacturerID: 2, Name: "F-14 Tomcat"}, nil)
	m.manufacturerRepo.EXPECT().
		FindByID(ctx, uint(77)).
		Return(nil, repository.ErrRecordNotFound)

	newManufacturer := uint(77)
	updated, err := modelService.Update(ctx, 4, usecase.UpdateModelInput{ManufacturerID: &newManufacturer})
	assert.ErrorIs(t, err, domainerrors.ErrManufacturerNotFound)
	assert.Nil(t, updated)
}

func TestModelService_ListPrices(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()
	page := repository.Page{Page: 1, PerPage: 10}

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil)
	m.priceRepo.EXPECT().
		ListByModel(ctx, uint(4), page).
		Return([]*entity.PriceHistory{{ID: 1, ModelID: 4, Price: 54.99}}, int64(1), nil)

	result, err := modelService.ListPrices(ctx, 4, page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	require.Len(t, result.Items, 1)
	assert.InDelta(t, 54.99, result.Items[0].Price, 0.001)
}

func TestModelService_AddPrice_MissingModel(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrRecordNotFound)

	price, err := modelService.AddPrice(ctx, 99, usecase.AddPriceInput{
		Price:     54.99,
		PriceDate: time.Now(),
		Source:    "hobbylink",
	})
	assert.ErrorIs(t, err, domainerrors.ErrModelNotFound)
	assert.Nil(t, price)
}

func TestModelService_AddPrice(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()
	priceDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil)
	m.priceRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PriceHistory")).
		RunAndReturn(func(_ context.Context, price *entity.PriceHistory) error {
			price.ID = 11

			return nil
		})

	price, err := modelService.AddPrice(ctx, 4, usecase.AddPriceInput{
		Price:     54.99,
		PriceDate: priceDate,
		Source:    "hobbylink",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(11), price.ID)
	assert.Equal(t, uint(4), price.ModelID)
	assert.Equal(t, priceDate, price.PriceDate)
}

func TestModelService_DeletePrice(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	m.priceRepo.EXPECT().
		Delete(ctx, uint(4), uint(11)).
		Return(nil)

	err := modelService.DeletePrice(ctx, 4, 11)
	require.NoError(t, err)
}

func TestModelService_DeletePrice_WrongModelScope(t *testing.T) {
	modelService, m := newTestModelService(t)
	ctx := context.Background()

	// Price 11 belongs to another model, so the scoped delete misses.
	m.priceRepo.EXPECT().
		Delete(ctx, uint(5), uint(11)).
		Return(repository.ErrRecordNotFound)

	err := modelService.DeletePrice(ctx, 5, 11)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}
