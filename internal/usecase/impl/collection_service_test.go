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
	"github.com/stretchr/testify/require"
)

type collectionServiceMocks struct {
	modelRepo    *mockRepo.MockModelRepository
	favoriteRepo *mockRepo.MockCollectionRepository
	purchaseRepo *mockRepo.MockCollectionRepository
}

func newTestCollectionService(t *testing.T) (usecase.CollectionUsecase, collectionServiceMocks) {
	m := collectionServiceMocks{
		modelRepo:    mockRepo.NewMockModelRepository(t),
		favoriteRepo: mockRepo.NewMockCollectionRepository(t),
		purchaseRepo: mockRepo.NewMockCollectionRepository(t),
	}

	collectionService := NewCollectionService(CollectionServiceParams{
		ModelRepo:    m.modelRepo,
		FavoriteRepo: m.favoriteRepo,
		PurchaseRepo: m.purchaseRepo,
		Logger:       slog.Default(),
	})

	return collectionService, m
}

func TestCollectionService_ToggleFavorite_Parity(t *testing.T) {
	collectionService, m := newTestCollectionService(t)
	ctx := context.Background()

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil).
		Twice()
	m.favoriteRepo.EXPECT().
		Toggle(ctx, uint(1), uint(4), (*string)(nil)).
		Return(repository.ToggledOn, nil).
		Once()
	m.favoriteRepo.EXPECT().
		Toggle(ctx, uint(1), uint(4), (*string)(nil)).
		Return(repository.ToggledOff, nil).
		Once()

	first, err := collectionService.ToggleFavorite(ctx, 1, 4, usecase.ToggleInput{})
	require.NoError(t, err)
	assert.Equal(t, repository.ToggledOn, first)

	second, err := collectionService.ToggleFavorite(ctx, 1, 4, usecase.ToggleInput{})
	require.NoError(t, err)
	assert.Equal(t, repository.ToggledOff, second)
}

func TestCollectionService_TogglePurchase_CarriesNotes(t *testing.T) {
	collectionService, m := newTestCollectionService(t)
	ctx := context.Background()
	notes := "birthday gift"

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil)
	m.purchaseRepo.EXPECT().
		Toggle(ctx, uint(1), uint(4), &notes).
		Return(repository.ToggledOn, nil)

	state, err := collectionService.TogglePurchase(ctx, 1, 4, usecase.ToggleInput{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, repository.ToggledOn, state)
}

func TestCollectionService_Toggle_MissingModel(t *testing.T) {
	collectionService, m := newTestCollectionService(t)
	ctx := context.Background()

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrRecordNotFound)

	state, err := collectionService.ToggleFavorite(ctx, 1, 99, usecase.ToggleInput{})
	assert.ErrorIs(t, err, domainerrors.ErrModelNotFound)
	assert.Empty(t, state)
}

func TestCollectionService_Toggle_LostRace(t *testing.T) {
	collectionService, m := newTestCollectionService(t)
	ctx := context.Background()

	m.modelRepo.EXPECT().
		FindByID(ctx, uint(4)).
		Return(&entity.Model{ID: 4, Name: "F-14 Tomcat"}, nil)
	m.favoriteRepo.EXPECT().
		Toggle(ctx, uint(1), uint(4), (*string)(nil)).
		Return(repository.ToggleState(""), domainerrors.ErrConflict)

	state, err := collectionService.ToggleFavorite(ctx, 1, 4, usecase.ToggleInput{})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Empty(t, state)
}

func TestCollectionService_ListFavorites(t *testing.T) {
	collectionService, m := newTestCollectionService(t)
	ctx := context.Background()
	page := repository.Page{Page: 1, PerPage: 20}

	m.favoriteRepo.EXPECT().
		ListModels(ctx, uint(1), page).
		Return([]*entity.Model{{ID: 4, Name: "F-14 Tomcat"}}, int64(1), nil)

	result, err := collectionService.ListFavorites(ctx, 1, page)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "F-14 Tomcat", result.Items[0].Name)
}

func TestCollectionService_ListPurchases_EmptyPageStaysEmptyList(t *testing.T) {
	collectionService, m := newTestCollectionService(t)
	ctx := context.Background()
	page := repository.Page{Page: 2, PerPage: 20}

	m.purchaseRepo.EXPECT().
		ListModels(ctx, uint(1), page).
		Return(nil, int64(0), nil)

	result, err := collectionService.ListPurchases(ctx, 1, page)
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalPages)
}
