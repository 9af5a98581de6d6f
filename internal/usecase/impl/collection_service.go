package impl

import (
	"context"
	"log/slog"

	deliverycontext "hangar/internal/delivery/context"
	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	"hangar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// collectionService implements the CollectionUsecase interface. Favorites and
// purchases run through the same code paths against different repositories.
type collectionService struct {
	modelRepo    repository.ModelRepository
	favoriteRepo repository.CollectionRepository
	purchaseRepo repository.CollectionRepository
	logger       *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	ModelRepo    repository.ModelRepository
	FavoriteRepo repository.CollectionRepository `name:"favorite"`
	PurchaseRepo repository.CollectionRepository `name:"purchase"`
	Logger       *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		modelRepo:    params.ModelRepo,
		favoriteRepo: params.FavoriteRepo,
		purchaseRepo: params.PurchaseRepo,
		logger:       params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite flips the favorite state of a model for a user.
func (srv *collectionService) ToggleFavorite(ctx context.Context, userID, modelID uint, input usecase.ToggleInput) (repository.ToggleState, error) {
	return srv.toggle(ctx, srv.favoriteRepo, "favorite", userID, modelID, input)
}

// TogglePurchase flips the purchased state of a model for a user.
func (srv *collectionService) TogglePurchase(ctx context.Context, userID, modelID uint, input usecase.ToggleInput) (repository.ToggleState, error) {
	return srv.toggle(ctx, srv.purchaseRepo, "purchase", userID, modelID, input)
}

func (srv *collectionService) toggle(ctx context.Context, repo repository.CollectionRepository, relation string, userID, modelID uint, input usecase.ToggleInput) (repository.ToggleState, error) {
	if _, err := srv.modelRepo.FindByID(ctx, modelID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return "", domainerrors.ErrModelNotFound
		}

		return "", errors.Wrap(err, "failed to find model")
	}

	state, err := repo.Toggle(ctx, userID, modelID, input.Notes)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Collection toggled",
		slog.String("relation", relation),
		slog.Uint64("userID", uint64(userID)),
		slog.Uint64("modelID", uint64(modelID)),
		slog.String("state", string(state)),
	)

	return state, nil
}

// ListFavorites returns one page of the user's favorited models.
func (srv *collectionService) ListFavorites(ctx context.Context, userID uint, page repository.Page) (*usecase.PageResult[entity.Model], error) {
	return srv.listModels(ctx, srv.favoriteRepo, userID, page)
}

// ListPurchases returns one page of the user's purchased models.
func (srv *collectionService) ListPurchases(ctx context.Context, userID uint, page repository.Page) (*usecase.PageResult[entity.Model], error) {
	return srv.listModels(ctx, srv.purchaseRepo, userID, page)
}

func (srv *collectionService) listModels(ctx context.Context, repo repository.CollectionRepository, userID uint, page repository.Page) (*usecase.PageResult[entity.Model], error) {
	models, total, err := repo.ListModels(ctx, userID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection models")
	}

	return usecase.NewPageResult(models, total, page), nil
}
