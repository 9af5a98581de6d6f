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

// modelService implements the ModelUsecase interface.
type modelService struct {
	txManager        repository.TransactionManager
	modelRepo        repository.ModelRepository
	manufacturerRepo repository.ManufacturerRepository
	priceRepo        repository.PriceHistoryRepository
	logger           *slog.Logger
}

// ModelServiceParams holds dependencies for ModelService, injected by Fx.
type ModelServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ModelRepo        repository.ModelRepository
	ManufacturerRepo repository.ManufacturerRepository
	PriceRepo        repository.PriceHistoryRepository
	Logger           *slog.Logger
}

// NewModelService is the constructor for modelService.
func NewModelService(params ModelServiceParams) usecase.ModelUsecase {
	return &modelService{
		txManager:        params.TxManager,
		modelRepo:        params.ModelRepo,
		manufacturerRepo: params.ManufacturerRepo,
		priceRepo:        params.PriceRepo,
		logger:           params.Logger,
	}
}

func (srv *modelService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of models, name ascending, manufacturer included.
func (srv *modelService) List(ctx context.Context, input usecase.ListModelsInput) (*usecase.PageResult[entity.Model], error) {
	filter := repository.ModelFilter{
		Search:       input.Search,
		Manufacturer: input.Manufacturer,
		Series:       input.Series,
		Category:     input.Category,
		Status:       input.Status,
	}

	models, total, err := srv.modelRepo.List(ctx, filter, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	return usecase.NewPageResult(models, total, input.Page), nil
}

// Get retrieves a single model with its manufacturer.
func (srv *modelService) Get(ctx context.Context, id uint) (*entity.Model, error) {
	model, err := srv.modelRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model")
	}

	return model, nil
}

// ListVariants returns the direct children of a model, name ascending.
// The parent must exist; a dangling ID is a 404, not an empty list.
func (srv *modelService) ListVariants(ctx context.Context, id uint) ([]*entity.Model, error) {
	if _, err := srv.modelRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model")
	}

	variants, err := srv.modelRepo.FindVariants(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find model variants")
	}

	return variants, nil
}

// Create registers a new model after checking its references exist.
func (srv *modelService) Create(ctx context.Context, input usecase.CreateModelInput) (*entity.Model, error) {
	if _, err := srv.manufacturerRepo.FindByID(ctx, input.ManufacturerID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrManufacturerNotFound
		}

		return nil, errors.Wrap(err, "failed to find manufacturer")
	}

	if input.ParentID != nil {
		if _, err := srv.modelRepo.FindByID(ctx, *input.ParentID); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return nil, domainerrors.ErrModelNotFound.WrapMessage("parent model does not exist")
			}

			return nil, errors.Wrap(err, "failed to find parent model")
		}
	}

	model := &entity.Model{
		ManufacturerID: input.ManufacturerID,
		ParentID:       input.ParentID,
		Name:           input.Name,
		Series:         input.Series,
		Category:       input.Category,
		Status:         input.Status,
		ReleaseDate:    input.ReleaseDate,
		Rating:         input.Rating,
		Notes:          input.Notes,
	}

	if err := srv.modelRepo.Create(ctx, model); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Model created", slog.Uint64("modelID", uint64(model.ID)))

	return model, nil
}

// Update applies a partial update inside one transaction: fetch fresh, merge
// non-nil fields, write back.
func (srv *modelService) Update(ctx context.Context, id uint, input usecase.UpdateModelInput) (*entity.Model, error) {
	var updated *entity.Model

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		modelRepo := repoFactory.ModelRepo()

		model, err := modelRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrModelNotFound
			}

			return errors.Wrap(err, "failed to find model")
		}

		if input.ManufacturerID != nil {
			if _, err := repoFactory.ManufacturerRepo().FindByID(ctx, *input.ManufacturerID); err != nil {
				if errors.Is(err, repository.ErrRecordNotFound) {
					return domainerrors.ErrManufacturerNotFound
				}

				return errors.Wrap(err, "failed to find manufacturer")
			}
		}

		mergeModel(model, input)

		if err := modelRepo.Update(ctx, model); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrModelNotFound
			}

			return err
		}

		updated = model

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a model.
func (srv *modelService) Delete(ctx context.Context, id uint) error {
	if err := srv.modelRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrModelNotFound
		}

		return errors.Wrap(err, "failed to delete model")
	}

	srv.log(ctx).Info("Model deleted", slog.Uint64("modelID", uint64(id)))

	return nil
}

// ListPrices returns one page of a model's price history, newest first.
func (srv *modelService) ListPrices(ctx context.Context, modelID uint, page repository.Page) (*usecase.PageResult[entity.PriceHistory], error) {
	if _, err := srv.modelRepo.FindByID(ctx, modelID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model")
	}

	prices, total, err := srv.priceRepo.ListByModel(ctx, modelID, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list price history")
	}

	return usecase.NewPageResult(prices, total, page), nil
}

// AddPrice appends a price point to a model's history.
func (srv *modelService) AddPrice(ctx context.Context, modelID uint, input usecase.AddPriceInput) (*entity.PriceHistory, error) {
	if _, err := srv.modelRepo.FindByID(ctx, modelID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrModelNotFound
		}

		return nil, errors.Wrap(err, "failed to find model")
	}

	price := &entity.PriceHistory{
		ModelID:   modelID,
		Price:     input.Price,
		PriceDate: input.PriceDate,
		Source:    input.Source,
		Notes:     input.Notes,
	}

	if err := srv.priceRepo.Create(ctx, price); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Price point added", slog.Uint64("modelID", uint64(modelID)), slog.Float64("price", price.Price))

	return price, nil
}

// DeletePrice removes one price point from a model's history.
func (srv *modelService) DeletePrice(ctx context.Context, modelID, priceID uint) error {
	if err := srv.priceRepo.Delete(ctx, modelID, priceID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("price point not found")
		}

		return errors.Wrap(err, "failed to delete price point")
	}

	srv.log(ctx).Info("Price point deleted", slog.Uint64("modelID", uint64(modelID)), slog.Uint64("priceID", uint64(priceID)))

	return nil
}

// mergeModel overlays non-nil input fields onto the stored entity.
func mergeModel(model *entity.Model, input usecase.UpdateModelInput) {
	if input.ManufacturerID != nil {
		model.ManufacturerID = *input.ManufacturerID
	}
	if input.ParentID != nil {
		model.ParentID = input.ParentID
	}
	if input.Name != nil {
		model.Name = *input.Name
	}
	if input.Series != nil {
		model.Series = input.Series
	}
	if input.Category != nil {
		model.Category = *input.Category
	}
	if input.Status != nil {
		model.Status = *input.Status
	}
	if input.ReleaseDate != nil {
		model.ReleaseDate = input.ReleaseDate
	}
	if input.Rating != nil {
		model.Rating = input.Rating
	}
	if input.Notes != nil {
		model.Notes = input.Notes
	}
}
