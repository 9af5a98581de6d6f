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

// manufacturerService implements the ManufacturerUsecase interface.
type manufacturerService struct {
	txManager        repository.TransactionManager
	manufacturerRepo repository.ManufacturerRepository
	logger           *slog.Logger
}

// ManufacturerServiceParams holds dependencies for ManufacturerService, injected by Fx.
type ManufacturerServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	ManufacturerRepo repository.ManufacturerRepository
	Logger           *slog.Logger
}

// NewManufacturerService is the constructor for manufacturerService.
func NewManufacturerService(params ManufacturerServiceParams) usecase.ManufacturerUsecase {
	return &manufacturerService{
		txManager:        params.TxManager,
		manufacturerRepo: params.ManufacturerRepo,
		logger:           params.Logger,
	}
}

func (srv *manufacturerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of manufacturers, name ascending.
func (srv *manufacturerService) List(ctx context.Context, input usecase.ListManufacturersInput) (*usecase.PageResult[entity.Manufacturer], error) {
	filter := repository.ManufacturerFilter{
		Search:  input.Search,
		Country: input.Country,
	}

	manufacturers, total, err := srv.manufacturerRepo.List(ctx, filter, input.Page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list manufacturers")
	}

	return usecase.NewPageResult(manufacturers, total, input.Page), nil
}

// Get retrieves a single manufacturer.
func (srv *manufacturerService) Get(ctx context.Context, id uint) (*entity.Manufacturer, error) {
	manufacturer, err := srv.manufacturerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, domainerrors.ErrManufacturerNotFound
		}

		return nil, errors.Wrap(err, "failed to find manufacturer")
	}

	return manufacturer, nil
}

// Create registers a new manufacturer.
func (srv *manufacturerService) Create(ctx context.Context, input usecase.CreateManufacturerInput) (*entity.Manufacturer, error) {
	manufacturer := &entity.Manufacturer{
		Name:          input.Name,
		FullName:      input.FullName,
		FoundedDate:   input.FoundedDate,
		ParentCompany: input.ParentCompany,
		Country:       input.Country,
		Website:       input.Website,
		Description:   input.Description,
	}

	if err := srv.manufacturerRepo.Create(ctx, manufacturer); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Manufacturer created", slog.Uint64("manufacturerID", uint64(manufacturer.ID)))

	return manufacturer, nil
}

// Update applies a partial update inside one transaction: the stored row is
// fetched fresh, non-nil input fields are merged over it, and the merged
// state is written back.
func (srv *manufacturerService) Update(ctx context.Context, id uint, input usecase.UpdateManufacturerInput) (*entity.Manufacturer, error) {
	var updated *entity.Manufacturer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		manufacturerRepo := repoFactory.ManufacturerRepo()

		manufacturer, err := manufacturerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrManufacturerNotFound
			}

			return errors.Wrap(err, "failed to find manufacturer")
		}

		mergeManufacturer(manufacturer, input)

		if err := manufacturerRepo.Update(ctx, manufacturer); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return domainerrors.ErrManufacturerNotFound
			}

			return err
		}

		updated = manufacturer

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a manufacturer.
func (srv *manufacturerService) Delete(ctx context.Context, id uint) error {
	if err := srv.manufacturerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return domainerrors.ErrManufacturerNotFound
		}

		return errors.Wrap(err, "failed to delete manufacturer")
	}

	srv.log(ctx).Info("Manufacturer deleted", slog.Uint64("manufacturerID", uint64(id)))

	return nil
}

// mergeManufacturer overlays non-nil input fields onto the stored entity.
func mergeManufacturer(manufacturer *entity.Manufacturer, input usecase.UpdateManufacturerInput) {
	if input.Name != nil {
		manufacturer.Name = *input.Name
	}
	if input.FullName != nil {
		manufacturer.FullName = input.FullName
	}
	if input.FoundedDate != nil {
		manufacturer.FoundedDate = input.FoundedDate
	}
	if input.ParentCompany != nil {
		manufacturer.ParentCompany = input.ParentCompany
	}
	if input.Country != nil {
		manufacturer.Country = input.Country
	}
	if input.Website != nil {
		manufacturer.Website = input.Website
	}
	if input.Description != nil {
		manufacturer.Description = input.Description
	}
}
