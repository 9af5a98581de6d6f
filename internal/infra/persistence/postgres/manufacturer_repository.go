package postgres

import (
	"context"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	"hangar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// manufacturerRepository implements the repository.ManufacturerRepository interface.
type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository is the constructor for manufacturerRepository.
func NewManufacturerRepository(db *gorm.DB) repository.ManufacturerRepository {
	return &manufacturerRepository{
		db: db,
	}
}

// List returns one page of manufacturers matching the filter, name ascending,
// plus the total match count.
func (repo *manufacturerRepository) List(ctx context.Context, filter repository.ManufacturerFilter, page repository.Page) ([]*entity.Manufacturer, int64, error) {
	page = page.Normalized()

	query := repo.db.WithContext(ctx).Model(&model.ManufacturerModel{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Country != "" {
		query = query.Where("country ILIKE ?", filter.Country)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count manufacturers")
	}

	var manufacturerModels []*model.ManufacturerModel
	if err := query.
		Order("name ASC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&manufacturerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list manufacturers")
	}

	manufacturers := make([]*entity.Manufacturer, 0, len(manufacturerModels))
	for _, manufacturerM := range manufacturerModels {
		manufacturers = append(manufacturers, toManufacturerDomain(manufacturerM))
	}

	return manufacturers, total, nil
}

// FindByID retrieves a manufacturer by its unique ID.
func (repo *manufacturerRepository) FindByID(ctx context.Context, id uint) (*entity.Manufacturer, error) {
	var manufacturerM model.ManufacturerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&manufacturerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find manufacturer by ID")
	}

	return toManufacturerDomain(&manufacturerM), nil
}

// Create persists a new manufacturer.
func (repo *manufacturerRepository) Create(ctx context.Context, manufacturer *entity.Manufacturer) error {
	manufacturerM := fromManufacturerDomain(manufacturer)

	if err := repo.db.WithContext(ctx).Create(manufacturerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrManufacturerAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create manufacturer")
	}

	// Update the entity with generated values
	manufacturer.ID = manufacturerM.ID
	manufacturer.CreatedAt = manufacturerM.CreatedAt
	manufacturer.UpdatedAt = manufacturerM.UpdatedAt

	return nil
}

// Update persists the full manufacturer state over the stored row.
func (repo *manufacturerRepository) Update(ctx context.Context, manufacturer *entity.Manufacturer) error {
	manufacturerM := fromManufacturerDomain(manufacturer)

	result := repo.db.WithContext(ctx).
		Model(&model.ManufacturerModel{}).
		Where("id = ?", manufacturer.ID).
		Select("Name", "FullName", "FoundedDate", "ParentCompany", "Country", "Website", "Description").
		Updates(manufacturerM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrManufacturerAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update manufacturer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes a manufacturer by its ID.
func (repo *manufacturerRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ManufacturerModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete manufacturer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toManufacturerDomain converts a GORM ManufacturerModel to a domain Manufacturer entity.
func toManufacturerDomain(data *model.ManufacturerModel) *entity.Manufacturer {
	if data == nil {
		return nil
	}

	return &entity.Manufacturer{
		ID:            data.ID,
		Name:          data.Name,
		FullName:      data.FullName,
		FoundedDate:   data.FoundedDate,
		ParentCompany: data.ParentCompany,
		Country:       data.Country,
		Website:       data.Website,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromManufacturerDomain converts a domain Manufacturer entity to a GORM ManufacturerModel.
func fromManufacturerDomain(data *entity.Manufacturer) *model.ManufacturerModel {
	if data == nil {
		return nil
	}

	return &model.ManufacturerModel{
		ID:            data.ID,
		Name:          data.Name,
		FullName:      data.FullName,
		FoundedDate:   data.FoundedDate,
		ParentCompany: data.ParentCompany,
		Country:       data.Country,
		Website:       data.Website,
		Description:   data.Description,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
