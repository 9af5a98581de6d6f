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

// modelRepository implements the repository.ModelRepository interface.
type modelRepository struct {
	db *gorm.DB
}

// NewModelRepository is the constructor for modelRepository.
func NewModelRepository(db *gorm.DB) repository.ModelRepository {
	return &modelRepository{
		db: db,
	}
}

// List returns one page of models matching the filter, name ascending, plus
// the total match count. Each row is returned with its manufacturer preloaded.
func (repo *modelRepository) List(ctx context.Context, filter repository.ModelFilter, page repository.Page) ([]*entity.Model, int64, error) {
	page = page.Normalized()

	query := repo.db.WithContext(ctx).Model(&model.ModelModel{})
	if filter.Search != "" {
		query = query.Where("models.name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.Manufacturer != "" {
		query = query.
			Joins("JOIN manufacturers ON manufacturers.id = models.manufacturer_id").
			Where("manufacturers.name ILIKE ?", "%"+filter.Manufacturer+"%")
	}
	if filter.Series != "" {
		query = query.Where("models.series ILIKE ?", "%"+filter.Series+"%")
	}
	if filter.Category != "" {
		query = query.Where("models.category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("models.status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count models")
	}

	var modelModels []*model.ModelModel
	if err := query.
		Preload("Manufacturer").
		Order("models.name ASC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&modelModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list models")
	}

	models := make([]*entity.Model, 0, len(modelModels))
	for _, modelM := range modelModels {
		models = append(models, toModelDomain(modelM))
	}

	return models, total, nil
}

// FindByID retrieves a model by its unique ID with its manufacturer preloaded.
func (repo *modelRepository) FindByID(ctx context.Context, id uint) (*entity.Model, error) {
	var modelM model.ModelModel

	if err := repo.db.WithContext(ctx).
		Preload("Manufacturer").
		Where("id = ?", id).
		First(&modelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find model by ID")
	}

	return toModelDomain(&modelM), nil
}

// FindVariants returns the direct children of a model, name ascending.
func (repo *modelRepository) FindVariants(ctx context.Context, parentID uint) ([]*entity.Model, error) {
	var modelModels []*model.ModelModel

	if err := repo.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("name ASC").
		Find(&modelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find model variants")
	}

	models := make([]*entity.Model, 0, len(modelModels))
	for _, modelM := range modelModels {
		models = append(models, toModelDomain(modelM))
	}

	return models, nil
}

// Create persists a new model.
func (repo *modelRepository) Create(ctx context.Context, m *entity.Model) error {
	modelM := fromModelDomain(m)

	if err := repo.db.WithContext(ctx).Omit("Manufacturer").Create(modelM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrManufacturerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required model information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create model")
	}

	// Update the entity with generated values
	m.ID = modelM.ID
	m.CreatedAt = modelM.CreatedAt
	m.UpdatedAt = modelM.UpdatedAt

	return nil
}

// Update persists the full model state over the stored row.
func (repo *modelRepository) Update(ctx context.Context, m *entity.Model) error {
	modelM := fromModelDomain(m)

	result := repo.db.WithContext(ctx).
		Model(&model.ModelModel{}).
		Where("id = ?", m.ID).
		Select("ParentID", "ManufacturerID", "Name", "Series", "Category", "Status", "ReleaseDate", "Rating", "Notes").
		Updates(modelM)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrManufacturerNotFound
		}

		return errors.Wrap(result.Error, "failed to update model")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes a model by its ID.
func (repo *modelRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ModelModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete model")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toModelDomain converts a GORM ModelModel to a domain Model entity.
func toModelDomain(data *model.ModelModel) *entity.Model {
	if data == nil {
		return nil
	}

	return &entity.Model{
		ID:             data.ID,
		ParentID:       data.ParentID,
		ManufacturerID: data.ManufacturerID,
		Name:           data.Name,
		Series:         data.Series,
		Category:       data.Category,
		Status:         data.Status,
		ReleaseDate:    data.ReleaseDate,
		Rating:         data.Rating,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Manufacturer:   toManufacturerDomain(data.Manufacturer),
	}
}

// fromModelDomain converts a domain Model entity to a GORM ModelModel.
func fromModelDomain(data *entity.Model) *model.ModelModel {
	if data == nil {
		return nil
	}

	return &model.ModelModel{
		ID:             data.ID,
		ParentID:       data.ParentID,
		ManufacturerID: data.ManufacturerID,
		Name:           data.Name,
		Series:         data.Series,
		Category:       data.Category,
		Status:         data.Status,
		ReleaseDate:    data.ReleaseDate,
		Rating:         data.Rating,
		Notes:          data.Notes,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
