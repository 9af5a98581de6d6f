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

// priceHistoryRepository implements the repository.PriceHistoryRepository interface.
type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository is the constructor for priceHistoryRepository.
func NewPriceHistoryRepository(db *gorm.DB) repository.PriceHistoryRepository {
	return &priceHistoryRepository{
		db: db,
	}
}

// ListByModel returns one page of price points for a model, newest first,
// plus the total count.
func (repo *priceHistoryRepository) ListByModel(ctx context.Context, modelID uint, page repository.Page) ([]*entity.PriceHistory, int64, error) {
	page = page.Normalized()

	query := repo.db.WithContext(ctx).
		Model(&model.PriceHistoryModel{}).
		Where("model_id = ?", modelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count price history")
	}

	var priceModels []*model.PriceHistoryModel
	if err := query.
		Order("price_date DESC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&priceModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list price history")
	}

	prices := make([]*entity.PriceHistory, 0, len(priceModels))
	for _, priceM := range priceModels {
		prices = append(prices, toPriceHistoryDomain(priceM))
	}

	return prices, total, nil
}

// Create persists a new price point.
func (repo *priceHistoryRepository) Create(ctx context.Context, p *entity.PriceHistory) error {
	priceM := fromPriceHistoryDomain(p)

	if err := repo.db.WithContext(ctx).Create(priceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrModelNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create price point")
	}

	// Update the entity with generated values
	p.ID = priceM.ID
	p.CreatedAt = priceM.CreatedAt

	return nil
}

// Delete removes a price point by its ID, scoped to its model.
func (repo *priceHistoryRepository) Delete(ctx context.Context, modelID, id uint) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND model_id = ?", id, modelID).
		Delete(&model.PriceHistoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete price point")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPriceHistoryDomain converts a GORM PriceHistoryModel to a domain PriceHistory entity.
func toPriceHistoryDomain(data *model.PriceHistoryModel) *entity.PriceHistory {
	if data == nil {
		return nil
	}

	return &entity.PriceHistory{
		ID:        data.ID,
		ModelID:   data.ModelID,
		Price:     data.Price,
		PriceDate: data.PriceDate,
		Source:    data.Source,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}

// fromPriceHistoryDomain converts a domain PriceHistory entity to a GORM PriceHistoryModel.
func fromPriceHistoryDomain(data *entity.PriceHistory) *model.PriceHistoryModel {
	if data == nil {
		return nil
	}

	return &model.PriceHistoryModel{
		ID:        data.ID,
		ModelID:   data.ModelID,
		Price:     data.Price,
		PriceDate: data.PriceDate,
		Source:    data.Source,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}
