package postgres

import (
	"context"
	"fmt"

	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	"hangar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// collectionRepository implements the repository.CollectionRepository interface
// over one association table. Favorites and purchases share the implementation
// and differ only in the table they target.
type collectionRepository struct {
	db    *gorm.DB
	table string
}

// NewFavoriteRepository is the constructor for the favorites collection repository.
func NewFavoriteRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db:    db,
		table: model.FavoriteModel{}.TableName(),
	}
}

// NewPurchaseRepository is the constructor for the purchases collection repository.
func NewPurchaseRepository(db *gorm.DB) repository.CollectionRepository {
	return &collectionRepository{
		db:    db,
		table: model.PurchaseModel{}.TableName(),
	}
}

type toggleResult struct {
	Removed  int64
	Inserted int64
}

// Toggle flips the (userID, modelID) association in a single statement. The
// DELETE and the guarded INSERT run in one round trip, so concurrent togglers
// are serialized by the unique (user_id, model_id) constraint instead of by
// application-level locking. Both counts zero means this call lost such a
// race: its INSERT was suppressed by ON CONFLICT after another transaction
// inserted first.
func (repo *collectionRepository) Toggle(ctx context.Context, userID, modelID uint, notes *string) (repository.ToggleState, error) {
	// The table name comes from a compile-time constant, never from input.
	query := fmt.Sprintf(`
		WITH removed AS (
			DELETE FROM %[1]s
			WHERE user_id = ? AND model_id = ?
			RETURNING id
		), inserted AS (
			INSERT INTO %[1]s (user_id, model_id, notes, created_at)
			SELECT ?, ?, ?, now()
			WHERE NOT EXISTS (SELECT 1 FROM removed)
			ON CONFLICT (user_id, model_id) DO NOTHING
			RETURNING id
		)
		SELECT
			(SELECT count(*) FROM removed) AS removed,
			(SELECT count(*) FROM inserted) AS inserted
	`, repo.table)

	var result toggleResult
	if err := repo.db.WithContext(ctx).
		Raw(query, userID, modelID, userID, modelID, notes).
		Scan(&result).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return "", domainerrors.ErrModelNotFound
		}

		return "", domainerrors.NewDatabaseExecuteError(err, "failed to toggle collection entry")
	}

	switch {
	case result.Removed > 0:
		return repository.ToggledOff, nil
	case result.Inserted > 0:
		return repository.ToggledOn, nil
	default:
		return "", domainerrors.ErrConflict
	}
}

// ListModels returns one page of the models the user has a live row for,
// name ascending, plus the total count.
func (repo *collectionRepository) ListModels(ctx context.Context, userID uint, page repository.Page) ([]*entity.Model, int64, error) {
	page = page.Normalized()

	query := repo.db.WithContext(ctx).
		Model(&model.ModelModel{}).
		Joins(fmt.Sprintf("JOIN %[1]s ON %[1]s.model_id = models.id", repo.table)).
		Where(fmt.Sprintf("%s.user_id = ?", repo.table), userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count collection models")
	}

	var modelModels []*model.ModelModel
	if err := query.
		Preload("Manufacturer").
		Order("models.name ASC").
		Limit(page.PerPage).
		Offset(page.Offset()).
		Find(&modelModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list collection models")
	}

	models := make([]*entity.Model, 0, len(modelModels))
	for _, modelM := range modelModels {
		models = append(models, toModelDomain(modelM))
	}

	return models, total, nil
}
