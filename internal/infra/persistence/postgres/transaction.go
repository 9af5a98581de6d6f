// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"hangar/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// UserRepo creates a user repository instance bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// ManufacturerRepo creates a manufacturer repository instance bound to the transaction.
func (f *gormRepositoryFactory) ManufacturerRepo() repository.ManufacturerRepository {
	return NewManufacturerRepository(f.tx)
}

// ModelRepo creates a model repository instance bound to the transaction.
func (f *gormRepositoryFactory) ModelRepo() repository.ModelRepository {
	return NewModelRepository(f.tx)
}

// PriceHistoryRepo creates a price history repository instance bound to the transaction.
func (f *gormRepositoryFactory) PriceHistoryRepo() repository.PriceHistoryRepository {
	return NewPriceHistoryRepository(f.tx)
}

// FavoriteRepo creates the favorites collection repository bound to the transaction.
func (f *gormRepositoryFactory) FavoriteRepo() repository.CollectionRepository {
	return NewFavoriteRepository(f.tx)
}

// PurchaseRepo creates the purchases collection repository bound to the transaction.
func (f *gormRepositoryFactory) PurchaseRepo() repository.CollectionRepository {
	return NewPurchaseRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic, then re-panic so upper layers can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error; the rollback failure rides along.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
