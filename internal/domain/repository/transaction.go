package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside Execute shares one connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// ManufacturerRepo returns a ManufacturerRepository bound to the current transaction.
	ManufacturerRepo() ManufacturerRepository

	// ModelRepo returns a ModelRepository bound to the current transaction.
	ModelRepo() ModelRepository

	// PriceHistoryRepo returns a PriceHistoryRepository bound to the current transaction.
	PriceHistoryRepo() PriceHistoryRepository

	// FavoriteRepo returns the favorites CollectionRepository bound to the current transaction.
	FavoriteRepo() CollectionRepository

	// PurchaseRepo returns the purchases CollectionRepository bound to the current transaction.
	PurchaseRepo() CollectionRepository
}
