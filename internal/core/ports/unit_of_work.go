package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the events
	// raised by the orders stored within it.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops collected events.
	Rollback(ctx context.Context) error

	// Repositories are bound to the transaction started by Begin.
	CustomerRepository() CustomerRepository
	CatalogRepository() CatalogRepository
	DiscountCodeRepository() DiscountCodeRepository
	OrderRepository() OrderRepository
	CourierRepository() CourierRepository
}
