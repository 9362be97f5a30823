// Package commands contains the use cases that change state.
// Every handler validates its command, opens a unit of work, applies the
// domain rules to aggregates loaded within it and commits once.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to what a handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	DiscountCodeRepoFactory interface {
		DiscountCodeRepository() ports.DiscountCodeRepository
	}

	// CatalogUoW is used by the menu maintenance commands.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CourierUoW is used by commands that only modify couriers.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	DiscountCodeUoW interface {
		TxManager
		DiscountCodeRepoFactory
	}

	DiscountCodeUoWFactory interface {
		Create() DiscountCodeUoW
	}

	// DispatchUoW coordinates orders and couriers: assignment, cancellation
	// and status updates.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		CustomerRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// UoW spans every repository. Placing an order needs all of them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   customers := uow.CustomerRepository()
	//   orders := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CustomerRepoFactory
		CatalogRepoFactory
		DiscountCodeRepoFactory
		OrderRepoFactory
		CourierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
