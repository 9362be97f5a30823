package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Order lines are written once with the order and never updated.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, courier, delivery times and notes.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetOldestPendingWithoutCourier locks and returns the oldest Pending order
	// that has no courier yet. Rows locked by other transactions are skipped.
	GetOldestPendingWithoutCourier(ctx context.Context) (*order.Order, error)

	// AddCancellation appends a cancellation audit entry.
	AddCancellation(ctx context.Context, cancellation order.Cancellation) error
}
