// Package ports defines the contracts between the pizzeria core and its
// infrastructure: repositories bound to a unit of work and the event publisher.
package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates
// together with their coverages.
type CourierRepository interface {
	// Add persists a new courier with its coverages.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists availability, binding and newly added coverages.
	// Binding a courier that another transaction bound in the meantime fails
	// with errs.ErrNoCourierAvailable.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAvailableCovering returns the unbound couriers covering postalCode that
	// are effectively available at asOf, with their rows locked for the rest of
	// the transaction. Concurrent callers block on the lock and then skip
	// couriers bound in the meantime.
	GetAvailableCovering(ctx context.Context, postalCode kernel.PostalCode, asOf time.Time) ([]*courier.Courier, error)
}
