package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// EventPublisher delivers order events to other systems. It is called after
// a successful commit only.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
