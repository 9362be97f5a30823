package order

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
)

// StatusChanged is raised whenever an order enters a new status, including
// its placement (From is Unknown then).
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	CourierID  *kernel.UUID
	From       Status
	To         Status
	At         time.Time
}
