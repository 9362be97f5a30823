package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetCancellationStatusQueryIsNotConstructed = errors.New(
	"GetCancellationStatusQuery must be created via NewGetCancellationStatusQuery constructor",
)

// GetCancellationStatusQuery asks whether the customer may still cancel an order.
type GetCancellationStatusQuery struct {
	orderID kernel.UUID
	asOf    time.Time

	guard guard.ConstructorGuard
}

func NewGetCancellationStatusQuery(orderID kernel.UUID, asOf time.Time) (GetCancellationStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetCancellationStatusQuery{}, err
	}
	return GetCancellationStatusQuery{orderID: orderID, asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCancellationStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetCancellationStatusQueryIsNotConstructed)
}

func (q GetCancellationStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetCancellationStatusQuery) AsOf() time.Time {
	return q.asOf
}

// GetCancellationStatusQueryResponse reports the customer's view. Staff may
// cancel past the deadline as long as the status allows it.
type GetCancellationStatusQueryResponse struct {
	OrderID   kernel.UUID
	CanCancel bool
	Deadline  time.Time
	Status    order.Status
}
