package order

import (
	"fmt"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// CancellationWindow is how long after creation a customer may still cancel.
const CancellationWindow = 5 * time.Minute

// Actor is who requested a cancellation.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorStaff    Actor = "staff"
)

func (a Actor) Validate() error {
	if a != ActorCustomer && a != ActorStaff {
		return errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("%q is not customer or staff", string(a)))
	}
	return nil
}

// Cancellation is the audit entry appended when an order is cancelled. It is never updated.
type Cancellation struct {
	id      kernel.UUID
	orderID kernel.UUID
	actor   Actor
	at      time.Time
	reason  string
}

func NewCancellation(id, orderID kernel.UUID, actor Actor, at time.Time, reason string) (Cancellation, error) {
	if err := id.Validate(); err != nil {
		return Cancellation{}, err
	}
	if err := orderID.Validate(); err != nil {
		return Cancellation{}, err
	}
	if err := actor.Validate(); err != nil {
		return Cancellation{}, err
	}
	return Cancellation{id: id, orderID: orderID, actor: actor, at: at, reason: strings.TrimSpace(reason)}, nil
}

func (c Cancellation) ID() kernel.UUID {
	return c.id
}

func (c Cancellation) OrderID() kernel.UUID {
	return c.orderID
}

func (c Cancellation) Actor() Actor {
	return c.actor
}

func (c Cancellation) At() time.Time {
	return c.at
}

func (c Cancellation) Reason() string {
	return c.reason
}

// CancellationDeadline is the last instant at which a customer may cancel.
func CancellationDeadline(createdAt time.Time) time.Time {
	return createdAt.Add(CancellationWindow)
}

// ValidateCancellationWindow lets staff through unconditionally and fails customers
// with errs.ErrWindowExpired once asOf is past the deadline. The deadline itself is inside the window.
func ValidateCancellationWindow(createdAt time.Time, actor Actor, asOf time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor == ActorStaff {
		return nil
	}
	deadline := CancellationDeadline(createdAt)
	if asOf.After(deadline) {
		return errs.NewWindowExpiredError(fmt.Sprintf(
			"orders can only be cancelled by the customer until %s", deadline.Format(time.RFC3339)))
	}
	return nil
}
