package order

import (
	"fmt"
	"slices"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Preparing ──> OutForDelivery ──> Delivered
//	   │            │  ▲            │
//	   │            │  └────────────┘ (manual revert)
//	   │            ├─────────────────────────> Delivered
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Moving an order into the state it
// already occupies is always accepted as a no-op.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	// Pending is the state of a freshly placed order.
	Pending
	// Preparing means the kitchen works on the order; a courier is usually bound.
	Preparing
	// OutForDelivery means the courier left with the order.
	OutForDelivery
	// Delivered is terminal.
	Delivered
	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

func getAllowedTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal states have no outgoing transitions
	return map[Status][]Status{
		Pending:        {Preparing, Cancelled},
		Preparing:      {OutForDelivery, Delivered, Cancelled},
		OutForDelivery: {Delivered, Preparing},
	}
}

// ParseStatus accepts the display names ("Out for Delivery") as well as the
// compact form without spaces, case-insensitively.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.ToLower(strings.ReplaceAll(name, " ", "")) == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether a courier bound to the order is busy with it.
func (s Status) IsActive() bool {
	return s == Preparing || s == OutForDelivery
}

// CheckTransition validates a move from s to target. Staying in the same state
// is accepted; leaving a terminal state and every move not drawn in the diagram
// fail with errs.ErrInvalidTransition.
func (s Status) CheckTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s == target {
		return nil
	}
	if s.IsTerminal() {
		return errs.NewInvalidTransitionError(fmt.Sprintf("order is already %s and cannot become %s", s, target))
	}
	if !slices.Contains(getAllowedTransitions()[s], target) {
		return errs.NewInvalidTransitionError(fmt.Sprintf("%s -> %s is not allowed", s, target))
	}
	return nil
}
