package services

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// Candidate is a courier covering the requested postal code.
type Candidate struct {
	Courier              *courier.Courier
	Coverage             *courier.Coverage
	EffectivelyAvailable bool
}

// Assignment is the outcome of a successful dispatch.
type Assignment struct {
	Courier           *courier.Courier
	Coverage          *courier.Coverage
	EstimatedDelivery time.Time
}

// CourierDispatcher picks the courier for an order.
//
// Ranking puts effectively available couriers first, then the fastest
// coverage ETA, then the lowest courier id so that equal candidates are
// always ordered the same way. Dispatch binds the first candidate; callers
// are expected to hand it couriers read under a row lock so that two
// concurrent dispatches cannot pick the same courier.
//
// Example usage:
//
//	dispatcher := services.NewCourierDispatcher()
//	assignment, err := dispatcher.Dispatch(o, couriers, postalCode, now)
//	if errors.Is(err, errs.ErrNoCourierAvailable) {
//	    // the order stays Pending without a courier
//	}
type CourierDispatcher struct{}

func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// RankCouriers returns the effectively available couriers covering postalCode, best first.
func (CourierDispatcher) RankCouriers(couriers []*courier.Courier, postalCode kernel.PostalCode, asOf time.Time) []Candidate {
	candidates := make([]Candidate, 0, len(couriers))
	for _, c := range couriers {
		if c.Validate() != nil {
			continue
		}
		coverage, err := c.CoverageFor(postalCode)
		if err != nil {
			continue
		}
		available := c.IsEffectivelyAvailable(asOf)
		if !available {
			continue
		}
		candidates = append(candidates, Candidate{Courier: c, Coverage: coverage, EffectivelyAvailable: available})
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if a.EffectivelyAvailable != b.EffectivelyAvailable {
			if a.EffectivelyAvailable {
				return -1
			}
			return 1
		}
		if byETA := cmp.Compare(a.Coverage.ETAMinutes(), b.Coverage.ETAMinutes()); byETA != 0 {
			return byETA
		}
		switch {
		case a.Courier.ID().Less(b.Courier.ID()):
			return -1
		case b.Courier.ID().Less(a.Courier.ID()):
			return 1
		}
		return 0
	})
	return candidates
}

// Dispatch binds the best ranked courier to o and sets its estimated delivery
// time. It fails with errs.ErrNoCourierAvailable when nobody qualifies.
func (d CourierDispatcher) Dispatch(
	o *order.Order,
	couriers []*courier.Courier,
	postalCode kernel.PostalCode,
	asOf time.Time,
) (*Assignment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := postalCode.Validate(); err != nil {
		return nil, err
	}

	candidates := d.RankCouriers(couriers, postalCode, asOf)
	if len(candidates) == 0 {
		return nil, errs.NewNoCourierAvailableError(fmt.Sprintf("no courier is available for postal code %s", postalCode))
	}

	best := candidates[0]
	if err := o.AssignCourier(best.Courier.ID(), best.Coverage.ETA(), asOf); err != nil {
		return nil, err
	}
	if err := best.Courier.Bind(o.ID(), asOf); err != nil {
		return nil, err
	}

	return &Assignment{
		Courier:           best.Courier,
		Coverage:          best.Coverage,
		EstimatedDelivery: *o.EstimatedDelivery(),
	}, nil
}
