// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates and read optimized projections with SQL.
package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetAvailableCouriersQueryIsNotConstructed = errors.New(
		"GetAvailableCouriersQuery must be created via NewGetAvailableCouriersQuery constructor",
	)
)

// GetAvailableCouriersQuery lists the couriers that could take an order for a
// postal code right now, ranked the way the dispatcher would pick them.
//
// Example:
//
//	query, err := NewGetAvailableCouriersQuery("6211", time.Now())
//	handler := NewGetAvailableCouriersQueryHandler(db)
//
//	couriers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list couriers: %w", err)
//	}
//
//	for _, c := range couriers {
//	    fmt.Printf("%s (%s) in %d minutes\n", c.Name, c.Vehicle, c.ETAMinutes)
//	}
type GetAvailableCouriersQuery struct {
	postalCode kernel.PostalCode
	asOf       time.Time

	guard guard.ConstructorGuard
}

// NewGetAvailableCouriersQuery rejects postal codes shorter than four characters.
func NewGetAvailableCouriersQuery(postalCode string, asOf time.Time) (GetAvailableCouriersQuery, error) {
	pc, err := kernel.NewPostalCode(postalCode)
	if err != nil {
		return GetAvailableCouriersQuery{}, err
	}

	return GetAvailableCouriersQuery{
		postalCode: pc,
		asOf:       asOf,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCouriersQueryIsNotConstructed)
}

func (q GetAvailableCouriersQuery) PostalCode() kernel.PostalCode {
	return q.postalCode
}

func (q GetAvailableCouriersQuery) AsOf() time.Time {
	return q.asOf
}

// GetAvailableCouriersQueryResponse is one ranked candidate.
type GetAvailableCouriersQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Phone      string
	Vehicle    courier.VehicleType
	AreaName   string
	ETAMinutes int
}
