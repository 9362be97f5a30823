package courier

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// CoolDown is how long after a completed delivery a courier stays unavailable.
const CoolDown = 30 * time.Minute

var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrCoverageNotFound is returned when a courier does not cover a postal code.
	ErrCoverageNotFound = errors.New("coverage not found")

	phoneDigits = regexp.MustCompile(`\d`)
)

// Courier is a delivery person. It is an aggregate root owning the postal
// code coverages it serves.
//
// Availability has two layers. The stored isAvailable flag is false while
// the courier is bound to an order and stays false after a delivery. The
// effective availability used by dispatching also counts a courier whose
// last delivery is more than CoolDown ago as available. A courier bound to
// an order (currentOrderID set) is never effectively available, which keeps
// one courier from being bound to two orders.
type Courier struct {
	id             kernel.UUID
	name           string
	phone          string
	vehicle        VehicleType
	isAvailable    bool
	lastDelivery   *time.Time
	currentOrderID *kernel.UUID
	coverages      []*Coverage

	guard guard.ConstructorGuard
}

// NewCourier creates an available courier without coverage.
func NewCourier(id kernel.UUID, name, phone string, vehicle VehicleType) (*Courier, error) {
	courier := &Courier{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier rebuilds a courier loaded from storage.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	vehicle VehicleType,
	isAvailable bool,
	lastDelivery *time.Time,
	currentOrderID *kernel.UUID,
	coverages []*Coverage,
) (*Courier, error) {
	courier := &Courier{
		isAvailable:    isAvailable,
		lastDelivery:   lastDelivery,
		currentOrderID: currentOrderID,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
		courier.setVehicle(vehicle),
		courier.setCoverages(coverages),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) Vehicle() VehicleType {
	return c.vehicle
}

// IsAvailable returns the stored flag, not the effective availability.
func (c *Courier) IsAvailable() bool {
	return c.isAvailable
}

func (c *Courier) LastDelivery() *time.Time {
	return c.lastDelivery
}

// CurrentOrder returns the order the courier is bound to, nil when unbound.
func (c *Courier) CurrentOrder() *kernel.UUID {
	return c.currentOrderID
}

func (c *Courier) Coverages() []*Coverage {
	return slices.Clone(c.coverages)
}

// AddCoverage makes the courier serve postalCode. Covering the same postal code
// twice is rejected.
func (c *Courier) AddCoverage(postalCode kernel.PostalCode, areaName string, etaMinutes int) (*Coverage, error) {
	if _, err := c.CoverageFor(postalCode); err == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("postal code",
			fmt.Errorf("courier %s already covers %s", c.id, postalCode))
	}

	coverage, err := NewCoverage(kernel.NewUUID(), postalCode, areaName, etaMinutes)
	if err != nil {
		return nil, err
	}

	c.coverages = append(c.coverages, coverage)
	return coverage, nil
}

// CoverageFor finds the coverage of postalCode.
func (c *Courier) CoverageFor(postalCode kernel.PostalCode) (*Coverage, error) {
	for _, coverage := range c.coverages {
		if coverage.postalCode.IsEqual(postalCode) {
			return coverage, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause("coverage", postalCode.String(), ErrCoverageNotFound)
}

// IsEffectivelyAvailable reports whether the courier can be dispatched at asOf.
func (c *Courier) IsEffectivelyAvailable(asOf time.Time) bool {
	if c.currentOrderID != nil {
		return false
	}
	return c.isAvailable || c.isCooledDown(asOf)
}

// Bind reserves the courier for orderID.
func (c *Courier) Bind(orderID kernel.UUID, asOf time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !c.IsEffectivelyAvailable(asOf) {
		return errs.NewNoCourierAvailableError(fmt.Sprintf("courier %s is not available", c.id))
	}
	c.currentOrderID = &orderID
	c.isAvailable = false
	return nil
}

// MarkOnDelivery keeps the stored flag false while the order is out for delivery.
func (c *Courier) MarkOnDelivery() {
	c.isAvailable = false
}

// CompleteDelivery unbinds the courier and starts the cool-down. The stored
// flag stays false.
func (c *Courier) CompleteDelivery(at time.Time) {
	delivered := at
	c.lastDelivery = &delivered
	c.isAvailable = false
	c.currentOrderID = nil
}

// Release frees the courier from orderID, e.g. when that order is cancelled.
// Releasing a courier bound to another order does nothing.
func (c *Courier) Release(orderID kernel.UUID) {
	if c.currentOrderID != nil && !c.currentOrderID.IsEqual(orderID) {
		return
	}
	c.currentOrderID = nil
	c.isAvailable = true
}

// RecomputeAvailability applies the cool-down rule to the stored flag.
func (c *Courier) RecomputeAvailability(at time.Time) {
	c.isAvailable = c.isCooledDown(at)
}

func (c *Courier) isCooledDown(asOf time.Time) bool {
	return c.lastDelivery != nil && asOf.Sub(*c.lastDelivery) > CoolDown
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if n := len(phoneDigits.FindAllString(phone, -1)); n < 10 {
		return errs.NewValueIsOutOfRangeError("phone digits", n, 10, "unbounded")
	}
	c.phone = phone
	return nil
}

func (c *Courier) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

func (c *Courier) setCoverages(coverages []*Coverage) error {
	for _, coverage := range coverages {
		if err := coverage.Validate(); err != nil {
			return err
		}
	}
	c.coverages = slices.Clone(coverages)
	return nil
}
