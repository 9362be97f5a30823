package courier

import (
	"errors"
	"strings"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

const (
	// DefaultETAMinutes is used when a coverage is added without an estimate.
	DefaultETAMinutes = 25
	MinETAMinutes     = 1
	MaxETAMinutes     = 120
)

var ErrCoverageIsNotConstructed = errors.New("Coverage must be created via NewCoverage constructor")

// Coverage is a postal code served by a courier together with the expected
// delivery time for that area. A courier covers each postal code at most once.
type Coverage struct {
	id         kernel.UUID
	postalCode kernel.PostalCode
	areaName   string
	etaMinutes int

	guard guard.ConstructorGuard
}

func NewCoverage(id kernel.UUID, postalCode kernel.PostalCode, areaName string, etaMinutes int) (*Coverage, error) {
	coverage := &Coverage{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coverage.setID(id),
		coverage.setPostalCode(postalCode),
		coverage.setAreaName(areaName),
		coverage.setETA(etaMinutes),
	); err != nil {
		return nil, err
	}

	return coverage, nil
}

func (c *Coverage) IsEqual(other *Coverage) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Coverage) Validate() error {
	if c == nil {
		return ErrCoverageIsNotConstructed
	}
	return c.guard.Validate(ErrCoverageIsNotConstructed)
}

func (c *Coverage) ID() kernel.UUID {
	return c.id
}

func (c *Coverage) PostalCode() kernel.PostalCode {
	return c.postalCode
}

func (c *Coverage) AreaName() string {
	return c.areaName
}

func (c *Coverage) ETAMinutes() int {
	return c.etaMinutes
}

// ETA is the coverage estimate as a duration.
func (c *Coverage) ETA() time.Duration {
	return time.Duration(c.etaMinutes) * time.Minute
}

func (c *Coverage) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Coverage) setPostalCode(postalCode kernel.PostalCode) error {
	if err := postalCode.Validate(); err != nil {
		return err
	}
	c.postalCode = postalCode
	return nil
}

func (c *Coverage) setAreaName(areaName string) error {
	areaName = strings.TrimSpace(areaName)
	if areaName == "" {
		return errs.NewValueIsRequiredError("area name")
	}
	c.areaName = areaName
	return nil
}

func (c *Coverage) setETA(etaMinutes int) error {
	if etaMinutes < MinETAMinutes || etaMinutes > MaxETAMinutes {
		return errs.NewValueIsOutOfRangeError("eta minutes", etaMinutes, MinETAMinutes, MaxETAMinutes)
	}
	c.etaMinutes = etaMinutes
	return nil
}
