package kernel

import (
	"strings"
	"unicode/utf8"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// PostalCodeMinLength is the shortest postal code accepted for customers and courier coverage.
const PostalCodeMinLength = 4

var ErrPostalCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"postal code must be created via NewPostalCode constructor")

// PostalCode identifies a delivery area. Couriers cover postal codes and
// customers live in one, which is how orders find their courier.
type PostalCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewPostalCode trims surrounding whitespace and rejects values shorter than
// PostalCodeMinLength characters with a range violation.
func NewPostalCode(value string) (PostalCode, error) {
	value = strings.TrimSpace(value)
	if n := utf8.RuneCountInString(value); n < PostalCodeMinLength {
		return PostalCode{}, errs.NewValueIsOutOfRangeError("postal code length", n, PostalCodeMinLength, "unbounded")
	}

	return PostalCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (p PostalCode) Validate() error {
	return p.guard.Validate(ErrPostalCodeIsNotConstructed)
}

func (p PostalCode) String() string {
	return p.value
}

func (p PostalCode) IsEqual(other PostalCode) bool {
	return p.value == other.value
}
