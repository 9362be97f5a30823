// Package customer holds the Customer aggregate. Customers are created on their
// first order, are never deleted, and afterwards only their cumulative pizza
// count changes.
package customer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

const phoneMinDigits = 10

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Gender as recorded on the customer profile.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
	Other  Gender = "Other"
)

func (g Gender) Validate() error {
	switch g {
	case Male, Female, Other:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("gender", fmt.Errorf("%q is not one of Male, Female, Other", string(g)))
	}
}

// Profile is the contact data supplied with a first order.
type Profile struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	PostalCode string
	BirthDate  time.Time
	Gender     Gender
}

// Customer is identified by id and looked up by email.
type Customer struct {
	id          kernel.UUID
	name        string
	email       string
	phone       string
	address     string
	postalCode  kernel.PostalCode
	birthDate   time.Time
	gender      Gender
	totalPizzas int

	isConstructed bool
}

// NewCustomer validates a profile and creates a customer with no pizzas ordered yet.
// The minimum age rule depends on the current date and is checked by the caller
// (see services.ValidateAge) before the customer is created.
func NewCustomer(id kernel.UUID, profile Profile) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(profile.Name),
		c.setEmail(profile.Email),
		c.setPhone(profile.Phone),
		c.setAddress(profile.Address),
		c.setPostalCode(profile.PostalCode),
		c.setBirthDate(profile.BirthDate),
		c.setGender(profile.Gender),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a stored customer including its pizza count.
func RestoreCustomer(id kernel.UUID, profile Profile, totalPizzas int) (*Customer, error) {
	c, err := NewCustomer(id, profile)
	if err != nil {
		return nil, err
	}
	if totalPizzas < 0 {
		return nil, errs.NewValueIsOutOfRangeError("total pizzas", totalPizzas, 0, "unbounded")
	}
	c.totalPizzas = totalPizzas
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Phone() string {
	return c.phone
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) PostalCode() kernel.PostalCode {
	return c.postalCode
}

func (c *Customer) BirthDate() time.Time {
	return c.birthDate
}

func (c *Customer) Gender() Gender {
	return c.gender
}

// TotalPizzas is the cumulative number of pizzas ordered, current order included once recorded.
func (c *Customer) TotalPizzas() int {
	return c.totalPizzas
}

// Tier reports the loyalty tier for the current pizza count.
func (c *Customer) Tier() Tier {
	return TierFor(c.totalPizzas)
}

// RecordPizzas adds the pizzas of a placed order to the cumulative count.
// The count never decreases.
func (c *Customer) RecordPizzas(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("pizza quantity", quantity, 1, "unbounded")
	}
	c.totalPizzas += quantity
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	digits := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < phoneMinDigits {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%d digits, at least %d required", digits, phoneMinDigits))
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Customer) setPostalCode(postalCode string) error {
	code, err := kernel.NewPostalCode(postalCode)
	if err != nil {
		return err
	}
	c.postalCode = code
	return nil
}

func (c *Customer) setBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errs.NewValueIsRequiredError("birth date")
	}
	c.birthDate = kernel.StartOfDay(birthDate)
	return nil
}

func (c *Customer) setGender(gender Gender) error {
	if err := gender.Validate(); err != nil {
		return err
	}
	c.gender = gender
	return nil
}
