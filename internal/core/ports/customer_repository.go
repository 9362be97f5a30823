package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
)

type CustomerRepository interface {
	// Add persists a new customer. A duplicate email is invalid input.
	Add(ctx context.Context, customer *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail finds a customer by email, case-insensitively.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// IncrementPizzaCount adds quantity to the stored lifetime pizza count in
	// one statement so that concurrent orders of the same customer add up.
	IncrementPizzaCount(ctx context.Context, id kernel.UUID, quantity int) error
}
