package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/discount"
)

type DiscountCodeRepository interface {
	// Add persists a new code. A duplicate code is invalid input.
	Add(ctx context.Context, code *discount.Code) error

	// GetByCode finds a code by its text.
	GetByCode(ctx context.Context, code string) (*discount.Code, error)

	// MarkUsed flips the stored used flag of a redeemed code only if it is
	// still unused. Losing that race fails with errs.ErrAlreadyUsed.
	MarkUsed(ctx context.Context, code *discount.Code) error
}
