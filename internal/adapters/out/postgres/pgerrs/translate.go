// Package pgerrs maps PostgreSQL and GORM failures onto the errs family so
// that callers only ever see domain error kinds.
package pgerrs

import (
	"errors"
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// domainErrors are passed through untouched.
var domainErrors = []error{
	errs.ErrObjectNotFound,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
	errs.ErrCompositionViolation,
	errs.ErrAgeViolation,
	errs.ErrDietaryViolation,
	errs.ErrAlreadyUsed,
	errs.ErrWindowExpired,
	errs.ErrNoCourierAvailable,
	errs.ErrInvalidTransition,
	errs.ErrStorage,
}

// Translate wraps err for operation. Unique and foreign key violations become
// invalid input, everything else unknown becomes a storage error.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range domainErrors {
		if errors.Is(err, known) {
			return err
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errs.NewValueIsInvalidErrorWithCause(operation,
				fmt.Errorf("duplicate value violates %s", pgErr.ConstraintName))
		case foreignKeyViolation:
			return errs.NewValueIsInvalidErrorWithCause(operation,
				fmt.Errorf("unknown reference violates %s", pgErr.ConstraintName))
		case checkViolation:
			return errs.NewValueIsOutOfRangeErrorWithCause(operation, pgErr.ConstraintName, "", "",
				fmt.Errorf("check %s failed", pgErr.ConstraintName))
		}
	}

	return errs.NewStorageError(operation, err)
}
