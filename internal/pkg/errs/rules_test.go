package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleViolationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *errs.RuleViolationError
		sentinel error
		message  string
	}{
		{"composition", errs.NewCompositionViolationError("order must contain at least one pizza"),
			errs.ErrCompositionViolation, "composition violation: order must contain at least one pizza"},
		{"age", errs.NewAgeViolationError("customer must be at least 13 years old"),
			errs.ErrAgeViolation, "age violation: customer must be at least 13 years old"},
		{"dietary", errs.NewDietaryViolationError("ham is not vegetarian"),
			errs.ErrDietaryViolation, "dietary violation: ham is not vegetarian"},
		{"already used", errs.NewAlreadyUsedError("code SAVE10"),
			errs.ErrAlreadyUsed, "already used: code SAVE10"},
		{"window", errs.NewWindowExpiredError("deadline passed"),
			errs.ErrWindowExpired, "window expired: deadline passed"},
		{"courier", errs.NewNoCourierAvailableError("postal code 6211"),
			errs.ErrNoCourierAvailable, "no courier available: postal code 6211"},
		{"transition", errs.NewInvalidTransitionError("Delivered -> Cancelled"),
			errs.ErrInvalidTransition, "invalid transition: Delivered -> Cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.sentinel, tt.err.Unwrap())
		})
	}
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewStorageError("insert order", cause)

	assert.Equal(t, "storage error: insert order (cause: connection reset)", err.Error())
	require.ErrorIs(t, err, errs.ErrStorage)
	require.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, ""},
		{"not found", errs.NewObjectNotFoundError("order", "42"), errs.KindNotFound},
		{"range", errs.NewValueIsOutOfRangeError("quantity", 21, 1, 20), errs.KindRangeViolation},
		{"composition", errs.NewCompositionViolationError("x"), errs.KindCompositionViolation},
		{"age", errs.NewAgeViolationError("x"), errs.KindAgeViolation},
		{"dietary", errs.NewDietaryViolationError("x"), errs.KindDietaryViolation},
		{"already used", errs.NewAlreadyUsedError("x"), errs.KindAlreadyUsed},
		{"window", errs.NewWindowExpiredError("x"), errs.KindWindowExpired},
		{"no courier", errs.NewNoCourierAvailableError("x"), errs.KindNoCourierAvailable},
		{"transition", errs.NewInvalidTransitionError("x"), errs.KindInvalidTransition},
		{"invalid", errs.NewValueIsInvalidError("email"), errs.KindInvalidInput},
		{"required", errs.NewValueIsRequiredError("name"), errs.KindInvalidInput},
		{"storage", errs.NewStorageError("commit", errors.New("boom")), errs.KindStorageError},
		{"unknown", errors.New("driver: bad connection"), errs.KindStorageError},
		{"wrapped", fmt.Errorf("place order: %w", errs.NewAlreadyUsedError("x")), errs.KindAlreadyUsed},
		{"joined", errors.Join(errs.NewValueIsRequiredError("name"), errs.NewAgeViolationError("x")),
			errs.KindAgeViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}
