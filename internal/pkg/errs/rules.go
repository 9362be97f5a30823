package errs

import (
	"errors"
	"fmt"
)

// Business rule sentinels. Every RuleViolationError unwraps to exactly one of them.
var (
	ErrCompositionViolation = errors.New("composition violation")
	ErrAgeViolation         = errors.New("age violation")
	ErrDietaryViolation     = errors.New("dietary violation")
	ErrAlreadyUsed          = errors.New("already used")
	ErrWindowExpired        = errors.New("window expired")
	ErrNoCourierAvailable   = errors.New("no courier available")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrStorage              = errors.New("storage error")
)

// RuleViolationError reports a broken business rule together with a detail
// that can be shown to the caller as is.
type RuleViolationError struct {
	Rule   error
	Detail string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Detail)
}

func (e *RuleViolationError) Unwrap() error {
	return e.Rule
}

func NewCompositionViolationError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrCompositionViolation, Detail: detail}
}

func NewAgeViolationError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrAgeViolation, Detail: detail}
}

func NewDietaryViolationError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrDietaryViolation, Detail: detail}
}

func NewAlreadyUsedError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrAlreadyUsed, Detail: detail}
}

func NewWindowExpiredError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrWindowExpired, Detail: detail}
}

func NewNoCourierAvailableError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrNoCourierAvailable, Detail: detail}
}

func NewInvalidTransitionError(detail string) *RuleViolationError {
	return &RuleViolationError{Rule: ErrInvalidTransition, Detail: detail}
}

// StorageError wraps a failure of the underlying store. It matches both
// ErrStorage and the original cause with errors.Is.
type StorageError struct {
	Operation string
	Cause     error
}

func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrStorage, e.Operation, e.Cause)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Cause}
}
