package errs

import "errors"

// Kind is the failure category reported to callers.
type Kind string

const (
	KindNotFound             Kind = "NotFound"
	KindRangeViolation       Kind = "RangeViolation"
	KindCompositionViolation Kind = "CompositionViolation"
	KindAgeViolation         Kind = "AgeViolation"
	KindDietaryViolation     Kind = "DietaryViolation"
	KindAlreadyUsed          Kind = "AlreadyUsed"
	KindWindowExpired        Kind = "WindowExpired"
	KindNoCourierAvailable   Kind = "NoCourierAvailable"
	KindInvalidTransition    Kind = "InvalidTransition"
	KindInvalidInput         Kind = "InvalidInput"
	KindStorageError         Kind = "StorageError"
)

// KindOf classifies err. Rule violations win over the generic value errors,
// and anything unrecognised is treated as a storage failure. A nil error has no kind.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCompositionViolation):
		return KindCompositionViolation
	case errors.Is(err, ErrAgeViolation):
		return KindAgeViolation
	case errors.Is(err, ErrDietaryViolation):
		return KindDietaryViolation
	case errors.Is(err, ErrAlreadyUsed):
		return KindAlreadyUsed
	case errors.Is(err, ErrWindowExpired):
		return KindWindowExpired
	case errors.Is(err, ErrNoCourierAvailable):
		return KindNoCourierAvailable
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrStorage):
		return KindStorageError
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsOutOfRange):
		return KindRangeViolation
	case errors.Is(err, ErrValueIsInvalid), errors.Is(err, ErrValueIsRequired):
		return KindInvalidInput
	default:
		return KindStorageError
	}
}
