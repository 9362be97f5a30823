// Package errs provides standardized error types for the pizzeria engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsOutOfRangeError: For numeric bounds such as quantities and totals
//   - RuleViolationError: For broken business rules (composition, age, diet,
//     discount reuse, cancellation window, courier availability, lifecycle moves)
//   - StorageError: For failures of the underlying store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// KindOf maps any error produced by the engine onto the failure taxonomy that is
// reported to callers together with the human readable message.
package errs
