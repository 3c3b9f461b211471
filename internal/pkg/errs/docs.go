// Package errs provides standardized error types for the hotel POS application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes the error taxonomy surfaced to callers:
//   - ObjectNotFoundError: a referenced order, line item, menu item, guest or user is absent
//   - InvalidTransitionError: a status change the lifecycle does not allow
//   - UnauthorizedError: the acting user lacks the required capability
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on any wrapped chain
package errs
