// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when a unique value is already taken
//   - VersionIsInvalidError: For when an optimistic version check fails
//   - InvalidTransitionError: For when a lifecycle transition is not allowed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels and
// errors.As against the struct types; the HTTP adapter maps them to status codes.
package errs
