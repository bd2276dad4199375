// Package errs provides standardized error types for the fleet application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Validation errors, raised while constructing domain objects and commands:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//
// Transition errors, raised by the lifecycle engine:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - PreconditionFailedError: an invariant rejected the transition; carries a
//     specific, user-displayable reason
//   - ConcurrencyConflictError: the caller lost a race with a concurrent
//     writer and may retry with fresh state
//   - StorageFailureError: the atomic write could not be committed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrPreconditionFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Handlers never partially apply a transition: whenever one of the transition
// errors is returned, the entity store is unchanged from before the call.
package errs
