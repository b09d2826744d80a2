// Package errs provides standardized error types for the dealership fulfillment core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two families of errors:
//
// Input validation errors used by constructors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ValidationError: aggregates every offending field of a request
//
// Lifecycle errors returned by domain transitions:
//   - InvalidTransitionError: requested status unreachable in the transition table
//   - GuardViolationError: transition blocked by a cross-entity precondition
//   - OverpaymentError, OrderLockedError, ImmutablePaymentError,
//     ImmutableAfterDeliveryError: payment and delivery business rules
//   - ObjectNotFoundError: referenced entity id absent from storage
//   - ConflictError: concurrent-write race detected by the store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with a WithCause variant where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All errors are locally recoverable; the core never panics. The HTTP adapter
// owns the mapping from these errors to transport status codes.
package errs
