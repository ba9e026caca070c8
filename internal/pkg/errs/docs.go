// Package errs provides the standardized error taxonomy for the parcel
// tracking service.
//
// The taxonomy distinguishes four caller-visible failure kinds:
//   - ObjectNotFoundError: a referenced parcel, order or courier does not exist
//   - InvalidTransitionError: the status state machine rejected a transition
//   - ConcurrentModificationError: an optimistic conditional write lost a race
//     and may be retried with a fresh read
//   - InvalidOperationError: an operation is disallowed in the current
//     lifecycle phase
//
// plus the generic validation errors (ValueIsRequiredError,
// ValueIsInvalidError, ValueIsOutOfRangeError) used by value-object
// constructors.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the sentinel for errors.Is classification
//
// Storage-layer errors are never translated into this taxonomy; repositories
// surface them unchanged so the transport layer can apply its own policy.
package errs
