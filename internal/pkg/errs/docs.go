// Package errs provides the error types shared by the ordering service.
//
// Every type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct carrying details (ParamName, ID, Cause...)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// The request-facing taxonomy maps onto these types:
//   - ValidationError: malformed input, all violations collected
//   - ObjectNotFoundError: missing user or order, scoped by entity name
//   - NotAuthorizedError: caller lacks the role required for an action
//   - StorageError: unexpected persistence failure
//
// ValueIsRequiredError, ValueIsInvalidError and ValueIsOutOfRangeError are the
// individual violations that domain constructors join and wrap into a
// ValidationError. ObjectAlreadyExistsError covers duplicate registrations.
package errs
