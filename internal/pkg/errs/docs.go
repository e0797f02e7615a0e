// Package errs provides standardized error types for the toy-rental service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Transport adapters classify failures by matching sentinels: ErrObjectNotFound
// maps to a missing-resource response, ErrValueIsInvalid and ErrValueIsRequired
// to rejected input, and anything unmatched to an opaque server failure.
package errs
