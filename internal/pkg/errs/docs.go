// Package errs provides the typed errors shared by the domain, application and
// adapter layers of the logistics backend.
//
// Every error kind follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrValueIsRequired, ...) for errors.Is checks
//   - a struct carrying the details (ObjectNotFoundError, ...)
//   - New* and New*WithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// The HTTP adapter classifies errors by sentinel only, so new code should return
// one of these types rather than ad-hoc errors when the failure is expected.
package errs
