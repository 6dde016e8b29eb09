// Package errs provides the error taxonomy shared by every layer of the parcels service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type carrying the details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels form the classes the HTTP adapter maps to status codes:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: validation (400)
//   - ErrNotAuthenticated: bad credentials or session (401)
//   - ErrForbidden: authenticated but not permitted (403)
//   - ErrObjectNotFound: entity absent (404)
//   - ErrAlreadyExists: uniqueness or integrity conflict (409)
package errs
