// Package apperr defines the error taxonomy shared by the directory client,
// the inventory client and the reconciler.
//
// # Classes
//
//   - AuthenticationError: bad credentials on either system. Fatal.
//   - ServiceUnavailableError: the directory (or inventory) cannot be reached. Fatal.
//   - MalformedResponseError: a listing returned a body that is not XML. Fatal,
//     since a falsely empty list would trigger mass creates.
//   - StatusError: a non-2xx HTTP status. Fatal on GET, non-fatal (ErrRejected)
//     on POST/DELETE.
//
// Callers classify with errors.Is against the sentinels, or use IsFatal.
package apperr
