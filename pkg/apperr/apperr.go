package apperr

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with
// fmt.Errorf("...: %w", ...) and controllers map them to HTTP statuses
// via resp.Error.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
)
