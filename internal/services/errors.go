package services

import (
	"backoffice/internal/domain"
)

// storeError passes typed domain errors through untouched and wraps anything
// else (driver failures, bad connections) as an internal store error.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case domain.IsValidation(err),
		domain.IsNotFound(err),
		domain.IsConflict(err),
		domain.IsUnsupportedRecurrenceKind(err),
		domain.IsInternal(err):
		return err
	default:
		return domain.InternalError{Msg: "store failure", Err: err}
	}
}
