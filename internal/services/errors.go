package services

import "errors"

var (
	// ErrNotFound means the application does not exist or is excluded by soft delete.
	ErrNotFound = errors.New("Application not found")
	// ErrInvalidState means the operation does not apply to the record's current state.
	ErrInvalidState = errors.New("Application is not deleted")
)
