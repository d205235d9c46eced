package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrAlreadyExists         = errors.New("resource already exists")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrPersistence marks store failures during reconciliation; the scan
	// cycle logs it and moves on to the next observation.
	ErrPersistence = errors.New("persistence failure")
)
