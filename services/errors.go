package services

import "errors"

var (
	// ErrStoreFailure marks errors raised by the audit record store
	ErrStoreFailure = errors.New("audit store failure")

	// ErrAlreadySubscribed is returned when a capture hook is initialised twice
	ErrAlreadySubscribed = errors.New("capture hook already subscribed")

	// ErrValidation marks rejected content input
	ErrValidation = errors.New("validation failed")
)
