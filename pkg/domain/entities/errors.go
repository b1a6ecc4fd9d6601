package entities

import "errors"

var (
	// ErrValidation indicates an entity constructor was given malformed inputs.
	ErrValidation = errors.New("validation failed")
	// ErrNotQuoted indicates a state transition that requires at least one quote.
	ErrNotQuoted = errors.New("ecn not quoted")
	// ErrAlreadyImplemented indicates the ECN already has a winning supplier.
	ErrAlreadyImplemented = errors.New("ecn already implemented")
)
