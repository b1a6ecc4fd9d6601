package repositories

import "errors"

var (
	// ErrNotFound indicates no registered entity matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName indicates a registration collides with an existing name.
	ErrDuplicateName = errors.New("duplicate name")
)
