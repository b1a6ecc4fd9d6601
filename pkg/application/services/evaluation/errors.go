package evaluation

import "errors"

// ErrInvalidRange indicates a crisp input outside the configured absolute
// domain bounds of its linguistic variable.
var ErrInvalidRange = errors.New("input out of range")
