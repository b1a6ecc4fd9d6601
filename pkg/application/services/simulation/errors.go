package simulation

import "errors"

// ErrMissingQuote indicates an evaluation was requested for a supplier that
// holds no quote for the given ECN.
var ErrMissingQuote = errors.New("supplier has no quote for ecn")
