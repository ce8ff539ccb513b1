package transaction

import "errors"

// ErrNotFound is returned when a transaction does not exist or is owned by a
// different user. Callers cannot tell the two cases apart.
var ErrNotFound = errors.New("transaction not found")
