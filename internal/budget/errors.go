package budget

import "errors"

// ErrNotFound is returned when a budget does not exist or is owned by a
// different user. Callers cannot tell the two cases apart.
var ErrNotFound = errors.New("budget not found")
