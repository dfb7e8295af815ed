package catalog

import "errors"

// ErrNotFound is returned when no catalog item carries the requested id.
var ErrNotFound = errors.New("item not found")
