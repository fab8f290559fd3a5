package interfaces

import "errors"

// ErrNotFound is returned by service clients when the upstream answers 404.
// Usecases decide what a 404 means per operation (e.g. the idempotent-delete
// policy for sales).
var ErrNotFound = errors.New("not found")
