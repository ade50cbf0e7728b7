package repository

import "errors"

// ErrNotFound is returned when no project or contact matches the given id.
var ErrNotFound = errors.New("not found")
