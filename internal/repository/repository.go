package repository

import "errors"

// ErrNotFound is returned by every repository when the requested record does
// not exist or falls outside the requesting tenant's scope.
var ErrNotFound = errors.New("record not found")
