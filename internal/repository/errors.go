package repository

import "errors"

// ErrNotFound is wrapped by every repository when the requested row does not exist.
var ErrNotFound = errors.New("not found")
