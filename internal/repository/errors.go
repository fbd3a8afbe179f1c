package repository

import "errors"

// ErrNotFound is returned when a referenced issue, comment, user or
// notification does not exist. Write operations never swallow it.
var ErrNotFound = errors.New("not found")
