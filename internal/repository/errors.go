package repository

import "errors"

// ErrUserNotFound is returned when an operation selects a user by
// username and no row matches.
var ErrUserNotFound = errors.New("user not found")
