package domain

import "errors"

// ErrUserNotFound is returned, usually wrapped, when a user id is unknown.
var ErrUserNotFound = errors.New("user not found")
