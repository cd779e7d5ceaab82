package domain

import "errors"

// ErrNotFound is returned by repositories when a row does not exist.
// Callers that treat absence as a valid state (an unscheduled talk, a user
// without a profile) check for it with errors.Is.
var ErrNotFound = errors.New("not found")
