package repository

import "errors"

// Sentinel kinds for catalog snapshot errors.
var (
	ErrNotFound = errors.New("event not found")
)
