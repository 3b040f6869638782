package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrMissingIDColumn = errors.New("events csv missing id column")
)
