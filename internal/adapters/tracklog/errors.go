package tracklog

import "errors"

// Sentinel kinds for interaction log errors.
var (
	ErrClosed = errors.New("interaction log closed")
)
