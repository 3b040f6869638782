// Package api declares HTTP contracts and route registration helpers.
package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrMissingProfile = errors.New("missing 'profile' in request body")
	ErrMissingMessage = errors.New("missing 'message' in request body")
	ErrMissingQuery   = errors.New("missing 'q' query parameter")
	ErrLimitExceeded  = errors.New("requested result count exceeds the allowed maximum")
	ErrInputTooLong   = errors.New("input text exceeds the allowed length")
	ErrBadRequest     = errors.New("bad request")
)
