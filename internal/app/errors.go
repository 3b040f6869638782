package service

import "errors"

// Service errors.
var (
	// ErrEmptyProfile indicates that a recommendation was requested
	// without any profile text.
	ErrEmptyProfile = errors.New("profile text is empty")

	// ErrEmptyQuery indicates that a search was requested without a query.
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrNotStarted indicates a call before Start.
	ErrNotStarted = errors.New("service not started")
)
