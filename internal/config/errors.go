package config

import "errors"

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr   = errors.New("addr must not be empty")
	ErrInvalidTopK = errors.New("top_k defaults must be positive and within max_top_k")
)
