// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) returning defaults; Load layers file and env on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// EventsFile is the catalog CSV path; when missing or unreadable the
	// service degrades to the built-in fixture catalog.
	EventsFile string `koanf:"events_file"`

	// RecommendTopK is the default number of recommendations returned.
	RecommendTopK int `koanf:"recommend_top_k"`

	// SearchTopK is the default number of search hits returned.
	SearchTopK int `koanf:"search_top_k"`

	// MaxTopK caps client-supplied top_k and limit values.
	MaxTopK int `koanf:"max_top_k"`

	// VocabularyCap bounds the TF-IDF vocabulary size.
	VocabularyCap int `koanf:"vocabulary_cap"`

	// HistoryCapacity bounds the interaction log.
	HistoryCapacity int `koanf:"history_capacity"`

	// MaxProfileChars caps accepted profile/query input length.
	MaxProfileChars int `koanf:"max_profile_chars"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8080",
		EventsFile:      "davos_events.csv",
		RecommendTopK:   5,
		SearchTopK:      10,
		MaxTopK:         50,
		VocabularyCap:   5000,
		HistoryCapacity: 10000,
		MaxProfileChars: 8192,
	}
}
