package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DAVOS_CONFIG is set
//  3. env (prefix DAVOS_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DAVOS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: DAVOS_ADDR, DAVOS_EVENTS_FILE, ...
	// Keys map flat: DAVOS_RECOMMEND_TOP_K -> recommend_top_k, matching
	// the koanf tags on the struct.
	envProvider := env.Provider("DAVOS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "davos_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the service cannot start with.
func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return ErrEmptyAddr
	case c.RecommendTopK < 1 || c.SearchTopK < 1:
		return ErrInvalidTopK
	case c.MaxTopK < c.RecommendTopK || c.MaxTopK < c.SearchTopK:
		return ErrInvalidTopK
	}
	return nil
}
