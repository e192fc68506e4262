package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if TRADESCOUT_CONFIG is set
//  3. env (prefix TRADESCOUT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TRADESCOUT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Map env keys like TRADESCOUT_SCORE_CUTOFF -> score_cutoff, preserving
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider("TRADESCOUT_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "tradescout_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.FairnessWindow <= 0 || cfg.FairnessWindow >= 1 {
		return nil, fmt.Errorf("%w: fairness_window must be in (0,1)", ErrInvalidConfig)
	}
	if cfg.ScoreCutoff < 0 || cfg.ScoreCutoff > 100 {
		return nil, fmt.Errorf("%w: score_cutoff must be in [0,100]", ErrInvalidConfig)
	}
	return &cfg, nil
}
