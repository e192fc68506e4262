// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env on top.
// - Engine thresholds mirror the hand-tuned defaults in the domain packages;
//   override them here rather than editing call sites.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// FairnessWindow is the maximum tolerated relative value gap for
	// swap-style candidates.
	FairnessWindow float64 `koanf:"fairness_window"`

	// ScoreCutoff drops candidates scoring below it.
	ScoreCutoff int `koanf:"score_cutoff"`

	// FastMaxPartners and FastMaxResults bound FAST-mode finder runs.
	FastMaxPartners int `koanf:"fast_max_partners"`
	FastMaxResults  int `koanf:"fast_max_results"`

	// DeepMaxPartners and DeepMaxResults bound DEEP-mode finder runs.
	DeepMaxPartners int `koanf:"deep_max_partners"`
	DeepMaxResults  int `koanf:"deep_max_results"`

	// MatchMaxResults caps the partner list returned by matchmaking.
	MatchMaxResults int `koanf:"match_max_results"`
}

// New creates a Config with the hand-tuned defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9090",
		FairnessWindow:  0.25,
		ScoreCutoff:     55,
		FastMaxPartners: 5,
		FastMaxResults:  8,
		DeepMaxPartners: 12,
		DeepMaxResults:  15,
		MatchMaxResults: 5,
	}
}
