// Package finder generates, scores, and prunes two-sided trade candidates
// between a requesting team and its most compatible partners.
package finder

import (
	"github.com/rosterlab/tradescout/internal/domain/valuematch"
)

// Default finder configuration constants. All thresholds are hand-tuned;
// override through options, not by editing call sites.
const (
	defaultFairnessWindow  = 0.25
	defaultScoreCutoff     = 55
	defaultBundleReach     = 0.80
	defaultBundleMin       = 0.75
	defaultBundleMax       = 1.25
	defaultMaxBundleSize   = 3
	defaultMinPartnerFit   = 40.0
	defaultFastMaxPartners = 5
	defaultFastMaxResults  = 8
	defaultDeepMaxPartners = 12
	defaultDeepMaxResults  = 15
)

// ModeConfig bundles the two knobs a finder mode controls: partner fan-out
// and the final result cap.
type ModeConfig struct {
	MaxPartners int
	MaxResults  int
}

// Config carries every tunable threshold used during generation and pruning.
type Config struct {
	// FairnessWindow is the maximum tolerated |value delta| / given value for
	// swap-style candidates.
	FairnessWindow float64
	// ScoreCutoff drops candidates scoring below it before ranking.
	ScoreCutoff int
	// BundleReach is the fraction of target value a greedy bundle must reach.
	BundleReach float64
	// BundleMin and BundleMax bound an accepted bundle relative to target.
	BundleMin float64
	BundleMax float64
	// MaxBundleSize caps the number of pieces in any bundle.
	MaxBundleSize int
	// MinPartnerFit is the minimum precomputed partner-fit score considered.
	MinPartnerFit float64
	// Fast and Deep are the per-mode fan-out and cap settings.
	Fast ModeConfig
	Deep ModeConfig
}

// bounds maps the finder thresholds onto the shared value-match bounds.
func (c Config) bounds() valuematch.Bounds {
	return valuematch.Bounds{
		FairnessWindow: c.FairnessWindow,
		Reach:          c.BundleReach,
		Min:            c.BundleMin,
		Max:            c.BundleMax,
		MaxPieces:      c.MaxBundleSize,
	}
}

// DefaultConfig returns the hand-tuned default configuration.
func DefaultConfig() Config {
	return Config{
		FairnessWindow: defaultFairnessWindow,
		ScoreCutoff:    defaultScoreCutoff,
		BundleReach:    defaultBundleReach,
		BundleMin:      defaultBundleMin,
		BundleMax:      defaultBundleMax,
		MaxBundleSize:  defaultMaxBundleSize,
		MinPartnerFit:  defaultMinPartnerFit,
		Fast:           ModeConfig{MaxPartners: defaultFastMaxPartners, MaxResults: defaultFastMaxResults},
		Deep:           ModeConfig{MaxPartners: defaultDeepMaxPartners, MaxResults: defaultDeepMaxResults},
	}
}

// Option applies a configuration option to the Finder.
type Option func(*Finder)

// WithConfig replaces the whole threshold set.
func WithConfig(cfg Config) Option {
	return func(f *Finder) {
		f.cfg = cfg
	}
}

// WithFairnessWindow overrides the fairness window.
func WithFairnessWindow(w float64) Option {
	return func(f *Finder) {
		if w > 0 {
			f.cfg.FairnessWindow = w
		}
	}
}

// WithScoreCutoff overrides the pruning cutoff.
func WithScoreCutoff(cutoff int) Option {
	return func(f *Finder) {
		if cutoff >= 0 {
			f.cfg.ScoreCutoff = cutoff
		}
	}
}

// WithModeConfig overrides the fan-out and cap for one mode.
func WithModeConfig(fast, deep ModeConfig) Option {
	return func(f *Finder) {
		if fast.MaxPartners > 0 && fast.MaxResults > 0 {
			f.cfg.Fast = fast
		}
		if deep.MaxPartners > 0 && deep.MaxResults > 0 {
			f.cfg.Deep = deep
		}
	}
}
