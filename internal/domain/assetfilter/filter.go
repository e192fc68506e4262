// Package assetfilter splits a team's priced assets into tradable (sendable)
// and targetable (acquirable) subsets for a given objective.
package assetfilter

import (
	"github.com/rosterlab/tradescout/internal/domain/model"
)

// Hand-tuned tradability thresholds.
const (
	// MinTradableValue is the floor below which assets are never offered.
	MinTradableValue = 500.0
	// MinTargetValue is the floor below which assets are never targeted.
	MinTargetValue = 1000.0
	// minBenchValue is the floor for offering low-tier bench depth.
	minBenchValue = 1000.0
	// replaceableStarterQuality marks starters cheap enough to replace.
	replaceableStarterQuality = 3
	// nearEliteQuality marks assets worth targeting regardless of fit.
	nearEliteQuality = 4
)

// Tradable returns the subset of assets the team can send away under the
// given objective. Core-locked assets and anything under the value floor are
// always excluded; first-round picks are protected during a rebuild.
func Tradable(assets []model.PricedAsset, objective model.Objective, surpluses, needs []model.Position) []model.PricedAsset {
	out := make([]model.PricedAsset, 0, len(assets))
	for _, a := range assets {
		if a.CoreLocked() || a.Value < MinTradableValue {
			continue
		}
		if a.Pick {
			if objective == model.Rebuild && a.PickRound == 1 {
				continue
			}
			out = append(out, a)
			continue
		}
		if containsPosition(surpluses, a.Position) {
			out = append(out, a)
			continue
		}
		// Low-tier bench depth with real market value.
		if !a.Starter && a.Tier.Quality() <= 1 && a.Value >= minBenchValue {
			out = append(out, a)
			continue
		}
		// Replaceable starter.
		if a.Starter && a.Tier.Quality() <= replaceableStarterQuality {
			out = append(out, a)
		}
	}
	return out
}

// Targetable returns the subset of assets worth acquiring for a team with the
// given needs: picks, need-fillers, or near-elite assets regardless of fit.
func Targetable(assets []model.PricedAsset, userNeeds []model.Position) []model.PricedAsset {
	out := make([]model.PricedAsset, 0, len(assets))
	for _, a := range assets {
		if a.Value < MinTargetValue {
			continue
		}
		if a.Pick || containsPosition(userNeeds, a.Position) || a.Tier.Quality() >= nearEliteQuality {
			out = append(out, a)
		}
	}
	return out
}

func containsPosition(positions []model.Position, p model.Position) bool {
	for _, s := range positions {
		if s == p {
			return true
		}
	}
	return false
}
