// Package valuematch holds the closest-value and greedy-bundle matching
// shared by candidate generation and partner matchmaking.
package valuematch

import (
	"math"
	"sort"

	"github.com/rosterlab/tradescout/internal/domain/model"
)

// Default matching bounds.
const (
	defaultFairnessWindow = 0.25
	defaultReach          = 0.80
	defaultMin            = 0.75
	defaultMax            = 1.25
	defaultMaxPieces      = 3
)

// Bounds parameterizes a match: the single-asset fairness window and the
// greedy bundle's reach and acceptance band relative to target value.
type Bounds struct {
	FairnessWindow float64
	Reach          float64
	Min            float64
	Max            float64
	MaxPieces      int
}

// DefaultBounds returns the hand-tuned defaults.
func DefaultBounds() Bounds {
	return Bounds{
		FairnessWindow: defaultFairnessWindow,
		Reach:          defaultReach,
		Min:            defaultMin,
		Max:            defaultMax,
		MaxPieces:      defaultMaxPieces,
	}
}

// Closest returns the index of the pool asset whose value is closest to
// target, or -1 for an empty pool. Ties keep the earliest asset in input
// order, which is what makes repeated runs reproducible.
func Closest(pool []model.PricedAsset, target float64) int {
	best := -1
	bestDist := math.MaxFloat64
	for i, a := range pool {
		d := math.Abs(a.Value - target)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Build assembles a package from pool approximating target value.
//
// The single closest-value asset wins whenever it falls inside the fairness
// window, even if a multi-piece bundle would land tighter; only when no
// single asset qualifies does it greedily bundle the highest-value pieces
// until the total reaches Reach of target, accepting the bundle only inside
// [Min, Max] of target. Returns nil when nothing qualifies.
func Build(pool []model.PricedAsset, target float64, b Bounds) []model.PricedAsset {
	if len(pool) == 0 || target <= 0 {
		return nil
	}
	if i := Closest(pool, target); i >= 0 {
		if math.Abs(pool[i].Value-target)/target <= b.FairnessWindow {
			return []model.PricedAsset{pool[i]}
		}
	}

	byValue := make([]model.PricedAsset, len(pool))
	copy(byValue, pool)
	sort.SliceStable(byValue, func(i, j int) bool {
		return byValue[i].Value > byValue[j].Value
	})

	var bundle []model.PricedAsset
	var total float64
	for _, a := range byValue {
		if len(bundle) == b.MaxPieces {
			break
		}
		bundle = append(bundle, a)
		total += a.Value
		if total >= b.Reach*target {
			break
		}
	}
	if total >= b.Min*target && total <= b.Max*target {
		return bundle
	}
	return nil
}

// Total sums asset values.
func Total(assets []model.PricedAsset) float64 {
	var v float64
	for _, a := range assets {
		v += a.Value
	}
	return v
}
