package finder

import (
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/rosterlab/tradescout/internal/domain/model"
	"github.com/rosterlab/tradescout/internal/domain/valuematch"
)

// Archetype-specific thresholds.
const (
	consolidationTargets  = 3
	consolidationMinSize  = 2
	pickForPlayerMinValue = 1500.0
	pickForPlayerTopN     = 5
	agingVeteranAge       = 26
	agingProducerAge      = 27
	futureLeaningAge      = 24
	arbitrageTargets      = 3
	injuryDiscountFactor  = 0.80
	producerQuality       = 3
	eliteTargetQuality    = 4
)

// teamView is one team's slice of the league for a single pairwise pass.
type teamView struct {
	profile  model.TeamDecisionProfile
	assets   []model.PricedAsset
	tradable []model.PricedAsset
}

// genContext carries everything an archetype generator needs for one
// user/partner pair.
type genContext struct {
	user      teamView
	partner   teamView
	objective model.Objective
	cfg       Config
}

// generatorFn is the shared signature of all archetype generators: a pure
// function from a pairwise context to zero or more raw candidates.
type generatorFn func(g genContext) []model.TradeCandidate

// generators is the fixed-order archetype registry. Order matters: it decides
// which of two structurally identical candidates survives deduplication.
var generators = []struct {
	archetype model.Archetype
	fn        generatorFn
}{
	{model.ArchetypePositionalSwap, generatePositionalSwap},
	{model.ArchetypeConsolidation, generateConsolidation},
	{model.ArchetypePickForPlayer, generatePickForPlayer},
	{model.ArchetypeWindowArbitrage, generateWindowArbitrage},
	{model.ArchetypeInjuryDiscount, generateInjuryDiscount},
}

// candidate assembles a mirrored two-sided candidate from the user's
// perspective. gives and receives must come from different teams' pools.
func (g genContext) candidate(arch model.Archetype, gives, receives []model.PricedAsset, rationale ...string) model.TradeCandidate {
	given := valuematch.Total(gives)
	var deltaPct float64
	if given > 0 {
		deltaPct = (valuematch.Total(receives) - given) / given * 100
	}
	return model.TradeCandidate{
		TradeID:   tradeID(g.user.profile.TeamID, g.partner.profile.TeamID, arch, gives, receives),
		Archetype: arch,
		TeamA: model.TradeSide{
			TeamID:   g.user.profile.TeamID,
			Gives:    gives,
			Receives: receives,
		},
		TeamB: model.TradeSide{
			TeamID:   g.partner.profile.TeamID,
			Gives:    receives,
			Receives: gives,
		},
		ValueDeltaPct: deltaPct,
		Rationale:     rationale,
	}
}

// tradeID derives a deterministic identifier from the pair, archetype, and
// asset-id sets so identical inputs always produce identical IDs.
func tradeID(userID, partnerID string, arch model.Archetype, gives, receives []model.PricedAsset) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID + "|" + partnerID + "|" + string(arch) + "|" + dedupKeyFor(gives, receives)))
	return fmt.Sprintf("t-%s-%s-%08x", userID, partnerID, h.Sum32())
}

// dedupKeyFor is the structural identity of a candidate from the user's side:
// sorted give ids, then sorted receive ids.
func dedupKeyFor(gives, receives []model.PricedAsset) string {
	ids := func(assets []model.PricedAsset) string {
		out := make([]string, len(assets))
		for i, a := range assets {
			out[i] = a.AssetID
		}
		sort.Strings(out)
		return strings.Join(out, "+")
	}
	return ids(gives) + "|" + ids(receives)
}

// withinFairness reports whether the relative gap between given and received
// value sits inside the fairness window.
func withinFairness(given, received float64, cfg Config) bool {
	if given <= 0 {
		return false
	}
	return math.Abs(received-given)/given <= cfg.FairnessWindow
}

// generatePositionalSwap pairs reciprocal need/surplus matches: the partner's
// best asset at a user need against the user's closest-value asset at a
// partner need.
func generatePositionalSwap(g genContext) []model.TradeCandidate {
	var out []model.TradeCandidate
	for _, userNeed := range g.user.profile.Needs {
		if !g.partner.profile.HasSurplus(userNeed) {
			continue
		}
		for _, partnerNeed := range g.partner.profile.Needs {
			if !g.user.profile.HasSurplus(partnerNeed) {
				continue
			}
			target := highestValueAt(g.partner.tradable, userNeed)
			if target == nil {
				continue
			}
			pool := playersAt(g.user.tradable, partnerNeed)
			i := valuematch.Closest(pool, target.Value)
			if i < 0 {
				continue
			}
			give := pool[i]
			if !withinFairness(give.Value, target.Value, g.cfg) {
				continue
			}
			out = append(out, g.candidate(model.ArchetypePositionalSwap,
				[]model.PricedAsset{give}, []model.PricedAsset{*target},
				fmt.Sprintf("fills your %s need from their surplus", userNeed),
				fmt.Sprintf("sends %s depth they are missing", partnerNeed),
			))
		}
	}
	return out
}

// generateConsolidation bundles the user's lesser pieces toward each of the
// partner's top elite assets.
func generateConsolidation(g genContext) []model.TradeCandidate {
	targets := make([]model.PricedAsset, 0, len(g.partner.tradable))
	for _, a := range g.partner.tradable {
		if !a.Pick && a.Tier.Quality() >= eliteTargetQuality {
			targets = append(targets, a)
		}
	}
	sort.SliceStable(targets, func(i, j int) bool { return targets[i].Value > targets[j].Value })
	if len(targets) > consolidationTargets {
		targets = targets[:consolidationTargets]
	}

	var out []model.TradeCandidate
	for _, target := range targets {
		pool := make([]model.PricedAsset, 0, len(g.user.tradable))
		for _, a := range g.user.tradable {
			if a.Tier.Quality() < target.Tier.Quality() {
				pool = append(pool, a)
			}
		}
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].Value > pool[j].Value })

		var bundle []model.PricedAsset
		var total float64
		for _, a := range pool {
			if len(bundle) == g.cfg.MaxBundleSize {
				break
			}
			bundle = append(bundle, a)
			total += a.Value
			if total >= g.cfg.BundleReach*target.Value {
				break
			}
		}
		if len(bundle) < consolidationMinSize {
			continue
		}
		if total < g.cfg.BundleMin*target.Value || total > g.cfg.BundleMax*target.Value {
			continue
		}
		out = append(out, g.candidate(model.ArchetypeConsolidation,
			bundle, []model.PricedAsset{target},
			fmt.Sprintf("consolidates %d pieces into %s", len(bundle), target.Name),
		))
	}
	return out
}

// generatePickForPlayer trades draft capital for producers when buying, and
// aging veterans for picks when selling.
func generatePickForPlayer(g genContext) []model.TradeCandidate {
	var out []model.TradeCandidate

	if g.objective == model.WinNow || g.objective == model.Balanced {
		players := make([]model.PricedAsset, 0, len(g.partner.tradable))
		for _, a := range g.partner.tradable {
			if !a.Pick && a.Tier.Quality() >= producerQuality {
				players = append(players, a)
			}
		}
		sort.SliceStable(players, func(i, j int) bool { return players[i].Value > players[j].Value })
		if len(players) > pickForPlayerTopN {
			players = players[:pickForPlayerTopN]
		}
		for _, pick := range g.user.tradable {
			if !pick.Pick || pick.Value < pickForPlayerMinValue {
				continue
			}
			i := valuematch.Closest(players, pick.Value)
			if i < 0 {
				continue
			}
			player := players[i]
			if !withinFairness(pick.Value, player.Value, g.cfg) {
				continue
			}
			out = append(out, g.candidate(model.ArchetypePickForPlayer,
				[]model.PricedAsset{pick}, []model.PricedAsset{player},
				fmt.Sprintf("converts draft capital into %s production now", player.Position),
			))
		}
	}

	if g.objective == model.Rebuild || g.objective == model.Balanced {
		picks := make([]model.PricedAsset, 0, len(g.partner.tradable))
		for _, a := range g.partner.tradable {
			if a.Pick {
				picks = append(picks, a)
			}
		}
		for _, vet := range g.user.tradable {
			if vet.Pick || vet.Age < agingVeteranAge || vet.Value < pickForPlayerMinValue {
				continue
			}
			i := valuematch.Closest(picks, vet.Value)
			if i < 0 {
				continue
			}
			pick := picks[i]
			if !withinFairness(vet.Value, pick.Value, g.cfg) {
				continue
			}
			out = append(out, g.candidate(model.ArchetypePickForPlayer,
				[]model.PricedAsset{vet}, []model.PricedAsset{pick},
				fmt.Sprintf("sells %s before age-%d decline", vet.Name, vet.Age),
			))
		}
	}
	return out
}

// generateWindowArbitrage fires only on opposite competitive windows: the
// contender side ships future-leaning assets for the rebuilder's aging
// producers. No fairness-window filter here; window mismatches justify gaps.
func generateWindowArbitrage(g genContext) []model.TradeCandidate {
	userWindow := g.user.profile.Window
	partnerWindow := g.partner.profile.Window

	var out []model.TradeCandidate
	switch {
	case userWindow == model.WinNow && partnerWindow == model.Rebuild:
		futures := futureLeaning(g.user.tradable)
		for _, producer := range agingProducers(g.partner.tradable) {
			bundle := valuematch.Build(futures, producer.Value, g.cfg.bounds())
			if bundle == nil {
				continue
			}
			out = append(out, g.candidate(model.ArchetypeWindowArbitrage,
				bundle, []model.PricedAsset{producer},
				fmt.Sprintf("%s produces now; they want futures", producer.Name),
			))
		}
	case userWindow == model.Rebuild && partnerWindow == model.WinNow:
		futures := futureLeaning(g.partner.tradable)
		for _, producer := range agingProducers(g.user.tradable) {
			bundle := valuematch.Build(futures, producer.Value, g.cfg.bounds())
			if bundle == nil {
				continue
			}
			out = append(out, g.candidate(model.ArchetypeWindowArbitrage,
				[]model.PricedAsset{producer}, bundle,
				fmt.Sprintf("cashes out %s to a contender for futures", producer.Name),
			))
		}
	}
	return out
}

// generateInjuryDiscount matches the user's closest-value asset against each
// injured partner producer at an 80%-of-book discount.
func generateInjuryDiscount(g genContext) []model.TradeCandidate {
	var out []model.TradeCandidate
	for _, hurt := range g.partner.tradable {
		if !hurt.Injured || hurt.Tier.Quality() < producerQuality {
			continue
		}
		discounted := injuryDiscountFactor * hurt.Value
		i := valuematch.Closest(g.user.tradable, discounted)
		if i < 0 {
			continue
		}
		give := g.user.tradable[i]
		if math.Abs(give.Value-discounted)/discounted > g.cfg.FairnessWindow {
			continue
		}
		out = append(out, g.candidate(model.ArchetypeInjuryDiscount,
			[]model.PricedAsset{give}, []model.PricedAsset{hurt},
			fmt.Sprintf("buys %s low while the injury suppresses price", hurt.Name),
		))
	}
	return out
}

func highestValueAt(pool []model.PricedAsset, p model.Position) *model.PricedAsset {
	var best *model.PricedAsset
	for i := range pool {
		a := &pool[i]
		if a.Pick || a.Position != p {
			continue
		}
		if best == nil || a.Value > best.Value {
			best = a
		}
	}
	return best
}

func playersAt(pool []model.PricedAsset, p model.Position) []model.PricedAsset {
	out := make([]model.PricedAsset, 0, len(pool))
	for _, a := range pool {
		if !a.Pick && a.Position == p {
			out = append(out, a)
		}
	}
	return out
}

// futureLeaning keeps picks and young players.
func futureLeaning(pool []model.PricedAsset) []model.PricedAsset {
	out := make([]model.PricedAsset, 0, len(pool))
	for _, a := range pool {
		if a.Pick || (a.Age > 0 && a.Age <= futureLeaningAge) {
			out = append(out, a)
		}
	}
	return out
}

// agingProducers keeps the top veteran producers, capped to keep the
// archetype's fan-out bounded.
func agingProducers(pool []model.PricedAsset) []model.PricedAsset {
	out := make([]model.PricedAsset, 0, len(pool))
	for _, a := range pool {
		if !a.Pick && a.Age >= agingProducerAge && a.Tier.Quality() >= producerQuality {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if len(out) > arbitrageTargets {
		out = out[:arbitrageTargets]
	}
	return out
}
