// Package opportunity produces the softer, non-binding fallback suggestions
// that accompany every finder run, so a requesting team never sees an empty
// recommendation screen.
package opportunity

import (
	"fmt"
	"sort"

	"github.com/rosterlab/tradescout/internal/domain/assetfilter"
	"github.com/rosterlab/tradescout/internal/domain/model"
)

// Fallback thresholds.
const (
	pickInflationGate   = 1.2
	consolidationReach  = 0.60
	eliteQuality        = 4
	volatileQuality     = 3
	monitorCap          = 3
	maxNamedPlayers     = 3
	activeTraderFlag    = "active_trader"
	needFitConfidence   = 0.70
	consolidConfidence  = 0.60
	volatilityConfid    = 0.50
	arbitrageConfidence = 0.55
	monitorConfidence   = 0.30
)

// Generate runs the five ordered fallback checks. Each check emits at most
// one opportunity; the monitor check always emits one.
func Generate(user model.TeamDecisionProfile, league *model.LeagueContext, assets map[string][]model.PricedAsset) []model.TradeOpportunity {
	out := make([]model.TradeOpportunity, 0, 5)
	partners := otherTeams(user.TeamID, league)
	tradable := assetfilter.Tradable(assets[user.TeamID], user.Window, user.Surpluses, user.Needs)

	if op, ok := needFit(user, partners, assets); ok {
		out = append(out, op)
	}
	if op, ok := consolidation(tradable, partners, assets); ok {
		out = append(out, op)
	}
	if op, ok := volatilitySwap(partners, assets); ok {
		out = append(out, op)
	}
	if op, ok := pickArbitrage(user, league, assets); ok {
		out = append(out, op)
	}
	out = append(out, monitor(user, partners, assets))
	return out
}

// needFit flags the first partner whose declared need overlaps a user
// surplus: the user holds exactly what they are shopping for.
func needFit(user model.TeamDecisionProfile, partners []model.TeamDecisionProfile, assets map[string][]model.PricedAsset) (model.TradeOpportunity, bool) {
	for _, p := range partners {
		for _, need := range p.Needs {
			if !user.HasSurplus(need) {
				continue
			}
			names := topNamesAt(assets[user.TeamID], need, maxNamedPlayers)
			return model.TradeOpportunity{
				Type:            model.OpportunityNeedFit,
				TeamID:          p.TeamID,
				Summary:         fmt.Sprintf("%s needs %s and you have a surplus there", p.TeamID, need),
				RelevantPlayers: names,
				Confidence:      needFitConfidence,
			}, true
		}
	}
	return model.TradeOpportunity{}, false
}

// consolidation flags the first elite partner asset reachable with a 2-3
// piece bundle covering at least 60% of its value.
func consolidation(tradable []model.PricedAsset, partners []model.TeamDecisionProfile, assets map[string][]model.PricedAsset) (model.TradeOpportunity, bool) {
	if len(tradable) < 2 {
		return model.TradeOpportunity{}, false
	}
	byValue := make([]model.PricedAsset, len(tradable))
	copy(byValue, tradable)
	sort.SliceStable(byValue, func(i, j int) bool { return byValue[i].Value > byValue[j].Value })
	if len(byValue) > 3 {
		byValue = byValue[:3]
	}
	reach := totalValue(byValue)

	for _, p := range partners {
		for _, a := range assets[p.TeamID] {
			if a.Pick || a.Tier.Quality() < eliteQuality {
				continue
			}
			if reach >= consolidationReach*a.Value {
				names := []string{a.Name}
				for _, piece := range byValue {
					names = append(names, piece.Name)
				}
				return model.TradeOpportunity{
					Type:            model.OpportunityConsolidation,
					TeamID:          p.TeamID,
					Summary:         fmt.Sprintf("a 2-3 piece package puts %s in reach", a.Name),
					RelevantPlayers: names,
					Confidence:      consolidConfidence,
				}, true
			}
		}
	}
	return model.TradeOpportunity{}, false
}

// volatilitySwap flags active traders or rebuilders sitting on injured
// producers whose price is depressed.
func volatilitySwap(partners []model.TeamDecisionProfile, assets map[string][]model.PricedAsset) (model.TradeOpportunity, bool) {
	for _, p := range partners {
		if !p.HasFlag(activeTraderFlag) && p.Window != model.Rebuild {
			continue
		}
		for _, a := range assets[p.TeamID] {
			if a.Injured && a.Tier.Quality() >= volatileQuality {
				return model.TradeOpportunity{
					Type:            model.OpportunityVolatility,
					TeamID:          p.TeamID,
					Summary:         fmt.Sprintf("%s is holding %s through an injury and trades often", p.TeamID, a.Name),
					RelevantPlayers: []string{a.Name},
					Confidence:      volatilityConfid,
				}, true
			}
		}
	}
	return model.TradeOpportunity{}, false
}

// pickArbitrage surfaces the user's own picks as sell-high assets when the
// league-wide pick market is inflated.
func pickArbitrage(user model.TeamDecisionProfile, league *model.LeagueContext, assets map[string][]model.PricedAsset) (model.TradeOpportunity, bool) {
	if league.PickInflation < pickInflationGate {
		return model.TradeOpportunity{}, false
	}
	picks := make([]model.PricedAsset, 0, 4)
	for _, a := range assets[user.TeamID] {
		if a.Pick {
			picks = append(picks, a)
		}
	}
	if len(picks) == 0 {
		return model.TradeOpportunity{}, false
	}
	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Value > picks[j].Value })
	if len(picks) > maxNamedPlayers {
		picks = picks[:maxNamedPlayers]
	}
	names := make([]string, len(picks))
	for i, p := range picks {
		names[i] = p.Name
	}
	return model.TradeOpportunity{
		Type:            model.OpportunityPickArbitrage,
		Summary:         fmt.Sprintf("pick values are inflated league-wide (%.2fx); sell into it", league.PickInflation),
		RelevantPlayers: names,
		Confidence:      arbitrageConfidence,
	}, true
}

// monitor is the always-emitted watch-list: notable partner assets worth
// tracking, deduplicated by name and capped, with generic need-based
// placeholders when nothing concrete qualifies.
func monitor(user model.TeamDecisionProfile, partners []model.TeamDecisionProfile, assets map[string][]model.PricedAsset) model.TradeOpportunity {
	seen := make(map[string]struct{})
	names := make([]string, 0, monitorCap)
	for _, p := range partners {
		for _, a := range assetfilter.Targetable(assets[p.TeamID], user.Needs) {
			if a.Pick || a.Tier.Quality() < eliteQuality {
				continue
			}
			if _, dup := seen[a.Name]; dup {
				continue
			}
			seen[a.Name] = struct{}{}
			names = append(names, a.Name)
			if len(names) == monitorCap {
				break
			}
		}
		if len(names) == monitorCap {
			break
		}
	}
	if len(names) == 0 {
		for _, need := range user.Needs {
			names = append(names, fmt.Sprintf("the %s market", need))
			if len(names) == monitorCap {
				break
			}
		}
	}
	return model.TradeOpportunity{
		Type:            model.OpportunityMonitor,
		Summary:         "keep these on the watch list until prices move",
		RelevantPlayers: names,
		Confidence:      monitorConfidence,
	}
}

func otherTeams(userID string, league *model.LeagueContext) []model.TeamDecisionProfile {
	out := make([]model.TeamDecisionProfile, 0, len(league.Teams))
	for _, t := range league.Teams {
		if t.TeamID != userID {
			out = append(out, t)
		}
	}
	return out
}

func topNamesAt(assets []model.PricedAsset, p model.Position, n int) []string {
	matches := make([]model.PricedAsset, 0, len(assets))
	for _, a := range assets {
		if !a.Pick && a.Position == p {
			matches = append(matches, a)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Value > matches[j].Value })
	if len(matches) > n {
		matches = matches[:n]
	}
	names := make([]string, len(matches))
	for i, a := range matches {
		names[i] = a.Name
	}
	return names
}

func totalValue(assets []model.PricedAsset) float64 {
	var v float64
	for _, a := range assets {
		v += a.Value
	}
	return v
}
