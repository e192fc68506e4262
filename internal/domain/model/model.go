// Package model contains the common types shared by the trade engine:
// priced assets, team decision profiles, league context, and the candidate,
// opportunity, and partner records returned to callers.
package model

import "sort"

// Position is a roster position bucket.
type Position string

// Roster positions used by decision profiles and market signals.
const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DST Position = "DST"
)

// Tier is the coarse asset-quality bucket supplied by the valuation feed.
// Tier0 is untouchable, Tier5 is filler.
type Tier int

// Asset quality tiers, best to worst.
const (
	Tier0 Tier = iota // untouchable
	Tier1
	Tier2
	Tier3
	Tier4
	Tier5 // filler
)

// Quality maps a tier onto an ascending quality scale (Tier0 -> 5, Tier5 -> 0)
// so threshold comparisons read naturally: higher is better.
func (t Tier) Quality() int {
	return int(Tier5 - t)
}

// Objective is a team's competitive window / stated trade objective.
type Objective string

// Competitive windows.
const (
	WinNow   Objective = "WIN_NOW"
	Rebuild  Objective = "REBUILD"
	Balanced Objective = "BALANCED"
)

// FinderMode selects the partner fan-out and result cap for a finder run.
type FinderMode string

// Finder modes.
const (
	ModeFast FinderMode = "FAST"
	ModeDeep FinderMode = "DEEP"
)

// PricedAsset is an immutable snapshot of one tradable asset, owned by the
// valuation feed and read-only to the engine.
type PricedAsset struct {
	AssetID   string   `json:"asset_id"`
	Name      string   `json:"name"`
	Value     float64  `json:"value"`
	Position  Position `json:"position"`
	Tier      Tier     `json:"tier"`
	Age       int      `json:"age,omitempty"`
	Starter   bool     `json:"is_starter"`
	Pick      bool     `json:"is_pick,omitempty"`
	PickYear  int      `json:"pick_year,omitempty"`
	PickRound int      `json:"pick_round,omitempty"`
	Injured   bool     `json:"injury_flag,omitempty"`
}

// CoreLocked reports whether the asset is a starter at one of the top two
// tiers. Core-locked assets are never tradable away.
func (a PricedAsset) CoreLocked() bool {
	return a.Starter && a.Tier <= Tier1
}

// TeamDecisionProfile is one team's precomputed decision context for a single
// scoring request.
type TeamDecisionProfile struct {
	TeamID         string               `json:"team_id"`
	Needs          []Position           `json:"needs"`
	Surpluses      []Position           `json:"surpluses"`
	Window         Objective            `json:"competitive_window"`
	StarterQuality map[Position]float64 `json:"starter_quality_by_position"`
	Flags          []string             `json:"flags,omitempty"`
}

// HasNeed reports whether p is one of the team's declared needs.
func (t TeamDecisionProfile) HasNeed(p Position) bool {
	for _, n := range t.Needs {
		if n == p {
			return true
		}
	}
	return false
}

// HasSurplus reports whether p is one of the team's declared surpluses.
func (t TeamDecisionProfile) HasSurplus(p Position) bool {
	for _, s := range t.Surpluses {
		if s == p {
			return true
		}
	}
	return false
}

// HasFlag reports whether the profile carries the named behavioral flag.
func (t TeamDecisionProfile) HasFlag(flag string) bool {
	for _, f := range t.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// LeagueContext bundles the per-team decision profiles with league-wide
// market signals and the precomputed pairwise partner-fit scores.
//
// Teams is ordered; that order is the deterministic tie-break for every
// "closest value" and equal-score comparison downstream.
type LeagueContext struct {
	Teams         []TeamDecisionProfile `json:"teams"`
	Scarcity      map[Position]float64  `json:"positional_scarcity"`
	PickInflation float64               `json:"pick_value_inflation"`
	PartnerFit    map[string]float64    `json:"partner_fit"`
}

// Team returns the profile for id and whether it exists.
func (lc *LeagueContext) Team(id string) (TeamDecisionProfile, bool) {
	for _, t := range lc.Teams {
		if t.TeamID == id {
			return t, true
		}
	}
	return TeamDecisionProfile{}, false
}

// FitKey builds the lookup key for the pairwise partner-fit map.
func FitKey(userID, partnerID string) string {
	return userID + "|" + partnerID
}

// Fit returns the precomputed partner-fit score between two teams, zero when
// no score was supplied.
func (lc *LeagueContext) Fit(userID, partnerID string) float64 {
	return lc.PartnerFit[FitKey(userID, partnerID)]
}

// Archetype identifies which generation strategy produced a candidate.
type Archetype string

// Candidate generation archetypes, in fixed registry order.
const (
	ArchetypePositionalSwap  Archetype = "POSITIONAL_SWAP"
	ArchetypeConsolidation   Archetype = "CONSOLIDATION"
	ArchetypePickForPlayer   Archetype = "PICK_FOR_PLAYER"
	ArchetypeWindowArbitrage Archetype = "WINDOW_ARBITRAGE"
	ArchetypeInjuryDiscount  Archetype = "INJURY_DISCOUNT"
)

// TradeSide is one team's half of a two-sided candidate.
type TradeSide struct {
	TeamID   string        `json:"team_id"`
	Gives    []PricedAsset `json:"gives"`
	Receives []PricedAsset `json:"receives"`
}

// ScoreBreakdown carries the five clamped sub-scores behind a finder score.
type ScoreBreakdown struct {
	StarterUpgrade     float64 `json:"starter_upgrade"`
	ObjectiveAlignment float64 `json:"objective_alignment"`
	ValueFairness      float64 `json:"value_fairness"`
	RosterFit          float64 `json:"roster_fit"`
	ScarcityBonus      float64 `json:"scarcity_bonus"`
}

// TradeCandidate is a concrete two-sided trade proposal. TeamA is always the
// requesting team. The sides mirror each other: TeamA.Gives == TeamB.Receives
// and TeamA.Receives == TeamB.Gives.
type TradeCandidate struct {
	TradeID       string         `json:"trade_id"`
	TeamA         TradeSide      `json:"team_a"`
	TeamB         TradeSide      `json:"team_b"`
	Archetype     Archetype      `json:"archetype"`
	FinderScore   int            `json:"finder_score"`
	ValueDeltaPct float64        `json:"value_delta_pct"`
	Breakdown     ScoreBreakdown `json:"score_breakdown"`
	Rationale     []string       `json:"why_this_exists"`
}

// Mirrored reports whether the two sides agree on asset-id sets.
func (c TradeCandidate) Mirrored() bool {
	return sameAssetIDs(c.TeamA.Gives, c.TeamB.Receives) &&
		sameAssetIDs(c.TeamA.Receives, c.TeamB.Gives)
}

func sameAssetIDs(a, b []PricedAsset) bool {
	if len(a) != len(b) {
		return false
	}
	ids := func(assets []PricedAsset) []string {
		out := make([]string, len(assets))
		for i, x := range assets {
			out[i] = x.AssetID
		}
		sort.Strings(out)
		return out
	}
	ia, ib := ids(a), ids(b)
	for i := range ia {
		if ia[i] != ib[i] {
			return false
		}
	}
	return true
}

// OpportunityType classifies a fallback opportunity.
type OpportunityType string

// Fallback opportunity types, in check order.
const (
	OpportunityNeedFit       OpportunityType = "NEED_FIT"
	OpportunityConsolidation OpportunityType = "CONSOLIDATION"
	OpportunityVolatility    OpportunityType = "VOLATILITY_SWAP"
	OpportunityPickArbitrage OpportunityType = "PICK_ARBITRAGE"
	OpportunityMonitor       OpportunityType = "MONITOR"
)

// TradeOpportunity is a softer, non-binding suggestion not tied to a specific
// two-sided trade.
type TradeOpportunity struct {
	Type            OpportunityType `json:"type"`
	TeamID          string          `json:"team_id,omitempty"`
	Summary         string          `json:"summary"`
	RelevantPlayers []string        `json:"relevant_players"`
	Confidence      float64         `json:"confidence"`
}

// TendencyProfile is a manager's historical bias statistics. SampleSize gates
// whether the biases are trusted at all.
type TendencyProfile struct {
	TeamID            string               `json:"team_id"`
	SampleSize        int                  `json:"sample_size"`
	PositionBias      map[Position]float64 `json:"position_bias"`
	FairnessTolerance float64              `json:"fairness_tolerance"`
	OverpayThreshold  float64              `json:"overpay_threshold"`
	ConsolidationBias float64              `json:"consolidation_bias"`
	RiskTolerance     float64              `json:"risk_tolerance"`
	TradesPerSeason   float64              `json:"trades_per_season"`
	StarterPremium    float64              `json:"starter_premium"`
}

// PartnerGoal is a declared acquisition goal driving partner matchmaking.
type PartnerGoal string

// The nine matchmaking goals.
const (
	GoalUpgradeQB      PartnerGoal = "UPGRADE_QB"
	GoalUpgradeRB      PartnerGoal = "UPGRADE_RB"
	GoalUpgradeWR      PartnerGoal = "UPGRADE_WR"
	GoalUpgradeTE      PartnerGoal = "UPGRADE_TE"
	GoalAcquirePicks   PartnerGoal = "ACQUIRE_PICKS"
	GoalAcquireYouth   PartnerGoal = "ACQUIRE_YOUTH"
	GoalWinNowPush     PartnerGoal = "WIN_NOW_PUSH"
	GoalSellVeterans   PartnerGoal = "SELL_VETERANS"
	GoalSpecificPlayer PartnerGoal = "SPECIFIC_PLAYER"
)

// PartnerBreakdown carries the five sub-scores behind a match score.
type PartnerBreakdown struct {
	NeedOverlap        float64 `json:"need_overlap"`
	TargetAvailability float64 `json:"target_availability"`
	BiasAlignment      float64 `json:"bias_alignment"`
	TradeFrequency     float64 `json:"trade_frequency"`
	OverpayWillingness float64 `json:"overpay_willingness"`
}

// SuggestedOffer is the single best offer skeleton synthesized for a partner.
type SuggestedOffer struct {
	Gives         []PricedAsset `json:"gives"`
	Receives      []PricedAsset `json:"receives"`
	ValueDeltaPct float64       `json:"value_delta_pct"`
}

// PartnerMatch is one ranked candidate trading partner.
type PartnerMatch struct {
	TeamID         string           `json:"team_id"`
	MatchScore     int              `json:"match_score"`
	Breakdown      PartnerBreakdown `json:"score_breakdown"`
	Offer          *SuggestedOffer  `json:"suggested_offer,omitempty"`
	AcceptEstimate float64          `json:"accept_estimate"`
	AcceptLabel    string           `json:"accept_label"`
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
