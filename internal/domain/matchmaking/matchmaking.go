// Package matchmaking ranks candidate trading partners for a declared
// acquisition goal, independent of the finder's archetype pipeline. For each
// partner it also synthesizes a single best offer skeleton and an
// acceptance-probability estimate.
package matchmaking

import (
	"math"
	"sort"

	"github.com/rosterlab/tradescout/internal/domain/assetfilter"
	"github.com/rosterlab/tradescout/internal/domain/model"
	"github.com/rosterlab/tradescout/internal/domain/valuematch"
)

// Composite weights. They must sum to 1.
const (
	weightNeedOverlap        = 0.30
	weightTargetAvailability = 0.25
	weightBiasAlignment      = 0.20
	weightTradeFrequency     = 0.15
	weightOverpayWillingness = 0.10
)

// Scoring thresholds and increments.
const (
	neutralScore = 50.0

	overlapUserNeedBonus    = 15.0
	overlapPartnerNeedBonus = 10.0

	availabilityPerAsset = 20.0
	availabilityCap      = 80.0
	availabilityElite    = 20.0
	eliteQuality         = 4

	minSampleSize     = 3
	overpayBias       = 1.15
	undervalueBias    = 0.90
	biasOverpayBonus  = 20.0
	biasTargetBonus   = 15.0
	overpayThreshold  = 1.10
	fairnessTolerant  = 0.20
	starterPremium    = 1.10
	willingOverpay    = 25.0
	willingFairness   = 15.0
	willingStarter    = 10.0
	aggressionHigh    = 8.0
	aggressionMid     = 4.0
	aggressionLow     = 1.0
	frequencyHigh     = 85.0
	frequencyMid      = 65.0
	frequencyLow      = 45.0
	frequencyDormant  = 25.0
	defaultMaxResults = 5

	acceptBase        = 0.7
	acceptTightDelta  = 5.0
	acceptTightBonus  = 0.15
	acceptCloseDelta  = 10.0
	acceptCloseBonus  = 0.08
	acceptWideDelta   = 20.0
	acceptWidePenalty = 0.15
)

// Acceptance labels, bucketed from the adjusted estimate.
const (
	LabelStrong   = "Strong"
	LabelModerate = "Moderate"
	LabelLow      = "Low"
	LabelLongShot = "Long-Shot"
)

// Stats summarizes one matchmaking run.
type Stats struct {
	PartnersEvaluated int `json:"partners_evaluated"`
	OffersSynthesized int `json:"offers_synthesized"`
}

// Result is the structured output of FindBestPartners.
type Result struct {
	Goal            model.PartnerGoal    `json:"goal"`
	GoalDescription string               `json:"goal_description"`
	TargetPlayer    string               `json:"target_player,omitempty"`
	Partners        []model.PartnerMatch `json:"partners"`
	Stats           Stats                `json:"stats"`
}

// Matcher ranks partners. It holds only configuration, so one Matcher is
// safe for concurrent use across requests.
type Matcher struct {
	bounds     valuematch.Bounds
	maxResults int
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithBounds overrides the value-match bounds used for offer skeletons.
func WithBounds(b valuematch.Bounds) Option {
	return func(m *Matcher) {
		m.bounds = b
	}
}

// WithMaxResults overrides the default partner cap.
func WithMaxResults(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxResults = n
		}
	}
}

// New creates a Matcher with defaults, then applies options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		bounds:     valuematch.DefaultBounds(),
		maxResults: defaultMaxResults,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindBestPartners scores every other team against the declared goal and
// returns them ranked by match score. The requesting team is never a
// partner; a requesting team missing from the league context yields an
// empty-but-well-formed result. maxResults <= 0 keeps the configured cap.
func (m *Matcher) FindBestPartners(userTeamID string, goal model.PartnerGoal, targetPlayer string, league *model.LeagueContext, assets map[string][]model.PricedAsset, tendencies map[string]model.TendencyProfile, maxResults int) Result {
	profile := goalProfiles[goal]
	out := Result{
		Goal:            goal,
		GoalDescription: profile.description,
		TargetPlayer:    targetPlayer,
		Partners:        []model.PartnerMatch{},
	}
	if league == nil {
		return out
	}
	user, ok := league.Team(userTeamID)
	if !ok {
		return out
	}

	// A named target narrows scoring to its exact position and owner.
	var target *model.PricedAsset
	var targetOwner string
	if targetPlayer != "" {
		target, targetOwner = findAsset(targetPlayer, userTeamID, league, assets)
		if target != nil {
			profile.positions = []model.Position{target.Position}
			profile.pickFocus = false
		}
	}

	pool := assetfilter.Tradable(assets[userTeamID], user.Window, user.Surpluses, user.Needs)

	matches := make([]model.PartnerMatch, 0, len(league.Teams))
	for _, partner := range league.Teams {
		if partner.TeamID == userTeamID {
			continue
		}
		tendency, hasTendency := tendencies[partner.TeamID]
		ownsTarget := target != nil && partner.TeamID == targetOwner
		matching := matchingAssets(assets[partner.TeamID], profile)

		b := model.PartnerBreakdown{
			NeedOverlap:        needOverlap(user, partner),
			TargetAvailability: targetAvailability(ownsTarget, matching),
			BiasAlignment:      biasAlignment(tendency, hasTendency, profile.positions, target),
			TradeFrequency:     tradeFrequency(tendency, hasTendency),
			OverpayWillingness: overpayWillingness(tendency, hasTendency),
		}
		composite := weightNeedOverlap*b.NeedOverlap +
			weightTargetAvailability*b.TargetAvailability +
			weightBiasAlignment*b.BiasAlignment +
			weightTradeFrequency*b.TradeFrequency +
			weightOverpayWillingness*b.OverpayWillingness
		matchScore := int(math.Round(model.Clamp(composite, 0, 100)))

		offer := m.suggestOffer(pool, target, ownsTarget, matching, profile)
		estimate := acceptEstimate(matchScore, offer)

		matches = append(matches, model.PartnerMatch{
			TeamID:         partner.TeamID,
			MatchScore:     matchScore,
			Breakdown:      b,
			Offer:          offer,
			AcceptEstimate: estimate,
			AcceptLabel:    acceptLabel(estimate),
		})
	}

	evaluated := len(matches)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	limit := m.maxResults
	if maxResults > 0 {
		limit = maxResults
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}

	offers := 0
	for _, p := range matches {
		if p.Offer != nil {
			offers++
		}
	}
	out.Partners = matches
	out.Stats = Stats{PartnersEvaluated: evaluated, OffersSynthesized: offers}
	return out
}

// needOverlap rewards reciprocal need/surplus matches between the two teams.
func needOverlap(user, partner model.TeamDecisionProfile) float64 {
	s := neutralScore
	for _, need := range user.Needs {
		if partner.HasSurplus(need) {
			s += overlapUserNeedBonus
		}
	}
	for _, need := range partner.Needs {
		if user.HasSurplus(need) {
			s += overlapPartnerNeedBonus
		}
	}
	return model.Clamp(s, 0, 100)
}

// targetAvailability is 100 when the partner owns the named target, else
// scaled by the count and quality of goal-matching assets they hold.
func targetAvailability(ownsTarget bool, matching []model.PricedAsset) float64 {
	if ownsTarget {
		return 100
	}
	s := model.Clamp(float64(len(matching))*availabilityPerAsset, 0, availabilityCap)
	for _, a := range matching {
		if a.Tier.Quality() >= eliteQuality {
			s += availabilityElite
			break
		}
	}
	return model.Clamp(s, 0, 100)
}

// biasAlignment reads the manager's historical position bias, neutral until
// the sample size clears the confidence gate. Overpay tendencies at the
// relevant positions raise the score; undervaluing the named target's
// position also raises it (they part with it cheaply).
func biasAlignment(t model.TendencyProfile, hasTendency bool, positions []model.Position, target *model.PricedAsset) float64 {
	if !hasTendency || t.SampleSize < minSampleSize {
		return neutralScore
	}
	s := neutralScore
	for _, p := range positions {
		if t.PositionBias[p] >= overpayBias {
			s += biasOverpayBonus
		}
	}
	if target != nil && t.PositionBias[target.Position] > 0 && t.PositionBias[target.Position] <= undervalueBias {
		s += biasTargetBonus
	}
	return model.Clamp(s, 0, 100)
}

// tradeFrequency maps trades-per-season onto a coarse aggression tier,
// pulled toward neutral when the sample is thin.
func tradeFrequency(t model.TendencyProfile, hasTendency bool) float64 {
	if !hasTendency {
		return frequencyDormant
	}
	var tier float64
	switch {
	case t.TradesPerSeason >= aggressionHigh:
		tier = frequencyHigh
	case t.TradesPerSeason >= aggressionMid:
		tier = frequencyMid
	case t.TradesPerSeason >= aggressionLow:
		tier = frequencyLow
	default:
		tier = frequencyDormant
	}
	if t.SampleSize < minSampleSize {
		tier = (tier + neutralScore) / 2
	}
	return tier
}

// overpayWillingness combines the manager's historical overpay threshold,
// fairness tolerance, and starter premium.
func overpayWillingness(t model.TendencyProfile, hasTendency bool) float64 {
	if !hasTendency || t.SampleSize < minSampleSize {
		return neutralScore
	}
	s := neutralScore
	if t.OverpayThreshold >= overpayThreshold {
		s += willingOverpay
	}
	if t.FairnessTolerance >= fairnessTolerant {
		s += willingFairness
	}
	if t.StarterPremium >= starterPremium {
		s += willingStarter
	}
	return model.Clamp(s, 0, 100)
}

// suggestOffer synthesizes the single best offer skeleton: the named target
// when this partner owns it, otherwise their best goal-matching asset,
// against a value-matched package from the user's tradable pool.
func (m *Matcher) suggestOffer(pool []model.PricedAsset, target *model.PricedAsset, ownsTarget bool, matching []model.PricedAsset, profile goalProfile) *model.SuggestedOffer {
	var want *model.PricedAsset
	if ownsTarget {
		want = target
	} else {
		want = bestMatching(matching, profile)
	}
	if want == nil {
		return nil
	}
	gives := valuematch.Build(pool, want.Value, m.bounds)
	if gives == nil {
		return nil
	}
	given := valuematch.Total(gives)
	return &model.SuggestedOffer{
		Gives:         gives,
		Receives:      []model.PricedAsset{*want},
		ValueDeltaPct: (want.Value - given) / given * 100,
	}
}

// acceptEstimate derives an acceptance probability from the match score,
// adjusted by the offer's fairness delta: tight deltas raise it, gaps over
// 20% lower it.
func acceptEstimate(matchScore int, offer *model.SuggestedOffer) float64 {
	p := float64(matchScore) / 100 * acceptBase
	if offer != nil {
		switch d := math.Abs(offer.ValueDeltaPct); {
		case d <= acceptTightDelta:
			p += acceptTightBonus
		case d <= acceptCloseDelta:
			p += acceptCloseBonus
		case d > acceptWideDelta:
			p -= acceptWidePenalty
		}
	}
	return model.Clamp(p, 0, 1)
}

func acceptLabel(p float64) string {
	switch {
	case p >= 0.65:
		return LabelStrong
	case p >= 0.45:
		return LabelModerate
	case p >= 0.25:
		return LabelLow
	default:
		return LabelLongShot
	}
}

// matchingAssets keeps the partner assets the goal is shopping for.
func matchingAssets(assets []model.PricedAsset, profile goalProfile) []model.PricedAsset {
	out := make([]model.PricedAsset, 0, len(assets))
	for _, a := range assets {
		if a.Value < profile.minValue {
			continue
		}
		if profile.pickFocus {
			if a.Pick {
				out = append(out, a)
			}
			continue
		}
		if a.Pick {
			continue
		}
		if len(profile.positions) == 0 || containsPosition(profile.positions, a.Position) {
			out = append(out, a)
		}
	}
	return out
}

// bestMatching picks the highest-value goal-matching asset, preferring
// starters when the goal says so.
func bestMatching(matching []model.PricedAsset, profile goalProfile) *model.PricedAsset {
	var best *model.PricedAsset
	for i := range matching {
		a := &matching[i]
		if best == nil {
			best = a
			continue
		}
		if profile.preferStarters && a.Starter != best.Starter {
			if a.Starter {
				best = a
			}
			continue
		}
		if a.Value > best.Value {
			best = a
		}
	}
	return best
}

// findAsset locates a named player on any team other than the requester.
func findAsset(name, userTeamID string, league *model.LeagueContext, assets map[string][]model.PricedAsset) (*model.PricedAsset, string) {
	for _, t := range league.Teams {
		if t.TeamID == userTeamID {
			continue
		}
		for _, a := range assets[t.TeamID] {
			if a.Name == name {
				found := a
				return &found, t.TeamID
			}
		}
	}
	return nil, ""
}

func containsPosition(positions []model.Position, p model.Position) bool {
	for _, x := range positions {
		if x == p {
			return true
		}
	}
	return false
}
