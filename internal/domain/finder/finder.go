package finder

import (
	"sort"

	"github.com/rosterlab/tradescout/internal/domain/assetfilter"
	"github.com/rosterlab/tradescout/internal/domain/model"
	"github.com/rosterlab/tradescout/internal/domain/opportunity"
)

// Result is the structured output of one finder run.
type Result struct {
	Candidates             []model.TradeCandidate   `json:"candidates"`
	Opportunities          []model.TradeOpportunity `json:"opportunities"`
	PartnersEvaluated      int                      `json:"partners_evaluated"`
	RawCandidatesGenerated int                      `json:"raw_candidates_generated"`
	PrunedTo               int                      `json:"pruned_to"`
}

// Finder generates, scores, and prunes trade candidates. It holds only
// configuration, so one Finder is safe for concurrent use across requests.
type Finder struct {
	cfg Config
}

// New creates a Finder with the hand-tuned defaults, then applies options.
func New(opts ...Option) *Finder {
	f := &Finder{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// GenerateTradeCandidates runs the full pipeline for one requesting team:
// partner fan-out by precomputed fit, the five archetype generators in fixed
// order, five-factor scoring, dedup/prune/rank, and the always-on fallback
// opportunity pass. A user team missing from the league context yields an
// empty-but-well-formed result.
func (f *Finder) GenerateTradeCandidates(userTeamID string, league *model.LeagueContext, assets map[string][]model.PricedAsset, objective model.Objective, mode model.FinderMode) Result {
	empty := Result{
		Candidates:    []model.TradeCandidate{},
		Opportunities: []model.TradeOpportunity{},
	}
	if league == nil {
		return empty
	}
	user, ok := league.Team(userTeamID)
	if !ok {
		return empty
	}

	modeCfg := f.cfg.Fast
	if mode == model.ModeDeep {
		modeCfg = f.cfg.Deep
	}

	partners := f.selectPartners(userTeamID, league, modeCfg.MaxPartners)

	userView := teamView{
		profile:  user,
		assets:   assets[userTeamID],
		tradable: assetfilter.Tradable(assets[userTeamID], objective, user.Surpluses, user.Needs),
	}

	var raw []model.TradeCandidate
	for _, partner := range partners {
		partnerView := teamView{
			profile: partner,
			assets:  assets[partner.TeamID],
			// The partner's own window governs what they would part with.
			tradable: assetfilter.Tradable(assets[partner.TeamID], partner.Window, partner.Surpluses, partner.Needs),
		}
		g := genContext{user: userView, partner: partnerView, objective: objective, cfg: f.cfg}
		for _, gen := range generators {
			for _, c := range gen.fn(g) {
				if len(c.TeamA.Gives) == 0 || len(c.TeamA.Receives) == 0 {
					continue
				}
				score(&c, user, partner, objective, league.Scarcity)
				raw = append(raw, c)
			}
		}
	}

	pruned := prune(raw, f.cfg, modeCfg.MaxResults)

	return Result{
		Candidates:             pruned,
		Opportunities:          opportunity.Generate(user, league, assets),
		PartnersEvaluated:      len(partners),
		RawCandidatesGenerated: len(raw),
		PrunedTo:               len(pruned),
	}
}

// selectPartners returns the eligible partner profiles ordered by descending
// precomputed fit, capped to the mode's fan-out. The stable sort keeps league
// order on ties for reproducibility.
func (f *Finder) selectPartners(userTeamID string, league *model.LeagueContext, maxPartners int) []model.TeamDecisionProfile {
	eligible := make([]model.TeamDecisionProfile, 0, len(league.Teams))
	for _, t := range league.Teams {
		if t.TeamID == userTeamID {
			continue
		}
		if league.Fit(userTeamID, t.TeamID) >= f.cfg.MinPartnerFit {
			eligible = append(eligible, t)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return league.Fit(userTeamID, eligible[i].TeamID) > league.Fit(userTeamID, eligible[j].TeamID)
	})
	if len(eligible) > maxPartners {
		eligible = eligible[:maxPartners]
	}
	return eligible
}
