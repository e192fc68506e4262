package finder

import (
	"math"

	"github.com/rosterlab/tradescout/internal/domain/model"
)

// Composite weights. They must sum to 1.
const (
	weightStarterUpgrade     = 0.35
	weightObjectiveAlignment = 0.25
	weightValueFairness      = 0.20
	weightRosterFit          = 0.10
	weightScarcityBonus      = 0.10
)

// Sub-score increments.
const (
	upgradeTierBonus    = 30.0
	upgradeNeedBonus    = 40.0
	upgradeWeakPosBonus = 30.0
	weakStarterQuality  = 60.0

	objectiveBase      = 50.0
	winNowProducer     = 25.0
	winNowSellPick     = 15.0
	winNowReceivePick  = -10.0
	rebuildReceivePick = 25.0
	rebuildYoungAsset  = 20.0
	rebuildSellVet     = 20.0
	youngAssetAge      = 24
	agingVetAge        = 27

	rosterFitBase       = 50.0
	rosterHolePenalty   = 40.0
	rosterPartnerBonus  = 30.0
	scarcityHighBonus   = 30.0
	scarcityMediumBonus = 15.0
	scarcityHigh        = 1.5
	scarcityMedium      = 1.2
)

// score fills in the breakdown and composite finder score for a raw
// candidate. Every sub-score is clamped to [0,100] before weighting.
func score(c *model.TradeCandidate, user, partner model.TeamDecisionProfile, objective model.Objective, scarcity map[model.Position]float64) {
	b := model.ScoreBreakdown{
		StarterUpgrade:     starterUpgrade(c, user),
		ObjectiveAlignment: objectiveAlignment(c, objective),
		ValueFairness:      valueFairness(c.ValueDeltaPct),
		RosterFit:          rosterFit(c, user, partner),
		ScarcityBonus:      scarcityBonus(c, scarcity),
	}
	c.Breakdown = b
	composite := weightStarterUpgrade*b.StarterUpgrade +
		weightObjectiveAlignment*b.ObjectiveAlignment +
		weightValueFairness*b.ValueFairness +
		weightRosterFit*b.RosterFit +
		weightScarcityBonus*b.ScarcityBonus
	c.FinderScore = int(math.Round(model.Clamp(composite, 0, 100)))
}

func starterUpgrade(c *model.TradeCandidate, user model.TeamDecisionProfile) float64 {
	var s float64
	if maxQuality(c.TeamA.Receives) > maxQuality(c.TeamA.Gives) {
		s += upgradeTierBonus
	}
	needFilled := false
	weakUpgraded := false
	for _, a := range c.TeamA.Receives {
		if a.Pick {
			continue
		}
		if !needFilled && user.HasNeed(a.Position) {
			needFilled = true
			s += upgradeNeedBonus
		}
		if !weakUpgraded && a.Tier.Quality() >= producerQuality {
			if q, ok := user.StarterQuality[a.Position]; ok && q < weakStarterQuality {
				weakUpgraded = true
				s += upgradeWeakPosBonus
			}
		}
	}
	return model.Clamp(s, 0, 100)
}

func objectiveAlignment(c *model.TradeCandidate, objective model.Objective) float64 {
	s := objectiveBase
	switch objective {
	case model.WinNow:
		for _, a := range c.TeamA.Receives {
			if a.Pick {
				s += winNowReceivePick
			} else if a.Tier.Quality() >= producerQuality {
				s += winNowProducer
			}
		}
		for _, a := range c.TeamA.Gives {
			if a.Pick {
				s += winNowSellPick
			}
		}
	case model.Rebuild:
		for _, a := range c.TeamA.Receives {
			if a.Pick {
				s += rebuildReceivePick
			} else if a.Age > 0 && a.Age <= youngAssetAge {
				s += rebuildYoungAsset
			}
		}
		for _, a := range c.TeamA.Gives {
			if !a.Pick && a.Age >= agingVetAge {
				s += rebuildSellVet
			}
		}
	case model.Balanced:
		// Flat: a balanced objective has no directional preference.
	}
	return model.Clamp(s, 0, 100)
}

// valueFairness is tiered by the absolute relative value delta.
func valueFairness(deltaPct float64) float64 {
	switch d := math.Abs(deltaPct); {
	case d <= 5:
		return 100
	case d <= 10:
		return 85
	case d <= 15:
		return 70
	case d <= 20:
		return 55
	case d <= 25:
		return 40
	default:
		return 20
	}
}

func rosterFit(c *model.TradeCandidate, user, partner model.TeamDecisionProfile) float64 {
	s := rosterFitBase
	for _, a := range c.TeamA.Gives {
		if !a.Pick && a.Starter && !user.HasSurplus(a.Position) && user.HasNeed(a.Position) {
			s -= rosterHolePenalty
			break
		}
	}
	for _, a := range c.TeamB.Receives {
		if !a.Pick && partner.HasNeed(a.Position) {
			s += rosterPartnerBonus
			break
		}
	}
	return model.Clamp(s, 0, 100)
}

func scarcityBonus(c *model.TradeCandidate, scarcity map[model.Position]float64) float64 {
	var s float64
	for _, a := range c.TeamA.Receives {
		if a.Pick {
			continue
		}
		switch idx := scarcity[a.Position]; {
		case idx >= scarcityHigh:
			s += scarcityHighBonus
		case idx >= scarcityMedium:
			s += scarcityMediumBonus
		}
	}
	return model.Clamp(s, 0, 100)
}

func maxQuality(assets []model.PricedAsset) int {
	best := -1
	for _, a := range assets {
		if q := a.Tier.Quality(); q > best {
			best = q
		}
	}
	return best
}
