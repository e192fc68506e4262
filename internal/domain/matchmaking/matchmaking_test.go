package matchmaking_test

import (
	"testing"

	"github.com/rosterlab/tradescout/internal/domain/matchmaking"
	"github.com/rosterlab/tradescout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func matchLeague() (*model.LeagueContext, map[string][]model.PricedAsset, map[string]model.TendencyProfile) {
	league := &model.LeagueContext{
		Teams: []model.TeamDecisionProfile{
			{TeamID: "team-u", Needs: []model.Position{model.RB}, Surpluses: []model.Position{model.WR}, Window: model.Balanced},
			{TeamID: "team-a", Needs: []model.Position{model.WR}, Surpluses: []model.Position{model.RB}, Window: model.WinNow},
			{TeamID: "team-b", Window: model.Balanced},
			{TeamID: "team-c", Window: model.Balanced},
		},
	}
	assets := map[string][]model.PricedAsset{
		"team-u": {
			{AssetID: "wr-u", Name: "WR Chip", Value: 2800, Position: model.WR, Tier: model.Tier2, Starter: true},
		},
		"team-a": {
			{AssetID: "rb-a", Name: "Bell Cow", Value: 3000, Position: model.RB, Tier: model.Tier1, Starter: true},
		},
		"team-b": {
			{AssetID: "rb-b", Name: "Mid Back", Value: 2100, Position: model.RB, Tier: model.Tier3},
		},
	}
	tendencies := map[string]model.TendencyProfile{
		"team-a": {
			TeamID:            "team-a",
			SampleSize:        10,
			PositionBias:      map[model.Position]float64{model.RB: 1.2},
			TradesPerSeason:   9,
			OverpayThreshold:  1.15,
			FairnessTolerance: 0.25,
			StarterPremium:    1.2,
		},
		"team-b": {
			TeamID:          "team-b",
			SampleSize:      2,
			TradesPerSeason: 9,
		},
	}
	return league, assets, tendencies
}

func TestFindBestPartners(t *testing.T) {
	Convey("Given a league with one strong and two weak partners", t, func() {
		league, assets, tendencies := matchLeague()
		m := matchmaking.New()

		Convey("When partners are ranked for an RB upgrade", func() {
			res := m.FindBestPartners("team-u", model.GoalUpgradeRB, "", league, assets, tendencies, 0)

			Convey("Then all partners are scored and ranked, requester excluded", func() {
				So(res.Stats.PartnersEvaluated, ShouldEqual, 3)
				So(res.Partners, ShouldHaveLength, 3)
				So(res.Partners[0].TeamID, ShouldEqual, "team-a")
				for _, p := range res.Partners {
					So(p.TeamID, ShouldNotEqual, "team-u")
				}
			})

			Convey("And the reciprocal-need partner leads with a synthesized offer", func() {
				top := res.Partners[0]
				So(top.MatchScore, ShouldEqual, 69)
				So(top.Breakdown.NeedOverlap, ShouldEqual, 75)
				So(top.Breakdown.TradeFrequency, ShouldEqual, 85)
				So(top.Breakdown.OverpayWillingness, ShouldEqual, 100)
				So(top.Offer, ShouldNotBeNil)
				So(top.Offer.Receives[0].Name, ShouldEqual, "Bell Cow")
				So(top.Offer.Gives[0].AssetID, ShouldEqual, "wr-u")
				So(top.AcceptLabel, ShouldEqual, matchmaking.LabelModerate)
			})

			Convey("And a thin tendency sample falls back to neutral bias and halved frequency", func() {
				var b *model.PartnerMatch
				for i := range res.Partners {
					if res.Partners[i].TeamID == "team-b" {
						b = &res.Partners[i]
					}
				}
				So(b, ShouldNotBeNil)
				So(b.Breakdown.BiasAlignment, ShouldEqual, 50)
				So(b.Breakdown.OverpayWillingness, ShouldEqual, 50)
				So(b.Breakdown.TradeFrequency, ShouldEqual, 67.5)
			})

			Convey("And the asset-poor partner lands at the bottom as a long shot", func() {
				last := res.Partners[len(res.Partners)-1]
				So(last.TeamID, ShouldEqual, "team-c")
				So(last.Breakdown.TargetAvailability, ShouldEqual, 0)
				So(last.Offer, ShouldBeNil)
				So(last.AcceptLabel, ShouldEqual, matchmaking.LabelLongShot)
			})

			Convey("And only offers that cleared the value match are counted", func() {
				So(res.Stats.OffersSynthesized, ShouldEqual, 1)
			})
		})

		Convey("When a result cap is requested", func() {
			res := m.FindBestPartners("team-u", model.GoalUpgradeRB, "", league, assets, tendencies, 1)

			Convey("Then the cap applies after evaluation", func() {
				So(res.Partners, ShouldHaveLength, 1)
				So(res.Partners[0].TeamID, ShouldEqual, "team-a")
				So(res.Stats.PartnersEvaluated, ShouldEqual, 3)
			})
		})

		Convey("When a specific player is named", func() {
			res := m.FindBestPartners("team-u", model.GoalSpecificPlayer, "Bell Cow", league, assets, tendencies, 0)

			Convey("Then the owner scores full target availability", func() {
				So(res.TargetPlayer, ShouldEqual, "Bell Cow")
				So(res.Partners[0].TeamID, ShouldEqual, "team-a")
				So(res.Partners[0].Breakdown.TargetAvailability, ShouldEqual, 100)
				So(res.Partners[0].Offer, ShouldNotBeNil)
				So(res.Partners[0].Offer.Receives[0].AssetID, ShouldEqual, "rb-a")
			})
		})

		Convey("When the requesting team is unknown", func() {
			res := m.FindBestPartners("team-x", model.GoalUpgradeRB, "", league, assets, tendencies, 0)

			Convey("Then the result is empty but well-formed", func() {
				So(res.Partners, ShouldNotBeNil)
				So(res.Partners, ShouldBeEmpty)
				So(res.Stats.PartnersEvaluated, ShouldEqual, 0)
			})
		})

		Convey("When the league context is nil", func() {
			res := m.FindBestPartners("team-u", model.GoalUpgradeRB, "", nil, nil, nil, 0)
			So(res.Partners, ShouldBeEmpty)
		})
	})
}

func TestKnownGoal(t *testing.T) {
	Convey("KnownGoal accepts the nine supported goals and nothing else", t, func() {
		for _, g := range []model.PartnerGoal{
			model.GoalUpgradeQB, model.GoalUpgradeRB, model.GoalUpgradeWR, model.GoalUpgradeTE,
			model.GoalAcquirePicks, model.GoalAcquireYouth, model.GoalWinNowPush,
			model.GoalSellVeterans, model.GoalSpecificPlayer,
		} {
			So(matchmaking.KnownGoal(g), ShouldBeTrue)
		}
		So(matchmaking.KnownGoal("BECOME_COMMISSIONER"), ShouldBeFalse)
	})
}
