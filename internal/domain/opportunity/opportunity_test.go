package opportunity_test

import (
	"testing"

	"github.com/rosterlab/tradescout/internal/domain/model"
	"github.com/rosterlab/tradescout/internal/domain/opportunity"
	. "github.com/smartystreets/goconvey/convey"
)

func richLeague() (model.TeamDecisionProfile, *model.LeagueContext, map[string][]model.PricedAsset) {
	user := model.TeamDecisionProfile{
		TeamID:    "team-u",
		Needs:     []model.Position{model.RB},
		Surpluses: []model.Position{model.WR},
		Window:    model.Balanced,
	}
	league := &model.LeagueContext{
		Teams: []model.TeamDecisionProfile{
			user,
			{TeamID: "team-a", Needs: []model.Position{model.WR}, Window: model.WinNow},
			{TeamID: "team-b", Window: model.Rebuild},
		},
		PickInflation: 1.25,
	}
	assets := map[string][]model.PricedAsset{
		"team-u": {
			{AssetID: "wr-a", Name: "WR Alpha", Value: 2000, Position: model.WR, Tier: model.Tier3},
			{AssetID: "wr-b", Name: "WR Beta", Value: 1500, Position: model.WR, Tier: model.Tier3},
			{AssetID: "pick-u", Name: "2027 2nd", Value: 1600, Pick: true, PickRound: 2},
		},
		"team-a": {
			{AssetID: "elite-a", Name: "Star Back", Value: 5000, Position: model.RB, Tier: model.Tier1, Starter: true},
		},
		"team-b": {
			{AssetID: "hurt-b", Name: "Hurt Star", Value: 3000, Position: model.WR, Tier: model.Tier2, Injured: true},
		},
	}
	return user, league, assets
}

func TestGenerate(t *testing.T) {
	Convey("Given a league with every fallback condition present", t, func() {
		user, league, assets := richLeague()

		Convey("When opportunities are generated", func() {
			got := opportunity.Generate(user, league, assets)

			Convey("Then all five checks fire in fixed order", func() {
				So(got, ShouldHaveLength, 5)
				So(got[0].Type, ShouldEqual, model.OpportunityNeedFit)
				So(got[1].Type, ShouldEqual, model.OpportunityConsolidation)
				So(got[2].Type, ShouldEqual, model.OpportunityVolatility)
				So(got[3].Type, ShouldEqual, model.OpportunityPickArbitrage)
				So(got[4].Type, ShouldEqual, model.OpportunityMonitor)
			})

			Convey("And the need-fit lead names the user's surplus players, best first", func() {
				So(got[0].TeamID, ShouldEqual, "team-a")
				So(got[0].RelevantPlayers, ShouldResemble, []string{"WR Alpha", "WR Beta"})
			})

			Convey("And the volatility lead points at the rebuilder's injured producer", func() {
				So(got[2].TeamID, ShouldEqual, "team-b")
				So(got[2].RelevantPlayers, ShouldResemble, []string{"Hurt Star"})
			})

			Convey("And the monitor watch list carries the partner's elite need-filler", func() {
				So(got[4].RelevantPlayers, ShouldResemble, []string{"Star Back"})
			})
		})
	})

	Convey("Given a deflated pick market", t, func() {
		user, league, assets := richLeague()
		league.PickInflation = 1.1

		Convey("Then the pick-arbitrage check stays silent", func() {
			for _, op := range opportunity.Generate(user, league, assets) {
				So(op.Type, ShouldNotEqual, model.OpportunityPickArbitrage)
			}
		})
	})

	Convey("Given a league with nothing actionable", t, func() {
		user := model.TeamDecisionProfile{
			TeamID: "team-u",
			Needs:  []model.Position{model.RB, model.TE},
			Window: model.Balanced,
		}
		league := &model.LeagueContext{Teams: []model.TeamDecisionProfile{user}}

		Convey("Then only the monitor entry appears, with need-based placeholders", func() {
			got := opportunity.Generate(user, league, nil)
			So(got, ShouldHaveLength, 1)
			So(got[0].Type, ShouldEqual, model.OpportunityMonitor)
			So(got[0].RelevantPlayers, ShouldResemble, []string{"the RB market", "the TE market"})
		})
	})
}
