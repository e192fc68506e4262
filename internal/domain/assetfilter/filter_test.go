package assetfilter_test

import (
	"testing"

	"github.com/rosterlab/tradescout/internal/domain/assetfilter"
	"github.com/rosterlab/tradescout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTradable(t *testing.T) {
	Convey("Given a roster with a mix of assets", t, func() {
		coreLocked := model.PricedAsset{AssetID: "a1", Name: "Elite Starter", Value: 9000, Position: model.WR, Tier: model.Tier1, Starter: true}
		cheap := model.PricedAsset{AssetID: "a2", Name: "Scrub", Value: 400, Position: model.RB, Tier: model.Tier5}
		surplusWR := model.PricedAsset{AssetID: "a3", Name: "Spare WR", Value: 2000, Position: model.WR, Tier: model.Tier3}
		bench := model.PricedAsset{AssetID: "a4", Name: "Deep Bench", Value: 1200, Position: model.TE, Tier: model.Tier4}
		replaceable := model.PricedAsset{AssetID: "a5", Name: "Mid Starter", Value: 2500, Position: model.QB, Tier: model.Tier2, Starter: true}
		firstRounder := model.PricedAsset{AssetID: "a6", Name: "2027 1st", Value: 2000, Pick: true, PickYear: 2027, PickRound: 1}
		thirdRounder := model.PricedAsset{AssetID: "a7", Name: "2027 3rd", Value: 800, Pick: true, PickYear: 2027, PickRound: 3}
		assets := []model.PricedAsset{coreLocked, cheap, surplusWR, bench, replaceable, firstRounder, thirdRounder}
		surpluses := []model.Position{model.WR}
		needs := []model.Position{model.RB}

		Convey("When the objective is WIN_NOW", func() {
			got := assetfilter.Tradable(assets, model.WinNow, surpluses, needs)

			Convey("Then core-locked and sub-floor assets are excluded", func() {
				So(ids(got), ShouldNotContain, "a1")
				So(ids(got), ShouldNotContain, "a2")
			})

			Convey("And surplus players, valued bench depth, replaceable starters, and picks are included", func() {
				So(ids(got), ShouldContain, "a3")
				So(ids(got), ShouldContain, "a4")
				So(ids(got), ShouldContain, "a5")
				So(ids(got), ShouldContain, "a6")
				So(ids(got), ShouldContain, "a7")
			})
		})

		Convey("When the objective is REBUILD", func() {
			got := assetfilter.Tradable(assets, model.Rebuild, surpluses, needs)

			Convey("Then first-round picks are protected but later rounds are not", func() {
				So(ids(got), ShouldNotContain, "a6")
				So(ids(got), ShouldContain, "a7")
			})
		})
	})
}

func TestTargetable(t *testing.T) {
	Convey("Given a partner roster", t, func() {
		needFiller := model.PricedAsset{AssetID: "b1", Name: "RB2", Value: 1500, Position: model.RB, Tier: model.Tier3}
		nearElite := model.PricedAsset{AssetID: "b2", Name: "Stud TE", Value: 4000, Position: model.TE, Tier: model.Tier1}
		offPosition := model.PricedAsset{AssetID: "b3", Name: "WR3", Value: 1500, Position: model.WR, Tier: model.Tier3}
		pick := model.PricedAsset{AssetID: "b4", Name: "2027 2nd", Value: 1100, Pick: true, PickRound: 2}
		cheapPick := model.PricedAsset{AssetID: "b5", Name: "2028 4th", Value: 600, Pick: true, PickRound: 4}
		assets := []model.PricedAsset{needFiller, nearElite, offPosition, pick, cheapPick}

		Convey("When filtering for a team that needs RB", func() {
			got := assetfilter.Targetable(assets, []model.Position{model.RB})

			Convey("Then need-fillers, near-elite assets, and valued picks qualify", func() {
				So(ids(got), ShouldContain, "b1")
				So(ids(got), ShouldContain, "b2")
				So(ids(got), ShouldContain, "b4")
			})

			Convey("And off-position depth and sub-floor picks do not", func() {
				So(ids(got), ShouldNotContain, "b3")
				So(ids(got), ShouldNotContain, "b5")
			})
		})
	})
}

func ids(assets []model.PricedAsset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.AssetID)
	}
	return out
}
