package model_test

import (
	"testing"

	"github.com/rosterlab/tradescout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTierQuality(t *testing.T) {
	Convey("Quality inverts the tier scale so higher means better", t, func() {
		So(model.Tier0.Quality(), ShouldEqual, 5)
		So(model.Tier2.Quality(), ShouldEqual, 3)
		So(model.Tier5.Quality(), ShouldEqual, 0)
	})
}

func TestCoreLocked(t *testing.T) {
	Convey("Only top-two-tier starters are core-locked", t, func() {
		So(model.PricedAsset{Tier: model.Tier0, Starter: true}.CoreLocked(), ShouldBeTrue)
		So(model.PricedAsset{Tier: model.Tier1, Starter: true}.CoreLocked(), ShouldBeTrue)
		So(model.PricedAsset{Tier: model.Tier1, Starter: false}.CoreLocked(), ShouldBeFalse)
		So(model.PricedAsset{Tier: model.Tier2, Starter: true}.CoreLocked(), ShouldBeFalse)
	})
}

func TestMirrored(t *testing.T) {
	Convey("Given a two-sided candidate", t, func() {
		a := model.PricedAsset{AssetID: "a"}
		b := model.PricedAsset{AssetID: "b"}

		Convey("Then matching sides are mirrored regardless of order", func() {
			c := model.TradeCandidate{
				TeamA: model.TradeSide{Gives: []model.PricedAsset{a, b}, Receives: nil},
				TeamB: model.TradeSide{Gives: nil, Receives: []model.PricedAsset{b, a}},
			}
			So(c.Mirrored(), ShouldBeTrue)
		})

		Convey("And mismatched sides are not", func() {
			c := model.TradeCandidate{
				TeamA: model.TradeSide{Gives: []model.PricedAsset{a}},
				TeamB: model.TradeSide{Receives: []model.PricedAsset{b}},
			}
			So(c.Mirrored(), ShouldBeFalse)
		})
	})
}

func TestLeagueContext(t *testing.T) {
	Convey("Given a league context", t, func() {
		lc := &model.LeagueContext{
			Teams:      []model.TeamDecisionProfile{{TeamID: "team-1"}},
			PartnerFit: map[string]float64{"team-1|team-2": 62},
		}

		Convey("Team lookup reports existence", func() {
			_, ok := lc.Team("team-1")
			So(ok, ShouldBeTrue)
			_, ok = lc.Team("team-9")
			So(ok, ShouldBeFalse)
		})

		Convey("Fit reads the pairwise map, zero when absent", func() {
			So(lc.Fit("team-1", "team-2"), ShouldEqual, 62)
			So(lc.Fit("team-2", "team-1"), ShouldEqual, 0)
		})
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp bounds values to the given range", t, func() {
		So(model.Clamp(-5, 0, 100), ShouldEqual, 0)
		So(model.Clamp(42, 0, 100), ShouldEqual, 42)
		So(model.Clamp(140, 0, 100), ShouldEqual, 100)
	})
}
