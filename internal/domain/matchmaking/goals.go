package matchmaking

import (
	"github.com/rosterlab/tradescout/internal/domain/model"
)

// goalProfile maps a declared goal onto the positions, pick focus, starter
// preference, and minimum value that drive partner scoring.
type goalProfile struct {
	positions      []model.Position
	pickFocus      bool
	preferStarters bool
	minValue       float64
	description    string
}

// KnownGoal reports whether g is one of the nine supported goals.
func KnownGoal(g model.PartnerGoal) bool {
	_, ok := goalProfiles[g]
	return ok
}

// goalProfiles is the fixed goal table. SPECIFIC_PLAYER narrows at request
// time to the named target's exact position and owner.
var goalProfiles = map[model.PartnerGoal]goalProfile{
	model.GoalUpgradeQB: {
		positions:      []model.Position{model.QB},
		preferStarters: true,
		minValue:       2000,
		description:    "upgrade the starting quarterback spot",
	},
	model.GoalUpgradeRB: {
		positions:      []model.Position{model.RB},
		preferStarters: true,
		minValue:       2000,
		description:    "upgrade the running back room",
	},
	model.GoalUpgradeWR: {
		positions:      []model.Position{model.WR},
		preferStarters: true,
		minValue:       2000,
		description:    "upgrade the receiver room",
	},
	model.GoalUpgradeTE: {
		positions:      []model.Position{model.TE},
		preferStarters: true,
		minValue:       1500,
		description:    "upgrade the tight end spot",
	},
	model.GoalAcquirePicks: {
		pickFocus:   true,
		minValue:    1000,
		description: "stockpile draft capital",
	},
	model.GoalAcquireYouth: {
		positions:   []model.Position{model.RB, model.WR, model.TE},
		minValue:    1500,
		description: "get younger at the skill positions",
	},
	model.GoalWinNowPush: {
		positions:      []model.Position{model.QB, model.RB, model.WR, model.TE},
		preferStarters: true,
		minValue:       2500,
		description:    "add the best available starter for a title push",
	},
	model.GoalSellVeterans: {
		pickFocus:   true,
		minValue:    1000,
		description: "move aging veterans for picks and youth",
	},
	model.GoalSpecificPlayer: {
		minValue:    1000,
		description: "acquire one specific player",
	},
}
