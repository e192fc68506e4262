package finder

import (
	"sort"

	"github.com/rosterlab/tradescout/internal/domain/model"
)

// prune filters candidates below the score cutoff, drops structural
// duplicates (first occurrence in generation order wins), ranks by score
// descending, and caps to the mode's result limit. The stable sort keeps
// generation order as the tie-break, so identical inputs rank identically.
func prune(candidates []model.TradeCandidate, cfg Config, maxResults int) []model.TradeCandidate {
	seen := make(map[string]struct{}, len(candidates))
	kept := make([]model.TradeCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.FinderScore < cfg.ScoreCutoff {
			continue
		}
		key := dedupKeyFor(c.TeamA.Gives, c.TeamA.Receives)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, c)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].FinderScore > kept[j].FinderScore
	})
	if len(kept) > maxResults {
		kept = kept[:maxResults]
	}
	return kept
}
