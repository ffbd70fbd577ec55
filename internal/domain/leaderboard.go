package domain

import (
	"math"
	"sort"
)

// RankedGroup is one leaderboard row: a group with its per-criterion
// averages, the summed total, and judge attribution.
type RankedGroup struct {
	// GroupID identifies the ranked group.
	GroupID string `json:"groupId"`

	// Name is the group's display name.
	Name string `json:"name"`

	// Total is the sum of the per-criterion averages, rounded to two
	// decimal places.
	Total float64 `json:"total"`

	// Averages maps criterion IDs to that criterion's average across the
	// group's submissions, rounded to two decimal places. Every criterion
	// in the input set has an entry, zero when unscored.
	Averages map[string]float64 `json:"averages"`

	// JudgeCount is the number of score submissions for this group. A
	// judge who resubmits is counted once per submission.
	JudgeCount int `json:"judgeCount"`

	// Judges lists the distinct judge names that scored this group, in
	// first-seen submission order. Used for attribution, not weighting.
	Judges []string `json:"judges"`
}

// ComputeLeaderboard aggregates raw score submissions into a ranked
// leaderboard. It is pure and deterministic: identical inputs always yield
// identical output, and the input slices are never modified.
//
// Averaging happens per criterion first, then the per-criterion averages
// are summed into the total. This is not equivalent to summing raw scores
// and dividing once unless every judge scores every criterion; a judge who
// skips a criterion contributes an implicit zero to that criterion's sum
// while still raising the divisor for all criteria.
//
// Submissions referencing an unknown group ID are ignored. The result is
// sorted descending by total; ties keep the relative order of the input
// groups. Accumulation runs at full precision, rounding only the exported
// values.
func ComputeLeaderboard(groups []Group, criteria []Criterion, scores []Score) []RankedGroup {
	type accumulator struct {
		group  Group
		sums   map[string]float64
		count  int
		judges []string
		seen   map[string]bool
	}

	accs := make(map[string]*accumulator, len(groups))
	for _, g := range groups {
		acc := &accumulator{
			group: g,
			sums:  make(map[string]float64, len(criteria)),
			seen:  make(map[string]bool),
		}
		for _, c := range criteria {
			acc.sums[c.ID] = 0
		}
		accs[g.ID] = acc
	}

	for _, s := range scores {
		acc, ok := accs[s.GroupID]
		if !ok {
			// Dangling reference, e.g. the group was removed after the
			// submission. Tolerated and skipped.
			continue
		}
		acc.count++
		if !acc.seen[s.JudgeName] {
			acc.seen[s.JudgeName] = true
			acc.judges = append(acc.judges, s.JudgeName)
		}
		for _, c := range criteria {
			acc.sums[c.ID] += s.Values[c.ID]
		}
	}

	result := make([]RankedGroup, 0, len(groups))
	totals := make(map[string]float64, len(groups))
	for _, g := range groups {
		acc := accs[g.ID]
		row := RankedGroup{
			GroupID:    g.ID,
			Name:       g.Name,
			Averages:   make(map[string]float64, len(criteria)),
			JudgeCount: acc.count,
			Judges:     acc.judges,
		}
		var total float64
		for _, c := range criteria {
			var avg float64
			if acc.count > 0 {
				avg = acc.sums[c.ID] / float64(acc.count)
			}
			total += avg
			row.Averages[c.ID] = round2(avg)
		}
		totals[g.ID] = total
		row.Total = round2(total)
		result = append(result, row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return totals[result[i].GroupID] > totals[result[j].GroupID]
	})
	return result
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
