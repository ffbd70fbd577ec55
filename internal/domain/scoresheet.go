package domain

import "strings"

// NewScoreSheet builds the validated criterion-to-value mapping for a score
// submission. Keys that reference no criterion in the current set are
// dropped, and values are clamped to the criterion's [0, MaxScore] range.
// Clamping (rather than rejecting) keeps submission total: a sheet built
// from any raw input is always acceptable to the reducer.
func NewScoreSheet(criteria []Criterion, raw map[string]float64) map[string]float64 {
	sheet := make(map[string]float64, len(raw))
	for id, value := range raw {
		var crit Criterion
		found := false
		for _, c := range criteria {
			if c.ID == id {
				crit, found = c, true
				break
			}
		}
		if !found {
			continue
		}
		sheet[id] = clampScore(value, float64(crit.MaxScore))
	}
	return sheet
}

// NewScore creates a submission for the given group attributed to the
// given judge. The values map is used as provided; callers that accept
// untrusted input should construct it with NewScoreSheet first.
func NewScore(groupID, judgeName string, values map[string]float64) Score {
	s := Score{
		GroupID:   groupID,
		JudgeName: strings.TrimSpace(judgeName),
		Values:    values,
	}
	if s.Values == nil {
		s.Values = make(map[string]float64)
	}
	return s
}

func clampScore(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
