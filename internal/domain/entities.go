// Package domain contains the pure domain model for the hackathon judging
// core: criteria, groups, score submissions, hackathon events, and the
// leaderboard computation derived from them. The package performs no I/O.
package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Criterion is one named, bounded-scale judging dimension. A criterion is
// immutable once created; it can only be removed wholesale.
type Criterion struct {
	// ID uniquely identifies this criterion within a hackathon.
	ID string `json:"id" validate:"required"`

	// Name is the display name, e.g. "Innovation".
	Name string `json:"name" validate:"required"`

	// MaxScore is the upper bound of the criterion's scale. Scores are
	// valid in [0, MaxScore].
	MaxScore int `json:"maxScore" validate:"required,gt=0"`
}

// NewCriterion creates a Criterion with a fresh identifier. The name is
// trimmed and must be non-empty; maxScore must be positive.
func NewCriterion(name string, maxScore int) (Criterion, error) {
	c := Criterion{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		MaxScore: maxScore,
	}
	if err := validate.Struct(c); err != nil {
		return Criterion{}, newValidationError("criterion", err)
	}
	return c, nil
}

// Group is a competing team or entry being judged.
type Group struct {
	// ID uniquely identifies this group within a hackathon.
	ID string `json:"id" validate:"required"`

	// Name is the team's display name.
	Name string `json:"name" validate:"required"`
}

// NewGroup creates a Group with a fresh identifier and a trimmed,
// non-empty name.
func NewGroup(name string) (Group, error) {
	g := Group{ID: uuid.NewString(), Name: strings.TrimSpace(name)}
	if err := validate.Struct(g); err != nil {
		return Group{}, newValidationError("group", err)
	}
	return g, nil
}

// Score is one judge's full rubric submission for one group. Submissions
// are append-only: they are never mutated or deleted, and a judge may
// resubmit for the same group (every entry is retained and counted).
type Score struct {
	// GroupID references the group being scored. The reference is not
	// enforced retroactively; consumers must tolerate dangling IDs.
	GroupID string `json:"groupId"`

	// JudgeName identifies the submitter for display attribution.
	JudgeName string `json:"judgeName"`

	// Values maps criterion IDs to the awarded score.
	Values map[string]float64 `json:"scores"`
}

// Clone returns a deep copy of the score so callers can hand out
// submissions without sharing the values map.
func (s Score) Clone() Score {
	out := s
	out.Values = make(map[string]float64, len(s.Values))
	for k, v := range s.Values {
		out.Values[k] = v
	}
	return out
}

// Hackathon is one isolated event instance. All group, criterion, and score
// mutations are scoped to exactly one hackathon; events never share data.
type Hackathon struct {
	ID        string      `json:"id" validate:"required"`
	Name      string      `json:"name" validate:"required"`
	CreatedAt time.Time   `json:"createdAt"`
	Criteria  []Criterion `json:"criteria"`
	Groups    []Group     `json:"groups"`
	Scores    []Score     `json:"scores"`
}

// NewHackathon creates an empty Hackathon with a fresh identifier and
// creation timestamp. The name is trimmed and must be non-empty.
func NewHackathon(name string) (Hackathon, error) {
	h := Hackathon{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
	}
	if err := validate.Struct(h); err != nil {
		return Hackathon{}, newValidationError("hackathon", err)
	}
	return h, nil
}

// Clone returns a deep copy of the hackathon. The store relies on this to
// hand out snapshots that cannot reach back into committed state.
func (h Hackathon) Clone() Hackathon {
	out := h
	out.Criteria = append([]Criterion(nil), h.Criteria...)
	out.Groups = append([]Group(nil), h.Groups...)
	out.Scores = nil
	for _, s := range h.Scores {
		out.Scores = append(out.Scores, s.Clone())
	}
	return out
}

// CriterionByID returns the criterion with the given ID, if present.
func (h Hackathon) CriterionByID(id string) (Criterion, bool) {
	for _, c := range h.Criteria {
		if c.ID == id {
			return c, true
		}
	}
	return Criterion{}, false
}

// GroupByID returns the group with the given ID, if present.
func (h Hackathon) GroupByID(id string) (Group, bool) {
	for _, g := range h.Groups {
		if g.ID == id {
			return g, true
		}
	}
	return Group{}, false
}

func newValidationError(entity string, err error) *ValidationError {
	ve := NewValidationError(entity)
	ve.AddError(fmt.Sprintf("%v", err))
	return ve
}
