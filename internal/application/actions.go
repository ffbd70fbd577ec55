// Package application contains the hackathon store: the reducer core that
// applies actions to the application state, the session resolver, and the
// runtime configuration. All reducer transitions are pure; the store layers
// persistence and observability around them.
package application

import "github.com/hackdash/hackdash/internal/domain"

// Action is the closed set of state transitions the store accepts.
// Each action carries its full payload; the reducer validates references
// against the current state at apply time.
type Action interface {
	// Kind returns a stable lowercase identifier for the action, used for
	// metrics labels and logging.
	Kind() string
}

// AddCriterion appends a criterion to the active hackathon.
type AddCriterion struct {
	Criterion domain.Criterion
}

// Kind implements Action.
func (AddCriterion) Kind() string { return "add_criterion" }

// RemoveCriterion removes the criterion with the given ID from the active
// hackathon. Removing an absent ID is a no-op.
type RemoveCriterion struct {
	ID string
}

// Kind implements Action.
func (RemoveCriterion) Kind() string { return "remove_criterion" }

// AddGroup appends a group to the active hackathon.
type AddGroup struct {
	Group domain.Group
}

// Kind implements Action.
func (AddGroup) Kind() string { return "add_group" }

// RemoveGroup removes the group with the given ID from the active
// hackathon. Removing an absent ID is a no-op. Scores referencing the
// removed group are retained; the leaderboard skips them.
type RemoveGroup struct {
	ID string
}

// Kind implements Action.
func (RemoveGroup) Kind() string { return "remove_group" }

// SubmitScore appends one judge submission to the active hackathon.
// Submissions are never deduplicated: a judge who resubmits adds another
// entry, and all entries count toward the group's judge count.
type SubmitScore struct {
	Score domain.Score
}

// Kind implements Action.
func (SubmitScore) Kind() string { return "submit_score" }

// SetSampleData replaces the active hackathon's groups and criteria
// wholesale and clears its scores. Applied as a single terminal step after
// generation completes, so an abandoned generation never partially applies.
type SetSampleData struct {
	Groups   []domain.Group
	Criteria []domain.Criterion
}

// Kind implements Action.
func (SetSampleData) Kind() string { return "set_sample_data" }

// CreateHackathon starts a new empty event and makes it active. The
// previous event is retained with all of its data and stays reachable via
// SwitchHackathon; creating is effectively archive-and-start-new.
type CreateHackathon struct {
	Name string
}

// Kind implements Action.
func (CreateHackathon) Kind() string { return "create_hackathon" }

// SwitchHackathon changes which event is active. Switching to an unknown
// ID is a no-op.
type SwitchHackathon struct {
	ID string
}

// Kind implements Action.
func (SwitchHackathon) Kind() string { return "switch_hackathon" }

// Login sets the current session.
type Login struct {
	Session domain.Session
}

// Kind implements Action.
func (Login) Kind() string { return "login" }

// Logout clears the current session unconditionally.
type Logout struct{}

// Kind implements Action.
func (Logout) Kind() string { return "logout" }
