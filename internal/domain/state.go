package domain

import "sort"

// AppState is the single source of truth for the dashboard: every known
// hackathon, which one is active, and the current session. The store hands
// out snapshots built with Clone; committed state is never shared by
// reference.
type AppState struct {
	// Hackathons maps hackathon IDs to their full records. After
	// initialization the map is never empty.
	Hackathons map[string]Hackathon

	// ActiveHackathonID keys the hackathon all scoped mutations apply to.
	// When non-empty it always keys an existing entry in Hackathons.
	ActiveHackathonID string

	// Session is the current role assignment. It is excluded from the
	// durable slice.
	Session Session
}

// NewAppState returns an empty state with an initialized hackathon map.
func NewAppState() AppState {
	return AppState{Hackathons: make(map[string]Hackathon)}
}

// Clone returns a deep copy of the state. Reducer transitions operate on
// clones so the input state is never mutated.
func (s AppState) Clone() AppState {
	out := s
	out.Hackathons = make(map[string]Hackathon, len(s.Hackathons))
	for id, h := range s.Hackathons {
		out.Hackathons[id] = h.Clone()
	}
	return out
}

// ActiveHackathon returns the active hackathon record, if one is set.
func (s AppState) ActiveHackathon() (Hackathon, bool) {
	h, ok := s.Hackathons[s.ActiveHackathonID]
	return h, ok
}

// HackathonsByRecency returns all hackathons ordered newest-first by
// creation time, the order the dashboard lists events in.
func (s AppState) HackathonsByRecency() []Hackathon {
	out := make([]Hackathon, 0, len(s.Hackathons))
	for _, h := range s.Hackathons {
		out = append(out, h.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// DurableState is the slice of AppState that survives reloads. Session
// state is deliberately absent: roles reset on every fresh load.
type DurableState struct {
	Hackathons        map[string]Hackathon `json:"hackathons"`
	ActiveHackathonID string               `json:"activeHackathonId"`
}

// Durable extracts the persistable slice of the state.
func (s AppState) Durable() DurableState {
	return DurableState{
		Hackathons:        s.Clone().Hackathons,
		ActiveHackathonID: s.ActiveHackathonID,
	}
}

// Restore builds an AppState from a durable slice with no session
// established. A nil hackathon map is replaced with an empty one.
func Restore(d DurableState) AppState {
	state := NewAppState()
	for id, h := range d.Hackathons {
		state.Hackathons[id] = h.Clone()
	}
	state.ActiveHackathonID = d.ActiveHackathonID
	return state
}
