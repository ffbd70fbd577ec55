package application

import "github.com/hackdash/hackdash/internal/domain"

// Reduce applies an action to the state and returns the next state. It is
// a pure, total function: the input state is never mutated, no transition
// performs I/O, and no input can make it panic. Actions that reference a
// missing active hackathon or an unknown ID return the state unchanged;
// the same holds for action types the reducer does not recognize.
func Reduce(state domain.AppState, action Action) domain.AppState {
	switch a := action.(type) {
	case AddCriterion:
		return withActive(state, func(h domain.Hackathon) domain.Hackathon {
			h.Criteria = append(h.Criteria, a.Criterion)
			return h
		})

	case RemoveCriterion:
		return withActive(state, func(h domain.Hackathon) domain.Hackathon {
			h.Criteria = removeByID(h.Criteria, a.ID, func(c domain.Criterion) string { return c.ID })
			return h
		})

	case AddGroup:
		return withActive(state, func(h domain.Hackathon) domain.Hackathon {
			h.Groups = append(h.Groups, a.Group)
			return h
		})

	case RemoveGroup:
		return withActive(state, func(h domain.Hackathon) domain.Hackathon {
			h.Groups = removeByID(h.Groups, a.ID, func(g domain.Group) string { return g.ID })
			return h
		})

	case SubmitScore:
		return withActive(state, func(h domain.Hackathon) domain.Hackathon {
			h.Scores = append(h.Scores, a.Score.Clone())
			return h
		})

	case SetSampleData:
		return withActive(state, func(h domain.Hackathon) domain.Hackathon {
			h.Groups = append([]domain.Group(nil), a.Groups...)
			h.Criteria = append([]domain.Criterion(nil), a.Criteria...)
			h.Scores = nil
			return h
		})

	case CreateHackathon:
		h, err := domain.NewHackathon(a.Name)
		if err != nil {
			return state
		}
		next := state.Clone()
		next.Hackathons[h.ID] = h
		next.ActiveHackathonID = h.ID
		return next

	case SwitchHackathon:
		if _, ok := state.Hackathons[a.ID]; !ok {
			return state
		}
		next := state.Clone()
		next.ActiveHackathonID = a.ID
		return next

	case Login:
		next := state.Clone()
		next.Session = a.Session
		return next

	case Logout:
		next := state.Clone()
		next.Session = domain.Session{}
		return next

	default:
		// Unknown actions are absorbed rather than rejected so the reducer
		// stays total.
		return state
	}
}

// withActive clones the state and applies fn to the active hackathon.
// When no active hackathon exists the state is returned unchanged.
func withActive(state domain.AppState, fn func(domain.Hackathon) domain.Hackathon) domain.AppState {
	if _, ok := state.ActiveHackathon(); !ok {
		return state
	}
	next := state.Clone()
	next.Hackathons[next.ActiveHackathonID] = fn(next.Hackathons[next.ActiveHackathonID])
	return next
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}
