package domain

// Role is the closed set of access levels a session can hold. Consumers
// switch over Role exhaustively instead of comparing role strings.
type Role int

const (
	// RoleNone means no session is established.
	RoleNone Role = iota

	// RoleAdmin can configure events, judge, and view results.
	RoleAdmin

	// RoleJudge can submit scores and view results. A judge session always
	// carries a display name.
	RoleJudge

	// RolePublic is read-only access to the live results view.
	RolePublic
)

// String returns the lowercase name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleJudge:
		return "judge"
	case RolePublic:
		return "public"
	default:
		return "none"
	}
}

// CanConfigure reports whether the role may mutate groups and criteria.
func (r Role) CanConfigure() bool { return r == RoleAdmin }

// CanJudge reports whether the role may submit scores.
func (r Role) CanJudge() bool { return r == RoleAdmin || r == RoleJudge }

// Session is the current role assignment. Sessions are held in memory only
// and are never part of the durable state slice; every fresh load starts
// with no session.
type Session struct {
	Role Role

	// JudgeName is set only for judge sessions.
	JudgeName string
}

// AdminSession returns a session with administrative access.
func AdminSession() Session { return Session{Role: RoleAdmin} }

// JudgeSession returns a judge session attributed to the given name.
func JudgeSession(name string) Session {
	return Session{Role: RoleJudge, JudgeName: name}
}

// PublicSession returns a read-only viewing session.
func PublicSession() Session { return Session{Role: RolePublic} }

// Anonymous reports whether no session is established.
func (s Session) Anonymous() bool { return s.Role == RoleNone }
