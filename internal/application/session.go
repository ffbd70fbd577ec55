package application

import (
	"errors"
	"strings"

	"github.com/hackdash/hackdash/internal/domain"
)

// Shared access codes. The dashboard runs on a single device at a single
// event; the codes gate roles, not identities.
const (
	adminCode = "admin123"
	judgeCode = "judge123"
)

// Credential errors returned by ResolveLogin.
var (
	// ErrNameRequired indicates the judge code was correct but no display
	// name was provided. The caller should re-prompt for a name while
	// retaining the code.
	ErrNameRequired = errors.New("judge name is required")

	// ErrInvalidCredentials indicates the code matched neither role.
	ErrInvalidCredentials = errors.New("invalid access code")
)

// ResolveLogin validates an access code and yields the resulting session.
// Codes are compared case-insensitively. The admin code needs no name; the
// judge code requires a non-empty display name, which is trimmed before
// use. ResolveLogin is pure: it has no side effects beyond the returned
// session, which the caller stores in the state.
func ResolveLogin(code, name string) (domain.Session, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case adminCode:
		return domain.AdminSession(), nil
	case judgeCode:
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return domain.Session{}, ErrNameRequired
		}
		return domain.JudgeSession(trimmed), nil
	default:
		return domain.Session{}, ErrInvalidCredentials
	}
}
