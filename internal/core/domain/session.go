package domain

// SessionKey is the fixed storage key the current Identity is persisted under.
const SessionKey = "mediguard_user"

// SessionState is the lifecycle state of the process-wide Session.
type SessionState string

const (
	StateAnonymous      SessionState = "anonymous"
	StateAuthenticating SessionState = "authenticating"
	StateAuthenticated  SessionState = "authenticated"
	StateError          SessionState = "error"
)

// Session is a point-in-time view of the current session. Identity is nil
// unless State is authenticated (or authenticating over a prior identity).
type Session struct {
	State    SessionState `json:"state"`
	Identity *Identity    `json:"user,omitempty"`
	Error    string       `json:"error,omitempty"`
}

// Authenticated reports whether the session currently grants access to
// protected destinations.
func (s Session) Authenticated() bool {
	return s.State == StateAuthenticated && s.Identity != nil
}
