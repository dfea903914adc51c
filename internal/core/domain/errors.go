package domain

import "errors"

// User-facing failure messages retained on the Session.
const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgDuplicateAccount   = "User with this email already exists"
	MsgUnexpected         = "An unexpected error occurred"
	MsgAuthInProgress     = "Authentication already in progress"
	MsgSessionClosed      = "Logged out before authentication completed"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrMalformedSession   = errors.New("malformed persisted session")
	ErrUnexpected         = errors.New("unexpected failure")
	ErrAuthInProgress     = errors.New("authentication already in progress")
	ErrSessionClosed      = errors.New("session closed during authentication")

	ErrKeyNotFound    = errors.New("key not found")
	ErrForbidden      = errors.New("access forbidden")
	ErrInvalidSetting = errors.New("invalid settings")
)

// Message returns the human-readable text shown for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrDuplicateAccount):
		return MsgDuplicateAccount
	case errors.Is(err, ErrAuthInProgress):
		return MsgAuthInProgress
	case errors.Is(err, ErrSessionClosed):
		return MsgSessionClosed
	default:
		return MsgUnexpected
	}
}
