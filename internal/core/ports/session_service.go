package ports

import (
	"context"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// RegisterInput carries the identity fields a new account is created from.
type RegisterInput struct {
	Username   string
	Email      string
	Role       domain.Role
	Department string
}

// SessionService owns the single process-wide Session.
//
// Login and Register return ok=false together with a domain sentinel
// (ErrInvalidCredentials, ErrDuplicateAccount, ErrAuthInProgress or
// ErrUnexpected) on failure; the matching message is also kept on the Session.
type SessionService interface {
	Login(ctx context.Context, email, password string) (bool, error)
	Register(ctx context.Context, in RegisterInput, password string) (bool, error)
	Logout(ctx context.Context)
	Restore(ctx context.Context)
	Snapshot() domain.Session
}
