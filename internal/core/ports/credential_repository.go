package ports

import (
	"context"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// CredentialRepository looks up the fixed demo account set.
type CredentialRepository interface {
	// Match returns the record whose address and secret both match exactly,
	// or domain.ErrInvalidCredentials.
	Match(ctx context.Context, email, password string) (*domain.Credential, error)
	// Exists reports whether any record uses email.
	Exists(ctx context.Context, email string) (bool, error)
}
