package memory

import (
	"context"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// CredentialRepository matches against a fixed in-process record set using
// exact string comparison.
type CredentialRepository struct {
	records []domain.Credential
}

var _ ports.CredentialRepository = (*CredentialRepository)(nil)

// NewCredentialRepository copies records; later changes to the slice are not
// observed.
func NewCredentialRepository(records []domain.Credential) *CredentialRepository {
	return &CredentialRepository{records: append([]domain.Credential(nil), records...)}
}

func (r *CredentialRepository) Match(_ context.Context, email, password string) (*domain.Credential, error) {
	for _, rec := range r.records {
		if rec.Email == email && rec.Password == password {
			match := rec
			return &match, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (r *CredentialRepository) Exists(_ context.Context, email string) (bool, error) {
	for _, rec := range r.records {
		if rec.Email == email {
			return true, nil
		}
	}
	return false, nil
}
