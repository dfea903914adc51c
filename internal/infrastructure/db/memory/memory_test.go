package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

func TestCredentialRepository_Match(t *testing.T) {
	repo := NewCredentialRepository(domain.DemoCredentials())
	ctx := context.Background()

	cred, err := repo.Match(ctx, "doctor@hospital.org", "doctor123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDoctor, cred.Template.Role)
	assert.Equal(t, "Cardiology", cred.Template.Department)

	for _, tc := range [][2]string{
		{"doctor@hospital.org", "Doctor123"},
		{"Doctor@hospital.org", "doctor123"},
		{" doctor@hospital.org", "doctor123"},
		{"", ""},
	} {
		_, err := repo.Match(ctx, tc[0], tc[1])
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "%q/%q", tc[0], tc[1])
	}
}

func TestCredentialRepository_MatchReturnsCopy(t *testing.T) {
	repo := NewCredentialRepository(domain.DemoCredentials())
	ctx := context.Background()

	cred, err := repo.Match(ctx, "admin@hospital.org", "admin123")
	require.NoError(t, err)
	cred.Template.RiskScore = 99

	again, err := repo.Match(ctx, "admin@hospital.org", "admin123")
	require.NoError(t, err)
	assert.Equal(t, 15, again.Template.RiskScore)
}

func TestCredentialRepository_Exists(t *testing.T) {
	repo := NewCredentialRepository(domain.DemoCredentials())
	ctx := context.Background()

	ok, err := repo.Exists(ctx, "nurse@hospital.org")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, "new@hospital.org")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStorage(t *testing.T) {
	s := NewSessionStorage()
	ctx := context.Background()

	_, err := s.Get(ctx, domain.SessionKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	value := []byte("payload")
	require.NoError(t, s.Set(ctx, domain.SessionKey, value))
	value[0] = 'X'

	got, err := s.Get(ctx, domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got), "stored value must not alias the caller's slice")

	require.NoError(t, s.Delete(ctx, domain.SessionKey))
	require.NoError(t, s.Delete(ctx, domain.SessionKey))
	_, err = s.Get(ctx, domain.SessionKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
