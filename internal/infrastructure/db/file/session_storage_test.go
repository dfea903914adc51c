package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/service"
	"github.com/mediguard/security-dashboard/internal/infrastructure/db/memory"
)

func TestSessionStorage_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	ctx := context.Background()

	first := NewSessionStorage(path)
	_, err := first.Get(ctx, domain.SessionKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	payload := []byte(`{"id":"1","email":"admin@hospital.org","role":"admin"}`)
	require.NoError(t, first.Set(ctx, domain.SessionKey, payload))
	require.NoError(t, first.Set(ctx, "other", []byte("kept")))

	// A fresh instance sees what the previous process wrote.
	second := NewSessionStorage(path)
	got, err := second.Get(ctx, domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	require.NoError(t, second.Delete(ctx, domain.SessionKey))
	_, err = second.Get(ctx, domain.SessionKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	other, err := second.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "kept", string(other))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())
}

func TestSessionStorage_MalformedValueIsReturnedVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewSessionStorage(path)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, domain.SessionKey, []byte("{not json")))
	got, err := s.Get(ctx, domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(got))
}

func TestSessionStorage_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
	s := NewSessionStorage(path)
	ctx := context.Background()

	_, err := s.Get(ctx, domain.SessionKey)
	require.ErrorIs(t, err, domain.ErrMalformedSession)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)

	// A write replaces the damaged document instead of failing on it.
	payload := []byte(`{"id":"1","email":"admin@hospital.org","role":"admin"}`)
	require.NoError(t, s.Set(ctx, domain.SessionKey, payload))
	got, err := s.Get(ctx, domain.SessionKey)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSessionStorage_DeleteResetsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
	s := NewSessionStorage(path)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, domain.SessionKey))

	_, err := s.Get(ctx, domain.SessionKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}

func TestSessionStorage_EmptyFileIsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := NewSessionStorage(path).Get(context.Background(), domain.SessionKey)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestSessionStorage_DeleteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	require.NoError(t, NewSessionStorage(path).Delete(context.Background(), domain.SessionKey))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "delete of a missing key must not create the file")
}

func TestSessionStorage_LoginAfterCorruptDocumentRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))
	ctx := context.Background()

	storage := NewSessionStorage(path)
	session := service.NewSessionStore(
		memory.NewCredentialRepository(domain.DemoCredentials()),
		storage,
		nil,
		nil,
		zerolog.Nop(),
		service.SessionOptions{},
	)
	session.Restore(ctx)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw), "restore should reset the damaged document")
	assert.Equal(t, domain.StateAnonymous, session.Snapshot().State)

	ok, err := session.Login(ctx, "admin@hospital.org", "admin123")
	require.NoError(t, err)
	assert.True(t, ok)

	persisted, err := storage.Get(ctx, domain.SessionKey)
	require.NoError(t, err)
	assert.Contains(t, string(persisted), `"email":"admin@hospital.org"`)
}
