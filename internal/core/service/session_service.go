package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
	"github.com/mediguard/security-dashboard/internal/pkg/metrics"
)

const (
	opLogin    = "login"
	opRegister = "register"
)

// SessionOptions tunes a SessionStore. The zero value is usable.
type SessionOptions struct {
	// Delay is the simulated network latency applied before every login and
	// registration resolves. Zero resolves immediately.
	Delay time.Duration
	// Clock stamps LastLogin and notifications. Defaults to the wall clock.
	Clock Clock
	// NewID mints identifiers for registered accounts.
	NewID func() string
}

// SessionStore owns the single process-wide Session. All mutation flows
// through Login, Register, Logout and Restore.
//
// Overlapping Login/Register calls are rejected: while one call is suspended
// in its delay, another returns ErrAuthInProgress without touching the
// session. Logout always wins over an in-flight call: a Login or Register
// that began before the Logout resolves with ErrSessionClosed and neither
// persists nor commits its identity.
type SessionStore struct {
	creds   ports.CredentialRepository
	storage ports.SessionStorage
	notify  ports.Notifier
	scorer  *RiskScorer
	log     zerolog.Logger

	delay time.Duration
	clock Clock
	newID func() string

	// writeMu orders the storage write and in-memory swap of a resolving
	// call against Logout, so the two never interleave.
	writeMu sync.Mutex

	mu       sync.Mutex
	identity *domain.Identity
	errMsg   string
	inFlight bool
	// epoch advances on every Logout.
	epoch uint64
}

var _ ports.SessionService = (*SessionStore)(nil)

// NewSessionStore returns an anonymous SessionStore. Call Restore once at
// startup to pick up a persisted session.
func NewSessionStore(
	creds ports.CredentialRepository,
	storage ports.SessionStorage,
	notify ports.Notifier,
	scorer *RiskScorer,
	log zerolog.Logger,
	opts SessionOptions,
) *SessionStore {
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return "user_" + uuid.NewString() }
	}
	if scorer == nil {
		scorer = NewRiskScorer(nil, opts.Clock)
	}
	return &SessionStore{
		creds:   creds,
		storage: storage,
		notify:  notify,
		scorer:  scorer,
		log:     log,
		delay:   opts.Delay,
		clock:   opts.Clock,
		newID:   opts.NewID,
	}
}

// Login authenticates against the credential set and, on success, replaces
// the current identity and persists it.
func (s *SessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	epoch, ok := s.begin()
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues(opLogin, resultLabel(domain.ErrAuthInProgress)).Inc()
		return false, domain.ErrAuthInProgress
	}
	defer s.end()

	if err := s.wait(ctx); err != nil {
		return s.fail(ctx, opLogin, fmt.Errorf("login: %w: %w", domain.ErrUnexpected, err))
	}

	cred, err := s.creds.Match(ctx, email, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			err = fmt.Errorf("login: %w: %w", domain.ErrUnexpected, err)
		}
		return s.fail(ctx, opLogin, err)
	}

	identity := domain.Identity{
		ID:         cred.Template.ID,
		Username:   cred.Template.Username,
		Email:      cred.Template.Email,
		Role:       cred.Template.Role,
		Department: cred.Template.Department,
		LastLogin:  s.clock.Now(),
		RiskScore:  s.scorer.Score(),
	}
	if err := s.settle(ctx, epoch, identity); err != nil {
		if errors.Is(err, domain.ErrSessionClosed) {
			return s.abandon(opLogin)
		}
		return s.fail(ctx, opLogin, fmt.Errorf("login: %w: %w", domain.ErrUnexpected, err))
	}

	metrics.AuthAttemptsTotal.WithLabelValues(opLogin, resultLabel(nil)).Inc()
	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Int("risk_score", identity.RiskScore).Msg("login succeeded")
	s.emit(ctx, domain.NotifySuccess, "Login successful", fmt.Sprintf("Welcome back, %s!", identity.Username))
	return true, nil
}

// Register creates a session for a new account. The account is not added to
// the credential set, so it cannot log in again after Logout.
func (s *SessionStore) Register(ctx context.Context, in ports.RegisterInput, password string) (bool, error) {
	epoch, ok := s.begin()
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues(opRegister, resultLabel(domain.ErrAuthInProgress)).Inc()
		return false, domain.ErrAuthInProgress
	}
	defer s.end()

	if err := s.wait(ctx); err != nil {
		return s.fail(ctx, opRegister, fmt.Errorf("register: %w: %w", domain.ErrUnexpected, err))
	}

	if !in.Role.Valid() {
		return s.fail(ctx, opRegister, fmt.Errorf("register: %w: unknown role %q", domain.ErrUnexpected, in.Role))
	}

	exists, err := s.creds.Exists(ctx, in.Email)
	if err != nil {
		return s.fail(ctx, opRegister, fmt.Errorf("register: %w: %w", domain.ErrUnexpected, err))
	}
	if exists {
		return s.fail(ctx, opRegister, domain.ErrDuplicateAccount)
	}

	identity := domain.Identity{
		ID:         s.newID(),
		Username:   in.Username,
		Email:      in.Email,
		Role:       in.Role,
		Department: in.Department,
		LastLogin:  s.clock.Now(),
		RiskScore:  domain.InitialRiskScore,
	}
	if err := s.settle(ctx, epoch, identity); err != nil {
		if errors.Is(err, domain.ErrSessionClosed) {
			return s.abandon(opRegister)
		}
		return s.fail(ctx, opRegister, fmt.Errorf("register: %w: %w", domain.ErrUnexpected, err))
	}

	metrics.AuthAttemptsTotal.WithLabelValues(opRegister, resultLabel(nil)).Inc()
	s.log.Info().Str("user_id", identity.ID).Str("role", string(identity.Role)).Msg("registration succeeded")
	s.emit(ctx, domain.NotifySuccess, "Registration successful", fmt.Sprintf("Welcome to MediGuard, %s!", identity.Username))
	return true, nil
}

// Logout clears the session and its persisted entry. It always succeeds,
// and any Login or Register still in flight is abandoned.
func (s *SessionStore) Logout(ctx context.Context) {
	s.writeMu.Lock()
	s.mu.Lock()
	s.epoch++
	s.identity = nil
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, domain.SessionKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to remove persisted session")
	}
	s.writeMu.Unlock()

	metrics.LogoutsTotal.Inc()
	s.emit(ctx, domain.NotifyInfo, "Logged out successfully", "")
}

// Restore loads a persisted identity. A malformed entry, or a storage
// document that cannot be decoded at all, is deleted and the session stays
// anonymous; no failure is ever surfaced.
func (s *SessionStore) Restore(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := s.storage.Get(ctx, domain.SessionKey)
	if errors.Is(err, domain.ErrKeyNotFound) {
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return
	}
	if err != nil && !errors.Is(err, domain.ErrMalformedSession) {
		s.log.Warn().Err(err).Msg("failed to read persisted session")
		metrics.SessionRestoresTotal.WithLabelValues("error").Inc()
		return
	}

	identity, err := restoredIdentity(raw, err)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to restore user session")
		if delErr := s.storage.Delete(ctx, domain.SessionKey); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to remove malformed session")
		}
		metrics.SessionRestoresTotal.WithLabelValues("malformed").Inc()
		return
	}

	s.commit(identity)
	metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	s.log.Info().Str("user_id", identity.ID).Msg("session restored")
}

// Snapshot returns a copy of the current session.
func (s *SessionStore) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.Session{Error: s.errMsg}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}

	switch {
	case s.inFlight:
		snap.State = domain.StateAuthenticating
	case s.identity != nil:
		snap.State = domain.StateAuthenticated
	case s.errMsg != "":
		snap.State = domain.StateError
	default:
		snap.State = domain.StateAnonymous
	}
	return snap
}

// Authenticated reports whether protected destinations are reachable.
func (s *SessionStore) Authenticated() bool {
	return s.Snapshot().Authenticated()
}

// begin claims the in-flight slot and returns the logout epoch it started in.
func (s *SessionStore) begin() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return 0, false
	}
	s.inFlight = true
	s.errMsg = ""
	return s.epoch, true
}

func (s *SessionStore) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

// settle persists and commits identity unless a Logout has run since epoch.
func (s *SessionStore) settle(ctx context.Context, epoch uint64, identity domain.Identity) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	stale := s.epoch != epoch
	s.mu.Unlock()
	if stale {
		return domain.ErrSessionClosed
	}

	if err := s.persist(ctx, identity); err != nil {
		return err
	}
	s.commit(identity)
	return nil
}

// abandon resolves a call overtaken by Logout. The session keeps the
// anonymous state Logout left, with no error message and no notification.
func (s *SessionStore) abandon(op string) (bool, error) {
	metrics.AuthAttemptsTotal.WithLabelValues(op, resultLabel(domain.ErrSessionClosed)).Inc()
	s.log.Info().Str("operation", op).Msg("session closed before the call resolved")
	return false, domain.ErrSessionClosed
}

func (s *SessionStore) commit(identity domain.Identity) {
	s.mu.Lock()
	s.identity = &identity
	s.errMsg = ""
	s.mu.Unlock()
}

// wait suspends for the configured delay or until ctx is done.
func (s *SessionStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *SessionStore) fail(ctx context.Context, op string, err error) (bool, error) {
	msg := domain.Message(err)

	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()

	metrics.AuthAttemptsTotal.WithLabelValues(op, resultLabel(err)).Inc()
	if errors.Is(err, domain.ErrUnexpected) {
		s.log.Error().Err(err).Str("operation", op).Msg("session operation failed")
	} else {
		s.log.Info().Err(err).Str("operation", op).Msg("session operation rejected")
	}

	title := "Authentication failed"
	if op == opRegister {
		title = "Registration failed"
	}
	s.emit(ctx, domain.NotifyError, title, msg)
	return false, err
}

func (s *SessionStore) persist(ctx context.Context, identity domain.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Set(ctx, domain.SessionKey, raw); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func (s *SessionStore) emit(ctx context.Context, kind domain.NotificationKind, title, desc string) {
	if s.notify == nil {
		return
	}
	s.notify.Notify(ctx, domain.Notification{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: desc,
		CreatedAt:   s.clock.Now().UTC(),
	})
}

// restoredIdentity decodes raw, or passes through a storage-level decode
// failure so both are handled as a malformed entry.
func restoredIdentity(raw []byte, readErr error) (domain.Identity, error) {
	if readErr != nil {
		return domain.Identity{}, readErr
	}
	return decodeIdentity(raw)
}

// decodeIdentity parses a persisted entry, reviving LastLogin from its
// RFC 3339 form and rejecting entries without an id, an email or a known role.
func decodeIdentity(raw []byte) (domain.Identity, error) {
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrMalformedSession, err)
	}
	if identity.ID == "" || identity.Email == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing id or email", domain.ErrMalformedSession)
	}
	if !identity.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: unknown role %q", domain.ErrMalformedSession, identity.Role)
	}
	identity.RiskScore = domain.ClampRiskScore(identity.RiskScore)
	return identity, nil
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrDuplicateAccount):
		return "duplicate_account"
	case errors.Is(err, domain.ErrAuthInProgress):
		return "in_progress"
	case errors.Is(err, domain.ErrSessionClosed):
		return "session_closed"
	default:
		return "error"
	}
}
