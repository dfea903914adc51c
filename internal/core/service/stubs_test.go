package service

import (
	"context"
	"sync"
	"time"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func clockAt(hour int) fixedClock {
	return fixedClock{t: time.Date(2024, time.March, 4, hour, 15, 0, 0, time.UTC)}
}

// seqRand replays vals in order, wrapping around; each value is reduced
// modulo n so it always stays in range.
type seqRand struct {
	mu   sync.Mutex
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

type stubCreds struct {
	records []domain.Credential
	err     error
}

func (s *stubCreds) Match(_ context.Context, email, password string) (*domain.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, rec := range s.records {
		if rec.Email == email && rec.Password == password {
			match := rec
			return &match, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *stubCreds) Exists(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, rec := range s.records {
		if rec.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type stubStorage struct {
	mu      sync.Mutex
	data    map[string][]byte
	setErr  error
	getErr  error
	deletes int
}

func newStubStorage() *stubStorage {
	return &stubStorage{data: make(map[string][]byte)}
}

func (s *stubStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return v, nil
}

func (s *stubStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func (s *stubStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	delete(s.data, key)
	return nil
}

func (s *stubStorage) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.sent...)
}

func (r *recordingNotifier) last() domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return domain.Notification{}
	}
	return r.sent[len(r.sent)-1]
}
