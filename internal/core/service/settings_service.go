package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

// SettingsService keeps the dashboard preferences in memory.
type SettingsService struct {
	notify   ports.Notifier
	validate *validator.Validate
	clock    Clock
	log      zerolog.Logger

	mu       sync.RWMutex
	settings domain.Settings
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(notify ports.Notifier, clock Clock, log zerolog.Logger) *SettingsService {
	if clock == nil {
		clock = SystemClock()
	}
	return &SettingsService{
		notify:   notify,
		validate: validator.New(),
		clock:    clock,
		log:      log,
		settings: domain.DefaultSettings(),
	}
}

func (s *SettingsService) Get() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update replaces the whole document after validating its enumerated fields.
func (s *SettingsService) Update(ctx context.Context, next domain.Settings) (domain.Settings, error) {
	if err := s.validate.Struct(next); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %w", domain.ErrInvalidSetting, err)
	}

	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	s.log.Info().Msg("settings updated")
	if s.notify != nil {
		s.notify.Notify(ctx, domain.Notification{
			ID:          uuid.NewString(),
			Kind:        domain.NotifySuccess,
			Title:       "Settings saved successfully",
			Description: "Your security configuration has been updated.",
			CreatedAt:   s.clock.Now().UTC(),
		})
	}
	return next, nil
}
