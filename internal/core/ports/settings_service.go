package ports

import (
	"context"

	"github.com/mediguard/security-dashboard/internal/core/domain"
)

// SettingsService stores the dashboard preferences document.
type SettingsService interface {
	Get() domain.Settings
	Update(ctx context.Context, s domain.Settings) (domain.Settings, error)
}
