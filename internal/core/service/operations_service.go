package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

const defaultScanDuration = 5 * time.Second

// OperationsService handles operator actions on the dashboard. None of them
// touch real systems; each one acknowledges the request with a notification.
type OperationsService struct {
	notify       ports.Notifier
	clock        Clock
	log          zerolog.Logger
	scanDuration time.Duration
}

var _ ports.OperationsService = (*OperationsService)(nil)

func NewOperationsService(notify ports.Notifier, clock Clock, scanDuration time.Duration, log zerolog.Logger) *OperationsService {
	if clock == nil {
		clock = SystemClock()
	}
	if scanDuration <= 0 {
		scanDuration = defaultScanDuration
	}
	return &OperationsService{notify: notify, clock: clock, scanDuration: scanDuration, log: log}
}

// BlockDevice quarantines a USB device.
func (o *OperationsService) BlockDevice(ctx context.Context, deviceID string) {
	o.log.Info().Str("device_id", deviceID).Msg("usb device blocked")
	o.emit(ctx, domain.NotifySuccess, "Device blocked", "The device has been quarantined and isolated.")
}

// AuthorizeDevice approves a USB device for use.
func (o *OperationsService) AuthorizeDevice(ctx context.Context, deviceID string) {
	o.log.Info().Str("device_id", deviceID).Msg("usb device authorized")
	o.emit(ctx, domain.NotifySuccess, "Device authorized", "The device has been approved for use.")
}

// UsbRefreshed acknowledges a reload of the device inventory.
func (o *OperationsService) UsbRefreshed(ctx context.Context) {
	o.emit(ctx, domain.NotifySuccess, "USB monitoring data refreshed", "Latest device information has been loaded.")
}

// Investigate flags an abnormal behaviour for the security team.
func (o *OperationsService) Investigate(ctx context.Context, behaviorID int) {
	o.log.Info().Int("behavior_id", behaviorID).Msg("investigation initiated")
	o.emit(ctx, domain.NotifyInfo, "Investigation initiated", fmt.Sprintf("Security team has been alerted about behavior ID %d", behaviorID))
}

// InstallUpdate starts installing a pending system update.
func (o *OperationsService) InstallUpdate(ctx context.Context, updateID int) {
	o.log.Info().Int("update_id", updateID).Msg("update installation initiated")
	o.emit(ctx, domain.NotifyInfo, "Update installation initiated", fmt.Sprintf("Installing update for component ID %d", updateID))
}

// Mitigate starts the mitigation process for a vulnerability.
func (o *OperationsService) Mitigate(ctx context.Context, vulnerabilityID int) {
	o.log.Info().Int("vulnerability_id", vulnerabilityID).Msg("mitigation started")
	o.emit(ctx, domain.NotifyInfo, "Mitigation process started", fmt.Sprintf("Security team has been alerted about vulnerability ID %d", vulnerabilityID))
}

// StartScan announces a full system scan and reports completion after the
// configured scan duration. The returned channel closes once the completion
// notification has been emitted.
func (o *OperationsService) StartScan(ctx context.Context) <-chan struct{} {
	o.emit(ctx, domain.NotifyInfo, "System security scan initiated", "Full system scan will take approximately 30-45 minutes to complete.")

	done := make(chan struct{})
	// Completion outlives the triggering request.
	bg := context.WithoutCancel(ctx)
	time.AfterFunc(o.scanDuration, func() {
		defer close(done)
		o.emit(bg, domain.NotifySuccess, "System scan completed", "No new vulnerabilities detected. Report available in security logs.")
	})
	return done
}

func (o *OperationsService) emit(ctx context.Context, kind domain.NotificationKind, title, desc string) {
	if o.notify == nil {
		return
	}
	o.notify.Notify(ctx, domain.Notification{
		ID:          uuid.NewString(),
		Kind:        kind,
		Title:       title,
		Description: desc,
		CreatedAt:   o.clock.Now().UTC(),
	})
}
