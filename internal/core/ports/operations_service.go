package ports

import "context"

// OperationsService acknowledges operator actions taken from the dashboard.
type OperationsService interface {
	BlockDevice(ctx context.Context, deviceID string)
	AuthorizeDevice(ctx context.Context, deviceID string)
	UsbRefreshed(ctx context.Context)
	Investigate(ctx context.Context, behaviorID int)
	InstallUpdate(ctx context.Context, updateID int)
	Mitigate(ctx context.Context, vulnerabilityID int)
	// StartScan returns a channel closed once the scan has reported back.
	StartScan(ctx context.Context) <-chan struct{}
}
