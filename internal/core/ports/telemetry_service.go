package ports

import "github.com/mediguard/security-dashboard/internal/core/domain"

// TelemetryService produces the simulated security data behind each page.
type TelemetryService interface {
	Dashboard(riskScore int) domain.DashboardSummary
	UsbMonitoring() domain.UsbReport
	UserBehavior(department string) domain.BehaviorReport
	SystemSecurity() domain.SecurityReport
	RiskAnalysis(riskScore int) domain.RiskReport
}
