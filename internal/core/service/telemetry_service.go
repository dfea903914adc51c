package service

import (
	"fmt"
	"strings"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/core/ports"
)

const usbDeviceCount = 8

var (
	weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	usbStatuses      = []domain.UsbStatus{domain.UsbAuthorized, domain.UsbUnauthorized, domain.UsbQuarantined, domain.UsbScanning}
	usbDeviceTypes   = []string{"Storage Device", "HID Device", "Mobile Phone", "Camera", "Printer", "Unknown Device"}
	usbManufacturers = []string{"SanDisk", "Kingston", "Samsung", "Apple", "Logitech", "Generic"}
	usbLocations     = []string{"Nurses Station", "Dr. Office", "Reception", "Lab", "Admin"}
)

// TelemetryService simulates the security data shown on each dashboard page.
// Nothing here is measured; values come from the random source or from
// fixed sample records.
type TelemetryService struct {
	rand RandSource
}

var _ ports.TelemetryService = (*TelemetryService)(nil)

func NewTelemetryService(r RandSource) *TelemetryService {
	if r == nil {
		r = DefaultRand()
	}
	return &TelemetryService{rand: r}
}

// Dashboard builds the overview for a user with the given risk score.
func (t *TelemetryService) Dashboard(riskScore int) domain.DashboardSummary {
	activity := make([]domain.NetworkActivityPoint, len(weekDays))
	for i, day := range weekDays {
		activity[i] = domain.NetworkActivityPoint{Day: day, Value: t.rand.IntN(100)}
	}

	score := domain.ClampRiskScore(riskScore)
	return domain.DashboardSummary{
		RiskScore:       score,
		RiskBand:        domain.BandFor(score),
		ActiveThreats:   t.rand.IntN(10),
		Vulnerabilities: t.rand.IntN(30) + 10,
		SecuredData:     t.rand.IntN(20) + 80,
		BlockedUSBs:     t.rand.IntN(5),
		MonitoredUsers:  t.rand.IntN(30) + 70,
		NetworkActivity: activity,
		ThreatTypes: []domain.ThreatType{
			{Name: "Malware", Value: 4},
			{Name: "Phishing", Value: 3},
			{Name: "Unauthorized", Value: 2},
			{Name: "Other", Value: 1},
		},
	}
}

// UsbMonitoring returns a fresh simulated device inventory.
func (t *TelemetryService) UsbMonitoring() domain.UsbReport {
	devices := make([]domain.UsbDevice, usbDeviceCount)
	for i := range devices {
		hours := t.rand.IntN(24) + 1
		unit := "hours"
		if hours == 1 {
			unit = "hour"
		}
		devices[i] = domain.UsbDevice{
			ID:              fmt.Sprintf("usb-%d", i+1),
			DeviceName:      pick(t.rand, usbManufacturers) + " " + pick(t.rand, usbDeviceTypes),
			SerialNumber:    fmt.Sprintf("SN%d", t.rand.IntN(1000000)),
			Status:          pick(t.rand, usbStatuses),
			Location:        pick(t.rand, usbLocations),
			User:            fmt.Sprintf("user%d", t.rand.IntN(100)),
			LastConnected:   fmt.Sprintf("%d %s ago", hours, unit),
			MalwareDetected: t.rand.IntN(10) >= 7,
			Encrypted:       t.rand.IntN(2) == 1,
		}
	}

	return domain.UsbReport{
		Devices: devices,
		Metrics: domain.UsbMetrics{
			AuthorizedDevices:   t.rand.IntN(20) + 10,
			UnauthorizedDevices: t.rand.IntN(5),
			MalwareDetected:     t.rand.IntN(3),
			ScannedFiles:        t.rand.IntN(500) + 100,
		},
	}
}

// UserBehavior returns login patterns and anomalies. department filters the
// anomaly list case-insensitively; "" or "all" keeps every entry.
func (t *TelemetryService) UserBehavior(department string) domain.BehaviorReport {
	buckets := make([]domain.LoginTimeBucket, 24)
	for hour := range buckets {
		normal := t.rand.IntN(10) + 3
		if hour >= 8 && hour <= 17 {
			normal = t.rand.IntN(10) + 15
		}
		abnormal := t.rand.IntN(3)
		if hour <= 5 {
			abnormal += 2
		}
		buckets[hour] = domain.LoginTimeBucket{Hour: hour, Normal: normal, Abnormal: abnormal}
	}

	behaviors := abnormalBehaviors()
	if department != "" && !strings.EqualFold(department, "all") {
		filtered := behaviors[:0]
		for _, b := range behaviors {
			if strings.EqualFold(b.Department, department) {
				filtered = append(filtered, b)
			}
		}
		behaviors = filtered
	}

	return domain.BehaviorReport{
		LoginTimes: buckets,
		Locations: []domain.LocationActivity{
			{Location: "Nurses Station", Normal: 65, Abnormal: 3},
			{Location: "Doctor Offices", Normal: 45, Abnormal: 2},
			{Location: "Reception", Normal: 30, Abnormal: 1},
			{Location: "Lab", Normal: 25, Abnormal: 4},
			{Location: "Admin", Normal: 20, Abnormal: 1},
			{Location: "Emergency", Normal: 15, Abnormal: 0},
		},
		Behaviors: behaviors,
		DataAccess: []domain.DataAccessPattern{
			{ID: 1, DataType: "Patient Records", NormalAccess: 215, AbnormalAccess: 12, Trend: "-5%"},
			{ID: 2, DataType: "Medication Records", NormalAccess: 178, AbnormalAccess: 7, Trend: "+8%"},
			{ID: 3, DataType: "Administrative Files", NormalAccess: 92, AbnormalAccess: 3, Trend: "-2%"},
			{ID: 4, DataType: "Financial Data", NormalAccess: 45, AbnormalAccess: 9, Trend: "+15%"},
		},
	}
}

// SystemSecurity returns the vulnerability and patch overview.
func (t *TelemetryService) SystemSecurity() domain.SecurityReport {
	vulns := []domain.Vulnerability{
		{ID: 1, Name: "CVE-2023-1234", Component: "Windows OS", Severity: domain.SeverityCritical, Status: "open", Description: "Remote code execution vulnerability in Windows authentication", DiscoveredDate: "2023-11-15"},
		{ID: 2, Name: "CVE-2023-5678", Component: "Apache Server", Severity: domain.SeverityHigh, Status: "patching", Description: "Buffer overflow vulnerability in HTTP request processing", DiscoveredDate: "2023-12-03"},
		{ID: 3, Name: "CVE-2023-9012", Component: "Database Server", Severity: domain.SeverityMedium, Status: "open", Description: "SQL injection vulnerability in query parameters", DiscoveredDate: "2023-12-10"},
		{ID: 4, Name: "CVE-2023-3456", Component: "Network Firewall", Severity: domain.SeverityLow, Status: "mitigated", Description: "Improper filtering of specific packet types", DiscoveredDate: "2023-10-21"},
		{ID: 5, Name: "CVE-2023-7890", Component: "EMR Software", Severity: domain.SeverityHigh, Status: "open", Description: "Improper access control in patient record views", DiscoveredDate: "2023-12-15"},
	}

	counts := make(map[domain.Severity]int, 4)
	for _, v := range vulns {
		counts[v.Severity]++
	}

	return domain.SecurityReport{
		Status: domain.SystemStatus{
			FirewallStatus:    "active",
			AntivirusStatus:   "active",
			EncryptionStatus:  "active",
			BackupStatus:      "active",
			PatchLevel:        92,
			Vulnerabilities:   counts,
			LastFullScan:      "2023-12-16 03:45 AM",
			NextScheduledScan: "2023-12-23 02:00 AM",
		},
		Vulnerabilities: vulns,
		Updates: []domain.SystemUpdate{
			{ID: 1, Component: "Windows Server 2019", Version: "Security Update KB5031361", ReleaseDate: "2023-12-12", Status: "pending", Size: "435 MB", Priority: domain.SeverityCritical, Description: "Critical security update for Windows Server"},
			{ID: 2, Component: "Anti-Virus Software", Version: "v12.4.567", ReleaseDate: "2023-12-10", Status: "installed", Size: "125 MB", Priority: domain.SeverityHigh, Description: "Update to antivirus definitions and scanning engine"},
			{ID: 3, Component: "Network Monitoring Tool", Version: "v3.2.1", ReleaseDate: "2023-12-08", Status: "pending", Size: "78 MB", Priority: domain.SeverityMedium, Description: "Feature updates and security enhancements"},
			{ID: 4, Component: "Database Server", Version: "Security Patch 2023-4", ReleaseDate: "2023-12-05", Status: "downloading", Size: "210 MB", Priority: domain.SeverityHigh, Description: "Critical security patch for known vulnerabilities"},
		},
	}
}

// RiskAnalysis breaks a user's risk score down into contributing factors.
func (t *TelemetryService) RiskAnalysis(riskScore int) domain.RiskReport {
	score := domain.ClampRiskScore(riskScore)
	return domain.RiskReport{
		Score: score,
		Band:  domain.BandFor(score),
		Factors: []domain.RiskFactor{
			{ID: 1, Factor: "Password Strength", Description: "Based on complexity and reuse", Score: 25, Recommendation: "Use a stronger password with special characters"},
			{ID: 2, Factor: "Login Time Analysis", Description: "Based on typical access patterns", Score: 15, Recommendation: "No action needed, login times are within normal ranges"},
			{ID: 3, Factor: "Facial Recognition", Description: "Biometric identity verification", Score: 5, Recommendation: "Ensure proper lighting during facial verification"},
			{ID: 4, Factor: "USB Device Control", Description: "Detection of unauthorized devices", Score: 40, Recommendation: "Remove unauthorized USB device from port 2"},
			{ID: 5, Factor: "System Vulnerabilities", Description: "Based on security patch status", Score: 35, Recommendation: "Apply pending security updates within 24 hours"},
		},
		Incidents: []domain.SecurityIncident{
			{ID: 1, Type: "Failed Login", User: "john.doe", Timestamp: "2 hours ago", Severity: domain.SeverityMedium, Details: "Multiple failed login attempts from unusual location"},
			{ID: 2, Type: "USB Device", User: "mary.smith", Timestamp: "4 hours ago", Severity: domain.SeverityHigh, Details: "Unauthorized USB storage device connected"},
			{ID: 3, Type: "File Access", User: "admin", Timestamp: "1 day ago", Severity: domain.SeverityLow, Details: "Attempted access to restricted patient records"},
			{ID: 4, Type: "System Alert", User: "system", Timestamp: "2 days ago", Severity: domain.SeverityCritical, Details: "Possible ransomware signature detected and blocked"},
		},
	}
}

func abnormalBehaviors() []domain.AbnormalBehavior {
	return []domain.AbnormalBehavior{
		{ID: 1, User: "john.smith", Department: "Radiology", Behavior: "Unusual login time", Details: "Logged in at 2:34 AM, outside normal work hours", Severity: domain.SeverityMedium, Timestamp: "2 hours ago"},
		{ID: 2, User: "sarah.johnson", Department: "Cardiology", Behavior: "Excessive file access", Details: "Accessed 47 patient records in 10 minutes", Severity: domain.SeverityHigh, Timestamp: "1 day ago"},
		{ID: 3, User: "robert.williams", Department: "Administration", Behavior: "Location anomaly", Details: "Logged in from remote location not previously associated", Severity: domain.SeverityMedium, Timestamp: "3 days ago"},
		{ID: 4, User: "maria.garcia", Department: "Emergency", Behavior: "Privilege escalation", Details: "Attempted to access admin-level system functions", Severity: domain.SeverityCritical, Timestamp: "5 days ago"},
		{ID: 5, User: "david.brown", Department: "IT Support", Behavior: "Multiple failed logins", Details: "5 failed login attempts before successful authentication", Severity: domain.SeverityLow, Timestamp: "1 week ago"},
	}
}

func pick[T any](r RandSource, items []T) T {
	return items[r.IntN(len(items))]
}
