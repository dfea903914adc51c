package domain

// Severity grades incidents, behaviours, and vulnerabilities.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// RiskBand is the coarse classification rendered next to a risk score.
type RiskBand string

const (
	RiskLow    RiskBand = "low"
	RiskMedium RiskBand = "medium"
	RiskHigh   RiskBand = "high"
)

// BandFor classifies a 0..100 risk score.
func BandFor(score int) RiskBand {
	switch {
	case score < 30:
		return RiskLow
	case score < 70:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// --- Dashboard ---

type NetworkActivityPoint struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}

type ThreatType struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardSummary struct {
	RiskScore       int                    `json:"risk_score"`
	RiskBand        RiskBand               `json:"risk_band"`
	ActiveThreats   int                    `json:"active_threats"`
	Vulnerabilities int                    `json:"vulnerabilities"`
	SecuredData     int                    `json:"secured_data_pct"`
	BlockedUSBs     int                    `json:"blocked_usbs"`
	MonitoredUsers  int                    `json:"monitored_users"`
	NetworkActivity []NetworkActivityPoint `json:"network_activity"`
	ThreatTypes     []ThreatType           `json:"threat_types"`
}

// --- USB monitoring ---

type UsbStatus string

const (
	UsbAuthorized   UsbStatus = "authorized"
	UsbUnauthorized UsbStatus = "unauthorized"
	UsbQuarantined  UsbStatus = "quarantined"
	UsbScanning     UsbStatus = "scanning"
)

type UsbDevice struct {
	ID              string    `json:"id"`
	DeviceName      string    `json:"device_name"`
	SerialNumber    string    `json:"serial_number"`
	Status          UsbStatus `json:"status"`
	Location        string    `json:"location"`
	User            string    `json:"user"`
	LastConnected   string    `json:"last_connected"`
	MalwareDetected bool      `json:"malware_detected"`
	Encrypted       bool      `json:"is_encrypted"`
}

type UsbMetrics struct {
	AuthorizedDevices   int `json:"authorized_devices"`
	UnauthorizedDevices int `json:"unauthorized_devices"`
	MalwareDetected     int `json:"malware_detected"`
	ScannedFiles        int `json:"scanned_files"`
}

type UsbReport struct {
	Devices []UsbDevice `json:"devices"`
	Metrics UsbMetrics  `json:"metrics"`
}

// --- User behaviour ---

type LoginTimeBucket struct {
	Hour     int `json:"hour"`
	Normal   int `json:"normal"`
	Abnormal int `json:"abnormal"`
}

type LocationActivity struct {
	Location string `json:"location"`
	Normal   int    `json:"normal"`
	Abnormal int    `json:"abnormal"`
}

type AbnormalBehavior struct {
	ID         int      `json:"id"`
	User       string   `json:"user"`
	Department string   `json:"department"`
	Behavior   string   `json:"behavior"`
	Details    string   `json:"details"`
	Severity   Severity `json:"severity"`
	Timestamp  string   `json:"timestamp"`
}

type DataAccessPattern struct {
	ID             int    `json:"id"`
	DataType       string `json:"data_type"`
	NormalAccess   int    `json:"normal_access"`
	AbnormalAccess int    `json:"abnormal_access"`
	Trend          string `json:"trend"`
}

type BehaviorReport struct {
	LoginTimes []LoginTimeBucket   `json:"login_times"`
	Locations  []LocationActivity  `json:"locations"`
	Behaviors  []AbnormalBehavior  `json:"abnormal_behaviors"`
	DataAccess []DataAccessPattern `json:"data_access"`
}

// --- System security ---

type Vulnerability struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Component      string   `json:"component"`
	Severity       Severity `json:"severity"`
	Status         string   `json:"status"`
	Description    string   `json:"description"`
	DiscoveredDate string   `json:"discovered_date"`
}

type SystemUpdate struct {
	ID          int      `json:"id"`
	Component   string   `json:"component"`
	Version     string   `json:"version"`
	ReleaseDate string   `json:"release_date"`
	Status      string   `json:"status"`
	Size        string   `json:"size"`
	Priority    Severity `json:"priority"`
	Description string   `json:"description"`
}

type SystemStatus struct {
	FirewallStatus    string           `json:"firewall_status"`
	AntivirusStatus   string           `json:"antivirus_status"`
	EncryptionStatus  string           `json:"encryption_status"`
	BackupStatus      string           `json:"backup_status"`
	PatchLevel        int              `json:"patch_level"`
	Vulnerabilities   map[Severity]int `json:"vulnerabilities"`
	LastFullScan      string           `json:"last_full_scan"`
	NextScheduledScan string           `json:"next_scheduled_scan"`
}

type SecurityReport struct {
	Status          SystemStatus    `json:"status"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
	Updates         []SystemUpdate  `json:"updates"`
}

// --- Risk analysis ---

type RiskFactor struct {
	ID             int    `json:"id"`
	Factor         string `json:"factor"`
	Description    string `json:"description"`
	Score          int    `json:"score"`
	Recommendation string `json:"recommendation"`
}

type SecurityIncident struct {
	ID        int      `json:"id"`
	Type      string   `json:"type"`
	User      string   `json:"user"`
	Timestamp string   `json:"timestamp"`
	Severity  Severity `json:"severity"`
	Details   string   `json:"details"`
}

type RiskReport struct {
	Score     int                `json:"score"`
	Band      RiskBand           `json:"band"`
	Factors   []RiskFactor       `json:"factors"`
	Incidents []SecurityIncident `json:"incidents"`
}
