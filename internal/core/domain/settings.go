package domain

type NotificationSettings struct {
	SecurityAlerts bool `json:"security_alerts"`
	UserActivities bool `json:"user_activities"`
	SystemUpdates  bool `json:"system_updates"`
	LoginAttempts  bool `json:"login_attempts"`
	DataAccess     bool `json:"data_access"`
}

type SecuritySettings struct {
	TwoFactorAuth      bool   `json:"two_factor_auth"`
	AutoLogout         bool   `json:"auto_logout"`
	PasswordExpiry     bool   `json:"password_expiry"`
	PasswordComplexity string `json:"password_complexity" validate:"oneof=low medium high"`
	AutoUpdateSecurity bool   `json:"auto_update_security"`
	FaceRecognition    bool   `json:"face_recognition"`
}

type PrivacySettings struct {
	AnonymizeUserData     bool `json:"anonymize_user_data"`
	ReducedDataCollection bool `json:"reduced_data_collection"`
	EnhancedPrivacyMode   bool `json:"enhanced_privacy_mode"`
}

type AuditSettings struct {
	ExtendedActivityLogs bool   `json:"extended_activity_logs"`
	FileAccessAuditing   bool   `json:"file_access_auditing"`
	LoginAuditing        bool   `json:"login_auditing"`
	CommandAuditing      bool   `json:"command_auditing"`
	RetentionPeriod      string `json:"retention_period" validate:"oneof=30days 90days 180days 365days"`
}

// Settings is the dashboard-wide preferences document.
type Settings struct {
	Notifications NotificationSettings `json:"notifications"`
	Security      SecuritySettings     `json:"security"`
	Privacy       PrivacySettings      `json:"privacy"`
	Audit         AuditSettings        `json:"audit"`
}

// DefaultSettings mirrors the values a fresh deployment starts with.
func DefaultSettings() Settings {
	return Settings{
		Notifications: NotificationSettings{
			SecurityAlerts: true,
			UserActivities: true,
			SystemUpdates:  true,
			LoginAttempts:  true,
		},
		Security: SecuritySettings{
			TwoFactorAuth:      true,
			AutoLogout:         true,
			PasswordExpiry:     true,
			PasswordComplexity: "high",
			AutoUpdateSecurity: true,
			FaceRecognition:    true,
		},
		Audit: AuditSettings{
			ExtendedActivityLogs: true,
			FileAccessAuditing:   true,
			LoginAuditing:        true,
			RetentionPeriod:      "90days",
		},
	}
}
