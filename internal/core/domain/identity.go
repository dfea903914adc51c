package domain

import "time"

// Role is the closed set of staff roles an Identity can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDoctor Role = "doctor"
	RoleNurse  Role = "nurse"
	RoleStaff  Role = "staff"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleStaff:
		return true
	}
	return false
}

const (
	MinRiskScore = 0
	MaxRiskScore = 100

	// InitialRiskScore is assigned to every freshly registered account.
	InitialRiskScore = 50
)

// Identity is the authenticated actor held by the Session.
type Identity struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	LastLogin  time.Time `json:"lastLogin"`
	RiskScore  int       `json:"riskScore"`
}

// ClampRiskScore bounds score to [MinRiskScore, MaxRiskScore].
func ClampRiskScore(score int) int {
	if score < MinRiskScore {
		return MinRiskScore
	}
	if score > MaxRiskScore {
		return MaxRiskScore
	}
	return score
}

// Credential pairs a login address and secret with the Identity template it
// unlocks. Records are seed data and never change at runtime.
type Credential struct {
	Email    string
	Password string
	Template Identity
}

// DemoCredentials returns the fixed demo account set.
func DemoCredentials() []Credential {
	return []Credential{
		{
			Email:    "admin@hospital.org",
			Password: "admin123",
			Template: Identity{ID: "1", Username: "admin", Email: "admin@hospital.org", Role: RoleAdmin, Department: "IT Security", RiskScore: 15},
		},
		{
			Email:    "doctor@hospital.org",
			Password: "doctor123",
			Template: Identity{ID: "2", Username: "doctor", Email: "doctor@hospital.org", Role: RoleDoctor, Department: "Cardiology", RiskScore: 25},
		},
		{
			Email:    "nurse@hospital.org",
			Password: "nurse123",
			Template: Identity{ID: "3", Username: "nurse", Email: "nurse@hospital.org", Role: RoleNurse, Department: "Emergency", RiskScore: 35},
		},
	}
}
