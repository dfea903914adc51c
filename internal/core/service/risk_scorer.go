package service

import (
	"math/rand/v2"
	"time"

	"github.com/mediguard/security-dashboard/internal/core/domain"
	"github.com/mediguard/security-dashboard/internal/pkg/metrics"
)

const (
	baseRiskSpan   = 30
	jitterRiskSpan = 40
	offHoursRisk   = 30

	// Logins before workdayStart or after workdayEnd (local hour) are off-hours.
	workdayStart = 6
	workdayEnd   = 20
)

// RandSource yields uniformly distributed integers in [0, n).
type RandSource interface {
	IntN(n int) int
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DefaultRand returns a RandSource backed by the concurrency-safe top-level
// math/rand/v2 generator.
func DefaultRand() RandSource { return globalRand{} }

// RiskScorer computes the simulated composite risk of a login.
type RiskScorer struct {
	rand  RandSource
	clock Clock
}

// NewRiskScorer builds a scorer. Nil arguments fall back to the global
// generator and the wall clock.
func NewRiskScorer(r RandSource, c Clock) *RiskScorer {
	if r == nil {
		r = DefaultRand()
	}
	if c == nil {
		c = SystemClock()
	}
	return &RiskScorer{rand: r, clock: c}
}

// Score returns min(100, base + timeRisk + jitter), always within [0, 100].
func (s *RiskScorer) Score() int {
	base := s.rand.IntN(baseRiskSpan)

	timeRisk := 0
	if hour := s.clock.Now().Hour(); hour < workdayStart || hour > workdayEnd {
		timeRisk = offHoursRisk
	}

	jitter := s.rand.IntN(jitterRiskSpan)

	score := domain.ClampRiskScore(min(domain.MaxRiskScore, base+timeRisk+jitter))
	metrics.RiskScore.Observe(float64(score))
	return score
}
