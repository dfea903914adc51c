package service

import (
	"testing"
)

func TestRiskScorer_DrawOrderAndSum(t *testing.T) {
	// base is drawn first, jitter second.
	s := NewRiskScorer(&seqRand{vals: []int{10, 20}}, clockAt(12))
	if got := s.Score(); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestRiskScorer_OffHoursBoundaries(t *testing.T) {
	cases := []struct {
		hour int
		want int
	}{
		{0, 30},
		{5, 30},
		{6, 0},
		{12, 0},
		{20, 0},
		{21, 30},
		{23, 30},
	}
	for _, tc := range cases {
		s := NewRiskScorer(&seqRand{vals: []int{0}}, clockAt(tc.hour))
		if got := s.Score(); got != tc.want {
			t.Fatalf("hour %d: expected %d, got %d", tc.hour, tc.want, got)
		}
	}
}

func TestRiskScorer_Extremes(t *testing.T) {
	// base 29, jitter 39.
	high := &seqRand{vals: []int{29, 39}}
	if got := NewRiskScorer(high, clockAt(3)).Score(); got != 98 {
		t.Fatalf("off-hours maximum: expected 98, got %d", got)
	}
	high.i = 0
	if got := NewRiskScorer(high, clockAt(9)).Score(); got != 68 {
		t.Fatalf("daytime maximum: expected 68, got %d", got)
	}
}

func TestRiskScorer_SampledRanges(t *testing.T) {
	for _, hour := range []int{2, 5, 6, 13, 20, 21} {
		offHours := hour < 6 || hour > 20
		s := NewRiskScorer(DefaultRand(), clockAt(hour))
		for range 10000 {
			got := s.Score()
			if got < 0 || got > 100 {
				t.Fatalf("hour %d: score %d outside [0,100]", hour, got)
			}
			if offHours && (got < 30 || got > 98) {
				t.Fatalf("hour %d: off-hours score %d outside [30,98]", hour, got)
			}
			if !offHours && got > 68 {
				t.Fatalf("hour %d: daytime score %d above 68", hour, got)
			}
		}
	}
}

func TestNewRiskScorer_NilDefaults(t *testing.T) {
	s := NewRiskScorer(nil, nil)
	if got := s.Score(); got < 0 || got > 100 {
		t.Fatalf("score %d outside [0,100]", got)
	}
}
