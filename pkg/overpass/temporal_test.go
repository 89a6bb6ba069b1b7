package overpass

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"
)

func testSelector(params Params) *Selector {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSelector(params).WithLogger(logger)
}

func TestTemporalValue(t *testing.T) {
	target := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	s := testSelector(DefaultParams())

	tests := []struct {
		name     string
		overpass time.Time
		expected float64
	}{
		{
			name:     "zero difference scores 1",
			overpass: target,
			expected: 1.0,
		},
		{
			name:     "24 hours off scores 0.5",
			overpass: target.Add(24 * time.Hour),
			expected: 0.5,
		},
		{
			name:     "24 hours before scores 0.5",
			overpass: target.Add(-24 * time.Hour),
			expected: 0.5,
		},
		{
			name:     "exactly at cutoff scores 0",
			overpass: target.Add(48 * time.Hour),
			expected: 0.0,
		},
		{
			name:     "beyond cutoff scores exactly 0",
			overpass: target.Add(60 * time.Hour),
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.temporalValue(tt.overpass, target)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTemporalValueMonotonic(t *testing.T) {
	target := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	s := testSelector(DefaultParams())

	prev := s.temporalValue(target, target)
	for hours := 1; hours <= 50; hours++ {
		got := s.temporalValue(target.Add(time.Duration(hours)*time.Hour), target)
		if got > prev {
			t.Fatalf("Value increased from %v to %v at %d hours", prev, got, hours)
		}
		prev = got
	}
}

func TestTemporalValueSymmetric(t *testing.T) {
	s := testSelector(DefaultParams())
	a := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	b := a.Add(17 * time.Hour)

	if v1, v2 := s.temporalValue(a, b), s.temporalValue(b, a); v1 != v2 {
		t.Errorf("Expected symmetric values, got %v and %v", v1, v2)
	}
}

func TestTemporalValueMixedLocations(t *testing.T) {
	// When locations differ, both wall-clock readings are reinterpreted in
	// UTC before differencing.
	s := testSelector(DefaultParams())
	target := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	sameWallClock := time.Date(2023, 6, 15, 12, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))

	got := s.temporalValue(sameWallClock, target)
	if got != 1.0 {
		t.Errorf("Expected equal wall clocks to score 1.0, got %v", got)
	}
}

func TestTemporalValueCustomCutoff(t *testing.T) {
	s := testSelector(Params{MaxDiffHours: 12, MinOverlapPct: 0.3})
	target := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

	if got := s.temporalValue(target.Add(6*time.Hour), target); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected 0.5 at half the cutoff, got %v", got)
	}
	if got := s.temporalValue(target.Add(13*time.Hour), target); got != 0.0 {
		t.Errorf("Expected 0 beyond cutoff, got %v", got)
	}
}
