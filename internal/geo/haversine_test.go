package geo

import (
	"math"
	"testing"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	d := DistanceKm(31.975, 35.860, 31.975, 35.860)
	if d != 0 {
		t.Fatalf("distance = %v, want 0", d)
	}
	if RoundKm(d) != 0 {
		t.Fatalf("rounded distance = %v, want 0.00", RoundKm(d))
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// Amman to Aqaba, roughly 283 km great-circle.
	d := DistanceKm(31.955, 35.945, 29.532, 35.006)
	if math.Abs(d-283) > 5 {
		t.Fatalf("Amman-Aqaba distance = %v, want ~283", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	ab := DistanceKm(31.980, 35.880, 32.067, 36.140)
	ba := DistanceKm(32.067, 36.140, 31.980, 35.880)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestRoundKm(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{12.3456, 12.35},
		{0.004, 0.0},
	}
	for _, tt := range tests {
		if got := RoundKm(tt.in); got != tt.want {
			t.Fatalf("RoundKm(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
