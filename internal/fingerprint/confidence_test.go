package fingerprint

import (
	"math"
	"testing"
)

func TestAgeAdjustedConfidence(t *testing.T) {
	cases := []struct {
		base, ageDays, want float64
	}{
		{0.9, 0, 0.9},
		{0.9, -5, 0.9},
		{0.8, 30, 0.4}, // one half-life
		{0.8, 60, 0.2}, // two half-lives
		{1.0, 15, math.Pow(0.5, 0.5)},
	}
	for _, c := range cases {
		got := AgeAdjustedConfidence(c.base, c.ageDays)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("AgeAdjustedConfidence(%v, %v) = %v, want %v", c.base, c.ageDays, got, c.want)
		}
	}
}
