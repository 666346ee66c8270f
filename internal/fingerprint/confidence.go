package fingerprint

import "math"

// confidenceHalfLifeDays is how long a match keeps half its confidence.
// Browsers and devices change; a 30-day-old fingerprint is a much weaker
// identity witness than yesterday's.
const confidenceHalfLifeDays = 30.0

// AgeAdjustedConfidence decays base exponentially with the age of the matched
// record. Negative ages are treated as zero.
func AgeAdjustedConfidence(base float64, ageDays float64) float64 {
	if ageDays <= 0 {
		return base
	}
	return base * math.Pow(0.5, ageDays/confidenceHalfLifeDays)
}
