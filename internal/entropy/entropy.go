// Package entropy computes Shannon-entropy based uniqueness estimates for
// fingerprint attributes, both from literature-sourced cardinalities and from
// the live hash distribution.
package entropy

import (
	"fmt"
	"math"
	"sort"
)

// Attribute is a named signal with either an explicit probability
// distribution or a cardinality (uniform distribution assumed).
type Attribute struct {
	Name         string
	Cardinality  float64
	Distribution []float64
}

// Of returns the Shannon entropy of a single attribute in bits. With an
// explicit distribution it is -Σ p·log2(p) over non-zero probabilities;
// otherwise log2(cardinality).
func Of(a Attribute) float64 {
	if len(a.Distribution) > 0 {
		var h float64
		for _, p := range a.Distribution {
			if p > 0 {
				h -= p * math.Log2(p)
			}
		}
		return h
	}
	if a.Cardinality <= 1 {
		return 0
	}
	return math.Log2(a.Cardinality)
}

// Total sums per-attribute entropies. Attributes are assumed independent,
// which overestimates combined entropy; good enough for a uniqueness gauge.
func Total(attrs []Attribute) float64 {
	var sum float64
	for _, a := range attrs {
		sum += Of(a)
	}
	return sum
}

// catalog carries literature-sourced cardinalities for the signals we
// collect. Fractional-bit entries use 2^bits directly.
var catalog = []Attribute{
	{Name: "userAgent", Cardinality: math.Exp2(10)},
	{Name: "screenResolution", Cardinality: math.Exp2(6.6)},
	{Name: "timezone", Cardinality: math.Exp2(7.6)},
	{Name: "language", Cardinality: math.Exp2(5.6)},
	{Name: "canvasHash", Cardinality: math.Exp2(16.6)},
	{Name: "webglRenderer", Cardinality: math.Exp2(12.3)},
	{Name: "audioFingerprint", Cardinality: math.Exp2(13.3)},
	{Name: "fonts", Cardinality: math.Exp2(15.6)},
	{Name: "hardwareConcurrency", Cardinality: math.Exp2(4)},
	{Name: "deviceMemory", Cardinality: math.Exp2(3)},
	{Name: "colorDepth", Cardinality: math.Exp2(2)},
}

// Catalog returns a copy of the theoretical attribute catalog.
func Catalog() []Attribute {
	out := make([]Attribute, len(catalog))
	copy(out, catalog)
	return out
}

// Theoretical is the summed entropy of the full catalog, ~96.6 bits.
func Theoretical() float64 {
	return Total(catalog)
}

// Observed computes the empirical entropy of the live population from a
// fingerprint-hash frequency map.
func Observed(hashCounts map[string]int) float64 {
	total := 0
	for _, n := range hashCounts {
		total += n
	}
	if total == 0 {
		return 0
	}
	var h float64
	for _, n := range hashCounts {
		if n <= 0 {
			continue
		}
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

// Uniqueness converts bits of entropy into "collides with 1 in N" scale.
func Uniqueness(bits float64) float64 {
	return math.Exp2(bits)
}

// FormatUniqueness renders the uniqueness scale for humans.
func FormatUniqueness(bits float64) string {
	n := Uniqueness(bits)
	switch {
	case n < 1e3:
		return fmt.Sprintf("1 in %.0f", n)
	case n < 1e6:
		return fmt.Sprintf("1 in %.1fK", n/1e3)
	case n < 1e9:
		return fmt.Sprintf("1 in %.1fM", n/1e6)
	case n < 1e12:
		return fmt.Sprintf("1 in %.1fB", n/1e9)
	default:
		return fmt.Sprintf("1 in %.2e", n)
	}
}

// CollisionProbability is the birthday-paradox approximation for the chance
// of at least one collision among populationSize fingerprints drawn from a
// 2^bits space: 1 - e^(-n(n-1)/(2·2^bits)).
func CollisionProbability(bits float64, populationSize int) float64 {
	if populationSize < 2 {
		return 0
	}
	n := float64(populationSize)
	return 1 - math.Exp(-n*(n-1)/(2*math.Exp2(bits)))
}

// ValueCount is one bucket of an empirical value distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary describes the empirical distribution of one categorical attribute.
type Summary struct {
	Name         string       `json:"name"`
	UniqueValues int          `json:"uniqueValues"`
	Bits         float64      `json:"entropyBits"`
	Top          []ValueCount `json:"topValues"`
}

// Distribution analyzes an observed value stream: unique count, empirical
// entropy, and the ten most frequent values.
func Distribution(name string, values []string) Summary {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	buckets := make([]ValueCount, 0, len(counts))
	hashCounts := make(map[string]int, len(counts))
	for v, n := range counts {
		buckets = append(buckets, ValueCount{Value: v, Count: n})
		hashCounts[v] = n
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Value < buckets[j].Value
	})
	if len(buckets) > 10 {
		buckets = buckets[:10]
	}
	return Summary{
		Name:         name,
		UniqueValues: len(counts),
		Bits:         Observed(hashCounts),
		Top:          buckets,
	}
}
