package entropy

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestOfCardinality(t *testing.T) {
	if h := Of(Attribute{Name: "x", Cardinality: 1024}); !almostEqual(h, 10) {
		t.Fatalf("2^10 values: want 10 bits, got %v", h)
	}
	if h := Of(Attribute{Name: "x", Cardinality: 1}); h != 0 {
		t.Fatalf("single value carries no entropy, got %v", h)
	}
	if h := Of(Attribute{Name: "x"}); h != 0 {
		t.Fatalf("zero cardinality carries no entropy, got %v", h)
	}
}

func TestOfDistribution(t *testing.T) {
	// Fair coin: exactly 1 bit.
	if h := Of(Attribute{Name: "coin", Distribution: []float64{0.5, 0.5}}); !almostEqual(h, 1) {
		t.Fatalf("fair coin: want 1 bit, got %v", h)
	}
	// Degenerate distribution: 0 bits; zero buckets are skipped.
	if h := Of(Attribute{Name: "const", Distribution: []float64{1, 0, 0}}); !almostEqual(h, 0) {
		t.Fatalf("constant: want 0 bits, got %v", h)
	}
	// Explicit distribution wins over cardinality.
	a := Attribute{Name: "both", Cardinality: 1 << 20, Distribution: []float64{0.5, 0.5}}
	if h := Of(a); !almostEqual(h, 1) {
		t.Fatalf("distribution must take precedence, got %v", h)
	}
}

func TestTheoretical(t *testing.T) {
	got := Theoretical()
	if math.Abs(got-96.6) > 0.01 {
		t.Fatalf("catalog total: want ~96.6 bits, got %v", got)
	}
}

func TestObserved(t *testing.T) {
	if h := Observed(nil); h != 0 {
		t.Fatalf("empty population: want 0, got %v", h)
	}
	// Four equally common hashes: 2 bits.
	counts := map[string]int{"a": 5, "b": 5, "c": 5, "d": 5}
	if h := Observed(counts); !almostEqual(h, 2) {
		t.Fatalf("uniform over 4: want 2 bits, got %v", h)
	}
	// Skew lowers entropy below the uniform bound.
	skewed := map[string]int{"a": 97, "b": 1, "c": 1, "d": 1}
	if h := Observed(skewed); h >= 2 {
		t.Fatalf("skewed population must fall below 2 bits, got %v", h)
	}
}

func TestFormatUniqueness(t *testing.T) {
	cases := []struct {
		bits float64
		want string
	}{
		{3, "1 in 8"},
		{10, "1 in 1.0K"},
		{20, "1 in 1.0M"},
		{30, "1 in 1.1B"},
	}
	for _, c := range cases {
		if got := FormatUniqueness(c.bits); got != c.want {
			t.Fatalf("FormatUniqueness(%v) = %q, want %q", c.bits, got, c.want)
		}
	}
	if got := FormatUniqueness(50); !strings.HasPrefix(got, "1 in ") || !strings.Contains(got, "e+") {
		t.Fatalf("large scale must use scientific notation, got %q", got)
	}
}

func TestCollisionProbability(t *testing.T) {
	if p := CollisionProbability(32, 0); p != 0 {
		t.Fatalf("empty population: want 0, got %v", p)
	}
	if p := CollisionProbability(32, 1); p != 0 {
		t.Fatalf("single fingerprint cannot collide, got %v", p)
	}
	// Birthday bound: 23 people over 365 days is just over one half.
	p := CollisionProbability(math.Log2(365), 23)
	if p < 0.49 || p > 0.54 {
		t.Fatalf("birthday check: want ~0.5, got %v", p)
	}
	// Monotone in population size.
	if CollisionProbability(32, 1000) >= CollisionProbability(32, 100000) {
		t.Fatal("larger population must raise collision probability")
	}
}

func TestDistribution(t *testing.T) {
	values := []string{"chrome", "chrome", "chrome", "firefox", "firefox", "safari"}
	s := Distribution("browser", values)
	if s.Name != "browser" {
		t.Fatalf("name: got %q", s.Name)
	}
	if s.UniqueValues != 3 {
		t.Fatalf("unique values: want 3, got %d", s.UniqueValues)
	}
	if len(s.Top) != 3 || s.Top[0].Value != "chrome" || s.Top[0].Count != 3 {
		t.Fatalf("top buckets wrong: %+v", s.Top)
	}
	want := -(0.5*math.Log2(0.5) + (1.0/3)*math.Log2(1.0/3) + (1.0/6)*math.Log2(1.0/6))
	if !almostEqual(s.Bits, want) {
		t.Fatalf("bits: want %v, got %v", want, s.Bits)
	}
}

func TestDistributionTopTen(t *testing.T) {
	values := make([]string, 0, 30)
	for i := 0; i < 15; i++ {
		values = append(values, string(rune('a'+i)))
	}
	// "z" dominates and must sort first.
	for i := 0; i < 5; i++ {
		values = append(values, "z")
	}
	s := Distribution("fonts", values)
	if len(s.Top) != 10 {
		t.Fatalf("top list must cap at 10, got %d", len(s.Top))
	}
	if s.Top[0].Value != "z" || s.Top[0].Count != 5 {
		t.Fatalf("most frequent value must lead: %+v", s.Top[0])
	}
	if s.UniqueValues != 16 {
		t.Fatalf("unique values: want 16, got %d", s.UniqueValues)
	}
}
