package fingerprint

import (
	"math"
	"testing"
	"time"
)

func fullAttrs() *Attributes {
	return &Attributes{
		UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/126.0 Safari/537.36",
		Language:            "de-DE",
		Platform:            "Win32",
		HardwareConcurrency: 8,
		DeviceMemory:        8,
		Screen:              &Screen{Width: 1920, Height: 1080, ColorDepth: 24},
		Window:              &Window{InnerWidth: 1280, InnerHeight: 720},
		Timezone:            "Europe/Berlin",
		CanvasHash:          "c4nv4s",
		WebGL:               &WebGL{UnmaskedVendor: "NVIDIA Corporation", UnmaskedRenderer: "NVIDIA GeForce RTX 3060"},
		Audio:               &Audio{Checksum: "aud-123", SampleRate: 44100},
		Fonts:               []string{"Arial", "Calibri", "Consolas", "Verdana"},
	}
}

type testCand struct {
	attrs *Attributes
	seen  time.Time
}

func (c testCand) FingerprintAttributes() *Attributes { return c.attrs }
func (c testCand) SeenAt() time.Time                  { return c.seen }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSimilarityIdentical(t *testing.T) {
	a, b := fullAttrs(), fullAttrs()
	if s := Similarity(a, b); !almostEqual(s, 1.0) {
		t.Fatalf("identical fingerprints: want 1.0, got %v", s)
	}
}

func TestSimilarityAllDifferent(t *testing.T) {
	a := fullAttrs()
	b := fullAttrs()
	b.CanvasHash = "other"
	b.WebGL = &WebGL{UnmaskedRenderer: "AMD Radeon RX 6700"}
	b.Audio = &Audio{Checksum: "aud-999"}
	b.Fonts = []string{"Comic Sans MS"}
	b.Screen = &Screen{Width: 1366, Height: 768}
	b.Timezone = "America/New_York"
	b.HardwareConcurrency = 4
	if s := Similarity(a, b); !almostEqual(s, 0.0) {
		t.Fatalf("disjoint fingerprints: want 0.0, got %v", s)
	}
}

func TestSimilarityMissingAttributeExcluded(t *testing.T) {
	a := fullAttrs()
	b := fullAttrs()
	a.WebGL = nil // absent on one side: weight drops out of both sides
	if s := Similarity(a, b); !almostEqual(s, 1.0) {
		t.Fatalf("missing webgl should not penalize: want 1.0, got %v", s)
	}
}

func TestSimilarityFontDrift(t *testing.T) {
	a := fullAttrs()
	b := fullAttrs()
	// 17 of 20 fonts shared, none extra: Jaccard exactly 0.85.
	fonts := make([]string, 20)
	for i := range fonts {
		fonts[i] = string(rune('a' + i))
	}
	a.Fonts = fonts
	b.Fonts = fonts[:17]
	want := 0.85 + 0.15*0.85 // all weights match except the fonts share
	if s := Similarity(a, b); !almostEqual(s, want) {
		t.Fatalf("font drift: want %v, got %v", want, s)
	}
}

func TestJaccard(t *testing.T) {
	if j := jaccard([]string{"a", "b"}, []string{"b", "c"}); !almostEqual(j, 1.0/3.0) {
		t.Fatalf("want 1/3, got %v", j)
	}
	if j := jaccard(nil, nil); !almostEqual(j, 1.0) {
		t.Fatalf("two empty sets are identical, got %v", j)
	}
	if j := jaccard([]string{"a"}, nil); !almostEqual(j, 0.0) {
		t.Fatalf("empty vs non-empty: want 0, got %v", j)
	}
}

func TestFindBestMatchThresholdInclusive(t *testing.T) {
	target := fullAttrs()

	// All weighted attributes equal except fonts fully disjoint: similarity is
	// exactly 1 - 0.15 = 0.85, right on the threshold.
	boundary := fullAttrs()
	boundary.Fonts = []string{"Wingdings"}
	target.Fonts = []string{"Arial"}

	cand := testCand{attrs: boundary, seen: time.Now()}
	got, sim := FindBestMatch(target, []Candidate{cand}, DefaultThreshold)
	if got == nil {
		t.Fatalf("similarity %v should match at inclusive threshold", sim)
	}
	if !almostEqual(sim, 0.85) {
		t.Fatalf("want similarity 0.85, got %v", sim)
	}

	// One more mismatch drops below threshold.
	below := fullAttrs()
	below.Fonts = []string{"Wingdings"}
	below.Timezone = "Asia/Tokyo"
	got, _ = FindBestMatch(target, []Candidate{testCand{attrs: below, seen: time.Now()}}, DefaultThreshold)
	if got != nil {
		t.Fatal("similarity below threshold must not match")
	}
}

func TestFindBestMatchPrefersRecentOnTie(t *testing.T) {
	target := fullAttrs()
	old := testCand{attrs: fullAttrs(), seen: time.Now().Add(-48 * time.Hour)}
	recent := testCand{attrs: fullAttrs(), seen: time.Now()}
	got, sim := FindBestMatch(target, []Candidate{old, recent}, DefaultThreshold)
	if got == nil || !almostEqual(sim, 1.0) {
		t.Fatalf("expected perfect match, got %v", sim)
	}
	if !got.SeenAt().Equal(recent.seen) {
		t.Fatal("tie must be broken by most recent candidate")
	}
}

func TestFindBestMatchEmpty(t *testing.T) {
	if got, _ := FindBestMatch(fullAttrs(), nil, DefaultThreshold); got != nil {
		t.Fatal("no candidates must yield no match")
	}
}

func TestSimpleSimilarity(t *testing.T) {
	a, b := fullAttrs(), fullAttrs()
	if s := SimpleSimilarity(a, b); !almostEqual(s, 1.0) {
		t.Fatalf("want 1.0, got %v", s)
	}
	b.CanvasHash = "other"
	if s := SimpleSimilarity(a, b); s >= 1.0 {
		t.Fatalf("mismatch must lower simple similarity, got %v", s)
	}
}
