package fingerprint

import "testing"

func TestHashDeterministic(t *testing.T) {
	comp := &Composite{
		Fingerprint: Attributes{
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
			Language:  "en-US",
			Platform:  "Win32",
			Screen:    &Screen{Width: 1920, Height: 1080, ColorDepth: 24},
			Timezone:  "Europe/Berlin",
			Fonts:     []string{"Arial", "Verdana"},
		},
		Network: Network{IP: "203.0.113.9", UserAgent: "Mozilla/5.0"},
	}
	h1, err := Hash(comp)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := Hash(comp)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("hash not idempotent: %s != %s", h1, h2)
	}
	if len(h1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(h1))
	}
}

func TestHashKeyOrderIndependent(t *testing.T) {
	// Same logical object expressed with different key order.
	a := map[string]any{"b": 2, "a": 1, "nested": map[string]any{"y": "q", "x": "p"}}
	b := map[string]any{"nested": map[string]any{"x": "p", "y": "q"}, "a": 1, "b": 2}
	ha, err := Hash(a)
	if err != nil {
		t.Fatalf("hash a: %v", err)
	}
	hb, err := Hash(b)
	if err != nil {
		t.Fatalf("hash b: %v", err)
	}
	if ha != hb {
		t.Fatalf("key order changed the hash: %s vs %s", ha, hb)
	}
}

func TestHashDiffersOnContent(t *testing.T) {
	h1, _ := Hash(map[string]any{"a": 1})
	h2, _ := Hash(map[string]any{"a": 2})
	if h1 == h2 {
		t.Fatal("different content produced the same hash")
	}
}
