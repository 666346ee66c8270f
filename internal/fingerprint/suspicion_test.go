package fingerprint

import (
	"strings"
	"testing"
)

func TestDetectInconsistenciesClean(t *testing.T) {
	if reasons := DetectInconsistencies(fullAttrs()); len(reasons) != 0 {
		t.Fatalf("clean fingerprint flagged: %v", reasons)
	}
}

func hasReason(reasons []string, substr string) bool {
	for _, r := range reasons {
		if strings.Contains(r, substr) {
			return true
		}
	}
	return false
}

func TestDetectInconsistenciesRules(t *testing.T) {
	t.Run("ua platform mismatch", func(t *testing.T) {
		a := fullAttrs()
		a.Platform = "MacIntel" // UA claims Windows
		if !hasReason(DetectInconsistencies(a), "platform") {
			t.Fatal("expected ua/platform mismatch reason")
		}
	})

	t.Run("screen smaller than window", func(t *testing.T) {
		a := fullAttrs()
		a.Screen = &Screen{Width: 800, Height: 600}
		a.Window = &Window{InnerWidth: 1920, InnerHeight: 1080}
		if !hasReason(DetectInconsistencies(a), "screen smaller") {
			t.Fatal("expected impossible geometry reason")
		}
	})

	t.Run("webgl vendor renderer mismatch", func(t *testing.T) {
		a := fullAttrs()
		a.WebGL = &WebGL{UnmaskedVendor: "NVIDIA Corporation", UnmaskedRenderer: "Intel Iris Xe"}
		if !hasReason(DetectInconsistencies(a), "webgl vendor") {
			t.Fatal("expected gpu brand mismatch reason")
		}
	})

	t.Run("implausible concurrency", func(t *testing.T) {
		a := fullAttrs()
		a.HardwareConcurrency = 256
		if !hasReason(DetectInconsistencies(a), "concurrency") {
			t.Fatal("expected concurrency reason")
		}
	})

	t.Run("software renderer", func(t *testing.T) {
		a := fullAttrs()
		a.WebGL = &WebGL{Renderer: "Google SwiftShader"}
		if !hasReason(DetectInconsistencies(a), "software webgl") {
			t.Fatal("expected software renderer reason")
		}
	})

	t.Run("automation marker", func(t *testing.T) {
		a := fullAttrs()
		a.UserAgent = "Mozilla/5.0 HeadlessChrome/126.0"
		if !hasReason(DetectInconsistencies(a), "automation marker") {
			t.Fatal("expected automation marker reason")
		}
	})

	t.Run("language timezone heuristic", func(t *testing.T) {
		a := fullAttrs()
		a.Language = "en-US"
		a.Timezone = "Asia/Shanghai"
		if !hasReason(DetectInconsistencies(a), "unusual for timezone") {
			t.Fatal("expected language/timezone reason")
		}
		// Manila is the documented exception.
		a.Timezone = "Asia/Manila"
		if hasReason(DetectInconsistencies(a), "unusual for timezone") {
			t.Fatal("Asia/Manila must not trip the heuristic")
		}
	})
}

func TestBotScoreCleanBrowser(t *testing.T) {
	if s := BotScore(fullAttrs()); s != 0 {
		t.Fatalf("complete real-looking fingerprint: want 0, got %d", s)
	}
}

func TestBotScoreMonotonic(t *testing.T) {
	base := fullAttrs()
	baseScore := BotScore(base)

	headless := fullAttrs()
	headless.UserAgent = "Mozilla/5.0 HeadlessChrome/126.0"
	if s := BotScore(headless); s <= baseScore {
		t.Fatalf("headless marker must raise the score: base %d, got %d", baseScore, s)
	}

	noWebGL := fullAttrs()
	noWebGL.WebGL = nil
	if s := BotScore(noWebGL); s <= baseScore {
		t.Fatalf("missing webgl must raise the score: base %d, got %d", baseScore, s)
	}

	manyCores := fullAttrs()
	manyCores.HardwareConcurrency = 96
	if s := BotScore(manyCores); s <= baseScore {
		t.Fatalf("unrealistic core count must raise the score: base %d, got %d", baseScore, s)
	}
}

func TestBotScoreClamped(t *testing.T) {
	a := &Attributes{
		UserAgent:           "HeadlessChrome PhantomJS",
		HardwareConcurrency: 200,
		Screen:              &Screen{Width: 1, Height: 1, ColorDepth: 48},
		WebGL:               &WebGL{Renderer: "SwiftShader", UnmaskedRenderer: "llvmpipe"},
	}
	if s := BotScore(a); s != 100 {
		t.Fatalf("score must clamp at 100, got %d", s)
	}
}

func TestBotScoreBlocksHeadlessSwiftShader(t *testing.T) {
	// The canonical hard-block case: software renderer, headless UA, and the
	// probe gaps that come with both.
	a := &Attributes{
		UserAgent:           "Mozilla/5.0 HeadlessChrome/126.0",
		Platform:            "Linux x86_64",
		HardwareConcurrency: 4,
		Screen:              &Screen{Width: 1920, Height: 1080, ColorDepth: 24},
		WebGL:               &WebGL{Renderer: "Google SwiftShader"},
	}
	if s := BotScore(a); s <= BotBlockThreshold {
		t.Fatalf("want score above %d, got %d", BotBlockThreshold, s)
	}
}
