package fingerprint

import (
	"fmt"
	"strings"
)

// BotBlockThreshold is the default score above which a submission is rejected
// outright instead of being recorded.
const BotBlockThreshold = 85

var softwareRendererMarkers = []string{"swiftshader", "llvmpipe"}

var automationMarkers = map[string]int{
	"headlesschrome": 40,
	"phantomjs":      50,
}

// platform token expected for each UA OS family
var osPlatformToken = map[string]string{
	"windows": "win",
	"mac":     "mac",
	"linux":   "linux",
}

var gpuBrands = []string{"nvidia", "amd", "intel"}

// DetectInconsistencies runs the rule-based spoofing checks and returns one
// human-readable reason per triggered rule. An empty slice means nothing
// looked off; it is not a guarantee of authenticity.
func DetectInconsistencies(a *Attributes) []string {
	if a == nil {
		return nil
	}
	var reasons []string
	lowUA := strings.ToLower(a.UserAgent)
	lowPlatform := strings.ToLower(a.Platform)

	if os := uaOS(a.UserAgent); os != "" && lowPlatform != "" {
		if token, ok := osPlatformToken[os]; ok && !strings.Contains(lowPlatform, token) {
			reasons = append(reasons, fmt.Sprintf("user agent reports %s but platform is %q", os, a.Platform))
		}
	}

	if a.Screen != nil && a.Window != nil {
		if a.Screen.Width < a.Window.InnerWidth || a.Screen.Height < a.Window.InnerHeight {
			reasons = append(reasons, "screen smaller than browser window")
		}
	}

	if a.WebGL != nil && a.WebGL.UnmaskedVendor != "" && a.WebGL.UnmaskedRenderer != "" {
		lowVendor := strings.ToLower(a.WebGL.UnmaskedVendor)
		lowRenderer := strings.ToLower(a.WebGL.UnmaskedRenderer)
		for _, brand := range gpuBrands {
			if strings.Contains(lowVendor, brand) && !strings.Contains(lowRenderer, brand) {
				reasons = append(reasons, fmt.Sprintf("webgl vendor %q does not match renderer %q", a.WebGL.UnmaskedVendor, a.WebGL.UnmaskedRenderer))
				break
			}
		}
	}

	if a.HardwareConcurrency > 128 {
		reasons = append(reasons, fmt.Sprintf("implausible hardware concurrency %d", a.HardwareConcurrency))
	}

	for _, r := range softwareRenderers(a) {
		reasons = append(reasons, fmt.Sprintf("software webgl renderer %q", r))
	}

	for marker := range automationMarkers {
		if strings.Contains(lowUA, marker) {
			reasons = append(reasons, "automation marker in user agent: "+marker)
		}
	}

	// Coarse plausibility heuristic; legitimate travelers and VPN users will
	// trip this, so it only ever contributes a reason, never a block.
	if strings.HasPrefix(a.Language, "en-US") && strings.HasPrefix(a.Timezone, "Asia/") && a.Timezone != "Asia/Manila" {
		reasons = append(reasons, fmt.Sprintf("language %s unusual for timezone %s", a.Language, a.Timezone))
	}

	return reasons
}

func softwareRenderers(a *Attributes) []string {
	if a.WebGL == nil {
		return nil
	}
	var hits []string
	for _, candidate := range []string{a.WebGL.Renderer, a.WebGL.UnmaskedRenderer} {
		low := strings.ToLower(candidate)
		for _, marker := range softwareRendererMarkers {
			if strings.Contains(low, marker) {
				hits = append(hits, candidate)
				break
			}
		}
	}
	return hits
}

// BotScore estimates automation likelihood as an additive point score clamped
// to [0,100]. Each distinct signal contributes once; adding a triggering
// condition never lowers the score.
func BotScore(a *Attributes) int {
	if a == nil {
		return 0
	}
	score := 0
	lowUA := strings.ToLower(a.UserAgent)

	// Software/headless renderers: +30 per distinct renderer string.
	score += 30 * len(softwareRenderers(a))

	for marker, pts := range automationMarkers {
		if strings.Contains(lowUA, marker) {
			score += pts
		}
	}

	// Real browsers expose these; their absence is a weak but cheap signal.
	if a.Audio == nil || a.Audio.Checksum == "" {
		score += 10
	}
	if a.WebGL == nil {
		score += 15
	}
	if a.CanvasHash == "" {
		score += 10
	}

	if a.HardwareConcurrency > 64 {
		score += 20
	}
	if a.Screen != nil && a.Screen.ColorDepth > 32 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
