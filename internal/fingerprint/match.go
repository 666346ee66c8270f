package fingerprint

import "strings"

// DefaultThreshold is the minimum weighted similarity for a fuzzy identity
// match.
const DefaultThreshold = 0.85

// comparator scores one attribute across two fingerprints. ok is false when
// the attribute is absent on either side; the caller then excludes the check
// from both numerator and denominator.
type comparator interface {
	compare(a, b *Attributes) (score float64, ok bool)
}

type exactString struct {
	get func(*Attributes) (string, bool)
}

func (c exactString) compare(a, b *Attributes) (float64, bool) {
	av, aok := c.get(a)
	bv, bok := c.get(b)
	if !aok || !bok {
		return 0, false
	}
	if av == bv {
		return 1, true
	}
	return 0, true
}

type exactInt struct {
	get func(*Attributes) (int, bool)
}

func (c exactInt) compare(a, b *Attributes) (float64, bool) {
	av, aok := c.get(a)
	bv, bok := c.get(b)
	if !aok || !bok {
		return 0, false
	}
	if av == bv {
		return 1, true
	}
	return 0, true
}

// geometryPair matches only when both dimensions agree.
type geometryPair struct {
	get func(*Attributes) (w, h int, ok bool)
}

func (c geometryPair) compare(a, b *Attributes) (float64, bool) {
	aw, ah, aok := c.get(a)
	bw, bh, bok := c.get(b)
	if !aok || !bok {
		return 0, false
	}
	if aw == bw && ah == bh {
		return 1, true
	}
	return 0, true
}

// jaccardSet scores |A∩B| / |A∪B|; font lists drift over time, so set overlap
// beats exact equality here.
type jaccardSet struct {
	get func(*Attributes) ([]string, bool)
}

func (c jaccardSet) compare(a, b *Attributes) (float64, bool) {
	av, aok := c.get(a)
	bv, bok := c.get(b)
	if !aok || !bok {
		return 0, false
	}
	return jaccard(av, bv), true
}

func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	union := make(map[string]struct{}, len(a)+len(b))
	inA := make(map[string]struct{}, len(a))
	for _, v := range a {
		union[v] = struct{}{}
		inA[v] = struct{}{}
	}
	inter := 0
	for _, v := range b {
		if _, seen := union[v]; seen {
			if _, ok := inA[v]; ok {
				// count each shared value once
				delete(inA, v)
				inter++
			}
			continue
		}
		union[v] = struct{}{}
	}
	if len(union) == 0 {
		return 1
	}
	return float64(inter) / float64(len(union))
}

func canvasOf(a *Attributes) (string, bool) {
	return a.CanvasHash, a.CanvasHash != ""
}

func webglRendererOf(a *Attributes) (string, bool) {
	if a.WebGL == nil {
		return "", false
	}
	if a.WebGL.UnmaskedRenderer != "" {
		return a.WebGL.UnmaskedRenderer, true
	}
	return a.WebGL.Renderer, a.WebGL.Renderer != ""
}

func audioOf(a *Attributes) (string, bool) {
	if a.Audio == nil {
		return "", false
	}
	return a.Audio.Checksum, a.Audio.Checksum != ""
}

func fontsOf(a *Attributes) ([]string, bool) {
	return a.Fonts, a.Fonts != nil
}

func screenOf(a *Attributes) (int, int, bool) {
	if a.Screen == nil {
		return 0, 0, false
	}
	return a.Screen.Width, a.Screen.Height, true
}

func timezoneOf(a *Attributes) (string, bool) {
	return a.Timezone, a.Timezone != ""
}

func concurrencyOf(a *Attributes) (int, bool) {
	return a.HardwareConcurrency, a.HardwareConcurrency > 0
}

type weightedCheck struct {
	name   string
	weight float64
	cmp    comparator
}

// weightedChecks drives identity decisions. Weights sum to 1.0; ordering is
// by discriminating power (canvas rendering is the hardest to spoof
// consistently).
var weightedChecks = []weightedCheck{
	{name: "canvas", weight: 0.25, cmp: exactString{canvasOf}},
	{name: "webglRenderer", weight: 0.20, cmp: exactString{webglRendererOf}},
	{name: "audio", weight: 0.15, cmp: exactString{audioOf}},
	{name: "fonts", weight: 0.15, cmp: jaccardSet{fontsOf}},
	{name: "screen", weight: 0.10, cmp: geometryPair{screenOf}},
	{name: "timezone", weight: 0.08, cmp: exactString{timezoneOf}},
	{name: "concurrency", weight: 0.07, cmp: exactInt{concurrencyOf}},
}

// Similarity returns the weighted similarity of two fingerprints in [0,1].
// Attributes missing on either side are excluded from both numerator and
// denominator, so partial fingerprints degrade gracefully.
func Similarity(a, b *Attributes) float64 {
	if a == nil || b == nil {
		return 0
	}
	var score, total float64
	for _, chk := range weightedChecks {
		s, ok := chk.cmp.compare(a, b)
		if !ok {
			continue
		}
		score += chk.weight * s
		total += chk.weight
	}
	if total == 0 {
		return 0
	}
	return score / total
}

// SimpleSimilarity is the lightweight unweighted variant: the mean of the
// individual checks that are present on both sides. Weighted Similarity is
// authoritative for identity decisions.
func SimpleSimilarity(a, b *Attributes) float64 {
	if a == nil || b == nil {
		return 0
	}
	var sum float64
	n := 0
	for _, chk := range weightedChecks {
		if chk.name == "concurrency" {
			continue
		}
		s, ok := chk.cmp.compare(a, b)
		if !ok {
			continue
		}
		sum += s
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FindBestMatch scans candidates linearly for the highest weighted similarity
// to target and returns it with its score, or (nil, 0) when nothing reaches
// threshold. The threshold is inclusive. Equal scores are broken by the most
// recently seen candidate.
func FindBestMatch(target *Attributes, candidates []Candidate, threshold float64) (Candidate, float64) {
	var best Candidate
	bestScore := -1.0
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		s := Similarity(target, cand.FingerprintAttributes())
		if s > bestScore || (s == bestScore && best != nil && cand.SeenAt().After(best.SeenAt())) {
			best = cand
			bestScore = s
		}
	}
	if best == nil || bestScore < threshold {
		return nil, 0
	}
	return best, bestScore
}

// uaOS extracts a coarse OS token from a user agent string.
func uaOS(ua string) string {
	low := strings.ToLower(ua)
	switch {
	case strings.Contains(low, "windows"):
		return "windows"
	case strings.Contains(low, "mac os") || strings.Contains(low, "macintosh"):
		return "mac"
	case strings.Contains(low, "android"):
		return "android"
	case strings.Contains(low, "iphone") || strings.Contains(low, "ipad"):
		return "ios"
	case strings.Contains(low, "linux"):
		return "linux"
	}
	return ""
}
