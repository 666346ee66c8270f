// Package fingerprint implements browser fingerprint normalization, hashing,
// similarity matching, and automation/spoofing heuristics. Everything in this
// package is pure: missing attributes yield neutral values, never errors.
package fingerprint

import "time"

// Screen describes the physical display reported by the client.
type Screen struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	ColorDepth int `json:"colorDepth,omitempty"`
}

// Window describes the browser viewport at collection time.
type Window struct {
	InnerWidth  int `json:"innerWidth"`
	InnerHeight int `json:"innerHeight"`
}

// WebGL carries the GPU strings and capability parameters probed on the client.
// UnmaskedRenderer is the discriminating signal; Renderer is what unprivileged
// contexts see.
type WebGL struct {
	Vendor           string             `json:"vendor,omitempty"`
	Renderer         string             `json:"renderer,omitempty"`
	UnmaskedVendor   string             `json:"unmaskedVendor,omitempty"`
	UnmaskedRenderer string             `json:"unmaskedRenderer,omitempty"`
	Parameters       map[string]float64 `json:"parameters,omitempty"`
}

// Audio is the audio-stack probe result.
type Audio struct {
	Checksum     string  `json:"checksum"`
	SampleRate   float64 `json:"sampleRate,omitempty"`
	ChannelCount int     `json:"channelCount,omitempty"`
}

// Attributes is the client-collected fingerprint payload. The JSON tags match
// the collector script; the whole struct is treated as an immutable snapshot.
type Attributes struct {
	UserAgent           string             `json:"userAgent"`
	Language            string             `json:"language"`
	Platform            string             `json:"platform"`
	HardwareConcurrency int                `json:"hardwareConcurrency,omitempty"`
	DeviceMemory        float64            `json:"deviceMemory,omitempty"`
	Screen              *Screen            `json:"screen,omitempty"`
	Window              *Window            `json:"window,omitempty"`
	TimezoneOffset      int                `json:"timezoneOffset"`
	Timezone            string             `json:"timezone,omitempty"`
	DoNotTrack          bool               `json:"doNotTrack,omitempty"`
	CookiesEnabled      bool               `json:"cookiesEnabled,omitempty"`
	CanvasHash          string             `json:"canvasHash,omitempty"`
	WebGL               *WebGL             `json:"webgl,omitempty"`
	Audio               *Audio             `json:"audio,omitempty"`
	Fonts               []string           `json:"fonts,omitempty"`
	MathProbe           map[string]float64 `json:"math,omitempty"`
	CollectedAtMs       int64              `json:"collectedAt,omitempty"`
	CollectDurationMs   int64              `json:"collectDuration,omitempty"`
}

// Network holds request-side signals captured by the server. These travel on a
// different channel than Attributes and cannot be spoofed the same way.
type Network struct {
	IP             string `json:"ip"`
	UserAgent      string `json:"userAgent,omitempty"`
	AcceptLanguage string `json:"acceptLanguage,omitempty"`
	AcceptEncoding string `json:"acceptEncoding,omitempty"`
}

// Composite is the unit that gets hashed and persisted: client attributes plus
// server-observed network info.
type Composite struct {
	Fingerprint Attributes `json:"fingerprint"`
	Network     Network    `json:"network"`
}

// Candidate is anything that can be offered to FindBestMatch. Persisted
// fingerprint records implement it.
type Candidate interface {
	FingerprintAttributes() *Attributes
	SeenAt() time.Time
}
