// Package fingerprints serves the ingestion, lookup, stats, erasure and
// search endpoints of the identity API.
package fingerprints

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"visitor-identity-api/internal/entropy"
	"visitor-identity-api/internal/esx"
	"visitor-identity-api/internal/fingerprint"
	"visitor-identity-api/internal/geo"
	"visitor-identity-api/internal/httpx/kit"
	"visitor-identity-api/internal/identity"
	"visitor-identity-api/internal/logx"
	"visitor-identity-api/internal/mqx"
)

var fpLogger = logx.GetScope("fingerprints")

// ESIndex is the Elasticsearch index holding suspicious observations.
const ESIndex = "fingerprints"

// distributionSample caps how many recent records feed the stats
// distributions.
const distributionSample = 1000

// Deps bundles what the handlers need. MQ, ES and Geo are optional; nil
// disables the corresponding side effect.
type Deps struct {
	Store    identity.Store
	Resolver *identity.Resolver
	Geo      *geo.Service
	MQ       mqx.Publisher
	ES       *esx.Client
}

func (d *Deps) publish(ctx context.Context, routingKey string, payload any) {
	if d.MQ == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := d.MQ.Publish(ctx, routingKey, b); err != nil {
		fpLogger.Warn("event publish failed",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}

func (d *Deps) indexSuspicious(ctx context.Context, doc esx.FingerprintDoc) {
	if d.ES == nil {
		return
	}
	if err := esx.IndexFingerprint(ctx, d.ES, ESIndex, doc); err != nil {
		fpLogger.Warn("es index failed", zap.String("id", doc.ID), zap.Error(err))
	}
}

// IngestHandler accepts a fingerprint bundle, screens it for automation,
// resolves it to an identity and persists the observation.
func IngestHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req IngestRequest
		if err := c.BodyParser(&req); err != nil {
			return kit.BadRequest("invalid fingerprint payload", err.Error())
		}
		if req.Fingerprint.UserAgent == "" {
			return kit.BadRequest("fingerprint.userAgent required", nil)
		}
		if !isHexDigest(req.Hash) {
			return kit.BadRequest("hash must be a 64-character hex digest", nil)
		}

		comp := &fingerprint.Composite{
			Fingerprint: req.Fingerprint,
			Network: fingerprint.Network{
				IP:             c.IP(),
				UserAgent:      c.Get("User-Agent"),
				AcceptLanguage: c.Get("Accept-Language"),
				AcceptEncoding: c.Get("Accept-Encoding"),
			},
		}

		reasons := fingerprint.DetectInconsistencies(&comp.Fingerprint)
		score := fingerprint.BotScore(&comp.Fingerprint)

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		// The hash covers the full composite, attributes and network info
		// both. A network change breaks the exact tier on purpose; the
		// fuzzy and recent-IP tiers pick those visitors back up.
		hash, err := fingerprint.Hash(comp)
		if err != nil {
			return kit.InternalError("fingerprint hashing failed", err.Error())
		}

		if score > fingerprint.BotBlockThreshold {
			d.publish(ctx, "identity.blocked", fiber.Map{
				"hash":      hash,
				"ip":        comp.Network.IP,
				"userAgent": comp.Fingerprint.UserAgent,
				"botScore":  score,
				"reasons":   reasons,
			})
			d.indexSuspicious(ctx, esx.FingerprintDoc{
				ID:               hash,
				Hash:             hash,
				IP:               comp.Network.IP,
				UserAgent:        comp.Fingerprint.UserAgent,
				BotScore:         score,
				SuspicionReasons: reasons,
				CreatedAt:        time.Now().UTC().Format(time.RFC3339Nano),
			})
			fpLogger.Info("blocked automated client",
				zap.String("ip", comp.Network.IP),
				zap.Int("bot_score", score),
				zap.Strings("reasons", reasons),
			)
			return kit.Forbidden("automated client rejected", fiber.Map{
				"botScore": score,
				"reasons":  reasons,
			})
		}

		obs := &identity.Observation{
			Hash:             hash,
			Composite:        comp,
			IP:               comp.Network.IP,
			Suspicious:       len(reasons) > 0,
			SuspicionReasons: reasons,
		}
		res, err := d.Resolver.Resolve(ctx, obs)
		if err != nil {
			return kit.InternalError("identity resolution failed", err.Error())
		}

		result := IngestResult{
			Success:          true,
			UserID:           res.UserID,
			FingerprintID:    res.FingerprintID,
			IsNewUser:        res.IsNew,
			Confidence:       res.Confidence,
			Method:           string(res.Method),
			Suspicious:       obs.Suspicious,
			SuspicionReasons: reasons,
			BotScore:         score,
		}
		if d.Geo != nil {
			if loc, ok := d.Geo.Lookup(comp.Network.IP); ok {
				result.Location = &loc
			}
		}

		d.publish(ctx, "identity.resolved", fiber.Map{
			"userId":        res.UserID,
			"fingerprintId": res.FingerprintID,
			"method":        res.Method,
			"confidence":    res.Confidence,
			"isNewUser":     res.IsNew,
			"suspicious":    obs.Suspicious,
		})
		if obs.Suspicious {
			d.indexSuspicious(ctx, esx.FingerprintDoc{
				ID:               res.FingerprintID,
				Hash:             hash,
				UserID:           res.UserID,
				IP:               comp.Network.IP,
				UserAgent:        comp.Fingerprint.UserAgent,
				BotScore:         score,
				Confidence:       res.Confidence,
				SuspicionReasons: reasons,
				CreatedAt:        time.Now().UTC().Format(time.RFC3339Nano),
			})
		}

		return kit.OK(c, result)
	}
}

// LookupHandler returns the profile for a resolved identity.
func LookupHandler(store identity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			return kit.BadRequest("userId required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		u, err := store.GetUser(ctx, userID)
		if err != nil {
			return kit.InternalError("user lookup failed", err.Error())
		}
		if u == nil {
			return kit.NotFound("unknown userId")
		}
		records, err := store.RecordsByUser(ctx, userID)
		if err != nil {
			return kit.InternalError("record lookup failed", err.Error())
		}
		profile := UserProfile{
			UserID:       u.PublicID,
			CreatedAt:    u.CreatedAt,
			LastSeenAt:   u.LastSeenAt,
			Fingerprints: make([]RecordSummary, 0, len(records)),
		}
		now := time.Now()
		for _, r := range records {
			ageDays := now.Sub(r.LastSeenAt).Hours() / 24
			profile.Fingerprints = append(profile.Fingerprints, RecordSummary{
				FingerprintID:     r.ID,
				Hash:              r.Hash,
				IP:                r.IP,
				Confidence:        r.Confidence,
				CurrentConfidence: fingerprint.AgeAdjustedConfidence(r.Confidence, ageDays),
				Suspicious:        r.Suspicious,
				SeenCount:         r.SeenCount,
				FirstSeenAt:       r.CreatedAt,
				LastSeenAt:        r.LastSeenAt,
			})
		}
		return kit.OK(c, profile)
	}
}

// StatsHandler reports population aggregates plus an entropy analysis of the
// live hash distribution.
func StatsHandler(store identity.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		st, err := store.Stats(ctx)
		if err != nil {
			return kit.InternalError("stats query failed", err.Error())
		}
		counts, err := store.HashCounts(ctx)
		if err != nil {
			return kit.InternalError("hash counts query failed", err.Error())
		}

		observed := entropy.Observed(counts)
		theoretical := entropy.Theoretical()
		result := StatsResult{
			TotalFingerprints: st.TotalFingerprints,
			UniqueHashes:      st.UniqueHashes,
			TotalUsers:        st.TotalUsers,
			SuspiciousCount:   st.SuspiciousCount,
			AverageConfidence: st.AverageConfidence,
			AverageSeenCount:  st.AverageSeenCount,
			SeenLastHour:      st.SeenLastHour,
			SeenLastDay:       st.SeenLastDay,
			Entropy: EntropyReport{
				TheoreticalBits:       theoretical,
				ObservedBits:          observed,
				Uniqueness:            entropy.FormatUniqueness(observed),
				TheoreticalUniqueness: entropy.FormatUniqueness(theoretical),
				CollisionProbability:  entropy.CollisionProbability(theoretical, st.TotalFingerprints),
			},
		}
		if !st.OldestRecordAt.IsZero() {
			result.OldestRecordAt = &st.OldestRecordAt
		}
		if !st.NewestRecordAt.IsZero() {
			result.NewestRecordAt = &st.NewestRecordAt
		}

		recent, err := store.RecentRecords(ctx, time.Time{}, distributionSample)
		if err != nil {
			return kit.InternalError("distribution query failed", err.Error())
		}
		result.Distributions = buildDistributions(recent)

		return kit.OK(c, result)
	}
}

func buildDistributions(records []*identity.Record) []entropy.Summary {
	var uas, timezones, languages, screens []string
	for _, r := range records {
		attrs := r.FingerprintAttributes()
		if attrs == nil {
			continue
		}
		if attrs.UserAgent != "" {
			uas = append(uas, attrs.UserAgent)
		}
		if attrs.Timezone != "" {
			timezones = append(timezones, attrs.Timezone)
		}
		if attrs.Language != "" {
			languages = append(languages, attrs.Language)
		}
		if attrs.Screen != nil {
			screens = append(screens, fmt.Sprintf("%dx%d", attrs.Screen.Width, attrs.Screen.Height))
		}
	}
	return []entropy.Summary{
		entropy.Distribution("userAgent", uas),
		entropy.Distribution("timezone", timezones),
		entropy.Distribution("language", languages),
		entropy.Distribution("screenResolution", screens),
	}
}

// EraseHandler removes a user and every stored observation, for data
// deletion requests.
func EraseHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("userId")
		if userID == "" {
			return kit.BadRequest("userId required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()

		u, err := d.Store.GetUser(ctx, userID)
		if err != nil {
			return kit.InternalError("user lookup failed", err.Error())
		}
		if u == nil {
			return kit.NotFound("unknown userId")
		}
		removed, err := d.Store.EraseUser(ctx, userID)
		if err != nil {
			return kit.InternalError("erase failed", err.Error())
		}
		fpLogger.Info("user erased", zap.String("user_id", userID), zap.Int("records", removed))
		d.publish(ctx, "identity.erased", fiber.Map{"userId": userID, "records": removed})
		return kit.OK(c, fiber.Map{"userId": userID, "erasedRecords": removed})
	}
}

// SearchHandler queries the suspicious-fingerprint index.
func SearchHandler(d *Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		if d.ES == nil {
			return kit.OK(c, fiber.Map{"hits": []any{}})
		}
		from := c.QueryInt("offset", 0)
		size := clamp(c.QueryInt("limit", 20), 1, 100)
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		res, err := esx.SearchFingerprints(ctx, d.ES, ESIndex, q, from, size)
		if err != nil {
			return kit.InternalError("es search failed", err.Error())
		}
		return kit.OK(c, res)
	}
}

func isHexDigest(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
