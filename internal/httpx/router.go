package httpx

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"visitor-identity-api/internal/config"
	"visitor-identity-api/internal/esx"
	"visitor-identity-api/internal/geo"
	"visitor-identity-api/internal/httpx/auth"
	"visitor-identity-api/internal/httpx/fingerprints"
	"visitor-identity-api/internal/httpx/mw"
	"visitor-identity-api/internal/identity"
	"visitor-identity-api/internal/mqx"
	"visitor-identity-api/internal/ratelimit"
	"visitor-identity-api/internal/redisx"
)

// Providers bundles the services the routes depend on. Geo, MQ, ES and RDB
// are optional; nil disables the feature they back.
type Providers struct {
	Cfg      *config.Config
	Store    identity.Store
	Resolver *identity.Resolver
	Geo      *geo.Service
	MQ       mqx.Publisher
	ES       *esx.Client
	RDB      *redisx.Client
}

// Register mounts every route. Ingest is public behind a per-IP limit;
// lookup, stats, search and erasure require an admin token.
func Register(app *fiber.App, p *Providers) {
	app.Get("/health", HealthHandler)

	deps := &fingerprints.Deps{
		Store:    p.Store,
		Resolver: p.Resolver,
		Geo:      p.Geo,
		MQ:       p.MQ,
		ES:       p.ES,
	}

	app.Use(mw.JWTMiddlewareDynamic(func(token string) (string, string, []string, error) {
		claims, err := auth.ParseAndValidate(p.Cfg, token)
		if err != nil {
			return "", "", nil, err
		}
		return claims.Subject, claims.Kind, claims.Roles, nil
	}))

	api := app.Group("/api/v1")
	api.Post("/auth/login", auth.LoginHandler(p.Cfg))

	api.Post("/fingerprint",
		mw.RateLimit(newLimiter(p.RDB, "ingest", p.Cfg.Limits.IngestPerMin)),
		fingerprints.IngestHandler(deps))
	api.Get("/fingerprint",
		mw.RequireRoles("admin"),
		mw.RateLimit(newLimiter(p.RDB, "lookup", p.Cfg.Limits.LookupPerMin)),
		fingerprints.LookupHandler(p.Store))
	api.Get("/fingerprint/stats",
		mw.RequireRoles("admin"),
		mw.RateLimit(newLimiter(p.RDB, "stats", p.Cfg.Limits.StatsPerMin)),
		fingerprints.StatsHandler(p.Store))
	api.Get("/fingerprint/search", mw.RequireRoles("admin"), fingerprints.SearchHandler(deps))
	api.Delete("/fingerprint", mw.RequireRoles("admin"), fingerprints.EraseHandler(deps))
}

// newLimiter prefers the Redis backend so limits hold across instances, and
// falls back to the in-process window when Redis is absent.
func newLimiter(rdb *redisx.Client, name string, perMin int) ratelimit.Limiter {
	if perMin <= 0 {
		return nil
	}
	if rdb != nil {
		return ratelimit.NewRedis(rdb, name, perMin, time.Minute)
	}
	return ratelimit.NewMemory(perMin, time.Minute)
}
