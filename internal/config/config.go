package config

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"visitor-identity-api/internal/logx"
)

var configLogger = logx.GetScope("config")

// Config holds the application configuration
type Config struct {
	AppEnv string
	Server struct {
		Addr string
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text, json
	}
	PG struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	MQ struct {
		URL string // RabbitMQ URL
	}
	ES struct {
		Addrs    string // comma separated
		Username string
		Password string
	}
	Geo struct {
		DBPath      string // MaxMind City database; empty disables geo lookups
		CacheTTLMin int
	}
	Resolver struct {
		FuzzyThreshold     float64
		FuzzyWindowDays    int
		FuzzyMaxCandidates int
		IPWindowHours      int
		IPMaxCandidates    int
	}
	Limits struct {
		IngestPerMin int
		LookupPerMin int
		StatsPerMin  int
	}
	JWT struct {
		HSSecret  string
		Issuer    string
		Audience  string
		AccessMin int
	}
	Admin struct {
		Username     string
		PasswordHash string // argon2id encoded
	}
	Apollo struct {
		Enable    bool
		AppID     string
		Cluster   string
		Namespace string
		Addrs     string
		AccessKey string
	}
}

// Load loads config from env, and if enabled, overrides with Apollo values.
// Returns config, optional apollo closer, and error.
func Load() (*Config, *Store, func(), error) {
	cfg := &Config{}

	// env defaults
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")
	cfg.PG.URL = getEnv("POSTGRES_URL", "")
	cfg.PG.MaxOpenConns = getInt("PG_MAX_OPEN", 10)
	cfg.PG.MaxIdleConns = getInt("PG_MAX_IDLE", 5)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// RabbitMQ
	cfg.MQ.URL = getEnv("RABBITMQ_URL", "")

	// Elasticsearch
	cfg.ES.Addrs = getEnv("ES_ADDRS", "")
	cfg.ES.Username = getEnv("ES_USERNAME", "")
	cfg.ES.Password = getEnv("ES_PASSWORD", "")

	// GeoIP
	cfg.Geo.DBPath = getEnv("GEOIP_DB_PATH", "")
	cfg.Geo.CacheTTLMin = getInt("GEOIP_CACHE_TTL_MIN", 60)

	// Identity resolution
	cfg.Resolver.FuzzyThreshold = getFloat("RESOLVER_FUZZY_THRESHOLD", 0.85)
	cfg.Resolver.FuzzyWindowDays = getInt("RESOLVER_FUZZY_WINDOW_DAYS", 30)
	cfg.Resolver.FuzzyMaxCandidates = getInt("RESOLVER_FUZZY_MAX_CANDIDATES", 500)
	cfg.Resolver.IPWindowHours = getInt("RESOLVER_IP_WINDOW_HOURS", 24)
	cfg.Resolver.IPMaxCandidates = getInt("RESOLVER_IP_MAX_CANDIDATES", 50)

	// Per-endpoint rate limits (requests per minute per IP)
	cfg.Limits.IngestPerMin = getInt("LIMIT_INGEST_PER_MIN", 10)
	cfg.Limits.LookupPerMin = getInt("LIMIT_LOOKUP_PER_MIN", 20)
	cfg.Limits.StatsPerMin = getInt("LIMIT_STATS_PER_MIN", 10)

	// JWT / admin auth
	cfg.JWT.HSSecret = getEnv("JWT_HS_SECRET", "")
	cfg.JWT.Issuer = getEnv("JWT_ISSUER", "visitor-identity-api")
	cfg.JWT.Audience = getEnv("JWT_AUDIENCE", "visitor-identity")
	cfg.JWT.AccessMin = getInt("JWT_ACCESS_MIN", 30)
	cfg.Admin.Username = getEnv("ADMIN_USERNAME", "admin")
	cfg.Admin.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")

	cfg.Apollo.Enable = getBool("APOLLO_ENABLE", false)
	cfg.Apollo.AppID = getEnv("APOLLO_APP_ID", "")
	cfg.Apollo.Cluster = getEnv("APOLLO_CLUSTER", "default")
	cfg.Apollo.Namespace = getEnv("APOLLO_NAMESPACE", "application")
	cfg.Apollo.Addrs = getEnv("APOLLO_ADDRS", "")
	cfg.Apollo.AccessKey = getEnv("APOLLO_ACCESS_KEY", "")

	store := NewStore(cfg)

	if cfg.Apollo.Enable {
		closer, err := overrideFromApollo(cfg, store)
		if err != nil {
			configLogger.Sugar().Errorf("apollo override failed: %v", err)
			return cfg, store, closer, err
		}
		return cfg, store, closer, nil
	}

	return cfg, store, nil, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	return lo.Ternary(v != "", v, def)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
