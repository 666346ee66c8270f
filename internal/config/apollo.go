package config

import (
	"log"
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts Apollo client and overrides config values if present.
// Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		log.Println("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:              cfg.Apollo.AppID,
		Cluster:            cfg.Apollo.Cluster,
		NamespaceName:      ns,
		IP:                 cfg.Apollo.Addrs, // comma separated servers supported
		Secret:             cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	// Initial override
	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	// Listen changes: update store with changed keys
	client.AddChangeListener(&changeLogger{ns: ns, client: client, store: store})

	closer := func() {
		// agollo v4 exposes no Stop API; nothing to release here
	}
	return closer, nil
}

func applyString(cache agollo.Client, namespace, key string, dst *string) {
	c := cache.GetConfigCache(namespace)
	if c == nil {
		return
	}
	if v, err := c.Get(key); err == nil {
		if s, _ := v.(string); s != "" {
			*dst = s
		}
	}
}

func applyInt(cache agollo.Client, namespace, key string, dst *int) {
	c := cache.GetConfigCache(namespace)
	if c == nil {
		return
	}
	if v, err := c.Get(key); err == nil {
		if s, _ := v.(string); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				*dst = n
			}
		}
	}
}

func applyFloat(cache agollo.Client, namespace, key string, dst *float64) {
	c := cache.GetConfigCache(namespace)
	if c == nil {
		return
	}
	if v, err := c.Get(key); err == nil {
		if s, _ := v.(string); s != "" {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				*dst = f
			}
		}
	}
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	applyString(client, namespace, "app.env", &cfg.AppEnv)
	applyString(client, namespace, "server.addr", &cfg.Server.Addr)
	applyString(client, namespace, "log.level", &cfg.Log.Level)
	applyString(client, namespace, "log.format", &cfg.Log.Format)

	applyString(client, namespace, "pg.url", &cfg.PG.URL)
	applyInt(client, namespace, "pg.max_open", &cfg.PG.MaxOpenConns)
	applyInt(client, namespace, "pg.max_idle", &cfg.PG.MaxIdleConns)

	applyString(client, namespace, "redis.addr", &cfg.Redis.Addr)
	applyString(client, namespace, "redis.password", &cfg.Redis.Password)
	applyInt(client, namespace, "redis.db", &cfg.Redis.DB)

	applyString(client, namespace, "mq.url", &cfg.MQ.URL)

	applyString(client, namespace, "es.addrs", &cfg.ES.Addrs)
	applyString(client, namespace, "es.username", &cfg.ES.Username)
	applyString(client, namespace, "es.password", &cfg.ES.Password)

	applyString(client, namespace, "geo.db_path", &cfg.Geo.DBPath)
	applyInt(client, namespace, "geo.cache_ttl_min", &cfg.Geo.CacheTTLMin)

	// Resolution tuning is the main reason Apollo is wired in: thresholds and
	// windows can move without a redeploy.
	applyFloat(client, namespace, "resolver.fuzzy_threshold", &cfg.Resolver.FuzzyThreshold)
	applyInt(client, namespace, "resolver.fuzzy_window_days", &cfg.Resolver.FuzzyWindowDays)
	applyInt(client, namespace, "resolver.fuzzy_max_candidates", &cfg.Resolver.FuzzyMaxCandidates)
	applyInt(client, namespace, "resolver.ip_window_hours", &cfg.Resolver.IPWindowHours)
	applyInt(client, namespace, "resolver.ip_max_candidates", &cfg.Resolver.IPMaxCandidates)

	applyInt(client, namespace, "limits.ingest_per_min", &cfg.Limits.IngestPerMin)
	applyInt(client, namespace, "limits.lookup_per_min", &cfg.Limits.LookupPerMin)
	applyInt(client, namespace, "limits.stats_per_min", &cfg.Limits.StatsPerMin)
}

type changeLogger struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (c *changeLogger) OnChange(e *storage.ChangeEvent) {
	log.Printf("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	// Build new config based on current and apply overrides
	cur := c.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(c.client, c.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = c.store.UpdateValidated(next, changed)
}

// OnNewestChange is required by storage.ChangeListener; full-change events are
// already covered by OnChange, so nothing extra to do here.
func (c *changeLogger) OnNewestChange(e *storage.FullChangeEvent) {}
