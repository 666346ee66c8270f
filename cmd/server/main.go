// Package main is the entry point for the visitor identity API server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"visitor-identity-api/internal/config"
	"visitor-identity-api/internal/db"
	"visitor-identity-api/internal/esx"
	"visitor-identity-api/internal/geo"
	"visitor-identity-api/internal/httpx"
	"visitor-identity-api/internal/identity"
	"visitor-identity-api/internal/logx"
	"visitor-identity-api/internal/mqx"
	"visitor-identity-api/internal/redisx"
	"visitor-identity-api/internal/server"
	"visitor-identity-api/internal/storage"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	// Init global logger first
	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.String("log.format", cfg.Log.Format),
	)

	// Identity store: Postgres via ent, or in-memory for local runs.
	var idStore identity.Store
	if cfg.PG.URL != "" {
		client, closeDB, err := db.Open(cfg)
		if err != nil {
			mainLogger.Sugar().Error("open db error", "err", err)
			panic(err)
		}
		defer closeDB()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Schema.Create(ctx); err != nil {
			mainLogger.Sugar().Error("auto migrate error", "err", err)
			panic(err)
		}
		idStore = storage.NewEntStore(client)
	} else {
		mainLogger.Warn("POSTGRES_URL not set; using in-memory store")
		idStore = identity.NewMemStore()
	}

	resolver := identity.NewResolver(idStore, resolverConfig(cfg))

	// Optional deps: Redis, MQ, ES, GeoIP
	rdb, redisClose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer redisClose()
	}

	publisher, mqClose, err := mqx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("mq init failed", "err", err)
	} else {
		defer mqClose()
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	geoSvc, err := geo.Open(cfg.Geo.DBPath, time.Duration(cfg.Geo.CacheTTLMin)*time.Minute)
	if err != nil {
		mainLogger.Sugar().Warn("geoip init failed", "err", err)
		geoSvc, _ = geo.Open("", time.Minute)
	}
	defer func() { _ = geoSvc.Close() }()
	if geoSvc.Enabled() {
		mainLogger.Info("geoip database loaded", zap.String("path", cfg.Geo.DBPath))
	}

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: httpx.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	httpx.Register(app, &httpx.Providers{
		Cfg:      cfg,
		Store:    idStore,
		Resolver: resolver,
		Geo:      geoSvc,
		MQ:       publisher,
		ES:       esClient,
		RDB:      rdb,
	})

	// Watch for dynamic config changes (Apollo)
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["resolver.fuzzy_threshold"] {
			if newCfg.Resolver.FuzzyThreshold <= 0 || newCfg.Resolver.FuzzyThreshold > 1 {
				return fmt.Errorf("resolver.fuzzy_threshold must be in (0, 1]")
			}
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["resolver.fuzzy_threshold"] || changed["resolver.fuzzy_window_days"] {
			mainLogger.Warn("resolver tuning changed; applies to new resolver instances on restart")
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	_ = app.Shutdown()
}

func resolverConfig(cfg *config.Config) identity.Config {
	return identity.Config{
		FuzzyThreshold:     cfg.Resolver.FuzzyThreshold,
		FuzzyWindow:        time.Duration(cfg.Resolver.FuzzyWindowDays) * 24 * time.Hour,
		FuzzyMaxCandidates: cfg.Resolver.FuzzyMaxCandidates,
		IPWindow:           time.Duration(cfg.Resolver.IPWindowHours) * time.Hour,
		IPMaxCandidates:    cfg.Resolver.IPMaxCandidates,
	}
}
