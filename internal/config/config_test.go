package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestGetFloat(t *testing.T) {
	os.Setenv("X_FLOAT", "0.92")
	t.Cleanup(func() { os.Unsetenv("X_FLOAT") })
	if v := getFloat("X_FLOAT", 0.85); v != 0.92 {
		t.Fatalf("want 0.92, got %v", v)
	}
	if v := getFloat("X_FLOAT_MISSING", 0.85); v != 0.85 {
		t.Fatalf("want default 0.85, got %v", v)
	}
	os.Setenv("X_FLOAT_BAD", "not-a-number")
	t.Cleanup(func() { os.Unsetenv("X_FLOAT_BAD") })
	if v := getFloat("X_FLOAT_BAD", 0.85); v != 0.85 {
		t.Fatalf("garbage must fall back to default, got %v", v)
	}
}

func TestResolverDefaults(t *testing.T) {
	cfg, store, _, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Resolver.FuzzyThreshold != 0.85 {
		t.Fatalf("fuzzy threshold default: got %v", cfg.Resolver.FuzzyThreshold)
	}
	if cfg.Resolver.FuzzyWindowDays != 30 || cfg.Resolver.IPWindowHours != 24 {
		t.Fatalf("window defaults wrong: %+v", cfg.Resolver)
	}
	if cfg.Limits.IngestPerMin != 10 || cfg.Limits.LookupPerMin != 20 || cfg.Limits.StatsPerMin != 10 {
		t.Fatalf("limit defaults wrong: %+v", cfg.Limits)
	}
	if store.Get() != cfg {
		t.Fatal("store must hold the loaded config")
	}
}

func TestStoreWatchAndValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Resolver.FuzzyThreshold = 0.85
	store := NewStore(cfg)

	var seen *Config
	unwatch := store.Watch(func(newCfg *Config, _ map[string]bool) { seen = newCfg })
	defer unwatch()

	removeValidator := store.AddValidator(func(newCfg *Config, _ map[string]bool) error {
		if newCfg.Resolver.FuzzyThreshold <= 0 || newCfg.Resolver.FuzzyThreshold > 1 {
			return os.ErrInvalid
		}
		return nil
	})
	defer removeValidator()

	bad := cloneConfig(cfg)
	bad.Resolver.FuzzyThreshold = 2.0
	if store.UpdateValidated(bad, map[string]bool{"resolver.fuzzy_threshold": true}) {
		t.Fatal("invalid threshold must be rejected")
	}
	if store.Get().Resolver.FuzzyThreshold != 0.85 {
		t.Fatal("rejected update must not commit")
	}

	good := cloneConfig(cfg)
	good.Resolver.FuzzyThreshold = 0.9
	if !store.UpdateValidated(good, map[string]bool{"resolver.fuzzy_threshold": true}) {
		t.Fatal("valid update rejected")
	}
	if seen == nil || seen.Resolver.FuzzyThreshold != 0.9 {
		t.Fatal("watcher must observe the committed config")
	}
}
