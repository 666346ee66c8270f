package geo

import (
	"testing"
	"time"
)

func TestCacheHitAndExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	c := NewCache(time.Hour)
	c.now = func() time.Time { return now }

	loc := Location{CountryCode: "DE", City: "Berlin"}
	c.put("203.0.113.9", loc, true)

	got, ok, hit := c.get("203.0.113.9")
	if !hit || !ok || got != loc {
		t.Fatalf("fresh entry: hit=%v ok=%v got=%+v", hit, ok, got)
	}

	now = now.Add(2 * time.Hour)
	if _, _, hit := c.get("203.0.113.9"); hit {
		t.Fatal("expired entry must miss")
	}
}

func TestCacheNegativeEntries(t *testing.T) {
	c := NewCache(time.Hour)
	c.put("not-an-ip", Location{}, false)
	_, ok, hit := c.get("not-an-ip")
	if !hit {
		t.Fatal("negative lookups must be cached")
	}
	if ok {
		t.Fatal("negative entry must stay negative")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(time.Hour)
	c.put("a", Location{CountryCode: "US"}, true)
	c.put("b", Location{CountryCode: "FR"}, true)
	if c.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("clear left %d entries", c.Len())
	}
	if _, _, hit := c.get("a"); hit {
		t.Fatal("cleared entry must miss")
	}
}

func TestDisabledService(t *testing.T) {
	svc, err := Open("", time.Hour)
	if err != nil {
		t.Fatalf("open disabled: %v", err)
	}
	if svc.Enabled() {
		t.Fatal("empty path must yield a disabled service")
	}
	if _, ok := svc.Lookup("203.0.113.9"); ok {
		t.Fatal("disabled service must not resolve")
	}
	if err := svc.Close(); err != nil {
		t.Fatalf("close disabled: %v", err)
	}
}
