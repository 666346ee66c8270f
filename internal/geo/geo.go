// Package geo resolves client IPs to coarse locations via a local MaxMind
// database, with a TTL cache in front so repeat visitors stay cheap.
package geo

import (
	"net/netip"
	"sync"
	"time"

	"github.com/oschwald/geoip2-golang/v2"
)

// Location is the subset of GeoIP data we attach to fingerprints.
type Location struct {
	CountryCode string `json:"countryCode"`
	City        string `json:"city,omitempty"`
}

type cacheEntry struct {
	loc     Location
	ok      bool
	expires time.Time
}

// Cache is a TTL map keyed by IP string. Negative lookups are cached too so
// unroutable addresses do not hammer the database.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry

	now func() time.Time
}

// NewCache builds a lookup cache with the given entry lifetime.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, entries: make(map[string]cacheEntry), now: time.Now}
}

func (c *Cache) get(ip string) (Location, bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[ip]
	if !found || c.now().After(e.expires) {
		return Location{}, false, false
	}
	return e.loc, e.ok, true
}

func (c *Cache) put(ip string, loc Location, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ip] = cacheEntry{loc: loc, ok: ok, expires: c.now().Add(c.ttl)}
}

// Clear drops all cached entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Len reports the number of live entries, counting expired ones until they
// are overwritten.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Service wraps an optional GeoIP reader. A nil reader disables lookups
// rather than failing requests; geo data is enrichment, not a dependency.
type Service struct {
	reader *geoip2.Reader
	cache  *Cache
}

// Open loads the City database at path. An empty path yields a disabled
// service.
func Open(path string, cacheTTL time.Duration) (*Service, error) {
	svc := &Service{cache: NewCache(cacheTTL)}
	if path == "" {
		return svc, nil
	}
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, err
	}
	svc.reader = r
	return svc, nil
}

// Enabled reports whether a database is loaded.
func (s *Service) Enabled() bool { return s.reader != nil }

// Close releases the underlying database.
func (s *Service) Close() error {
	if s.reader == nil {
		return nil
	}
	return s.reader.Close()
}

// Lookup resolves ip to a location. The second return is false when the
// service is disabled, the address does not parse, or the database has no
// record for it.
func (s *Service) Lookup(ip string) (Location, bool) {
	if s.reader == nil {
		return Location{}, false
	}
	if loc, ok, hit := s.cache.get(ip); hit {
		return loc, ok
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		s.cache.put(ip, Location{}, false)
		return Location{}, false
	}
	record, err := s.reader.City(addr)
	if err != nil {
		s.cache.put(ip, Location{}, false)
		return Location{}, false
	}
	loc := Location{
		CountryCode: record.Country.ISOCode,
		City:        record.City.Names.English,
	}
	ok := loc.CountryCode != ""
	s.cache.put(ip, loc, ok)
	return loc, ok
}
