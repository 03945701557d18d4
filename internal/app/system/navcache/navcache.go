// Package navcache caches the service links shown in the site header.
//
// Every page render needs the service list for the navigation dropdown.
// Instead of hitting the content store on each request, the cache holds
// the list for a short TTL. The cache is process-local; each instance
// warms its own copy and staleness is bounded by the TTL.
package navcache

import (
	"context"
	"sync"
	"time"

	"github.com/payaana/website/internal/domain/models"
)

// DefaultTTL bounds how stale the header links can get.
const DefaultTTL = 5 * time.Minute

// LoadFunc fetches the current service list.
type LoadFunc func(ctx context.Context) []models.Service

// Cache holds the service list with expiry.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	load     LoadFunc
	services []models.Service
	expires  time.Time
}

// New creates a Cache. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration, load LoadFunc) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, load: load}
}

// Services returns the cached service list, refreshing it when expired.
// A refresh that comes back empty is cached too: if the CMS has no
// services the header simply shows none until the next refresh.
func (c *Cache) Services(ctx context.Context) []models.Service {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if now.Before(c.expires) {
		return c.services
	}

	c.services = c.load(ctx)
	c.expires = now.Add(c.ttl)
	return c.services
}

// Invalidate drops the cached list so the next call reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expires = time.Time{}
}
