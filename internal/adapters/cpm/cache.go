package cpm

import (
	"context"
	"sync"

	"go.trai.ch/nuprune/internal/core/domain"
	"go.trai.ch/nuprune/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.CentralPackageResolver = (*Cache)(nil)

// Cache resolves each declaration file at most once.
// Concurrent callers for the same file share a single resolution.
type Cache struct {
	resolver *Resolver

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[domain.Key]*domain.CentralPackages
}

// NewCache creates a Cache in front of resolver.
func NewCache(resolver *Resolver) *Cache {
	return &Cache{
		resolver: resolver,
		entries:  make(map[domain.Key]*domain.CentralPackages),
	}
}

// Resolve returns the cached resolution for the file governing dir.
func (c *Cache) Resolve(ctx context.Context, dir string) (*domain.CentralPackages, error) {
	file, ok := c.resolver.Find(dir)
	if !ok {
		return domain.NewCentralPackages(), nil
	}

	key := domain.PathKey(file)
	c.mu.RLock()
	cached, hit := c.entries[key]
	c.mu.RUnlock()
	if hit {
		return cached, nil
	}

	result, err, _ := c.group.Do(key.String(), func() (any, error) {
		c.mu.RLock()
		cached, hit := c.entries[key]
		c.mu.RUnlock()
		if hit {
			return cached, nil
		}

		central, err := c.resolver.ResolveFile(ctx, file)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = central
		c.mu.Unlock()
		return central, nil
	})
	if err != nil {
		return nil, err
	}
	central, _ := result.(*domain.CentralPackages)
	return central, nil
}

// LookupVersion returns the version declared for id in the files governing dir.
func (c *Cache) LookupVersion(ctx context.Context, dir, id string) (string, bool, error) {
	central, err := c.Resolve(ctx, dir)
	if err != nil {
		return "", false, err
	}
	v, ok := central.Lookup(id)
	return v, ok, nil
}

// Fingerprint resolves file again, bypassing the cache, and returns the
// fingerprint of its current content and imports.
func (c *Cache) Fingerprint(ctx context.Context, file string) (string, error) {
	central, err := c.resolver.ResolveFile(ctx, file)
	if err != nil {
		return "", err
	}
	return central.Fingerprint, nil
}

// Invalidate drops every cached resolution.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached resolutions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
