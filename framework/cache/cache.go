// Package cache provides the in-memory TTL cache service registered into
// the container at boot.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Store is a TTL-bound in-memory key/value cache. Safe for concurrent use.
type Store struct {
	inner *gocache.Cache
}

// New creates a Store whose entries expire after defaultTTL and are swept
// every cleanupInterval.
func New(defaultTTL, cleanupInterval time.Duration) *Store {
	return &Store{inner: gocache.New(defaultTTL, cleanupInterval)}
}

// Set stores value under key with the default TTL.
func (s *Store) Set(key string, value any) {
	s.inner.SetDefault(key, value)
}

// SetFor stores value under key with an explicit TTL.
func (s *Store) SetFor(key string, value any, ttl time.Duration) {
	s.inner.Set(key, value, ttl)
}

// Get returns the live value under key, if any.
func (s *Store) Get(key string) (any, bool) {
	return s.inner.Get(key)
}

// Delete removes key.
func (s *Store) Delete(key string) {
	s.inner.Delete(key)
}

// Flush drops every entry.
func (s *Store) Flush() {
	s.inner.Flush()
}

// Len returns the number of items, expired ones included until swept.
func (s *Store) Len() int {
	return s.inner.ItemCount()
}
