package chain

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"type-caster/convert"
	"type-caster/descriptor"
)

// DefaultCacheSize is the number of pairs a Cached resolver remembers.
const DefaultCacheSize = 1024

// Resolver is anything that resolves converters for descriptor pairs.
type Resolver interface {
	Resolve(src, dst descriptor.Descriptor) (convert.Converter, bool)
}

// Cached memoizes the results of a resolver, absences included. Descriptors
// are keyed by their canonical text, so named descriptors with the same
// identity share an entry.
type Cached struct {
	resolver Resolver
	cache    *lru.Cache
}

type cacheEntry struct {
	conv convert.Converter
	ok   bool
}

// NewCached wraps r with a cache holding at most size pairs.
func NewCached(r Resolver, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create resolution cache: %w", err)
	}

	return &Cached{resolver: r, cache: cache}, nil
}

func (c *Cached) Resolve(src, dst descriptor.Descriptor) (convert.Converter, bool) {
	key := src.String() + " -> " + dst.String()
	if v, ok := c.cache.Get(key); ok {
		entry := v.(cacheEntry)
		return entry.conv, entry.ok
	}

	conv, ok := c.resolver.Resolve(src, dst)
	c.cache.Add(key, cacheEntry{conv: conv, ok: ok})

	return conv, ok
}

// Len returns the number of cached pairs.
func (c *Cached) Len() int { return c.cache.Len() }

// Purge drops every cached pair.
func (c *Cached) Purge() { c.cache.Purge() }
