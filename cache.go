package sieve

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/roach88/sieve/internal/value"
)

// Cache memoizes compiled matchers, keyed by the query's canonical JSON
// form. Two queries that differ only in key order or string normalization
// share one compiled Matcher.
//
// The cache lives outside the matchers it hands out: matchers stay pure
// and lock-free, and the LRU handles its own synchronization, so a Cache
// is safe for concurrent use.
type Cache struct {
	matchers *lru.Cache[string, *Matcher]
}

// NewCache creates a matcher cache holding at most size entries.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, *Matcher](size)
	if err != nil {
		return nil, fmt.Errorf("create matcher cache: %w", err)
	}
	return &Cache{matchers: c}, nil
}

// Compile returns a compiled Matcher for the query, reusing a cached one
// when the same query (by canonical form) was compiled before.
func (c *Cache) Compile(q any) (*Matcher, error) {
	qv, err := value.FromAny(q)
	if err != nil {
		return nil, fmt.Errorf("convert query: %w", err)
	}

	key, err := value.MarshalCanonical(qv)
	if err != nil {
		// Not canonicalizable; compile without caching.
		return Compile(q)
	}

	if m, ok := c.matchers.Get(string(key)); ok {
		return m, nil
	}

	m, err := Compile(q)
	if err != nil {
		return nil, err
	}
	c.matchers.Add(string(key), m)
	return m, nil
}

// Len returns the number of cached matchers.
func (c *Cache) Len() int {
	return c.matchers.Len()
}
