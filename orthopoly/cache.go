// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthopoly

import "sync"

// A Cache memoizes New. Since a Basis is immutable, every caller
// asking for the same measure and degree receives the same *Basis.
//
// The zero value is an empty cache ready to use. A Cache must not be
// copied after first use.
type Cache struct {
	mu     sync.Mutex
	bases  map[cacheKey]*Basis
	hits   int
	misses int
}

type cacheKey struct {
	m      Measure
	degree int
}

// Get returns the degree-d basis for m, constructing it on first use.
// Errors are not cached.
func (c *Cache) Get(m Measure, degree int) (*Basis, error) {
	key := cacheKey{m.key(), degree}

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.bases[key]; ok {
		c.hits++
		return b, nil
	}
	c.misses++
	// Build under the lock so concurrent callers never duplicate
	// the eigen-decomposition.
	b, err := New(m, degree)
	if err != nil {
		return nil, err
	}
	if c.bases == nil {
		c.bases = make(map[cacheKey]*Basis)
	}
	c.bases[key] = b
	return b, nil
}

// Stats returns the number of Get calls satisfied from the cache and
// the number that constructed a basis.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of bases held by c.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.bases)
}
