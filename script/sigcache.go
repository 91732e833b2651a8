// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/BOXFoundation/boxscript/crypto"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultSigCacheSize is the number of entries kept when no size is configured.
const DefaultSigCacheSize = 50000

type sigCacheKey struct {
	sigHash crypto.HashType
	sig     string
	pubKey  string
}

// SigCache remembers signature checks that succeeded. Only valid triples are
// ever added, so a hit can never contradict a fresh verification. It is safe
// for concurrent use by multiple evaluations.
type SigCache struct {
	cache *lru.Cache
}

// NewSigCache creates a cache holding up to size entries.
func NewSigCache(size int) (*SigCache, error) {
	if size <= 0 {
		size = DefaultSigCacheSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &SigCache{cache: cache}, nil
}

// Exists reports whether sig by pubKey over sigHash was verified before.
func (c *SigCache) Exists(sigHash *crypto.HashType, sig, pubKey []byte) bool {
	ok := c.cache.Contains(sigCacheKey{*sigHash, string(sig), string(pubKey)})
	if ok {
		metricsSigCacheHitCounter.Inc(1)
	} else {
		metricsSigCacheMissCounter.Inc(1)
	}
	return ok
}

// Add records a successful verification.
func (c *SigCache) Add(sigHash *crypto.HashType, sig, pubKey []byte) {
	c.cache.Add(sigCacheKey{*sigHash, string(sig), string(pubKey)}, struct{}{})
}

// Len returns the number of cached entries.
func (c *SigCache) Len() int {
	return c.cache.Len()
}
