// cache.go

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired entries every 5 minutes
	lookupCacheCleanup = 5 * time.Minute
)

// NewLookupCache creates a cache for resolved lookups that expire after
// expiration.
func NewLookupCache(expiration time.Duration) *cache.Cache {
	return cache.New(expiration, lookupCacheCleanup)
}

// Lookups from the two sides share one cache, so the side is part of the
// cache key.
func lookupCacheKey(s side, key string) string {
	return s.String() + "\x00" + key
}

func CacheLookup(c *cache.Cache, s side, key, value string) {
	// Set instead of Add: a key re-put with a new partner overwrites
	c.Set(lookupCacheKey(s, key), value, cache.DefaultExpiration)
}

func GetCachedLookup(c *cache.Cache, s side, key string) (string, bool) {
	val, ok := c.Get(lookupCacheKey(s, key))
	if !ok {
		return "", false
	}
	return val.(string), true
}

func ForgetLookup(c *cache.Cache, s side, key string) {
	c.Delete(lookupCacheKey(s, key))
}
