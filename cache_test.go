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
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
)

func TestCacheLookupAndGetCachedLookup(t *testing.T) {
	c := NewLookupCache(time.Minute)
	key := "alpha"

	// Initially, nothing is cached.
	if got, ok := GetCachedLookup(c, sideLeft, key); ok {
		t.Errorf("GetCachedLookup(left, %q) = %q; want miss", key, got)
	}

	CacheLookup(c, sideLeft, key, "omega")

	if got, ok := GetCachedLookup(c, sideLeft, key); !ok || got != "omega" {
		t.Errorf("GetCachedLookup(left, %q) = %q, %v; want %q", key, got, ok, "omega")
	}

	// The same key on the other side is a different entry.
	if got, ok := GetCachedLookup(c, sideRight, key); ok {
		t.Errorf("GetCachedLookup(right, %q) = %q; want miss", key, got)
	}

	ForgetLookup(c, sideLeft, key)
	if _, ok := GetCachedLookup(c, sideLeft, key); ok {
		t.Errorf("GetCachedLookup(left, %q) hit after ForgetLookup", key)
	}
}

func TestCacheLookupOverwrites(t *testing.T) {
	c := NewLookupCache(time.Minute)
	CacheLookup(c, sideRight, "k", "first")
	CacheLookup(c, sideRight, "k", "second")

	if got, _ := GetCachedLookup(c, sideRight, "k"); got != "second" {
		t.Errorf("GetCachedLookup(right, k) = %q; want %q", got, "second")
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"

	CacheLookup(c, sideLeft, key, "soon gone")

	// Immediately after caching, the value should be retrievable.
	if got, ok := GetCachedLookup(c, sideLeft, key); !ok || got != "soon gone" {
		t.Errorf("GetCachedLookup(left, %q) = %q; want %q", key, got, "soon gone")
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetCachedLookup(c, sideLeft, key); ok {
		t.Errorf("After expiration, GetCachedLookup(left, %q) = %q; want miss", key, got)
	}
}
