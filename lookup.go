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

	"github.com/cybrota/bimap/bimap"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

type side int

const (
	sideLeft side = iota
	sideRight
)

func (s side) String() string {
	if s == sideLeft {
		return "left"
	}
	return "right"
}

// LookupStats counts how lookups were answered.
type LookupStats struct {
	Lookups      int
	BloomRejects int
	CacheHits    int
	TreeHits     int
	Misses       int
}

// Session wraps a bimap for interactive use. Lookups on a side whose keys
// compare by exact string equality first consult a bloom filter (to reject
// keys never stored) and then a cache of earlier answers. Sides with a
// looser notion of equality (fold) always go to the tree.
type Session struct {
	pairs   *bimap.Bimap[string]
	filters [2]*bloom.BloomFilter
	exact   [2]bool
	cache   *cache.Cache
	config  LookupConfig
	stats   LookupStats
}

// NewSession indexes the pairs already stored in m.
func NewSession(m *bimap.Bimap[string], ordering OrderingConfig, config LookupConfig) *Session {
	s := &Session{
		pairs:  m,
		exact:  [2]bool{isExactOrdering(ordering.Left), isExactOrdering(ordering.Right)},
		cache:  NewLookupCache(time.Duration(config.CacheMinutes) * time.Minute),
		config: config,
	}
	for i := range s.filters {
		s.filters[i] = bloom.New(config.BloomSize, config.BloomHashes)
	}
	for left, right := range m.All() {
		s.filters[sideLeft].AddString(left)
		s.filters[sideRight].AddString(right)
	}
	return s
}

func (s *Session) Pairs() *bimap.Bimap[string] {
	return s.pairs
}

func (s *Session) Stats() LookupStats {
	return s.stats
}

// Lookup returns the partner of key on side sd.
func (s *Session) Lookup(sd side, key string) (string, bool) {
	s.stats.Lookups++

	if s.exact[sd] {
		// Bloom filters have no false negatives: a miss means the key was
		// never stored.
		if !s.filters[sd].TestString(key) {
			s.stats.BloomRejects++
			return "", false
		}
		if v, ok := GetCachedLookup(s.cache, sd, key); ok {
			s.stats.CacheHits++
			return v, true
		}
	}

	var (
		v  string
		ok bool
	)
	if sd == sideLeft {
		v, ok = s.pairs.GetByLeft(key)
	} else {
		v, ok = s.pairs.GetByRight(key)
	}
	if !ok {
		s.stats.Misses++
		return "", false
	}

	s.stats.TreeHits++
	if s.exact[sd] {
		CacheLookup(s.cache, sd, key, v)
	}
	return v, true
}

// Put stores (left, right) and drops cached answers for every pair it
// supersedes.
func (s *Session) Put(left, right string) {
	if oldRight, ok := s.pairs.GetByLeft(left); ok {
		s.forget(left, oldRight)
	}
	if oldLeft, ok := s.pairs.GetByRight(right); ok {
		s.forget(oldLeft, right)
	}

	s.pairs.Put(left, right)
	s.filters[sideLeft].AddString(left)
	s.filters[sideRight].AddString(right)
}

// Remove deletes the pair owning key on side sd and returns its partner.
func (s *Session) Remove(sd side, key string) (string, bool) {
	var (
		v  string
		ok bool
	)
	if sd == sideLeft {
		v, ok = s.pairs.RemoveByLeft(key)
		if ok {
			s.forget(key, v)
		}
	} else {
		v, ok = s.pairs.RemoveByRight(key)
		if ok {
			s.forget(v, key)
		}
	}
	return v, ok
}

// Forget must be called for pairs removed behind the session's back, for
// example through an iterator.
func (s *Session) Forget(left, right string) {
	s.forget(left, right)
}

func (s *Session) forget(left, right string) {
	ForgetLookup(s.cache, sideLeft, left)
	ForgetLookup(s.cache, sideRight, right)
}

// Clear removes every pair and resets the filters, which cannot forget
// single keys.
func (s *Session) Clear() {
	s.pairs.Clear()
	for _, f := range s.filters {
		f.ClearAll()
	}
	s.cache.Flush()
}
