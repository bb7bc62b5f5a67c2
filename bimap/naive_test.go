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

package bimap_test

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/cybrota/bimap/bimap"
	"github.com/stretchr/testify/require"
)

// naiveBimap is a slice of pairs searched linearly. It is the reference
// the tree implementation is compared against.
type naiveBimap struct {
	cmp   [2]bimap.Comparator[string]
	pairs [][2]string
}

func newNaive(left, right bimap.Comparator[string]) *naiveBimap {
	return &naiveBimap{cmp: [2]bimap.Comparator[string]{left, right}}
}

func (b *naiveBimap) indexOf(side int, key string) int {
	return slices.IndexFunc(b.pairs, func(p [2]string) bool {
		return b.cmp[side](p[side], key) == 0
	})
}

func (b *naiveBimap) Put(left, right string) {
	if i := b.indexOf(0, left); i >= 0 {
		b.pairs = slices.Delete(b.pairs, i, i+1)
	}
	if i := b.indexOf(1, right); i >= 0 {
		b.pairs = slices.Delete(b.pairs, i, i+1)
	}
	b.pairs = append(b.pairs, [2]string{left, right})
}

func (b *naiveBimap) remove(side int, key string) (string, bool) {
	i := b.indexOf(side, key)
	if i < 0 {
		return "", false
	}
	value := b.pairs[i][1-side]
	b.pairs = slices.Delete(b.pairs, i, i+1)
	return value, true
}

func (b *naiveBimap) RemoveByLeft(left string) (string, bool) {
	return b.remove(0, left)
}

func (b *naiveBimap) RemoveByRight(right string) (string, bool) {
	return b.remove(1, right)
}

func (b *naiveBimap) Clear() {
	b.pairs = nil
}

// entries returns (key, value) pairs of one side sorted by that side.
func (b *naiveBimap) entries(side int) [][2]string {
	out := make([][2]string, 0, len(b.pairs))
	for _, p := range b.pairs {
		out = append(out, [2]string{p[side], p[1-side]})
	}
	slices.SortFunc(out, func(x, y [2]string) int {
		return b.cmp[side](x[0], y[0])
	})
	return out
}

// All yields pairs in insertion order, which lets it drive PutAll.
func (b *naiveBimap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range b.pairs {
			if !yield(p[0], p[1]) {
				return
			}
		}
	}
}

func viewEntries(v *bimap.View[string]) [][2]string {
	out := make([][2]string, 0, v.Len())
	for k, val := range v.All() {
		out = append(out, [2]string{k, val})
	}
	return out
}

// requireSame asserts that actual holds exactly the pairs of expected, in
// the same order on both sides, and that the tree invariants hold.
func requireSame(t *testing.T, expected *naiveBimap, actual *bimap.Bimap[string]) {
	t.Helper()
	require.NoError(t, actual.CheckInvariant())
	require.Equal(t, len(expected.pairs), actual.Len())
	require.Equal(t, expected.entries(0), viewEntries(actual.LeftView()), "left view")
	require.Equal(t, expected.entries(1), viewEntries(actual.RightView()), "right view")
}

const shortAlphabet = "abcdef"

// shortKey draws from a small key space so puts collide often.
func shortKey(r *rand.Rand) string {
	b := make([]byte, 1+r.IntN(3))
	for i := range b {
		b[i] = shortAlphabet[r.IntN(len(shortAlphabet))]
	}
	return string(b)
}

// longKey is a random string of printable code points, as unlikely to
// collide as real-world identifiers.
func longKey(r *rand.Rand) string {
	runes := make([]rune, 20+r.IntN(30))
	for i := range runes {
		c := rune(' ' + r.IntN(0xD000-' '))
		runes[i] = c
	}
	return string(runes)
}
