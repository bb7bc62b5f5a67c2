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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/cybrota/bimap/bimap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderingCase struct {
	name  string
	left  bimap.Comparator[string]
	right bimap.Comparator[string]
}

func orderingCases() []orderingCase {
	return []orderingCase{
		{"natural", bimap.Natural[string](), bimap.Natural[string]()},
		{"reverse/natural", bimap.Reverse(bimap.Natural[string]()), bimap.Natural[string]()},
		{"reversed-string/reverse", bimap.Reversed(), bimap.Reverse(bimap.Natural[string]())},
		{"length-then-reverse/natural", bimap.Then(bimap.ByLength(), bimap.Reverse(bimap.Natural[string]())), bimap.Natural[string]()},
	}
}

func TestBimap_MatchesModelOnRandomPuts(t *testing.T) {
	for _, oc := range orderingCases() {
		t.Run(oc.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(3197515612765697362, 1))
			expected := newNaive(oc.left, oc.right)
			actual := bimap.NewFunc(oc.left, oc.right)

			for i := 0; i < 2000; i++ {
				l, rk := shortKey(r), shortKey(r)
				expected.Put(l, rk)
				actual.Put(l, rk)
				if i%50 == 0 {
					requireSame(t, expected, actual)
				}
			}
			requireSame(t, expected, actual)
		})
	}
}

func TestBimap_MatchesModelOnMixedOperations(t *testing.T) {
	for _, oc := range orderingCases() {
		t.Run(oc.name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(42, 7))
			expected := newNaive(oc.left, oc.right)
			actual := bimap.NewFunc(oc.left, oc.right)

			for i := 0; i < 3000; i++ {
				switch r.IntN(10) {
				case 0, 1, 2, 3, 4:
					l, rk := shortKey(r), shortKey(r)
					expected.Put(l, rk)
					actual.Put(l, rk)
				case 5, 6:
					key := shortKey(r)
					want, wantOK := expected.RemoveByLeft(key)
					got, gotOK := actual.RemoveByLeft(key)
					require.Equal(t, wantOK, gotOK, "RemoveByLeft(%q)", key)
					require.Equal(t, want, got, "RemoveByLeft(%q)", key)
				case 7, 8:
					key := shortKey(r)
					want, wantOK := expected.RemoveByRight(key)
					got, gotOK := actual.RemoveByRight(key)
					require.Equal(t, wantOK, gotOK, "RemoveByRight(%q)", key)
					require.Equal(t, want, got, "RemoveByRight(%q)", key)
				case 9:
					key := shortKey(r)
					want, wantOK := expected.RemoveByLeft(key)
					got, gotOK := actual.LeftView().Remove(key)
					require.Equal(t, wantOK, gotOK)
					require.Equal(t, want, got)
				}
				requireSame(t, expected, actual)
			}
		})
	}
}

func TestBimap_MatchesModelOnBulkLoadAndShuffledRemoval(t *testing.T) {
	r := rand.New(rand.NewPCG(3197515612765697362, 2))
	left := bimap.Then(bimap.ByLength(), bimap.Reverse(bimap.Natural[string]()))
	right := bimap.Natural[string]()

	data := newNaive(left, right)
	for i := 0; i < 500; i++ {
		data.Put(longKey(r), longKey(r))
	}

	expected := newNaive(left, right)
	actual := bimap.NewFunc(left, right)
	expected.Put("seed", "seed")
	actual.Put("seed", "seed")
	for l, rk := range data.All() {
		expected.Put(l, rk)
	}
	actual.PutAll(data)
	requireSame(t, expected, actual)

	pairs := append([][2]string(nil), data.pairs...)
	r.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })

	for _, p := range pairs {
		switch r.IntN(4) {
		case 0:
			expected.RemoveByLeft(p[0])
			actual.RemoveByLeft(p[0])
		case 1:
			expected.RemoveByRight(p[1])
			actual.RemoveByRight(p[1])
		case 2:
			key := longKey(r)
			_, ok := actual.RemoveByLeft(key)
			assert.False(t, ok)
		case 3:
			expected.RemoveByLeft(p[0])
			assert.True(t, actual.RightView().RemoveEntry(p[1], p[0]))
		}
		requireSame(t, expected, actual)
	}
}

// avlBound is the classic AVL worst case height for n nodes.
func avlBound(n int) float64 {
	return 1.45 * math.Log2(float64(n+2))
}

func TestBimap_HeightStaysLogarithmic(t *testing.T) {
	t.Run("ascending keys", func(t *testing.T) {
		m := bimap.New[int]()
		for i := 0; i < 4096; i++ {
			m.Put(i, -i)
		}
		require.NoError(t, m.CheckInvariant())
		assert.LessOrEqual(t, float64(m.LeftHeight()), avlBound(m.Len()))
		assert.LessOrEqual(t, float64(m.RightHeight()), avlBound(m.Len()))
	})

	t.Run("random churn", func(t *testing.T) {
		r := rand.New(rand.NewPCG(11, 13))
		m := bimap.New[int]()
		for i := 0; i < 20000; i++ {
			if r.IntN(3) == 0 {
				m.RemoveByRight(r.IntN(5000))
			} else {
				m.Put(r.IntN(5000), r.IntN(5000))
			}
		}
		require.NoError(t, m.CheckInvariant())
		assert.LessOrEqual(t, float64(m.LeftHeight()), avlBound(m.Len()))
		assert.LessOrEqual(t, float64(m.RightHeight()), avlBound(m.Len()))
	})
}

func TestBimap_IsABijection(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	m := bimap.New[string]()
	for i := 0; i < 1000; i++ {
		m.Put(shortKey(r), shortKey(r))
	}

	lefts := make(map[string]bool)
	rights := make(map[string]bool)
	for l, rk := range m.All() {
		require.False(t, lefts[l], "duplicate left key %q", l)
		require.False(t, rights[rk], "duplicate right key %q", rk)
		lefts[l], rights[rk] = true, true

		gotRight, ok := m.GetByLeft(l)
		require.True(t, ok)
		require.Equal(t, rk, gotRight)
		gotLeft, ok := m.GetByRight(rk)
		require.True(t, ok)
		require.Equal(t, l, gotLeft)
	}
	assert.Equal(t, m.Len(), len(lefts))
}
