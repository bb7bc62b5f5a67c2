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
	"testing"

	"github.com/cybrota/bimap/bimap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Lookup(t *testing.T) {
	m := sample()
	left, right := m.LeftView(), m.RightView()

	v, ok := left.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = right.Get("x")
	assert.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = right.Get("c")
	assert.False(t, ok)

	assert.True(t, left.Has("a"))
	assert.False(t, left.Has("z"))
	assert.True(t, right.Has("z"))

	assert.True(t, left.Contains("a", "z"))
	assert.False(t, left.Contains("a", "y"))
	assert.True(t, right.Contains("z", "a"))
	assert.False(t, right.Contains("q", "a"))
}

func TestView_Mutations(t *testing.T) {
	t.Run("remove through either view", func(t *testing.T) {
		m := sample()
		v, ok := m.LeftView().Remove("a")
		require.True(t, ok)
		assert.Equal(t, "z", v)
		assert.False(t, m.RightView().Has("z"))

		v, ok = m.RightView().Remove("y")
		require.True(t, ok)
		assert.Equal(t, "b", v)

		_, ok = m.RightView().Remove("y")
		assert.False(t, ok)
		assert.Equal(t, [][2]string{{"c", "x"}, {"d", "w"}}, pairsOf(m))
	})

	t.Run("remove entry needs a matching value", func(t *testing.T) {
		m := sample()
		assert.False(t, m.LeftView().RemoveEntry("a", "y"))
		assert.Equal(t, 4, m.Len())
		assert.True(t, m.LeftView().RemoveEntry("a", "z"))
		assert.False(t, m.RightView().RemoveEntry("x", "d"))
		assert.True(t, m.RightView().RemoveEntry("x", "c"))
		assert.Equal(t, [][2]string{{"b", "y"}, {"d", "w"}}, pairsOf(m))
	})

	t.Run("put through the right view", func(t *testing.T) {
		m := sample()
		m.RightView().Put("w", "a")
		assert.Equal(t, [][2]string{{"a", "w"}, {"b", "y"}, {"c", "x"}}, pairsOf(m))
		require.NoError(t, m.CheckInvariant())
	})

	t.Run("clear through a view", func(t *testing.T) {
		m := sample()
		m.RightView().Clear()
		assert.True(t, m.LeftView().IsEmpty())
	})
}

func TestView_Ordering(t *testing.T) {
	m := bimap.NewFunc(bimap.Natural[string](), bimap.Reverse(bimap.Natural[string]()))
	m.Put("a", "1")
	m.Put("b", "2")
	m.Put("c", "3")

	assert.Equal(t, []string{"a", "b", "c"}, m.LeftView().Keys())
	assert.Equal(t, []string{"1", "2", "3"}, m.LeftView().Values())
	assert.Equal(t, []string{"3", "2", "1"}, m.RightView().Keys())
	assert.Equal(t, []string{"c", "b", "a"}, m.RightView().Values())

	k, v, ok := m.RightView().First()
	require.True(t, ok)
	assert.Equal(t, "3", k)
	assert.Equal(t, "c", v)

	k, v, ok = m.LeftView().Last()
	require.True(t, ok)
	assert.Equal(t, "c", k)
	assert.Equal(t, "3", v)

	_, _, ok = bimap.New[string]().LeftView().First()
	assert.False(t, ok)

	assert.Equal(t, m.RightView().Keys(), m.LeftView().Flip().Keys())
	assert.Equal(t, "{3=c, 2=b, 1=a}", m.RightView().String())
}

func TestView_AllStopsEarly(t *testing.T) {
	m := sample()
	var keys []string
	for k := range m.LeftView().All() {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
