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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparatorFor(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int // sign of compare(a, b)
	}{
		{orderingNatural, "a", "b", -1},
		{orderingReverse, "a", "b", 1},
		{orderingLength, "zz", "aaa", -1},
		{orderingLength, "ab", "aa", 1},
		{orderingFold, "Key", "kEY", 0},
		{orderingSuffix, "ba", "ab", -1},
		{" Natural ", "a", "a", 0},
	}
	for _, tc := range tests {
		c, err := comparatorFor(tc.name)
		require.NoError(t, err, tc.name)
		got := c(tc.a, tc.b)
		switch {
		case got < 0:
			got = -1
		case got > 0:
			got = 1
		}
		assert.Equal(t, tc.want, got, "%s: compare(%q, %q)", tc.name, tc.a, tc.b)
	}

	_, err := comparatorFor("sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), orderingNames())
}

func TestOrderingNamesSorted(t *testing.T) {
	assert.Equal(t, "fold, length, natural, reverse, suffix", orderingNames())
}

func TestIsExactOrdering(t *testing.T) {
	for _, name := range strings.Split(orderingNames(), ", ") {
		assert.Equal(t, name != orderingFold, isExactOrdering(name), name)
	}
	assert.False(t, isExactOrdering("FOLD"))
}

func TestNewBimapUsesBothOrderings(t *testing.T) {
	config := withDefaults(nil)
	config.Ordering.Left = orderingFold
	config.Ordering.Right = orderingReverse
	m, err := newBimap(config)
	require.NoError(t, err)

	m.Put("Apple", "1")
	m.Put("apple", "2")
	m.Put("banana", "3")

	assert.Equal(t, 2, m.Len(), "fold makes Apple and apple one left key")
	assert.Equal(t, []string{"3", "2"}, m.RightView().Keys())
}
