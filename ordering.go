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
	"fmt"
	"slices"
	"strings"

	"github.com/cybrota/bimap/bimap"
)

const (
	orderingNatural = "natural"
	orderingReverse = "reverse"
	orderingLength  = "length"
	orderingFold    = "fold"
	orderingSuffix  = "suffix"
)

var orderings = map[string]func() bimap.Comparator[string]{
	orderingNatural: bimap.Natural[string],
	orderingReverse: func() bimap.Comparator[string] {
		return bimap.Reverse(bimap.Natural[string]())
	},
	// Shorter keys first, ties broken lexicographically.
	orderingLength: func() bimap.Comparator[string] {
		return bimap.Then(bimap.ByLength(), bimap.Natural[string]())
	},
	orderingFold:   bimap.FoldCase,
	orderingSuffix: bimap.Reversed,
}

func comparatorFor(name string) (bimap.Comparator[string], error) {
	mk, ok := orderings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown ordering %q (want one of %s)", name, orderingNames())
	}
	return mk(), nil
}

func orderingNames() string {
	names := make([]string, 0, len(orderings))
	for name := range orderings {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// newBimap builds an empty bimap ordered as the config says.
func newBimap(config *Config) (*bimap.Bimap[string], error) {
	left, err := comparatorFor(config.Ordering.Left)
	if err != nil {
		return nil, fmt.Errorf("left ordering: %w", err)
	}
	right, err := comparatorFor(config.Ordering.Right)
	if err != nil {
		return nil, fmt.Errorf("right ordering: %w", err)
	}
	return bimap.NewFunc(left, right), nil
}

// isExactOrdering reports whether keys equal under the ordering are equal
// as strings, which is what hash-based lookups rely on.
func isExactOrdering(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) != orderingFold
}
