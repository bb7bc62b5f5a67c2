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

package bimap

import (
	"cmp"
	"strings"
)

// Comparator is a total order over keys. It returns a negative number when
// a < b, zero when a and b are the same key and a positive number otherwise.
// Keys that compare equal are treated as one key by the Bimap.
type Comparator[K any] func(a, b K) int

// Natural orders keys with cmp.Compare (byte-wise for strings).
func Natural[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Reverse inverts c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}

// Then breaks ties of first with second.
func Then[K any](first, second Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		if r := first(a, b); r != 0 {
			return r
		}
		return second(a, b)
	}
}

// ByLength orders strings by byte length only. Strings of the same length
// compare equal, so it is normally combined with Then.
func ByLength() Comparator[string] {
	return func(a, b string) int {
		return cmp.Compare(len(a), len(b))
	}
}

// FoldCase orders strings ignoring case; "Key" and "key" are the same key.
func FoldCase() Comparator[string] {
	return func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// Reversed orders strings by their byte-reversed form, grouping keys that
// share a suffix.
func Reversed() Comparator[string] {
	return func(a, b string) int {
		return strings.Compare(reverseString(a), reverseString(b))
	}
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
