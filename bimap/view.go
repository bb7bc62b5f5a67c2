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
	"fmt"
	"iter"
	"strings"
)

// View is one side of a Bimap seen as an ordered map. Changes made through
// a view are changes to the Bimap and are visible through the other view.
type View[K any] struct {
	m    *Bimap[K]
	axis axis
}

func (v *View[K]) Len() int {
	return v.m.size
}

func (v *View[K]) IsEmpty() bool {
	return v.m.size == 0
}

// Get returns the value stored under key.
func (v *View[K]) Get(key K) (K, bool) {
	return v.m.get(v.axis, key)
}

func (v *View[K]) Has(key K) bool {
	return v.m.find(v.axis, key) != nil
}

// Contains reports whether key is stored with exactly value.
func (v *View[K]) Contains(key, value K) bool {
	n := v.m.find(v.axis, key)
	other := v.axis.other()
	return n != nil && v.m.cmp[other](n.keys[other], value) == 0
}

// Put stores key with value, evicting whatever pairs own either of them.
func (v *View[K]) Put(key, value K) {
	if v.axis == leftAxis {
		v.m.Put(key, value)
	} else {
		v.m.Put(value, key)
	}
}

// Remove deletes the pair owning key and returns its value.
func (v *View[K]) Remove(key K) (K, bool) {
	return v.m.removeKey(v.axis, key)
}

// RemoveEntry deletes key only if it is stored with value.
func (v *View[K]) RemoveEntry(key, value K) bool {
	n := v.m.find(v.axis, key)
	other := v.axis.other()
	if n == nil || v.m.cmp[other](n.keys[other], value) != 0 {
		return false
	}
	v.m.remove(n)
	return true
}

func (v *View[K]) Clear() {
	v.m.Clear()
}

// Iterator returns a cursor positioned before the first entry.
func (v *View[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{m: v.m, axis: v.axis, node: v.m.sentinel}
}

// Flip returns the view of the other side.
func (v *View[K]) Flip() *View[K] {
	return &View[K]{m: v.m, axis: v.axis.other()}
}

// All yields entries in key order. The Bimap must not be modified while
// ranging; use Iterator to remove during a traversal.
func (v *View[K]) All() iter.Seq2[K, K] {
	return func(yield func(K, K) bool) {
		other := v.axis.other()
		for n := v.m.sentinel.next(v.axis); n != nil; n = n.next(v.axis) {
			if !yield(n.keys[v.axis], n.keys[other]) {
				return
			}
		}
	}
}

// Keys returns the keys in order.
func (v *View[K]) Keys() []K {
	keys := make([]K, 0, v.m.size)
	for k := range v.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in key order.
func (v *View[K]) Values() []K {
	values := make([]K, 0, v.m.size)
	for _, val := range v.All() {
		values = append(values, val)
	}
	return values
}

// First returns the entry with the smallest key.
func (v *View[K]) First() (key, value K, ok bool) {
	root := v.m.root(v.axis)
	if root == nil {
		return key, value, false
	}
	n := root.min(v.axis)
	return n.keys[v.axis], n.keys[v.axis.other()], true
}

// Last returns the entry with the largest key.
func (v *View[K]) Last() (key, value K, ok bool) {
	root := v.m.root(v.axis)
	if root == nil {
		return key, value, false
	}
	n := root.max(v.axis)
	return n.keys[v.axis], n.keys[v.axis.other()], true
}

// String renders the view as {k1=v1, k2=v2}.
func (v *View[K]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for k, val := range v.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=%v", k, val)
	}
	sb.WriteByte('}')
	return sb.String()
}
