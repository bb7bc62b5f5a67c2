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

// Package bimap implements an ordered bidirectional map backed by two AVL
// trees threaded through the same nodes: one ordered by the left key, one
// by the right key. Every left key and every right key belongs to exactly
// one pair. Lookups, inserts and removals are O(log n) from either side.
//
// A Bimap is not safe for concurrent use.
package bimap

import (
	"cmp"
	"fmt"
	"iter"
	"strings"
)

// Bimap is a set of unique (left, right) pairs ordered on both sides.
// Use New or NewFunc to create one; the zero value is not usable.
type Bimap[K any] struct {
	cmp [2]Comparator[K]
	// sentinel.links[a].right is the root of axis a.
	sentinel *node[K]
	size     int
}

// Source is anything that can enumerate (left, right) pairs.
type Source[K any] interface {
	All() iter.Seq2[K, K]
}

// New returns an empty Bimap ordering both sides naturally.
func New[K cmp.Ordered]() *Bimap[K] {
	return NewFunc(Natural[K](), Natural[K]())
}

// NewFunc returns an empty Bimap ordering left keys with left and right
// keys with right. The comparators also decide which keys are equal.
func NewFunc[K any](left, right Comparator[K]) *Bimap[K] {
	var zero K
	return &Bimap[K]{
		cmp:      [2]Comparator[K]{left, right},
		sentinel: newNode(zero, zero, nil, nil),
	}
}

// Len returns the number of pairs.
func (m *Bimap[K]) Len() int {
	return m.size
}

func (m *Bimap[K]) IsEmpty() bool {
	return m.size == 0
}

func (m *Bimap[K]) root(a axis) *node[K] {
	return m.sentinel.links[a].right
}

// find descends axis a looking for key.
func (m *Bimap[K]) find(a axis, key K) *node[K] {
	compare := m.cmp[a]
	n := m.root(a)
	for n != nil {
		switch r := compare(key, n.keys[a]); {
		case r < 0:
			n = n.links[a].left
		case r > 0:
			n = n.links[a].right
		default:
			return n
		}
	}
	return nil
}

// GetByLeft returns the right key paired with left.
func (m *Bimap[K]) GetByLeft(left K) (K, bool) {
	return m.get(leftAxis, left)
}

// GetByRight returns the left key paired with right.
func (m *Bimap[K]) GetByRight(right K) (K, bool) {
	return m.get(rightAxis, right)
}

func (m *Bimap[K]) get(a axis, key K) (K, bool) {
	n := m.find(a, key)
	if n == nil {
		var zero K
		return zero, false
	}
	return n.keys[a.other()], true
}

func (m *Bimap[K]) HasLeft(left K) bool {
	return m.find(leftAxis, left) != nil
}

func (m *Bimap[K]) HasRight(right K) bool {
	return m.find(rightAxis, right) != nil
}

// Put stores the pair (left, right). Any pair already owning left or
// right is removed first, so Put can evict zero, one or two pairs.
func (m *Bimap[K]) Put(left, right K) {
	if n := m.find(leftAxis, left); n != nil {
		m.remove(n)
	}
	if n := m.find(rightAxis, right); n != nil {
		m.remove(n)
	}

	if m.root(leftAxis) == nil {
		n := newNode(left, right, m.sentinel, m.sentinel)
		m.sentinel.links[leftAxis].right = n
		m.sentinel.links[rightAxis].right = n
		m.size = 1
		return
	}

	// Eviction may have reshaped either tree, so each axis is descended
	// on its own.
	leftParent, leftSide := m.slot(leftAxis, left)
	rightParent, rightSide := m.slot(rightAxis, right)

	n := newNode(left, right, leftParent, rightParent)
	attach(leftAxis, leftParent, leftSide, n)
	attach(rightAxis, rightParent, rightSide, n)

	leftParent.rebalance(leftAxis)
	rightParent.rebalance(rightAxis)
	m.size++
}

type side int

const (
	toLeft side = iota
	toRight
)

// slot finds the node whose empty child link should receive key on axis a.
func (m *Bimap[K]) slot(a axis, key K) (*node[K], side) {
	compare := m.cmp[a]
	n := m.root(a)
	for {
		switch r := compare(key, n.keys[a]); {
		case r < 0:
			if n.links[a].left == nil {
				return n, toLeft
			}
			n = n.links[a].left
		case r > 0:
			if n.links[a].right == nil {
				return n, toRight
			}
			n = n.links[a].right
		default:
			panic(fmt.Sprintf("bimap: %s key still present after eviction", a))
		}
	}
}

func attach[K any](a axis, parent *node[K], s side, child *node[K]) {
	if s == toLeft {
		parent.links[a].left = child
	} else {
		parent.links[a].right = child
	}
}

// RemoveByLeft removes the pair owning left and returns its right key.
func (m *Bimap[K]) RemoveByLeft(left K) (K, bool) {
	return m.removeKey(leftAxis, left)
}

// RemoveByRight removes the pair owning right and returns its left key.
func (m *Bimap[K]) RemoveByRight(right K) (K, bool) {
	return m.removeKey(rightAxis, right)
}

func (m *Bimap[K]) removeKey(a axis, key K) (K, bool) {
	n := m.find(a, key)
	if n == nil {
		var zero K
		return zero, false
	}
	m.remove(n)
	return n.keys[a.other()], true
}

// PutAll puts every pair of src, in the order src yields them.
func (m *Bimap[K]) PutAll(src Source[K]) {
	if other, ok := src.(*Bimap[K]); ok && other == m {
		// Every pair is already present.
		return
	}
	for left, right := range src.All() {
		m.Put(left, right)
	}
}

// Clear removes all pairs.
func (m *Bimap[K]) Clear() {
	m.sentinel.links[leftAxis].right = nil
	m.sentinel.links[rightAxis].right = nil
	m.size = 0
}

// All yields (left, right) pairs in left-key order.
func (m *Bimap[K]) All() iter.Seq2[K, K] {
	return m.LeftView().All()
}

// LeftView returns the left-keyed map view: keys are left keys, values
// are right keys.
func (m *Bimap[K]) LeftView() *View[K] {
	return &View[K]{m: m, axis: leftAxis}
}

// RightView returns the right-keyed map view: keys are right keys, values
// are left keys.
func (m *Bimap[K]) RightView() *View[K] {
	return &View[K]{m: m, axis: rightAxis}
}

// LeftIterator returns an iterator over the pairs in left-key order.
func (m *Bimap[K]) LeftIterator() *Iterator[K] {
	return m.LeftView().Iterator()
}

// RightIterator returns an iterator over the pairs in right-key order.
func (m *Bimap[K]) RightIterator() *Iterator[K] {
	return m.LeftIterator().Flip()
}

// LeftHeight returns the height of the left-keyed tree.
func (m *Bimap[K]) LeftHeight() int {
	return m.root(leftAxis).height(leftAxis)
}

// RightHeight returns the height of the right-keyed tree.
func (m *Bimap[K]) RightHeight() int {
	return m.root(rightAxis).height(rightAxis)
}

func (m *Bimap[K]) String() string {
	var sb strings.Builder
	sb.WriteString("Bimap{left=")
	sb.WriteString(m.LeftView().String())
	sb.WriteString(", right=")
	sb.WriteString(m.RightView().String())
	sb.WriteString("}")
	return sb.String()
}
