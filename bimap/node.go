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

import "fmt"

// axis selects one of the two orderings kept over the same pairs.
type axis int

const (
	leftAxis axis = iota
	rightAxis
)

func (a axis) other() axis {
	return a ^ 1
}

func (a axis) String() string {
	if a == leftAxis {
		return "left"
	}
	return "right"
}

// half is the per-axis bookkeeping of a node: tree links and subtree height.
type half[K any] struct {
	left   *node[K]
	right  *node[K]
	parent *node[K]
	height int
}

// node is one (left, right) pair. It sits in the left tree and in the
// right tree at the same time; keys[a] and links[a] belong to axis a.
type node[K any] struct {
	keys  [2]K
	links [2]half[K]
}

func newNode[K any](left, right K, leftParent, rightParent *node[K]) *node[K] {
	n := &node[K]{keys: [2]K{left, right}}
	n.links[leftAxis] = half[K]{parent: leftParent, height: 1}
	n.links[rightAxis] = half[K]{parent: rightParent, height: 1}
	return n
}

func (n *node[K]) height(a axis) int {
	if n == nil {
		return 0
	}
	return n.links[a].height
}

func (n *node[K]) fixHeight(a axis) {
	h := &n.links[a]
	h.height = max(h.left.height(a), h.right.height(a)) + 1
}

func (n *node[K]) balanceFactor(a axis) int {
	return n.links[a].left.height(a) - n.links[a].right.height(a)
}

func (n *node[K]) min(a axis) *node[K] {
	for n.links[a].left != nil {
		n = n.links[a].left
	}
	return n
}

func (n *node[K]) max(a axis) *node[K] {
	for n.links[a].right != nil {
		n = n.links[a].right
	}
	return n
}

// next returns the in-order successor on axis a. Starting from the sentinel
// it yields the smallest node; past the largest node it returns nil.
func (n *node[K]) next(a axis) *node[K] {
	if r := n.links[a].right; r != nil {
		return r.min(a)
	}
	cur := n
	for p := cur.links[a].parent; p != nil && cur == p.links[a].right; p = cur.links[a].parent {
		cur = p
	}
	return cur.links[a].parent
}

// prev is the mirror of next. The predecessor of the smallest node is the
// sentinel, since the root hangs off the sentinel's right link.
func (n *node[K]) prev(a axis) *node[K] {
	if l := n.links[a].left; l != nil {
		return l.max(a)
	}
	cur := n
	for p := cur.links[a].parent; p != nil && cur == p.links[a].left; p = cur.links[a].parent {
		cur = p
	}
	return cur.links[a].parent
}

// replace hangs other in the slot n occupies under its parent.
func (n *node[K]) replace(a axis, other *node[K]) {
	p := n.links[a].parent
	if p == nil {
		panic(fmt.Sprintf("bimap: %s axis node has no parent", a))
	}
	switch n {
	case p.links[a].left:
		p.links[a].left = other
	case p.links[a].right:
		p.links[a].right = other
	default:
		panic(fmt.Sprintf("bimap: %s axis node is not a child of its parent", a))
	}
	if other != nil {
		other.links[a].parent = p
	}
}

func (n *node[K]) setLeft(a axis, child *node[K]) {
	n.links[a].left = child
	if child != nil {
		child.links[a].parent = n
	}
}

func (n *node[K]) setRight(a axis, child *node[K]) {
	n.links[a].right = child
	if child != nil {
		child.links[a].parent = n
	}
}

// detach drops every link of axis a so the node keeps nothing alive.
func (n *node[K]) detach(a axis) {
	n.links[a] = half[K]{height: 1}
}
