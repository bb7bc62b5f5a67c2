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

// remove takes n out of both trees. The two axes are unlinked separately
// since n may have two children in one tree and none in the other; each
// axis is then rebalanced from the lowest node whose subtree changed.
func (m *Bimap[K]) remove(n *node[K]) {
	leftFix := n.unlink(leftAxis)
	rightFix := n.unlink(rightAxis)

	leftFix.rebalance(leftAxis)
	rightFix.rebalance(rightAxis)

	m.size--
}

// unlink removes n from the tree of axis a and returns the node the
// rebalancing walk has to start from.
func (n *node[K]) unlink(a axis) *node[K] {
	h := &n.links[a]

	// Case 1: at most one child, splice it into n's slot
	if h.left == nil || h.right == nil {
		child := h.left
		if child == nil {
			child = h.right
		}
		fix := h.parent
		n.replace(a, child)
		n.detach(a)
		return fix
	}

	// Case 2: two children. The successor node itself takes n's place in
	// this tree; keys are never copied between nodes because each node
	// also sits somewhere in the other tree.
	successor := h.right.min(a)
	fix := successor.links[a].parent
	if fix == n {
		fix = successor
	}

	// The successor has no left child.
	successor.replace(a, successor.links[a].right)

	successor.setLeft(a, h.left)
	successor.setRight(a, h.right)
	n.replace(a, successor)
	n.detach(a)
	return fix
}
