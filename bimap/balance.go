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

func (n *node[K]) rotateLeft(a axis) {
	// Identify the pivot node (new subtree root)
	pivot := n.links[a].right

	n.replace(a, pivot)
	n.setRight(a, pivot.links[a].left)
	pivot.setLeft(a, n)

	n.fixHeight(a)
	pivot.fixHeight(a)
}

func (n *node[K]) rotateRight(a axis) {
	pivot := n.links[a].left

	n.replace(a, pivot)
	n.setLeft(a, pivot.links[a].right)
	pivot.setRight(a, n)

	n.fixHeight(a)
	pivot.fixHeight(a)
}

// rebalance walks from n up to the sentinel on axis a, restoring heights and
// rotating wherever the children's heights differ by two. The walk never
// stops early: a rotation can change the height of the new subtree root.
func (n *node[K]) rebalance(a axis) {
	for cur := n; cur.links[a].parent != nil; cur = cur.links[a].parent {
		switch bf := cur.balanceFactor(a); bf {
		case -1, 0, 1:
			cur.fixHeight(a)
		case -2:
			// Right-heavy
			pivot := cur.links[a].right
			if pivot.links[a].right.height(a) == pivot.height(a)-1 {
				cur.rotateLeft(a)
			} else {
				pivot.rotateRight(a)
				cur.rotateLeft(a)
			}
		case 2:
			// Left-heavy
			pivot := cur.links[a].left
			if pivot.links[a].left.height(a) == pivot.height(a)-1 {
				cur.rotateRight(a)
			} else {
				pivot.rotateLeft(a)
				cur.rotateRight(a)
			}
		default:
			panic(fmt.Sprintf("bimap: %s balance factor %d out of range", a, bf))
		}
	}
}
