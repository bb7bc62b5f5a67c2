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

// CheckInvariant verifies the structure: both trees ordered, linked and
// AVL balanced with correct stored heights, both holding exactly the same
// Len() nodes. It returns an error wrapping ErrCorrupted describing the
// first violation found. Intended for tests and diagnostics.
func (m *Bimap[K]) CheckInvariant() error {
	seen := make(map[*node[K]]struct{}, m.size)

	for _, a := range []axis{leftAxis, rightAxis} {
		root := m.root(a)
		if root != nil && root.links[a].parent != m.sentinel {
			return fmt.Errorf("%w: %s root does not point back to the sentinel", ErrCorrupted, a)
		}
		if _, err := m.checkSubtree(a, root, 1); err != nil {
			return err
		}

		count := 0
		var last *node[K]
		for n := m.sentinel.next(a); n != nil; n = n.next(a) {
			if last != nil && m.cmp[a](last.keys[a], n.keys[a]) >= 0 {
				return fmt.Errorf("%w: %s keys %v and %v out of order", ErrCorrupted, a, last.keys[a], n.keys[a])
			}
			if a == leftAxis {
				seen[n] = struct{}{}
			} else if _, ok := seen[n]; !ok {
				return fmt.Errorf("%w: pair (%v, %v) is missing from the left tree", ErrCorrupted, n.keys[leftAxis], n.keys[rightAxis])
			}
			last = n
			count++
			if count > m.size {
				return fmt.Errorf("%w: %s tree holds more than %d nodes", ErrCorrupted, a, m.size)
			}
		}
		if count != m.size {
			return fmt.Errorf("%w: %s tree holds %d nodes, size is %d", ErrCorrupted, a, count, m.size)
		}
	}
	return nil
}

// checkSubtree validates parent links, stored heights and balance below n
// and returns the subtree height. depth is n's depth; a path longer than
// Len() nodes can only come from a cycle.
func (m *Bimap[K]) checkSubtree(a axis, n *node[K], depth int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if depth > m.size {
		return 0, fmt.Errorf("%w: %s tree is deeper than its %d nodes", ErrCorrupted, a, m.size)
	}
	h := &n.links[a]
	for _, child := range []*node[K]{h.left, h.right} {
		if child != nil && child.links[a].parent != n {
			return 0, fmt.Errorf("%w: %s child %v has a wrong parent link", ErrCorrupted, a, child.keys[a])
		}
	}

	lh, err := m.checkSubtree(a, h.left, depth+1)
	if err != nil {
		return 0, err
	}
	rh, err := m.checkSubtree(a, h.right, depth+1)
	if err != nil {
		return 0, err
	}

	height := max(lh, rh) + 1
	if h.height != height {
		return 0, fmt.Errorf("%w: %s node %v stores height %d, actual %d", ErrCorrupted, a, n.keys[a], h.height, height)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fmt.Errorf("%w: %s node %v is unbalanced (%d vs %d)", ErrCorrupted, a, n.keys[a], lh, rh)
	}
	return height, nil
}
