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

// Iterator is a cursor over one axis of a Bimap. It starts before the first
// entry; Next and Prev move it onto a neighbouring entry and return that
// entry as (key, value), where key is the pair's key on the iterator's axis
// and value the key on the other axis. Walking off either end leaves the
// iterator exhausted (after the end) or before the first entry.
//
// The only mutation an iterator survives is its own Remove.
type Iterator[K any] struct {
	m    *Bimap[K]
	axis axis
	// node is the current entry, m.sentinel before the first entry, or nil
	// once the iterator ran past the last entry.
	node      *node[K]
	removable bool
}

func (it *Iterator[K]) beforeFirst() bool {
	return it.node == it.m.sentinel
}

// HasNext reports whether Next would return an entry.
func (it *Iterator[K]) HasNext() bool {
	return it.node != nil && it.node.next(it.axis) != nil
}

// Next advances to the following entry and returns it. ErrIteratorExhausted
// means the caller walked past the end without checking HasNext; it is a
// misuse of the iterator, not a data condition.
func (it *Iterator[K]) Next() (key, value K, err error) {
	if it.node == nil {
		return key, value, ErrIteratorExhausted
	}
	n := it.node.next(it.axis)
	if n == nil {
		it.node = nil
		it.removable = false
		return key, value, ErrIteratorExhausted
	}
	return it.land(n)
}

// HasPrev reports whether Prev would return an entry.
func (it *Iterator[K]) HasPrev() bool {
	if it.node == nil {
		return it.m.root(it.axis) != nil
	}
	if it.beforeFirst() {
		return false
	}
	return it.node.prev(it.axis) != it.m.sentinel
}

// Prev steps back to the preceding entry and returns it. From the
// exhausted state it returns the last entry.
func (it *Iterator[K]) Prev() (key, value K, err error) {
	var n *node[K]
	switch {
	case it.node == nil:
		if root := it.m.root(it.axis); root != nil {
			n = root.max(it.axis)
		}
	case it.beforeFirst():
	default:
		n = it.node.prev(it.axis)
	}
	if n == nil || n == it.m.sentinel {
		it.node = it.m.sentinel
		it.removable = false
		return key, value, ErrIteratorExhausted
	}
	return it.land(n)
}

func (it *Iterator[K]) land(n *node[K]) (K, K, error) {
	it.node = n
	it.removable = true
	return n.keys[it.axis], n.keys[it.axis.other()], nil
}

// Seek moves the iterator onto the first entry whose key is not less than
// key and returns it. With no such entry the iterator ends up exhausted.
func (it *Iterator[K]) Seek(key K) (k, v K, err error) {
	c := it.m.cmp[it.axis]
	var ceil *node[K]
	for n := it.m.root(it.axis); n != nil; {
		if c(n.keys[it.axis], key) >= 0 {
			ceil = n
			n = n.links[it.axis].left
		} else {
			n = n.links[it.axis].right
		}
	}
	if ceil == nil {
		it.node = nil
		it.removable = false
		return k, v, ErrIteratorExhausted
	}
	return it.land(ceil)
}

// Current returns the entry the iterator is positioned on.
func (it *Iterator[K]) Current() (key, value K, ok bool) {
	if it.node == nil || it.beforeFirst() {
		return key, value, false
	}
	return it.node.keys[it.axis], it.node.keys[it.axis.other()], true
}

// Remove deletes the pair last returned by Next, Prev or Seek from the Bimap.
// ErrIllegalRemove signals a caller bug: there is no such pair, or it was
// already removed.
// The iterator moves onto that pair's predecessor, so a following Next
// returns the entry that came after the removed one.
func (it *Iterator[K]) Remove() error {
	if !it.removable {
		return ErrIllegalRemove
	}
	// Links change during removal; the predecessor must be taken first.
	prev := it.node.prev(it.axis)
	it.m.remove(it.node)
	it.node = prev
	it.removable = false
	return nil
}

// Flip returns a copy of the iterator that walks the other axis from the
// same pair. Advancing either iterator leaves the other untouched.
func (it *Iterator[K]) Flip() *Iterator[K] {
	flipped := *it
	flipped.axis = it.axis.other()
	return &flipped
}

// Clone returns an independent copy of the iterator.
func (it *Iterator[K]) Clone() *Iterator[K] {
	clone := *it
	return &clone
}
