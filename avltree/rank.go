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

package avltree

import (
	"fmt"
	"iter"
)

func (tree *Tree[K, V]) outOfRange(rank int) error {
	return fmt.Errorf("%w: rank %d not in [0, %d)", ErrIndexOutOfRange, rank, tree.length)
}

// selectNode descends from the root keeping the rank still to be skipped.
// visit is called for every node the descent leaves to the left, i.e. the
// ancestors that follow the target in key order, and for the target itself.
func (tree *Tree[K, V]) selectNode(rank int, visit func(*node[K, V])) *node[K, V] {
	n, offset := tree.root, rank
	for n != nil {
		switch {
		case offset == n.leftCount:
			if visit != nil {
				visit(n)
			}
			return n
		case offset < n.leftCount:
			if visit != nil {
				visit(n)
			}
			n = n.left
		default:
			offset -= n.leftCount + 1
			n = n.right
		}
	}
	return nil
}

// Select returns the key and value with the given zero-based rank, i.e. the
// rank+1-th smallest key. Cost is O(height).
func (tree *Tree[K, V]) Select(rank int) (key K, value V, err error) {
	if rank < 0 || rank >= tree.length {
		return key, value, tree.outOfRange(rank)
	}
	n := tree.selectNode(rank, nil)
	if n == nil {
		return key, value, tree.outOfRange(rank)
	}
	return n.key, n.value, nil
}

// seek returns an iterator whose first Next lands on the given rank. The
// pending stack is exactly the path the rank descent would unwind through,
// so continuing the walk never revisits consumed left subtrees.
func (tree *Tree[K, V]) seek(rank int) (*Iterator[K, V], error) {
	if rank < 0 || rank >= tree.length {
		return nil, tree.outOfRange(rank)
	}
	it := newIterator[K, V]()
	if tree.selectNode(rank, func(n *node[K, V]) { it.pending.Push(n) }) == nil {
		return nil, tree.outOfRange(rank)
	}
	return it, nil
}

func (tree *Tree[K, V]) checkRange(i, j int) error {
	if i < 0 || i >= tree.length {
		return tree.outOfRange(i)
	}
	if j < 0 || j >= tree.length {
		return tree.outOfRange(j)
	}
	if i > j {
		return fmt.Errorf("%w: start rank %d after end rank %d", ErrIndexOutOfRange, i, j)
	}
	return nil
}

// Range returns, in ascending key order, the values whose ranks lie in
// [i, j] inclusive. Cost is O(height + j - i).
func (tree *Tree[K, V]) Range(i, j int) ([]V, error) {
	if err := tree.checkRange(i, j); err != nil {
		return nil, err
	}
	it, err := tree.seek(i)
	if err != nil {
		return nil, err
	}

	values := make([]V, 0, j-i+1)
	for len(values) < cap(values) && it.Next() {
		values = append(values, it.Value())
	}
	return values, nil
}

// RangeKeys is Range for keys.
func (tree *Tree[K, V]) RangeKeys(i, j int) ([]K, error) {
	if err := tree.checkRange(i, j); err != nil {
		return nil, err
	}
	it, err := tree.seek(i)
	if err != nil {
		return nil, err
	}

	keys := make([]K, 0, j-i+1)
	for len(keys) < cap(keys) && it.Next() {
		keys = append(keys, it.Key())
	}
	return keys, nil
}

// Ascend yields the pairs with rank >= from in ascending order. A negative
// from starts at the smallest key; from >= Len() yields nothing.
func (tree *Tree[K, V]) Ascend(from int) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		start := max(from, 0)
		if start >= tree.length {
			return
		}
		it, err := tree.seek(start)
		if err != nil {
			return
		}
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Rank returns the number of stored keys smaller than key, which is also the
// rank Select needs to return key. It returns ErrKeyNotFound for an absent key.
func (tree *Tree[K, V]) Rank(key K) (int, error) {
	rank := 0
	n := tree.root
	for n != nil {
		switch c := tree.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			rank += n.leftCount + 1
			n = n.right
		default:
			return rank + n.leftCount, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}
