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
	"iter"

	"github.com/golang-collections/collections/stack"
)

// Iterator walks a tree in ascending key order without recursion.
//
// The stack holds the nodes whose key and right subtree are still to be
// visited. The tree must not be mutated while an Iterator is in use.
type Iterator[K, V any] struct {
	pending *stack.Stack
	current *node[K, V]
}

func newIterator[K, V any]() *Iterator[K, V] {
	return &Iterator[K, V]{pending: stack.New()}
}

// Iterator returns an iterator positioned before the smallest key.
func (tree *SearchTree[K, V]) Iterator() *Iterator[K, V] {
	it := newIterator[K, V]()
	it.pushLeft(tree.root)
	return it
}

func (it *Iterator[K, V]) pushLeft(n *node[K, V]) {
	for n != nil {
		it.pending.Push(n)
		n = n.left
	}
}

// Next advances to the next key and reports whether there was one.
func (it *Iterator[K, V]) Next() bool {
	if it.pending.Len() == 0 {
		it.current = nil
		return false
	}
	n := it.pending.Pop().(*node[K, V])
	it.pushLeft(n.right)
	it.current = n
	return true
}

// Key returns the key at the current position. It returns the zero key
// before the first call to Next or after Next has returned false.
func (it *Iterator[K, V]) Key() K {
	if it.current == nil {
		var zero K
		return zero
	}
	return it.current.key
}

// Value returns the value at the current position.
func (it *Iterator[K, V]) Value() V {
	if it.current == nil {
		var zero V
		return zero
	}
	return it.current.value
}

// All yields every key/value pair in ascending key order. Each range over
// the returned sequence starts a fresh traversal.
func (tree *SearchTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := tree.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys yields the keys in ascending order.
func (tree *SearchTree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields the values in ascending key order.
func (tree *SearchTree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range tree.All() {
			if !yield(v) {
				return
			}
		}
	}
}
