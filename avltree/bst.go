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
	"cmp"
	"fmt"
)

// SearchTree is an unbalanced binary search tree with unique keys.
//
// Every node tracks its height and the size of its left subtree, so the
// balanced Tree can reuse the same insert and delete recursion and only swap
// the restore step that runs on each node while the recursion unwinds.
// Use NewSearchTree or NewSearchTreeFunc; the zero value has no ordering.
type SearchTree[K, V any] struct {
	root    *node[K, V]
	length  int
	compare func(a, b K) int
	restore func(n *node[K, V]) *node[K, V]
}

// NewSearchTree returns an empty unbalanced tree ordered by cmp.Compare.
func NewSearchTree[K cmp.Ordered, V any]() *SearchTree[K, V] {
	return NewSearchTreeFunc[K, V](cmp.Compare[K])
}

// NewSearchTreeFunc returns an empty unbalanced tree ordered by compare,
// which must define a strict total order over K.
func NewSearchTreeFunc[K, V any](compare func(a, b K) int) *SearchTree[K, V] {
	return &SearchTree[K, V]{compare: compare, restore: restoreHeight[K, V]}
}

func restoreHeight[K, V any](n *node[K, V]) *node[K, V] {
	n.updateHeight()
	return n
}

// Len returns the number of stored keys.
func (tree *SearchTree[K, V]) Len() int {
	return tree.length
}

// IsEmpty reports whether the tree holds no keys.
func (tree *SearchTree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the root, -1 for an empty tree.
func (tree *SearchTree[K, V]) Height() int {
	return heightOf(tree.root)
}

// Clear drops every node.
func (tree *SearchTree[K, V]) Clear() {
	tree.root = nil
	tree.length = 0
}

// Insert stores value under key. It returns ErrDuplicateKey, leaving the
// tree untouched, when key is already present.
func (tree *SearchTree[K, V]) Insert(key K, value V) error {
	root, err := tree.insertRecursive(tree.root, key, value)
	if err != nil {
		return err
	}
	tree.root = root
	return nil
}

func (tree *SearchTree[K, V]) insertRecursive(n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		tree.length++
		return newNode(key, value), nil
	}

	switch c := tree.compare(key, n.key); {
	case c < 0:
		left, err := tree.insertRecursive(n.left, key, value)
		if err != nil {
			return n, err
		}
		n.left = left
		n.leftCount++
	case c > 0:
		right, err := tree.insertRecursive(n.right, key, value)
		if err != nil {
			return n, err
		}
		n.right = right
	default:
		return n, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	return tree.restore(n), nil
}

// Delete removes key. It returns ErrKeyNotFound, leaving the tree untouched,
// when key is absent.
func (tree *SearchTree[K, V]) Delete(key K) error {
	root, err := tree.deleteRecursive(tree.root, key)
	if err != nil {
		return err
	}
	tree.root = root
	return nil
}

func (tree *SearchTree[K, V]) deleteRecursive(n *node[K, V], key K) (*node[K, V], error) {
	if n == nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	switch c := tree.compare(key, n.key); {
	case c < 0:
		left, err := tree.deleteRecursive(n.left, key)
		if err != nil {
			return n, err
		}
		n.left = left
		n.leftCount--
	case c > 0:
		right, err := tree.deleteRecursive(n.right, key)
		if err != nil {
			return n, err
		}
		n.right = right
	default:
		// Case 1: No children
		if n.isLeaf() {
			tree.length--
			return nil, nil
		}
		// Case 2 and 3: One child, which keeps its own subtree bookkeeping
		if n.left == nil {
			tree.length--
			return n.right, nil
		}
		if n.right == nil {
			tree.length--
			return n.left, nil
		}
		// Case 4: Two children
		succ := n.successor()
		n.key, n.value = succ.key, succ.value
		right, err := tree.deleteRecursive(n.right, succ.key)
		if err != nil {
			return n, err
		}
		n.right = right
	}

	return tree.restore(n), nil
}

func (tree *SearchTree[K, V]) find(key K) *node[K, V] {
	n := tree.root
	for n != nil {
		switch c := tree.compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Find returns the value stored under key, or ErrKeyNotFound.
func (tree *SearchTree[K, V]) Find(key K) (V, error) {
	n := tree.find(key)
	if n == nil {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return n.value, nil
}

// Contains reports whether key is stored.
func (tree *SearchTree[K, V]) Contains(key K) bool {
	return tree.find(key) != nil
}

// Min returns the smallest key and its value; ok is false for an empty tree.
func (tree *SearchTree[K, V]) Min() (key K, value V, ok bool) {
	if tree.root == nil {
		return key, value, false
	}
	n := tree.root.minimum()
	return n.key, n.value, true
}

// Max returns the largest key and its value; ok is false for an empty tree.
func (tree *SearchTree[K, V]) Max() (key K, value V, ok bool) {
	if tree.root == nil {
		return key, value, false
	}
	n := tree.root.maximum()
	return n.key, n.value, true
}
