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

// Package avltree provides an ordered key/value container backed by an AVL
// tree whose nodes count their left subtree, giving logarithmic rank queries
// (Select, Rank) and contiguous extraction by rank (Range).
//
// Neither SearchTree nor Tree is safe for concurrent use.
package avltree

import "cmp"

// Tree is a self-balancing SearchTree. After every Insert and Delete each
// node satisfies |height(right) - height(left)| <= 1.
type Tree[K, V any] struct {
	SearchTree[K, V]
}

// New returns an empty balanced tree ordered by cmp.Compare.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty balanced tree ordered by compare, which must
// define a strict total order over K.
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{
		SearchTree: SearchTree[K, V]{compare: compare, restore: rebalance[K, V]},
	}
}

// rotateLeft makes n's right child the root of the subtree.
//
//	  node                          pivot
//	 /    \                        /     \
//	a     pivot       ---->     node      c
//	     /     \               /    \
//	    b       c             a      b
//
// node keeps its left subtree a, so its leftCount is unchanged. pivot's new
// left subtree is node plus a plus b.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	pivot.leftCount += n.leftCount + 1

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rotateRight makes n's left child the root of the subtree.
//
//	      node                    pivot
//	     /    \                  /     \
//	  pivot    c     ---->      a      node
//	 /     \                          /    \
//	a       b                        b      c
//
// node's old left subtree was pivot, a and b; it keeps only b.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.leftCount -= pivot.leftCount + 1

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance recomputes n's height and applies at most one single or double
// rotation. It returns the new root of the subtree.
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	n.updateHeight()

	switch b := n.balance(); {
	case b >= 2:
		// Right-Left case
		if heightOf(n.right.left) > heightOf(n.right.right) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case b <= -2:
		// Left-Right case
		if heightOf(n.left.right) > heightOf(n.left.left) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	return n
}
