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

// node is owned by exactly one parent (or by the tree as root).
type node[K, V any] struct {
	key       K
	value     V
	height    int // leaf = 0
	leftCount int // nodes in the left subtree
	left      *node[K, V]
	right     *node[K, V]
}

func newNode[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value}
}

// heightOf treats an absent subtree as height -1.
func heightOf[K, V any](n *node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[K, V]) updateHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// balance is right height minus left height.
func (n *node[K, V]) balance() int {
	return heightOf(n.right) - heightOf(n.left)
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// minimum returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) minimum() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) maximum() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the smallest node greater than n inside n's own right
// subtree, or nil when n has no right subtree.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right == nil {
		return nil
	}
	return n.right.minimum()
}
