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

import "fmt"

// Verify walks the whole tree and returns an *InvariantError for the first
// broken invariant: strictly ascending in-order keys, stored heights,
// left subtree counts and Len(). It costs O(n).
func (tree *SearchTree[K, V]) Verify() error {
	return tree.verify(false)
}

// Verify additionally checks the AVL balance of every node.
func (tree *Tree[K, V]) Verify() error {
	return tree.verify(true)
}

func (tree *SearchTree[K, V]) verify(balanced bool) error {
	var prev *node[K, V]
	size, err := tree.verifyNode(tree.root, balanced, &prev)
	if err != nil {
		return err
	}
	if size != tree.length {
		return &InvariantError{
			Invariant: "length",
			Detail:    fmt.Sprintf("Len() is %d but the tree holds %d nodes", tree.length, size),
		}
	}
	return nil
}

// verifyNode returns the size of the subtree rooted at n. prev is the last
// node visited in order.
func (tree *SearchTree[K, V]) verifyNode(n *node[K, V], balanced bool, prev **node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}

	leftSize, err := tree.verifyNode(n.left, balanced, prev)
	if err != nil {
		return 0, err
	}
	if *prev != nil && tree.compare((*prev).key, n.key) >= 0 {
		return 0, &InvariantError{
			Invariant: "order",
			Key:       n.key,
			Detail:    fmt.Sprintf("follows key %v in order", (*prev).key),
		}
	}
	*prev = n
	rightSize, err := tree.verifyNode(n.right, balanced, prev)
	if err != nil {
		return 0, err
	}

	if n.leftCount != leftSize {
		return 0, &InvariantError{
			Invariant: "left count",
			Key:       n.key,
			Detail:    fmt.Sprintf("stored %d, left subtree has %d nodes", n.leftCount, leftSize),
		}
	}
	if want := max(heightOf(n.left), heightOf(n.right)) + 1; n.height != want {
		return 0, &InvariantError{
			Invariant: "height",
			Key:       n.key,
			Detail:    fmt.Sprintf("stored %d, computed %d", n.height, want),
		}
	}
	if b := n.balance(); balanced && (b < -1 || b > 1) {
		return 0, &InvariantError{
			Invariant: "balance",
			Key:       n.key,
			Detail:    fmt.Sprintf("balance factor %d", b),
		}
	}

	return leftSize + rightSize + 1, nil
}
