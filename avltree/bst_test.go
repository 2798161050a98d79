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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTreeStaysUnbalanced(t *testing.T) {
	tree := NewSearchTree[int, int]()
	for k := 1; k <= 7; k++ {
		require.NoError(t, tree.Insert(k, k))
	}

	require.NoError(t, tree.Verify())
	assert.Equal(t, 6, tree.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, slices.Collect(tree.Keys()))
}

func TestSearchTreeDelete(t *testing.T) {
	tests := []struct {
		name   string
		delete int
		want   []int
	}{
		{"leaf", 10, []int{20, 30, 40, 50, 60, 70}},
		{"one child", 60, []int{10, 20, 30, 40, 50, 70}},
		{"two children", 20, []int{10, 30, 40, 50, 60, 70}},
		{"root", 40, []int{10, 20, 30, 50, 60, 70}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewSearchTree[int, int]()
			for _, k := range []int{40, 20, 60, 10, 30, 70, 50} {
				require.NoError(t, tree.Insert(k, k))
			}
			// 60 only keeps a right child once 50 is gone.
			if tt.name == "one child" {
				require.NoError(t, tree.Delete(50))
				tt.want = slices.DeleteFunc(tt.want, func(k int) bool { return k == 50 })
			}

			require.NoError(t, tree.Delete(tt.delete))
			require.NoError(t, tree.Verify())
			assert.Equal(t, tt.want, slices.Collect(tree.Keys()))
			assert.False(t, tree.Contains(tt.delete))
		})
	}
}

func TestSuccessorAndMinimum(t *testing.T) {
	tree := NewSearchTree[int, int]()
	for _, k := range []int{40, 20, 60, 10, 30, 50, 70, 45} {
		require.NoError(t, tree.Insert(k, k))
	}

	assert.Equal(t, 10, tree.root.minimum().key)
	assert.Equal(t, 45, tree.root.successor().key)
	assert.Equal(t, 30, tree.root.left.successor().key)
	assert.Nil(t, tree.root.left.left.successor())

	k, _, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, 10, k)
	k, _, ok = tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 70, k)

	tree.Clear()
	_, _, ok = tree.Min()
	assert.False(t, ok)
	assert.Equal(t, 0, tree.Len())
}

func TestIteratorIsRestartable(t *testing.T) {
	tree := New[string, int]()
	for i, k := range []string{"m", "c", "x", "a", "e", "p", "z"} {
		require.NoError(t, tree.Insert(k, i))
	}

	keys := tree.Keys()
	var firstThree []string
	for k := range keys {
		firstThree = append(firstThree, k)
		if len(firstThree) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"a", "c", "e"}, firstThree)

	// A second range over the same sequence starts from the smallest key.
	assert.Equal(t, []string{"a", "c", "e", "m", "p", "x", "z"}, slices.Collect(keys))
	assert.Equal(t, []int{3, 1, 4, 0, 5, 2, 6}, slices.Collect(tree.Values()))
}

func TestIteratorPositions(t *testing.T) {
	tree := New[int, string]()
	it := tree.Iterator()
	assert.False(t, it.Next())
	assert.Equal(t, 0, it.Key())

	require.NoError(t, tree.Insert(1, "one"))
	require.NoError(t, tree.Insert(2, "two"))

	it = tree.Iterator()
	assert.Equal(t, "", it.Value())
	require.True(t, it.Next())
	assert.Equal(t, 1, it.Key())
	assert.Equal(t, "one", it.Value())
	require.True(t, it.Next())
	assert.Equal(t, 2, it.Key())
	assert.False(t, it.Next())
	assert.Equal(t, "", it.Value())
}
