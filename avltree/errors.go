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
	"errors"
	"fmt"
)

// Lookup and mutation errors
var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrKeyNotFound is returned by Find, Delete and Rank for an absent key.
	ErrKeyNotFound = errors.New("key not found")
)

// Rank errors
var (
	// ErrIndexOutOfRange is returned by Select and Range for ranks outside [0, Len()).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// InvariantError describes the first structural violation found by Verify.
type InvariantError struct {
	Invariant string // "order", "height", "balance", "left count" or "length"
	Key       any    // key of the offending node, nil for tree-level violations
	Detail    string
}

func (e *InvariantError) Error() string {
	if e.Key == nil {
		return fmt.Sprintf("%s invariant violated: %s", e.Invariant, e.Detail)
	}
	return fmt.Sprintf("%s invariant violated at key %v: %s", e.Invariant, e.Key, e.Detail)
}
