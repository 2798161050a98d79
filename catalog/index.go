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

package catalog

import (
	"github.com/willf/bloom"
)

const (
	DefaultBloomSize   = 4096
	DefaultBloomHashes = 4
)

// nameIndex maps material names to their mining rate. The bloom filter
// answers most misses without touching the map; removed names stay set in
// the filter until SetAll builds a fresh index, and fall through to the map.
type nameIndex struct {
	filter *bloom.BloomFilter
	rates  map[string]float64
}

func newNameIndex(m, k uint) *nameIndex {
	if m == 0 {
		m = DefaultBloomSize
	}
	if k == 0 {
		k = DefaultBloomHashes
	}
	return &nameIndex{
		filter: bloom.New(m, k),
		rates:  make(map[string]float64),
	}
}

func (ix *nameIndex) add(name string, rate float64) {
	ix.filter.AddString(name)
	ix.rates[name] = rate
}

func (ix *nameIndex) remove(name string) {
	delete(ix.rates, name)
}

func (ix *nameIndex) lookup(name string) (float64, bool) {
	if !ix.filter.TestString(name) {
		return 0, false
	}
	rate, ok := ix.rates[name]
	return rate, ok
}
