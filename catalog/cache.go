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
	"slices"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Keep Between results for 30 minutes unless configured otherwise
	DefaultRangeCacheTTL = 30 * time.Minute

	// Clean up expired entries every 5 minutes
	rangeCacheCleanup = 5 * time.Minute
)

// rangeCache memoizes Between results. Any mutation of the catalog flushes it,
// so entries only ever expire by TTL while the catalog is unchanged.
type rangeCache struct {
	c   *cache.Cache
	ttl time.Duration
}

func newRangeCache(ttl time.Duration) *rangeCache {
	if ttl <= 0 {
		ttl = DefaultRangeCacheTTL
	}
	return &rangeCache{c: cache.New(ttl, rangeCacheCleanup), ttl: ttl}
}

func rangeKey(i, j int) string {
	return strconv.Itoa(i) + ":" + strconv.Itoa(j)
}

func (rc *rangeCache) get(i, j int) ([]Material, bool) {
	val, ok := rc.c.Get(rangeKey(i, j))
	if !ok {
		return nil, false
	}
	return slices.Clone(val.([]Material)), true
}

func (rc *rangeCache) put(i, j int, materials []Material) {
	rc.c.Set(rangeKey(i, j), slices.Clone(materials), rc.ttl)
}

func (rc *rangeCache) flush() {
	rc.c.Flush()
}

func (rc *rangeCache) len() int {
	return rc.c.ItemCount()
}
