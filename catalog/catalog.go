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

// Package catalog keeps the materials a wandering trader can offer, ranked
// from easiest to hardest to mine.
package catalog

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cybrota/ranktree/avltree"
	"go.uber.org/zap"
)

// Catalog is a set of materials ordered by mining rate. Names and rates are
// both unique. A Catalog is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	tree   *avltree.Tree[float64, Material]
	names  *nameIndex
	ranges *rangeCache
	logger *zap.Logger

	cacheTTL    time.Duration
	bloomSize   uint
	bloomHashes uint
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRangeCacheTTL sets how long Between results are memoized.
func WithRangeCacheTTL(ttl time.Duration) Option {
	return func(c *Catalog) { c.cacheTTL = ttl }
}

// WithBloom sizes the name prefilter: m bits and k hash functions.
func WithBloom(m, k uint) Option {
	return func(c *Catalog) {
		c.bloomSize = m
		c.bloomHashes = k
	}
}

// New returns an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		tree:        avltree.New[float64, Material](),
		logger:      zap.NewNop(),
		cacheTTL:    DefaultRangeCacheTTL,
		bloomSize:   DefaultBloomSize,
		bloomHashes: DefaultBloomHashes,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.names = newNameIndex(c.bloomSize, c.bloomHashes)
	c.ranges = newRangeCache(c.cacheTTL)
	return c
}

// NewFrom returns a catalog holding materials. It fails on the first material
// that cannot be added.
func NewFrom(materials []Material, opts ...Option) (*Catalog, error) {
	c := New(opts...)
	if err := c.SetAll(materials); err != nil {
		return nil, err
	}
	return c, nil
}

// add inserts m without locking. The caller flushes the range cache.
func (c *Catalog) add(m Material) error {
	if err := m.validate(); err != nil {
		return err
	}
	if _, ok := c.names.lookup(m.Name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, m.Name)
	}
	if err := c.tree.Insert(m.MiningRate, m); err != nil {
		if errors.Is(err, avltree.ErrDuplicateKey) {
			held, _ := c.tree.Find(m.MiningRate)
			return fmt.Errorf("%w: %q and %q both have rate %g: %w",
				ErrDuplicateRate, m.Name, held.Name, m.MiningRate, err)
		}
		return err
	}
	c.names.add(m.Name, m.MiningRate)
	return nil
}

// Add lists a new material.
func (c *Catalog) Add(m Material) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.add(m); err != nil {
		c.logger.Debug("add rejected", zap.String("name", m.Name), zap.Error(err))
		return err
	}
	c.ranges.flush()
	c.logger.Debug("material added",
		zap.String("name", m.Name),
		zap.Float64("mining_rate", m.MiningRate),
		zap.Int("len", c.tree.Len()))
	return nil
}

// SetAll replaces the catalog contents. On error the previous contents are
// kept.
func (c *Catalog) SetAll(materials []Material) error {
	staged := New(WithLogger(c.logger), WithRangeCacheTTL(c.cacheTTL), WithBloom(c.bloomSize, c.bloomHashes))
	for _, m := range materials {
		if err := staged.add(m); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.tree, c.names = staged.tree, staged.names
	c.ranges.flush()
	c.logger.Info("catalog loaded", zap.Int("materials", c.tree.Len()))
	return nil
}

// Remove delists the named material.
func (c *Catalog) Remove(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rate, ok := c.names.lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
	}
	if err := c.tree.Delete(rate); err != nil {
		return err
	}
	c.names.remove(name)
	c.ranges.flush()
	c.logger.Debug("material removed", zap.String("name", name), zap.Int("len", c.tree.Len()))
	return nil
}

// Lookup returns the named material.
func (c *Catalog) Lookup(name string) (Material, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rate, ok := c.names.lookup(name)
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
	}
	return c.tree.Find(rate)
}

// Len returns the number of listed materials.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Len()
}

// Materials returns every material from easiest to hardest.
func (c *Catalog) Materials() []Material {
	c.mu.RLock()
	defer c.mu.RUnlock()

	materials := make([]Material, 0, c.tree.Len())
	for _, m := range c.tree.All() {
		materials = append(materials, m)
	}
	return materials
}

// Easiest returns the material with zero-based difficulty rank k.
func (c *Catalog) Easiest(k int) (Material, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, m, err := c.tree.Select(k)
	return m, err
}

// Between returns the materials ranked i through j inclusive, easiest first.
func (c *Catalog) Between(i, j int) ([]Material, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.between(i, j)
}

func (c *Catalog) between(i, j int) ([]Material, error) {
	if materials, ok := c.ranges.get(i, j); ok {
		return materials, nil
	}
	materials, err := c.tree.Range(i, j)
	if err != nil {
		return nil, err
	}
	c.ranges.put(i, j, materials)
	return materials, nil
}

// RankOf returns how many listed materials are easier to mine than name.
func (c *Catalog) RankOf(name string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rate, ok := c.names.lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMaterialNotFound, name)
	}
	return c.tree.Rank(rate)
}

// Verify checks the structure backing the catalog.
func (c *Catalog) Verify() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.tree.Verify(); err != nil {
		return err
	}
	if len(c.names.rates) != c.tree.Len() {
		return fmt.Errorf("name index holds %d names for %d materials", len(c.names.rates), c.tree.Len())
	}
	return nil
}
