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
	"testing"
	"time"

	"github.com/cybrota/ranktree/avltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sample() []Material {
	return []Material{
		{Name: "Gold Nugget", MiningRate: 27.24},
		{Name: "Netherite Ingot", MiningRate: 20.95},
		{Name: "Fishing Rod", MiningRate: 26.93},
		{Name: "Ender Pearl", MiningRate: 13.91},
		{Name: "Prismarine Crystal", MiningRate: 11.48},
	}
}

func names(materials []Material) []string {
	out := make([]string, len(materials))
	for i, m := range materials {
		out[i] = m.Name
	}
	return out
}

func TestNewFromOrdersByRate(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, []string{
		"Prismarine Crystal", "Ender Pearl", "Netherite Ingot", "Fishing Rod", "Gold Nugget",
	}, names(c.Materials()))
	require.NoError(t, c.Verify())
}

func TestEasiest(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	m, err := c.Easiest(0)
	require.NoError(t, err)
	assert.Equal(t, "Prismarine Crystal", m.Name)

	m, err = c.Easiest(4)
	require.NoError(t, err)
	assert.Equal(t, "Gold Nugget", m.Name)

	_, err = c.Easiest(5)
	assert.ErrorIs(t, err, avltree.ErrIndexOutOfRange)
}

func TestBetween(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	window, err := c.Between(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ender Pearl", "Netherite Ingot", "Fishing Rod"}, names(window))

	_, err = c.Between(3, 1)
	assert.ErrorIs(t, err, avltree.ErrIndexOutOfRange)
}

func TestBetweenCacheIsFlushedOnChange(t *testing.T) {
	c, err := NewFrom(sample(), WithRangeCacheTTL(time.Minute))
	require.NoError(t, err)

	first, err := c.Between(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, c.ranges.len())

	// Callers may scribble on the result without touching the cache.
	first[0].Name = "scribbled"
	again, err := c.Between(0, 1)
	require.NoError(t, err)
	assert.Equal(t, "Prismarine Crystal", again[0].Name)

	require.NoError(t, c.Add(Material{Name: "Coal", MiningRate: 4.5}))
	assert.Equal(t, 0, c.ranges.len())

	after, err := c.Between(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coal", "Prismarine Crystal"}, names(after))
}

func TestAddRejects(t *testing.T) {
	tests := []struct {
		name    string
		m       Material
		wantErr error
	}{
		{"duplicate name", Material{Name: "Ender Pearl", MiningRate: 1}, ErrDuplicateName},
		{"duplicate rate", Material{Name: "Clay", MiningRate: 13.91}, ErrDuplicateRate},
		{"empty name", Material{MiningRate: 2}, ErrInvalidMaterial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewFrom(sample())
			require.NoError(t, err)

			err = c.Add(tt.m)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 5, c.Len())
			require.NoError(t, c.Verify())
		})
	}
}

func TestDuplicateRateWrapsTreeError(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	err = c.Add(Material{Name: "Clay", MiningRate: 20.95})
	require.ErrorIs(t, err, avltree.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "Netherite Ingot")
}

func TestSetAllKeepsOldContentsOnError(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	bad := append(sample()[:2], Material{Name: "Gold Nugget", MiningRate: 1})
	require.ErrorIs(t, c.SetAll(bad), ErrDuplicateName)
	assert.Equal(t, 5, c.Len())

	require.NoError(t, c.SetAll(sample()[:2]))
	assert.Equal(t, 2, c.Len())
	_, err = c.Lookup("Ender Pearl")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestRemoveAndLookup(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	m, err := c.Lookup("Fishing Rod")
	require.NoError(t, err)
	assert.Equal(t, 26.93, m.MiningRate)

	require.NoError(t, c.Remove("Fishing Rod"))
	_, err = c.Lookup("Fishing Rod")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
	assert.ErrorIs(t, c.Remove("Fishing Rod"), ErrMaterialNotFound)

	// The name and its rate are free again.
	require.NoError(t, c.Add(Material{Name: "Fishing Rod", MiningRate: 26.93}))
	require.NoError(t, c.Verify())
}

func TestRankOf(t *testing.T) {
	c, err := NewFrom(sample())
	require.NoError(t, err)

	for want, m := range c.Materials() {
		rank, err := c.RankOf(m.Name)
		require.NoError(t, err)
		assert.Equal(t, want, rank, m.Name)
	}
	_, err = c.RankOf("Dirt")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestTinyBloomStillFindsNames(t *testing.T) {
	c, err := NewFrom(DefaultMaterials(), WithBloom(8, 1))
	require.NoError(t, err)

	for _, m := range DefaultMaterials() {
		got, err := c.Lookup(m.Name)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err = c.Lookup("Bedrock")
	assert.ErrorIs(t, err, ErrMaterialNotFound)
}

func TestLoggerReceivesEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := New(WithLogger(zap.New(core)))

	require.NoError(t, c.Add(Material{Name: "Coal", MiningRate: 4.5}))
	require.Error(t, c.Add(Material{Name: "Coal", MiningRate: 5}))

	assert.Equal(t, 1, logs.FilterMessage("material added").Len())
	assert.Equal(t, 1, logs.FilterMessage("add rejected").Len())
}

func TestDefaultMaterials(t *testing.T) {
	c, err := NewFrom(DefaultMaterials())
	require.NoError(t, err)
	assert.Equal(t, 12, c.Len())

	m, err := c.Easiest(0)
	require.NoError(t, err)
	assert.Equal(t, "Coal", m.Name)
}
