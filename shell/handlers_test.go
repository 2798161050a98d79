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

package shell

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cybrota/ranktree/avltree"
	"github.com/cybrota/ranktree/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.NewFrom([]catalog.Material{
		{Name: "Gold Nugget", MiningRate: 27.24},
		{Name: "Netherite Ingot", MiningRate: 20.95},
		{Name: "Ender Pearl", MiningRate: 13.91},
	})
	require.NoError(t, err)
	return NewCatalogDispatcher(c, rand.New(rand.NewPCG(1, 1)), nil), c
}

func TestCatalogCommands(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"len", "3"},
		{"select 0", "Ender Pearl: 13.91"},
		{`find "Gold Nugget"`, "Gold Nugget: 27.24"},
		{`rank "Netherite Ingot"`, "Netherite Ingot is rank 1 of 3"},
		{"range 1 2", "  1  Netherite Ingot: 20.95\n  2  Gold Nugget: 27.24\n"},
		{"list", "  0  Ender Pearl: 13.91\n  1  Netherite Ingot: 20.95\n  2  Gold Nugget: 27.24\n"},
	}
	d, _ := newTestDispatcher(t)
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			out, err := d.Execute(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestAddAndRemove(t *testing.T) {
	d, c := newTestDispatcher(t)

	out, err := d.Execute(`add "Coal" 4.5`)
	require.NoError(t, err)
	assert.Equal(t, "added Coal: 4.5", out)
	assert.Equal(t, 4, c.Len())

	out, err = d.Execute("select 0")
	require.NoError(t, err)
	assert.Equal(t, "Coal: 4.5", out)

	_, err = d.Execute("remove Coal")
	require.NoError(t, err)
	_, err = d.Execute("remove Coal")
	assert.ErrorIs(t, err, catalog.ErrMaterialNotFound)
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"select", ErrUsage},
		{"select x", ErrUsage},
		{"select 3", avltree.ErrIndexOutOfRange},
		{"range 2 1", avltree.ErrIndexOutOfRange},
		{"add Coal many", ErrUsage},
		{"add Clay 13.91", catalog.ErrDuplicateRate},
		{"find Dirt", catalog.ErrMaterialNotFound},
		{"list extra", ErrUsage},
	}
	d, _ := newTestDispatcher(t)
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := d.Execute(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeal(t *testing.T) {
	d, _ := newTestDispatcher(t)
	out, err := d.Execute("deal")
	require.NoError(t, err)
	assert.Contains(t, out, " emeralds (ranks ")

	empty := NewCatalogDispatcher(catalog.New(), nil, nil)
	_, err = empty.Execute("deal")
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestHelpNamesEveryCommand(t *testing.T) {
	d, _ := newTestDispatcher(t)
	out, err := d.Execute("help")
	require.NoError(t, err)
	for _, name := range []string{"add", "remove", "find", "select", "range", "rank", "list", "len", "deal", "help", "quit"} {
		assert.True(t, strings.Contains(out, "\n  "+name), name)
	}
}
