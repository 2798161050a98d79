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

package main

import (
	"strings"
	"testing"

	"github.com/cybrota/ranktree/catalog"
	"github.com/stretchr/testify/assert"
)

func TestDetectTerminalMode(t *testing.T) {
	tests := []struct {
		name      string
		colorfgbg string
		theme     string
		want      TerminalMode
	}{
		{"dark background", "15;0", "", TerminalModeDark},
		{"light background", "0;15", "", TerminalModeLight},
		{"theme variable", "", "Solarized Light", TerminalModeLight},
		{"nothing set", "", "", TerminalModeDark},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLORFGBG", tt.colorfgbg)
			t.Setenv("TERM_THEME", tt.theme)
			t.Setenv("THEME", "")
			assert.Equal(t, tt.want, detectTerminalMode())
		})
	}
}

func TestRenderMaterials(t *testing.T) {
	out := renderMaterials(3, []catalog.Material{
		{Name: "Ender Pearl", MiningRate: 13.91},
		{Name: "Netherite Ingot", MiningRate: 20.95},
	})

	assert.Contains(t, out, "MATERIAL")
	assert.Contains(t, out, "Ender Pearl")
	assert.Contains(t, out, "20.95")
	assert.True(t, strings.Index(out, "Ender Pearl") < strings.Index(out, "Netherite Ingot"))
}
