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
	"bytes"
	_ "embed"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultMaterials returns the built-in sample stock.
func DefaultMaterials() []Material {
	materials, err := Decode(bytes.NewReader(defaultsYAML), FormatYAML)
	if err != nil {
		panic("catalog: embedded defaults are malformed: " + err.Error())
	}
	return materials
}
