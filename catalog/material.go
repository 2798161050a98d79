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
	"fmt"
	"math"
)

// Material is something a trader can buy. MiningRate is the number of hunger
// bars it costs to mine one unit; lower is easier.
type Material struct {
	Name       string  `yaml:"name" msgpack:"name"`
	MiningRate float64 `yaml:"mining_rate" msgpack:"mining_rate"`
}

func (m Material) String() string {
	return fmt.Sprintf("%s: %g", m.Name, m.MiningRate)
}

func (m Material) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidMaterial)
	}
	if math.IsNaN(m.MiningRate) || math.IsInf(m.MiningRate, 0) {
		return fmt.Errorf("%w: %q has mining rate %v", ErrInvalidMaterial, m.Name, m.MiningRate)
	}
	return nil
}
