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
	"math/rand/v2"

	"go.uber.org/zap"
)

// Deal is one trade offer.
type Deal struct {
	Material Material
	Price    float64

	// Low and High are the difficulty ranks the offer was drawn from.
	Low, High int
}

func (d Deal) String() string {
	return fmt.Sprintf("%s for %.2f emeralds", d.Material.Name, d.Price)
}

// GenerateDeal picks a random difficulty window [i, j], then a random material
// inside it, and prices it between 2 and 10 emeralds.
func (c *Catalog) GenerateDeal(rng *rand.Rand) (Deal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := c.tree.Len()
	if n == 0 {
		return Deal{}, ErrEmptyCatalog
	}

	i := rng.IntN(n)
	j := i + rng.IntN(n-i)
	window, err := c.between(i, j)
	if err != nil {
		return Deal{}, err
	}

	d := Deal{
		Material: window[rng.IntN(len(window))],
		Price:    math.Round((2+8*rng.Float64())*100) / 100,
		Low:      i,
		High:     j,
	}
	c.logger.Debug("deal generated",
		zap.String("material", d.Material.Name),
		zap.Float64("price", d.Price),
		zap.Int("low", i),
		zap.Int("high", j))
	return d, nil
}
