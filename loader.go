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
	"fmt"
	"io"

	"github.com/cybrota/ranktree/catalog"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

// loadCatalog reads path, or the built-in sample when path is empty, and
// adds the materials one by one so a large file shows progress.
func loadCatalog(config *Config, path string, out io.Writer, logger *zap.Logger) (*catalog.Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var materials []catalog.Material
	source := path
	if path == "" {
		materials = catalog.DefaultMaterials()
		source = "built-in sample"
	} else {
		var err error
		if materials, err = catalog.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read catalog: %w", err)
		}
	}

	c := catalog.New(
		catalog.WithLogger(logger),
		catalog.WithRangeCacheTTL(config.Catalog.RangeCacheTTL),
		catalog.WithBloom(config.Catalog.BloomSize, config.Catalog.BloomHashes),
	)

	var bar *progressbar.ProgressBar
	if config.Output.ShowProgress && len(materials) >= 1000 {
		bar = progressbar.NewOptions(len(materials),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("📦 Loading catalog..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, m := range materials {
		if err := c.Add(m); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", source, err)
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Debug("catalog ready", zap.String("source", source), zap.Int("materials", c.Len()))
	return c, nil
}
