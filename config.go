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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/ranktree/catalog"
	"gopkg.in/yaml.v3"
)

const configFileName = ".ranktree.yaml"

type CatalogConfig struct {
	Path          string        `yaml:"path"`
	RangeCacheTTL time.Duration `yaml:"range_cache_ttl"`
	BloomSize     uint          `yaml:"bloom_size"`
	BloomHashes   uint          `yaml:"bloom_hashes"`
}

type BenchConfig struct {
	Keys int    `yaml:"keys"`
	Seed uint64 `yaml:"seed"`
}

type OutputConfig struct {
	ShowProgress bool   `yaml:"show_progress"`
	LogLevel     string `yaml:"log_level"`
}

type Config struct {
	Catalog CatalogConfig `yaml:"catalog"`
	Bench   BenchConfig   `yaml:"bench"`
	Output  OutputConfig  `yaml:"output"`
}

func defaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			RangeCacheTTL: catalog.DefaultRangeCacheTTL,
			BloomSize:     catalog.DefaultBloomSize,
			BloomHashes:   catalog.DefaultBloomHashes,
		},
		Bench: BenchConfig{
			Keys: 10000,
			Seed: 1,
		},
		Output: OutputConfig{
			ShowProgress: true,
			LogLevel:     "info",
		},
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the config at path, or ~/.ranktree.yaml when path is
// empty. A missing file yields the defaults; keys absent from the file keep
// their default values. A malformed file yields the defaults and an error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		var err error
		if path, err = getConfigPath(); err != nil {
			return &config, nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig()
		return &fallback, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

func createDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when it does not exist yet.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		var err error
		if path, err = getConfigPath(); err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	created := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		return err
	}

	success, _, _, _, reset := GetANSIColors()
	fmt.Fprintf(w, "🔧 ranktree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	catalogPath := config.Catalog.Path
	if catalogPath == "" {
		catalogPath = "(built-in sample)"
	}
	setting := func(key string, value any, desc string) {
		fmt.Fprintf(w, "  • %s%s%s: %v\n", success, key, reset, value)
		fmt.Fprintf(w, "    %s\n", desc)
	}

	fmt.Fprintf(w, "📦 Catalog:\n")
	setting("path", catalogPath, "Catalog file loaded by default (.yaml, .yml, .msgpack or .mp)")
	setting("range_cache_ttl", config.Catalog.RangeCacheTTL, "How long range lookups stay memoized")
	setting("bloom_size", config.Catalog.BloomSize, "Bits in the material name filter")
	setting("bloom_hashes", config.Catalog.BloomHashes, "Hash functions in the material name filter")
	fmt.Fprintf(w, "\n⏱  Bench:\n")
	setting("keys", config.Bench.Keys, "Keys inserted by ranktree bench")
	setting("seed", config.Bench.Seed, "Seed for the bench key order")
	fmt.Fprintf(w, "\n🖥  Output:\n")
	setting("show_progress", config.Output.ShowProgress, "Draw progress bars for long operations")
	setting("log_level", config.Output.LogLevel, "debug, info, warn or error")
	fmt.Fprintf(w, "\n💡 Edit %s to change these values.\n", path)
	return nil
}
