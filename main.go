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
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/cybrota/ranktree/catalog"
	"github.com/cybrota/ranktree/shell"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath  string
	catalogPath string
	logLevel    string

	config *Config
	logger *zap.Logger
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	config, cfgErr := LoadConfig(a.configPath)
	a.config = config

	level := config.Output.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	a.logger = logger.Named(cmd.Name())
	if cfgErr != nil {
		a.logger.Warn("using default settings", zap.Error(cfgErr))
	}
	InitializeColors()
	return nil
}

func (a *app) openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path := a.catalogPath
	if path == "" {
		path = a.config.Catalog.Path
	}
	return loadCatalog(a.config, path, cmd.ErrOrStderr(), a.logger)
}

func parseRank(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("rank %q is not an integer", s)
	}
	return k, nil
}

func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

func newRootCmd() *cobra.Command {
	a := &app{}
	success, _, _, _, reset := GetANSIColors()
	asciiLogo := fmt.Sprintf(`
█▀█ ▄▀█ █▄ █ █▄▀ ▀█▀ █▀█ █▀▀ █▀▀
█▀▄ █▀█ █ ▀█ █ █  █  █▀▄ ██▄ ██▄
Order-statistic AVL trees: k-th smallest and rank ranges in O(log n) [Version: %s%s%s]
`, success, version, reset)

	rootCmd := &cobra.Command{
		Use:               "ranktree",
		Version:           version,
		Long:              asciiLogo,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog file (.yaml, .yml, .msgpack, .mp)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override output.log_level")

	cmdList := &cobra.Command{
		Use:   "list",
		Short: "List materials from easiest to hardest to mine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMaterials(0, c.Materials()))
			return nil
		},
	}

	cmdSelect := &cobra.Command{
		Use:   "select K",
		Short: "Show the material with difficulty rank K (0 is the easiest)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseRank(args[0])
			if err != nil {
				return err
			}
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			m, err := c.Easiest(k)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMaterials(k, []catalog.Material{m}))

			if copyName, _ := cmd.Flags().GetBool("copy"); copyName {
				if err := clipboard.WriteAll(m.Name); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "📋 Copied %q to clipboard\n", m.Name)
			}
			return nil
		},
	}
	cmdSelect.Flags().Bool("copy", false, "copy the material name to the clipboard")

	cmdRange := &cobra.Command{
		Use:   "range I J",
		Short: "Show the materials ranked I through J inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := parseRank(args[0])
			if err != nil {
				return err
			}
			j, err := parseRank(args[1])
			if err != nil {
				return err
			}
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			materials, err := c.Between(i, j)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMaterials(i, materials))
			return nil
		},
	}

	cmdRank := &cobra.Command{
		Use:   "rank NAME",
		Short: "Show how many materials are easier to mine than NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			rank, err := c.RankOf(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is rank %d of %d\n", args[0], rank, c.Len())
			return nil
		},
	}

	cmdDeal := &cobra.Command{
		Use:   "deal",
		Short: "Generate a random trade offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetUint64("seed")
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			d, err := c.GenerateDeal(newRNG(seed))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmdDeal.Flags().Uint64("seed", 0, "random seed (0 picks one)")

	cmdShell := &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt over the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			d := shell.NewCatalogDispatcher(c, newRNG(0), a.logger)
			fmt.Fprintln(cmd.OutOrStdout(), "Type help for commands, quit to leave.")
			err = d.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmdBench := &cobra.Command{
		Use:   "bench",
		Short: "Time random tree operations and verify the tree after each phase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := benchOptions{
				Keys:         a.config.Bench.Keys,
				Seed:         a.config.Bench.Seed,
				ShowProgress: a.config.Output.ShowProgress,
				Out:          cmd.ErrOrStderr(),
				Logger:       a.logger,
			}
			if cmd.Flags().Changed("keys") {
				opts.Keys, _ = cmd.Flags().GetInt("keys")
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			phases, err := runBench(opts)
			printBench(cmd.OutOrStdout(), phases)
			return err
		},
	}
	cmdBench.Flags().Int("keys", 0, "number of keys (default bench.keys)")
	cmdBench.Flags().Uint64("seed", 0, "key order seed (default bench.seed)")

	cmdExport := &cobra.Command{
		Use:   "export OUT",
		Short: "Write the catalog to OUT, as yaml or msgpack by extension",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog(cmd)
			if err != nil {
				return err
			}
			if err := catalog.WriteFile(args[0], c.Materials()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote %d materials to %s\n", c.Len(), args[0])
			return nil
		},
	}

	cmdSettings := &cobra.Command{
		Use:   "settings",
		Short: "Show ranktree configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), a.configPath)
		},
	}

	cmdUsage := &cobra.Command{
		Use:   "usage",
		Short: "Print ranktree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "Print ranktree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(cmdList, cmdSelect, cmdRange, cmdRank, cmdDeal, cmdShell,
		cmdBench, cmdExport, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _, _, errColor, reset := GetANSIColors()
		fmt.Fprintf(os.Stderr, "%sError:%s %v\n", errColor, reset, err)
		os.Exit(1)
	}
}
