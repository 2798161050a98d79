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
	"math/rand/v2"
	"time"

	"github.com/cybrota/ranktree/avltree"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

type benchPhase struct {
	Name     string
	Ops      int
	Duration time.Duration
	Height   int
	Len      int
}

type benchOptions struct {
	Keys         int
	Seed         uint64
	ShowProgress bool
	Out          io.Writer
	Logger       *zap.Logger
}

// newBar draws to out only when progress is enabled.
func newBar(opts benchOptions, total int, desc string) *progressbar.ProgressBar {
	if !opts.ShowProgress {
		return progressbar.DefaultSilent(int64(total), desc)
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(opts.Out),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(opts.Out)
		}),
	)
}

// runBench inserts Keys shuffled keys, selects every rank, reads sliding
// windows with Range, then deletes half of the keys. The tree is verified
// after every phase.
func runBench(opts benchOptions) ([]benchPhase, error) {
	if opts.Keys <= 0 {
		return nil, fmt.Errorf("bench needs a positive key count, got %d", opts.Keys)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	keys := rng.Perm(opts.Keys)
	tree := avltree.New[int, int]()
	var phases []benchPhase

	phase := func(name string, ops int, body func(bar *progressbar.ProgressBar) error) error {
		bar := newBar(opts, ops, name)
		start := time.Now()
		if err := body(bar); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		elapsed := time.Since(start)
		_ = bar.Finish()

		if err := tree.Verify(); err != nil {
			return fmt.Errorf("%s: tree failed verification: %w", name, err)
		}
		p := benchPhase{Name: name, Ops: ops, Duration: elapsed, Height: tree.Height(), Len: tree.Len()}
		phases = append(phases, p)
		opts.Logger.Debug("bench phase done",
			zap.String("phase", name),
			zap.Int("ops", ops),
			zap.Duration("elapsed", elapsed),
			zap.Int("height", p.Height))
		return nil
	}

	err := phase("insert", len(keys), func(bar *progressbar.ProgressBar) error {
		for _, k := range keys {
			if err := tree.Insert(k, -k); err != nil {
				return err
			}
			_ = bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return phases, err
	}

	err = phase("select", tree.Len(), func(bar *progressbar.ProgressBar) error {
		for rank := range tree.Len() {
			k, _, err := tree.Select(rank)
			if err != nil {
				return err
			}
			if k != rank {
				return fmt.Errorf("select(%d) returned key %d", rank, k)
			}
			_ = bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return phases, err
	}

	const window = 64
	windows := tree.Len() / window
	err = phase("range", windows, func(bar *progressbar.ProgressBar) error {
		for w := range windows {
			i := rng.IntN(tree.Len() - window + 1)
			got, err := tree.RangeKeys(i, i+window-1)
			if err != nil {
				return err
			}
			if got[0] != i || got[window-1] != i+window-1 {
				return fmt.Errorf("range window %d starting at %d is wrong", w, i)
			}
			_ = bar.Add(1)
		}
		return nil
	})
	if err != nil {
		return phases, err
	}

	half := keys[:len(keys)/2]
	err = phase("delete", len(half), func(bar *progressbar.ProgressBar) error {
		for _, k := range half {
			if err := tree.Delete(k); err != nil {
				return err
			}
			_ = bar.Add(1)
		}
		return nil
	})
	return phases, err
}

func printBench(w io.Writer, phases []benchPhase) {
	success, _, _, _, reset := GetANSIColors()
	fmt.Fprintf(w, "%-8s %10s %14s %12s %8s %8s\n", "phase", "ops", "elapsed", "ns/op", "len", "height")
	for _, p := range phases {
		perOp := int64(0)
		if p.Ops > 0 {
			perOp = p.Duration.Nanoseconds() / int64(p.Ops)
		}
		fmt.Fprintf(w, "%s%-8s%s %10d %14s %12d %8d %8d\n",
			success, p.Name, reset, p.Ops, p.Duration.Round(time.Microsecond), perOp, p.Len, p.Height)
	}
}
