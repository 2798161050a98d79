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
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/cybrota/ranktree/catalog"
	"go.uber.org/zap"
)

// NewCatalogDispatcher returns a dispatcher wired with every catalog command.
func NewCatalogDispatcher(c *catalog.Catalog, rng *rand.Rand, logger *zap.Logger) *Dispatcher {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	d := NewDispatcher(logger)
	for _, h := range []Handler{
		&addHandler{c},
		&removeHandler{c},
		&findHandler{c},
		&selectHandler{c},
		&rangeHandler{c},
		&rankHandler{c},
		&listHandler{c},
		&lenHandler{c},
		&dealHandler{c, rng},
	} {
		d.Register(h)
	}
	return d
}

// formatList numbers materials starting at rank first.
func formatList(first int, materials []catalog.Material) string {
	var sb strings.Builder
	for i, m := range materials {
		fmt.Fprintf(&sb, "%3d  %s\n", first+i, m)
	}
	return sb.String()
}

type addHandler struct{ c *catalog.Catalog }

func (h *addHandler) Name() string  { return "add" }
func (h *addHandler) Usage() string { return "add NAME RATE" }

func (h *addHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(2, h.Usage()); err != nil {
		return "", err
	}
	rate, err := cmd.floatArg(1)
	if err != nil {
		return "", err
	}
	m := catalog.Material{Name: cmd.Arg(0), MiningRate: rate}
	if err := h.c.Add(m); err != nil {
		return "", err
	}
	return "added " + m.String(), nil
}

type removeHandler struct{ c *catalog.Catalog }

func (h *removeHandler) Name() string  { return "remove" }
func (h *removeHandler) Usage() string { return "remove NAME" }

func (h *removeHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(1, h.Usage()); err != nil {
		return "", err
	}
	if err := h.c.Remove(cmd.Arg(0)); err != nil {
		return "", err
	}
	return "removed " + cmd.Arg(0), nil
}

type findHandler struct{ c *catalog.Catalog }

func (h *findHandler) Name() string  { return "find" }
func (h *findHandler) Usage() string { return "find NAME" }

func (h *findHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(1, h.Usage()); err != nil {
		return "", err
	}
	m, err := h.c.Lookup(cmd.Arg(0))
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

type selectHandler struct{ c *catalog.Catalog }

func (h *selectHandler) Name() string  { return "select" }
func (h *selectHandler) Usage() string { return "select K" }

func (h *selectHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(1, h.Usage()); err != nil {
		return "", err
	}
	k, err := cmd.intArg(0)
	if err != nil {
		return "", err
	}
	m, err := h.c.Easiest(k)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

type rangeHandler struct{ c *catalog.Catalog }

func (h *rangeHandler) Name() string  { return "range" }
func (h *rangeHandler) Usage() string { return "range I J" }

func (h *rangeHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(2, h.Usage()); err != nil {
		return "", err
	}
	i, err := cmd.intArg(0)
	if err != nil {
		return "", err
	}
	j, err := cmd.intArg(1)
	if err != nil {
		return "", err
	}
	materials, err := h.c.Between(i, j)
	if err != nil {
		return "", err
	}
	return formatList(i, materials), nil
}

type rankHandler struct{ c *catalog.Catalog }

func (h *rankHandler) Name() string  { return "rank" }
func (h *rankHandler) Usage() string { return "rank NAME" }

func (h *rankHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(1, h.Usage()); err != nil {
		return "", err
	}
	rank, err := h.c.RankOf(cmd.Arg(0))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s is rank %d of %d", cmd.Arg(0), rank, h.c.Len()), nil
}

type listHandler struct{ c *catalog.Catalog }

func (h *listHandler) Name() string  { return "list" }
func (h *listHandler) Usage() string { return "list" }

func (h *listHandler) Run(cmd *Command) (string, error) {
	if err := cmd.wantArgs(0, h.Usage()); err != nil {
		return "", err
	}
	return formatList(0, h.c.Materials()), nil
}

type lenHandler struct{ c *catalog.Catalog }

func (h *lenHandler) Name() string  { return "len" }
func (h *lenHandler) Usage() string { return "len" }

func (h *lenHandler) Run(cmd *Command) (string, error) {
	return fmt.Sprint(h.c.Len()), nil
}

type dealHandler struct {
	c   *catalog.Catalog
	rng *rand.Rand
}

func (h *dealHandler) Name() string  { return "deal" }
func (h *dealHandler) Usage() string { return "deal" }

func (h *dealHandler) Run(cmd *Command) (string, error) {
	d, err := h.c.GenerateDeal(h.rng)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (ranks %d-%d)", d, d.Low, d.High), nil
}
