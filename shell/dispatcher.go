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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
)

var (
	// ErrUnknownCommand is returned for a line whose first word names no handler.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a handler gets the wrong arguments.
	ErrUsage = errors.New("bad arguments")
)

const prompt = "> "

// Dispatcher routes parsed lines to registered handlers.
type Dispatcher struct {
	handlers map[string]Handler
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher with only the help command registered.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Dispatcher{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
	d.Register(&helpHandler{d: d})
	return d
}

// Register adds a handler, replacing any with the same name.
func (d *Dispatcher) Register(h Handler) {
	d.handlers[strings.ToLower(h.Name())] = h
}

// Usages lists every handler's usage line, sorted by name.
func (d *Dispatcher) Usages() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	usages := make([]string, len(names))
	for i, name := range names {
		usages[i] = d.handlers[name].Usage()
	}
	return usages
}

// Execute runs one line. An empty line is a no-op.
func (d *Dispatcher) Execute(line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	if cmd.Name == "" {
		return "", nil
	}

	h, ok := d.handlers[cmd.Name]
	if !ok {
		return "", fmt.Errorf("%w %q, try help", ErrUnknownCommand, cmd.Name)
	}
	out, err := h.Run(cmd)
	if err != nil {
		d.logger.Debug("command failed", zap.String("line", cmd.Line), zap.Error(err))
		return "", err
	}
	return out, nil
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "quit", "exit":
		return true
	}
	return false
}

// Run reads commands from r until EOF, quit or exit, or ctx is done. Command
// errors are written to w and do not stop the loop.
func (d *Dispatcher) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		line := scanner.Text()
		if isQuit(line) {
			return nil
		}
		out, err := d.Execute(line)
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, strings.TrimRight(out, "\n"))
		}
	}
}

type helpHandler struct {
	d *Dispatcher
}

func (h *helpHandler) Name() string  { return "help" }
func (h *helpHandler) Usage() string { return "help" }

func (h *helpHandler) Run(cmd *Command) (string, error) {
	usages := append(h.d.Usages(), "quit")
	return "commands:\n  " + strings.Join(usages, "\n  "), nil
}
