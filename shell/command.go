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

// Package shell runs line-oriented commands against a catalog.
package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Handler runs one named command.
type Handler interface {
	Name() string
	Usage() string
	Run(cmd *Command) (string, error)
}

// Command is a parsed input line.
type Command struct {
	Parts []string
	Name  string
	Args  []string
	Line  string
}

// Parse splits line the way a POSIX shell would, so quoted names such as
// "Gold Nugget" stay one argument.
func Parse(line string) (*Command, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	return NewCommand(parts), nil
}

// NewCommand creates a Command from already split parts.
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}
	return &Command{
		Parts: parts,
		Name:  strings.ToLower(parts[0]),
		Args:  parts[1:],
		Line:  strings.Join(parts, " "),
	}
}

// Arg returns the nth argument (0-indexed), or "" when absent.
func (c *Command) Arg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// wantArgs fails unless exactly n arguments were given.
func (c *Command) wantArgs(n int, usage string) error {
	if len(c.Args) != n {
		return fmt.Errorf("%w: usage: %s", ErrUsage, usage)
	}
	return nil
}

func (c *Command) intArg(n int) (int, error) {
	v, err := strconv.Atoi(c.Arg(n))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrUsage, c.Arg(n))
	}
	return v, nil
}

func (c *Command) floatArg(n int) (float64, error) {
	v, err := strconv.ParseFloat(c.Arg(n), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrUsage, c.Arg(n))
	}
	return v, nil
}
