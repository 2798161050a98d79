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
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoHandler struct{}

func (echoHandler) Name() string  { return "Echo" }
func (echoHandler) Usage() string { return "echo WORDS..." }
func (echoHandler) Run(cmd *Command) (string, error) {
	return strings.Join(cmd.Args, "|"), nil
}

func TestParse(t *testing.T) {
	cmd, err := Parse(`ADD "Gold Nugget" 27.24`)
	require.NoError(t, err)
	assert.Equal(t, "add", cmd.Name)
	assert.Equal(t, []string{"Gold Nugget", "27.24"}, cmd.Args)
	assert.Equal(t, "Gold Nugget", cmd.Arg(0))
	assert.Equal(t, "", cmd.Arg(5))

	_, err = Parse(`add "unterminated`)
	assert.Error(t, err)

	cmd, err = Parse("   ")
	require.NoError(t, err)
	assert.Equal(t, "", cmd.Name)
}

func TestExecute(t *testing.T) {
	d := NewDispatcher(nil)
	d.Register(echoHandler{})

	out, err := d.Execute("echo a 'b c'")
	require.NoError(t, err)
	assert.Equal(t, "a|b c", out)

	out, err = d.Execute("")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = d.Execute("frobnicate")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestHelpListsHandlers(t *testing.T) {
	d := NewDispatcher(nil)
	d.Register(echoHandler{})

	out, err := d.Execute("help")
	require.NoError(t, err)
	assert.Equal(t, "commands:\n  echo WORDS...\n  help\n  quit", out)
}

func TestRunLoop(t *testing.T) {
	d := NewDispatcher(nil)
	d.Register(echoHandler{})

	in := strings.NewReader("echo one\nnope\n\necho two\nquit\necho never\n")
	var out strings.Builder
	require.NoError(t, d.Run(context.Background(), in, &out))

	got := out.String()
	assert.Contains(t, got, "one\n")
	assert.Contains(t, got, "error: unknown command \"nope\"")
	assert.Contains(t, got, "two\n")
	assert.NotContains(t, got, "never")
}

func TestRunStopsAtEOF(t *testing.T) {
	d := NewDispatcher(nil)
	var out strings.Builder
	require.NoError(t, d.Run(context.Background(), strings.NewReader("help"), &out))
	assert.Contains(t, out.String(), "commands:")
}

func TestRunHonoursContext(t *testing.T) {
	d := NewDispatcher(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := d.Run(ctx, strings.NewReader("help\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
