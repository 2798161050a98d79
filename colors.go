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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cybrota/ranktree/catalog"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// Palette holds the styles used for table output.
type Palette struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Rank   lipgloss.Style
	Name   lipgloss.Style
	Rate   lipgloss.Style
	Muted  lipgloss.Style
}

var (
	currentPalette *Palette
	detectedMode   TerminalMode
)

func modeFromTheme(theme string) TerminalMode {
	theme = strings.ToLower(theme)
	if strings.Contains(theme, "dark") {
		return TerminalModeDark
	} else if strings.Contains(theme, "light") {
		return TerminalModeLight
	}
	return TerminalModeUnknown
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if mode := modeFromTheme(os.Getenv(env)); mode != TerminalModeUnknown {
			return mode
		}
	}

	// Dark is more common in terminals
	return TerminalModeDark
}

func createLightPalette() *Palette {
	return &Palette{
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")).Padding(0, 1),
		Rank:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1).Align(lipgloss.Right),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Padding(0, 1),
		Rate:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Padding(0, 1).Align(lipgloss.Right),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

func createDarkPalette() *Palette {
	return &Palette{
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		Rank:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1).Align(lipgloss.Right),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Padding(0, 1),
		Rate:   lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Padding(0, 1).Align(lipgloss.Right),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// InitializeColors detects terminal mode and sets up the matching palette
func InitializeColors() {
	detectedMode = detectTerminalMode()
	if detectedMode == TerminalModeLight {
		currentPalette = createLightPalette()
	} else {
		currentPalette = createDarkPalette()
	}
}

func GetPalette() *Palette {
	if currentPalette == nil {
		InitializeColors()
	}
	return currentPalette
}

// ANSI color codes for plain terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}
	reset = "\033[0m"
	return
}

// renderMaterials draws materials as a table whose rank column starts at first.
func renderMaterials(first int, materials []catalog.Material) string {
	p := GetPalette()
	rows := make([][]string, len(materials))
	for i, m := range materials {
		rows[i] = []string{fmt.Sprint(first + i), m.Name, fmt.Sprintf("%.2f", m.MiningRate)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(p.Border).
		Headers("RANK", "MATERIAL", "MINING RATE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.Header
			}
			switch col {
			case 0:
				return p.Rank
			case 2:
				return p.Rate
			default:
				return p.Name
			}
		})
	return t.String()
}
