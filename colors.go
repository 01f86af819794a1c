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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bstguesser/board"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI colors for plain CLI output, set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"

	detectedMode TerminalMode
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
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

	for _, name := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(name))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and picks the ANSI colors
func InitializeColors() {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors(detectedMode)
}

// GetANSIColors returns darker colors for light terminals and brighter ones otherwise
func GetANSIColors(mode TerminalMode) (success, info, warning, error, reset string) {
	if mode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}

// glamourStyle names the glamour standard style matching the terminal
func glamourStyle(mode TerminalMode) string {
	if mode == TerminalModeLight {
		return "light"
	}
	return "dark"
}

// boardPalette adapts the node colors to the terminal background
func boardPalette(mode TerminalMode) board.Palette {
	p := board.DefaultPalette()
	if mode == TerminalModeLight {
		p.Edge = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		p.Height = lipgloss.NewStyle().Foreground(lipgloss.Color("90"))
		p.Match = p.Match.Background(lipgloss.Color("2")).Foreground(lipgloss.Color("15"))
		p.Mismatch = p.Mismatch.Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15"))
		p.Exposed = p.Exposed.Background(lipgloss.Color("6"))
	}
	return p
}
