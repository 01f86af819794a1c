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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	newRound := func() (*Round, error) {
		return buildRound(t, 2, sequence(2, 0), 50, 30, 70), nil
	}
	round, _ := newRound()

	m := InitialModel(context.Background(), defaultConfig(), round, nil, newRound)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelMouseGuess(t *testing.T) {
	m := newTestModel(t)

	// Heights are shown, so the tree spans columns 2..91 and the root sits
	// at 46, shifted by the board offsets on screen.
	m, _ = press(t, m, tea.MouseMsg{X: 46 + boardLeft, Y: boardTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.round.Guesses() != 1 || m.round.Misses() != 1 {
		t.Errorf("guesses/misses = %d/%d, want 1/1", m.round.Guesses(), m.round.Misses())
	}
	if !strings.Contains(m.message, "50") {
		t.Errorf("message = %q, want the revealed key", m.message)
	}

	m, _ = press(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.round.Guesses() != 1 {
		t.Errorf("a click on empty space counted as a guess")
	}
}

func TestModelKeyboardRound(t *testing.T) {
	m := newTestModel(t)

	steps := []tea.KeyMsg{
		{Type: tea.KeyTab},   // 30
		{Type: tea.KeyTab},   // 70
		{Type: tea.KeyEnter}, // first target
		{Type: tea.KeyShiftTab},
		{Type: tea.KeyEnter}, // last target
	}
	for _, msg := range steps {
		m, _ = press(t, m, msg)
	}

	if !m.round.Done() {
		t.Fatal("round should be finished")
	}
	if res := m.round.Result(); res.Found != 2 || res.Guesses != 2 || res.Misses != 0 {
		t.Errorf("Result() = %+v", res)
	}
	if !strings.Contains(m.View(), "Round over") {
		t.Error("view should announce the end of the round")
	}
}

func TestModelCommands(t *testing.T) {
	m := newTestModel(t)

	if !strings.Contains(m.View(), "Find 70") {
		t.Errorf("view should show the first target:\n%s", m.View())
	}

	m, _ = press(t, m, runes("h"))
	if m.showHeights {
		t.Error("h should hide heights")
	}

	m, _ = press(t, m, runes("?"))
	if !m.showHelp {
		t.Fatal("? should open the help overlay")
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Fatal("esc should close the help overlay")
	}

	m, _ = press(t, m, runes("g"))
	if !m.round.Done() || !m.round.Result().GaveUp {
		t.Error("g should give up the round")
	}

	old := m.round
	m, _ = press(t, m, runes("n"))
	if m.round == old || m.round.Done() || m.cursor != 0 {
		t.Error("n should start a fresh round")
	}

	_, cmd := press(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModelSmallTerminal(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("View() = %q, want a resize hint", m.View())
	}
}
