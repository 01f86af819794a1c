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
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bstguesser/board"
	"github.com/cybrota/bstguesser/bst"
	"github.com/patrickmn/go-cache"
)

// Screen offsets of the board: two status lines and a blank line above it,
// two columns of padding to the left.
const (
	boardTop  = 3
	boardLeft = 2
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool
	ctx   context.Context

	// Data
	config   *Config
	round    *Round
	stats    *StatsStore
	newRound func() (*Round, error)

	// Help overlay
	helpViewport    viewport.Model
	helpCache       *cache.Cache
	glamourRenderer *glamour.TermRenderer
	showHelp        bool

	// State
	showHeights bool
	cursor      int
	message     string
	recorded    bool

	// Styling
	styles  *Styles
	palette board.Palette

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	Target         lipgloss.Style
	Status         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")). // Bright cyan/blue, more visible on dark backgrounds
			Bold(true),
		Target: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

type roundStoredMsg struct{ err error }

type clipboardMsg struct {
	text string
	err  error
}

// InitialModel creates the initial model. stats may be nil.
func InitialModel(ctx context.Context, config *Config, round *Round, stats *StatsStore, newRound func() (*Round, error)) Model {
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle(detectedMode)),
		glamour.WithWordWrap(72),
	)

	return Model{
		ctx:             ctx,
		config:          config,
		round:           round,
		stats:           stats,
		newRound:        newRound,
		helpViewport:    viewport.New(0, 0),
		helpCache:       NewHelpCache(),
		glamourRenderer: glamourRenderer,
		showHeights:     config.Display.ShowHeights,
		message:         "Click a node to reveal it",
		styles:          NewStyles(),
		palette:         boardPalette(detectedMode),
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			return m.updateHelpOverlay(msg)
		}
		return m.updateBoard(msg)

	case tea.MouseMsg:
		if m.showHelp || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		out, ok := m.round.Guess(msg.X-boardLeft, msg.Y-boardTop)
		if !ok {
			return m, nil
		}
		return m.afterGuess(out)

	case roundStoredMsg:
		if msg.err != nil {
			m.message = "Could not save the round: " + msg.err.Error()
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.message = "Copy failed: " + msg.err.Error()
		} else {
			m.message = "📋 Copied " + msg.text
		}
		return m, nil
	}

	return m, nil
}

// updateHelpOverlay handles keys while the help page is shown
func (m Model) updateHelpOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q", "f1", "?":
		m.showHelp = false
		return m, nil
	}
	var cmd tea.Cmd
	m.helpViewport, cmd = m.helpViewport.Update(msg)
	return m, cmd
}

// updateBoard handles keys while the board is shown
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nodes := m.round.Board.Nodes()

	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "f1", "?":
		m.showHelp = true
		m.refreshHelp()
	case "tab", "right", "l":
		if len(nodes) > 0 {
			m.cursor = (m.cursor + 1) % len(nodes)
		}
	case "shift+tab", "left":
		if len(nodes) > 0 {
			m.cursor = (m.cursor - 1 + len(nodes)) % len(nodes)
		}
	case "enter", " ":
		if m.cursor < len(nodes) && !m.round.Done() {
			return m.afterGuess(m.round.GuessNode(nodes[m.cursor]))
		}
	case "h":
		m.showHeights = !m.showHeights
		m.updateLayout()
	case "g":
		if !m.round.Done() {
			m.round.GiveUp()
			m.message = "Here is the whole tree"
			cmd := m.storeRound()
			return m, cmd
		}
	case "n":
		round, err := m.newRound()
		if err != nil {
			m.message = "Could not start a new round: " + err.Error()
			return m, nil
		}
		m.round = round
		m.cursor = 0
		m.recorded = false
		m.message = "New round, click a node to reveal it"
		m.updateLayout()
	case "ctrl+x":
		keys := m.round.Tree.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = strconv.Itoa(k)
		}
		text := strings.Join(parts, " ")
		return m, func() tea.Msg {
			return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
		}
	}
	return m, nil
}

func (m Model) afterGuess(out Outcome) (tea.Model, tea.Cmd) {
	switch {
	case out.Finished:
		found, total := m.round.Progress()
		m.message = fmt.Sprintf("%s All %d of %d targets found in %d guesses (par %d)",
			GetCheer(), found, total, m.round.Guesses(), m.round.Par)
		cmd := m.storeRound()
		return m, cmd
	case out.Match:
		m.message = fmt.Sprintf("%s %d was the target", GetCheer(), out.Key)
	case out.Fresh:
		m.message = fmt.Sprintf("%s: %d", GetNudge(), out.Key)
	}
	return m, nil
}

// storeRound persists a finished round once.
func (m *Model) storeRound() tea.Cmd {
	if m.stats == nil || m.recorded || !m.round.Done() {
		return nil
	}
	m.recorded = true
	stats, ctx, result := m.stats, m.ctx, m.round.Result()
	return func() tea.Msg {
		return roundStoredMsg{err: stats.Record(ctx, result)}
	}
}

// updateLayout spreads the tree over the available width
func (m *Model) updateLayout() {
	geom := m.round.Board.Geometry()
	half := geom.NodeWidth / 2
	right := m.width - boardLeft - half - 1
	if m.showHeights {
		right -= 4
	}
	m.round.Board.Layout(half, max(right, half))

	m.helpViewport.Width = max(m.width-4, 0)
	m.helpViewport.Height = max(m.height-4, 0)
}

func (m *Model) refreshHelp() {
	width := m.helpViewport.Width
	page := GetOrRenderHelpPage(m.helpCache, width, func(md string) (string, error) {
		if m.glamourRenderer == nil {
			return md, nil
		}
		return m.glamourRenderer.Render(md)
	})
	m.helpViewport.SetContent(page)
	m.helpViewport.GotoTop()
}

func (m Model) cursorNode() *bst.Node {
	nodes := m.round.Board.Nodes()
	if m.cursor < len(nodes) {
		return nodes[m.cursor]
	}
	return nil
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	if m.showHelp {
		return m.styles.Border.
			Width(m.width - 2).
			Height(m.height - 2).
			Render(m.helpViewport.View())
	}

	boardView := m.round.Board.Render(m.palette, board.RenderOptions{
		ShowHeights: m.showHeights,
		Cursor:      m.cursorNode(),
	})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderStatus(),
		m.renderMessage(),
		"",
		lipgloss.NewStyle().PaddingLeft(boardLeft).Render(boardView),
		m.renderFooter(),
	)
}

func (m Model) renderStatus() string {
	title := m.styles.Title.Render("🌳 BST Guesser")
	found, total := m.round.Progress()

	var target string
	if key, ok := m.round.Target(); ok {
		target = m.styles.Target.Render(fmt.Sprintf("Find %d", key))
	} else {
		target = m.styles.SuccessMessage.Render("Round over")
	}

	status := m.styles.Status.Render(fmt.Sprintf("targets %d/%d • guesses %d • misses %d • par %d",
		found, total, m.round.Guesses(), m.round.Misses(), m.round.Par))
	return strings.Join([]string{title, target, status}, "  ")
}

func (m Model) renderMessage() string {
	if strings.HasPrefix(m.message, "Could not") || strings.HasPrefix(m.message, "Copy failed") {
		return m.styles.ErrorMessage.Render(m.message)
	}
	return m.styles.Status.Render(m.message)
}

// renderFooter renders the key help footer
func (m Model) renderFooter() string {
	keys := []string{"click/enter", "tab", "h", "g", "n", "ctrl+x", "f1", "esc"}
	descs := []string{"reveal", "move cursor", "heights", "give up", "new round", "copy keys", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(ctx context.Context, config *Config, stats *StatsStore) error {
	geom := boardGeometry(config.Display)
	newRound := func() (*Round, error) {
		return NewRound(ctx, config.Game, geom, fastDraw)
	}

	round, err := newRound()
	if err != nil {
		return err
	}

	model := InitialModel(ctx, config, round, stats, newRound)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = program.Run()
	return err
}

func boardGeometry(display DisplayConfig) board.Geometry {
	geom := board.DefaultGeometry()
	geom.NodeWidth = display.NodeWidth
	geom.Margin = display.Margin
	return geom
}
