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

package board

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bstguesser/bst"
)

// Palette holds the styles used to draw a board.
type Palette struct {
	Hidden   lipgloss.Style
	Match    lipgloss.Style
	Mismatch lipgloss.Style
	Exposed  lipgloss.Style
	Edge     lipgloss.Style
	Height   lipgloss.Style
	Cursor   lipgloss.Style
}

func DefaultPalette() Palette {
	box := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Bold(true)
	return Palette{
		Hidden:   box.Background(lipgloss.Color("#9696FA")),
		Match:    box.Background(lipgloss.Color("46")),
		Mismatch: box.Background(lipgloss.Color("196")),
		Exposed:  box.Background(lipgloss.Color("51")),
		Edge:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Height:   lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
		Cursor:   lipgloss.NewStyle().Reverse(true).Underline(true),
	}
}

func (p Palette) style(m Mark) lipgloss.Style {
	switch m {
	case Match:
		return p.Match
	case Mismatch:
		return p.Mismatch
	case Exposed:
		return p.Exposed
	default:
		return p.Hidden
	}
}

// RenderOptions tweaks a single Render call.
type RenderOptions struct {
	ShowHeights bool
	Cursor      *bst.Node
}

const (
	edgeUp uint8 = 1 << iota
	edgeDown
	edgeLeft
	edgeRight
)

// glyph maps the directions leaving a grid cell to a box-drawing rune.
func glyph(bits uint8) (rune, bool) {
	switch bits {
	case 0:
		return ' ', false
	case edgeUp, edgeDown, edgeUp | edgeDown:
		return '│', true
	case edgeLeft, edgeRight, edgeLeft | edgeRight:
		return '─', true
	case edgeDown | edgeRight:
		return '┌', true
	case edgeDown | edgeLeft:
		return '┐', true
	case edgeUp | edgeRight:
		return '└', true
	case edgeUp | edgeLeft:
		return '┘', true
	case edgeUp | edgeLeft | edgeRight:
		return '┴', true
	case edgeDown | edgeLeft | edgeRight:
		return '┬', true
	case edgeUp | edgeDown | edgeLeft:
		return '┤', true
	case edgeUp | edgeDown | edgeRight:
		return '├', true
	default:
		return '┼', true
	}
}

type span struct {
	x     int
	text  string
	style lipgloss.Style
}

type canvas struct {
	width int
	edges [][]uint8
	spans [][]span
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, edges: make([][]uint8, height), spans: make([][]span, height)}
	for y := range c.edges {
		c.edges[y] = make([]uint8, width)
	}
	return c
}

func (c *canvas) mark(x, y int, bits uint8) {
	if y < 0 || y >= len(c.edges) || x < 0 || x >= c.width {
		return
	}
	c.edges[y][x] |= bits
}

// connect draws the edge from a parent centred on px to a child centred on
// cx, leaving the parent box on row y and reaching the child on row cy.
func (c *canvas) connect(px, y, cx, cy int) {
	switch {
	case cx == px:
		c.mark(px, y, edgeUp|edgeDown)
	case cx < px:
		c.mark(px, y, edgeUp|edgeLeft)
		for x := cx + 1; x < px; x++ {
			c.mark(x, y, edgeLeft|edgeRight)
		}
		c.mark(cx, y, edgeDown|edgeRight)
	default:
		c.mark(px, y, edgeUp|edgeRight)
		for x := px + 1; x < cx; x++ {
			c.mark(x, y, edgeLeft|edgeRight)
		}
		c.mark(cx, y, edgeDown|edgeLeft)
	}
	for row := y + 1; row < cy; row++ {
		c.mark(cx, row, edgeUp|edgeDown)
	}
}

func (c *canvas) put(x, y int, text string, style lipgloss.Style) {
	if y < 0 || y >= len(c.spans) {
		return
	}
	c.spans[y] = append(c.spans[y], span{x: x, text: text, style: style})
}

func (c *canvas) edgeRun(y, from, to int, style lipgloss.Style) string {
	if from >= to {
		return ""
	}
	runes := make([]rune, 0, to-from)
	drawn := false
	for x := from; x < to; x++ {
		g, ok := glyph(c.edges[y][x])
		runes = append(runes, g)
		drawn = drawn || ok
	}
	if !drawn {
		return string(runes)
	}
	return style.Render(string(runes))
}

func (c *canvas) String(edge lipgloss.Style) string {
	lines := make([]string, len(c.edges))
	for y := range c.edges {
		spans := c.spans[y]
		sort.SliceStable(spans, func(i, j int) bool { return spans[i].x < spans[j].x })

		var sb strings.Builder
		cursor := 0
		for _, s := range spans {
			text := []rune(s.text)
			if s.x < cursor {
				skip := min(cursor-s.x, len(text))
				text = text[skip:]
				s.x = cursor
			}
			if s.x+len(text) > c.width {
				text = text[:max(0, c.width-s.x)]
			}
			if len(text) == 0 {
				continue
			}
			sb.WriteString(c.edgeRun(y, cursor, s.x, edge))
			sb.WriteString(s.style.Render(string(text)))
			cursor = s.x + len(text)
		}
		sb.WriteString(c.edgeRun(y, cursor, c.width, edge))
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// label centres text inside the node box brackets.
func label(text string, width int) string {
	inner := max(width-2, len(text))
	pad := inner - len(text)
	lead := (pad + 1) / 2
	return "[" + strings.Repeat(" ", lead) + text + strings.Repeat(" ", pad-lead) + "]"
}

// Render draws the board as it was last laid out. Hidden nodes show "?",
// revealed ones their key.
func (b *Board) Render(p Palette, opts RenderOptions) string {
	width, height := b.Bounds()
	if width == 0 {
		return ""
	}
	if opts.ShowHeights {
		width += 4
	}

	half := b.geom.NodeWidth / 2
	cv := newCanvas(width, height)
	for _, n := range b.Nodes() {
		c := b.Cell(n)
		below := c.Y + b.geom.NodeHeight
		for _, child := range []*bst.Node{n.Left(), n.Right()} {
			if child != nil {
				cc := b.Cell(child)
				cv.connect(c.X, below, cc.X, cc.Y)
			}
		}

		text := "?"
		if c.Revealed {
			text = strconv.Itoa(n.Key())
		}
		style := p.style(c.Mark)
		if n == opts.Cursor {
			style = p.Cursor.Inherit(style)
		}
		box := label(text, b.geom.NodeWidth)
		cv.put(c.X-half, c.Y, box, style)
		blank := strings.Repeat(" ", len([]rune(box)))
		for row := 1; row < b.geom.NodeHeight; row++ {
			cv.put(c.X-half, c.Y+row, blank, style)
		}

		if opts.ShowHeights && n.Height() > 0 {
			cv.put(c.X+half+2, c.Y, strconv.Itoa(n.Height()), p.Height)
		}
	}
	return cv.String(p.Edge)
}
