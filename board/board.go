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

// Package board lays a bst.Tree out on a character grid and keeps the
// presentation state of the guessing game: which nodes have been revealed and
// how each reveal scored against the current target.
package board

import (
	"github.com/cybrota/bstguesser/bst"
)

// Mark is the display tag of a node.
type Mark int

const (
	Hidden Mark = iota
	Match
	Mismatch
	Exposed
)

func (m Mark) String() string {
	switch m {
	case Match:
		return "match"
	case Mismatch:
		return "mismatch"
	case Exposed:
		return "exposed"
	default:
		return "hidden"
	}
}

// Geometry holds the grid metrics, all in terminal cells.
type Geometry struct {
	NodeWidth  int
	NodeHeight int
	Margin     int
	RowGap     int
}

func DefaultGeometry() Geometry {
	return Geometry{NodeWidth: 5, NodeHeight: 1, Margin: 2, RowGap: 2}
}

// Cell is the presentation annotation attached to a node. X is the column
// of the box centre and Y the row of its top edge.
type Cell struct {
	X, Y     int
	Revealed bool
	Mark     Mark
}

// Board pairs a tree with per-node cells.
type Board struct {
	tree  *bst.Tree
	geom  Geometry
	cells map[*bst.Node]*Cell
}

func New(tree *bst.Tree, geom Geometry) *Board {
	if geom.NodeWidth <= 0 || geom.NodeHeight <= 0 {
		geom = DefaultGeometry()
	}
	return &Board{
		tree:  tree,
		geom:  geom,
		cells: make(map[*bst.Node]*Cell),
	}
}

func (b *Board) Tree() *bst.Tree { return b.tree }

func (b *Board) Geometry() Geometry { return b.geom }

// Cell returns the annotation of n, creating it on first use.
func (b *Board) Cell(n *bst.Node) *Cell {
	c, ok := b.cells[n]
	if !ok {
		c = &Cell{}
		b.cells[n] = c
	}
	return c
}

// Nodes lists the reachable nodes in pre-order.
func (b *Board) Nodes() []*bst.Node {
	var nodes []*bst.Node
	b.tree.Walk(func(n *bst.Node, _ int, _ string) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Revealed counts the revealed nodes.
func (b *Board) Revealed() int {
	count := 0
	for _, n := range b.Nodes() {
		if b.Cell(n).Revealed {
			count++
		}
	}
	return count
}

// Reveal shows n. A node that was still hidden is marked against target and
// fresh is true; revealing it again changes nothing.
func (b *Board) Reveal(n *bst.Node, target int) (fresh bool) {
	c := b.Cell(n)
	if c.Revealed {
		return false
	}
	if n.Key() == target {
		c.Mark = Match
	} else {
		c.Mark = Mismatch
	}
	c.Revealed = true
	return true
}

// RevealAll shows every hidden node with the Exposed mark, used when a round
// ends. Nodes the player already revealed keep their mark.
func (b *Board) RevealAll() {
	for _, n := range b.Nodes() {
		c := b.Cell(n)
		if c.Revealed {
			continue
		}
		c.Revealed = true
		c.Mark = Exposed
	}
}
