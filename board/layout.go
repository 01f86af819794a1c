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
	"github.com/cybrota/bstguesser/bst"
)

// Layout positions every node inside the columns [x0, x1], starting at row 0.
// Each node sits in the middle of its span and hands the halves to its
// children. An only child gets its parent's whole span pulled in by twice the
// margin on the side of the missing sibling.
func (b *Board) Layout(x0, x1 int) {
	if root := b.tree.Root(); root != nil {
		b.place(root, x0, x1, 0)
	}
}

func (b *Board) place(n *bst.Node, x0, x1, y int) {
	c := b.Cell(n)
	c.X = (x0 + x1) / 2
	c.Y = y

	next := y + b.geom.NodeHeight + b.geom.RowGap
	if left := n.Left(); left != nil {
		hi := c.X
		if n.Right() == nil {
			hi = x1 - 2*b.geom.Margin
		}
		b.place(left, x0, hi, next)
	}
	if right := n.Right(); right != nil {
		lo := c.X
		if n.Left() == nil {
			lo = x0 + 2*b.geom.Margin
		}
		b.place(right, lo, x1, next)
	}
}

// Bounds returns the number of columns and rows the laid out tree spans.
func (b *Board) Bounds() (width, height int) {
	half := b.geom.NodeWidth / 2
	for _, n := range b.Nodes() {
		c := b.Cell(n)
		width = max(width, c.X+half+1)
		height = max(height, c.Y+b.geom.NodeHeight)
	}
	return width, height
}
