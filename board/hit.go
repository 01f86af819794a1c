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

func (b *Board) contains(n *bst.Node, x, y int) bool {
	c := b.Cell(n)
	dx := c.X - x
	if dx < 0 {
		dx = -dx
	}
	return dx <= b.geom.NodeWidth/2 && c.Y <= y && y <= c.Y+b.geom.NodeHeight-1
}

// NodeAt returns the first node in pre-order whose box contains (x, y).
func (b *Board) NodeAt(x, y int) *bst.Node {
	var hit *bst.Node
	b.tree.Walk(func(n *bst.Node, _ int, _ string) bool {
		if b.contains(n, x, y) {
			hit = n
			return false
		}
		return true
	})
	return hit
}

// Click reveals the node under (x, y) and marks it against target. n is nil
// when the point misses every node; fresh reports whether the node was still
// hidden.
func (b *Board) Click(x, y, target int) (n *bst.Node, fresh bool) {
	n = b.NodeAt(x, y)
	if n == nil {
		return nil, false
	}
	return n, b.Reveal(n, target)
}
