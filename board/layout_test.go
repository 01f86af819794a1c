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
	"testing"

	"github.com/cybrota/bstguesser/bst"
)

func buildBoard(t *testing.T, keys ...int) *Board {
	t.Helper()
	tree, err := bst.Build(keys...)
	if err != nil {
		t.Fatalf("bst.Build(%v) returned error: %v", keys, err)
	}
	return New(tree, DefaultGeometry())
}

type position struct {
	Key  int
	X, Y int
}

func TestLayout(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int
		X0, X1   int
		Expected []position
	}{
		{
			Name: "Two children split the span",
			Keys: []int{50, 30, 70},
			X0:   0, X1: 80,
			Expected: []position{{50, 40, 0}, {30, 20, 3}, {70, 60, 3}},
		},
		{
			Name: "Only left children shrink by the margin",
			Keys: []int{10, 5, 1},
			X0:   0, X1: 80,
			Expected: []position{{10, 40, 0}, {5, 38, 3}, {1, 36, 6}},
		},
		{
			Name: "Only right children shrink by the margin",
			Keys: []int{1, 2, 3},
			X0:   0, X1: 80,
			Expected: []position{{1, 40, 0}, {2, 42, 3}, {3, 44, 6}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			b := buildBoard(t, tc.Keys...)
			b.Layout(tc.X0, tc.X1)

			nodes := b.Nodes()
			if len(nodes) != len(tc.Expected) {
				t.Fatalf("got %d nodes, want %d", len(nodes), len(tc.Expected))
			}
			for i, n := range nodes {
				c := b.Cell(n)
				got := position{n.Key(), c.X, c.Y}
				if got != tc.Expected[i] {
					t.Errorf("node %d: got %+v, want %+v", i, got, tc.Expected[i])
				}
			}
		})
	}
}

func TestBounds(t *testing.T) {
	b := buildBoard(t, 50, 30, 70)
	b.Layout(0, 20)
	if w, h := b.Bounds(); w != 18 || h != 4 {
		t.Errorf("Bounds() = %dx%d, want 18x4", w, h)
	}
}

func TestLayoutKeepsRevealState(t *testing.T) {
	b := buildBoard(t, 50, 30, 70)
	b.Layout(0, 80)
	b.Reveal(b.Tree().Root(), 50)

	b.Layout(0, 40)
	c := b.Cell(b.Tree().Root())
	if !c.Revealed || c.Mark != Match || c.X != 20 {
		t.Errorf("root cell after relayout = %+v", c)
	}
}
