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
)

func TestClick(t *testing.T) {
	b := buildBoard(t, 50, 30, 70)
	b.Layout(0, 80)

	testCases := []struct {
		Name   string
		X, Y   int
		Target int
		Key    int
		Fresh  bool
		OK     bool
		Mark   Mark
	}{
		{Name: "Centre of the root", X: 40, Y: 0, Target: 30, Key: 50, Fresh: true, OK: true, Mark: Mismatch},
		{Name: "Edge of the root box", X: 38, Y: 0, Target: 30, Key: 50, Fresh: false, OK: true, Mark: Mismatch},
		{Name: "Just outside the root box", X: 37, Y: 0, Target: 30},
		{Name: "Row below the root", X: 40, Y: 1, Target: 30},
		{Name: "Target node", X: 21, Y: 3, Target: 30, Key: 30, Fresh: true, OK: true, Mark: Match},
		{Name: "Target node again", X: 20, Y: 3, Target: 70, Key: 30, Fresh: false, OK: true, Mark: Match},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			n, fresh := b.Click(tc.X, tc.Y, tc.Target)
			if (n != nil) != tc.OK || fresh != tc.Fresh {
				t.Fatalf("Click(%d, %d) = (%v, %v), want hit %v fresh %v",
					tc.X, tc.Y, n, fresh, tc.OK, tc.Fresh)
			}
			if n == nil {
				return
			}
			if n.Key() != tc.Key {
				t.Errorf("Click(%d, %d) hit %d, want %d", tc.X, tc.Y, n.Key(), tc.Key)
			}
			if c := b.Cell(n); !c.Revealed || c.Mark != tc.Mark {
				t.Errorf("cell of %d = %+v, want revealed with mark %s", n.Key(), c, tc.Mark)
			}
		})
	}

	if got := b.Revealed(); got != 2 {
		t.Errorf("Revealed() = %d, want 2", got)
	}
}

func TestClickPrefersPreOrder(t *testing.T) {
	b := buildBoard(t, 50, 30, 70)
	// Squeezed so the two children overlap.
	b.Layout(0, 2)

	if n, _ := b.Click(1, 3, 0); n == nil || n.Key() != 30 {
		t.Errorf("Click(1, 3) = %v, want the left child 30", n)
	}
}

func TestRevealAll(t *testing.T) {
	b := buildBoard(t, 50, 30, 70, 20, 40)
	b.Layout(0, 80)
	b.Click(40, 0, 30)

	b.RevealAll()
	for _, n := range b.Nodes() {
		want := Exposed
		if n.Key() == 30 {
			want = Match
		}
		if c := b.Cell(n); !c.Revealed || c.Mark != want {
			t.Errorf("node %d cell = %+v, want revealed %v", n.Key(), c, want)
		}
	}
	if got := b.Revealed(); got != 4 {
		t.Errorf("Revealed() = %d, want 4", got)
	}
}
