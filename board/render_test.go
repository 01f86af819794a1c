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
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func render(b *Board, opts RenderOptions) []string {
	return strings.Split(ansi.Strip(b.Render(DefaultPalette(), opts)), "\n")
}

func TestRender(t *testing.T) {
	b := buildBoard(t, 50, 30, 70)
	b.Layout(0, 20)

	testCases := []struct {
		Name     string
		Reveal   []int
		Opts     RenderOptions
		Expected []string
	}{
		{
			Name: "Hidden",
			Expected: []string{
				"        [ ? ]",
				"     ┌────┴────┐",
				"     │         │",
				"   [ ? ]     [ ? ]",
			},
		},
		{
			Name:   "Revealed left child",
			Reveal: []int{30},
			Expected: []string{
				"        [ ? ]",
				"     ┌────┴────┐",
				"     │         │",
				"   [ 30]     [ ? ]",
			},
		},
		{
			Name: "Heights",
			Opts: RenderOptions{ShowHeights: true},
			Expected: []string{
				"        [ ? ] 2",
				"     ┌────┴────┐",
				"     │         │",
				"   [ 30] 1   [ ? ]",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			for _, key := range tc.Reveal {
				n, _, _ := b.Tree().Find(key)
				b.Reveal(n, key)
			}
			got := render(b, tc.Opts)
			if strings.Join(got, "\n") != strings.Join(tc.Expected, "\n") {
				t.Errorf("render mismatch:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(tc.Expected, "\n"))
			}
		})
	}
}

func TestRenderEmptyTree(t *testing.T) {
	b := buildBoard(t)
	if got := b.Render(DefaultPalette(), RenderOptions{}); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}
}

func TestRenderCursorKeepsLabel(t *testing.T) {
	b := buildBoard(t, 10, 5, 1)
	b.Layout(0, 30)
	root := b.Tree().Root()
	b.Reveal(root, 0)

	out := ansi.Strip(b.Render(DefaultPalette(), RenderOptions{Cursor: root}))
	if !strings.Contains(out, "[ 10]") {
		t.Errorf("cursor render lost the root label:\n%s", out)
	}
}

func TestLabel(t *testing.T) {
	testCases := map[string]string{
		"?":    "[ ? ]",
		"7":    "[ 7 ]",
		"42":   "[ 42]",
		"123":  "[123]",
		"1234": "[1234]",
	}
	for text, want := range testCases {
		if got := label(text, 5); got != want {
			t.Errorf("label(%q) = %q, want %q", text, got, want)
		}
	}
}
