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

package bst

import (
	"errors"
	"fmt"
)

// Step describes one rebalance check made on the way back up from an
// insertion. Key and Height are taken before any rotation runs.
type Step struct {
	Key      int
	Height   int
	Balance  int
	Rotation Rotation
}

// NodeState is a flattened view of a node. Path spells the route from the
// root with L and R; the root has an empty path.
type NodeState struct {
	Path   string
	Key    int
	Height int
}

func (s NodeState) String() string {
	path := s.Path
	if path == "" {
		path = "root"
	}
	return fmt.Sprintf("%s=%d(h%d)", path, s.Key, s.Height)
}

// Option configures a Tree.
type Option func(*Tree)

// WithObserver registers fn to receive every rebalance Step.
func WithObserver(fn func(Step)) Option {
	return func(t *Tree) {
		t.observe = fn
	}
}

// Tree owns the root node and the history of accepted keys. It is not safe
// for concurrent use.
type Tree struct {
	root    *Node
	keys    []int
	observe func(Step)
}

func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Build inserts keys in order into a new tree and stops at the first error.
func Build(keys ...int) (*Tree, error) {
	t := New()
	for _, k := range keys {
		if err := t.Insert(k); err != nil {
			return t, err
		}
	}
	return t, nil
}

func (t *Tree) Root() *Node { return t.root }

// Keys returns the accepted insertion history, duplicates excluded.
func (t *Tree) Keys() []int {
	return append([]int(nil), t.keys...)
}

// Insert adds key to the tree. When the rebalance step hits a missing
// grandchild the tree is rebuilt from its history, so a failed Insert leaves
// no trace, and the *RotationError is returned.
func (t *Tree) Insert(key int) error {
	if t.root == nil {
		t.root = NewNode(key)
		t.keys = append(t.keys, key)
		return nil
	}

	placed, err := t.root.insert(key, t.observe)
	if err != nil {
		if rerr := t.replay(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	if placed {
		t.keys = append(t.keys, key)
	}
	return nil
}

// replay rebuilds the tree from the accepted history. The observer is not
// notified.
func (t *Tree) replay() error {
	keys := t.keys
	t.root, t.keys = nil, make([]int, 0, len(keys))

	for _, k := range keys {
		if t.root == nil {
			t.root = NewNode(k)
		} else if _, err := t.root.insert(k, nil); err != nil {
			return fmt.Errorf("replaying key %d: %w", k, err)
		}
		t.keys = append(t.keys, k)
	}
	return nil
}

// Walk visits nodes in pre-order (self, left, right). Returning false from
// fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, depth int, path string) bool) {
	walk(t.root, 0, "", fn)
}

func walk(n *Node, depth int, path string, fn func(*Node, int, string) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n, depth, path) {
		return false
	}
	if !walk(n.left, depth+1, path+"L", fn) {
		return false
	}
	return walk(n.right, depth+1, path+"R", fn)
}

// Len counts the nodes currently reachable from the root. Rotations can drop
// subtrees, so this may be less than len(Keys()).
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node, int, string) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels in the tree, 0 when empty.
func (t *Tree) Depth() int {
	deepest := 0
	t.Walk(func(_ *Node, depth int, _ string) bool {
		deepest = max(deepest, depth+1)
		return true
	})
	return deepest
}

// Search follows the ordinary BST descent. After rotations a present key can
// sit off its search path, in which case Search misses it; use Find for an
// exhaustive lookup.
func (t *Tree) Search(key int) (*Node, int, bool) {
	depth := 0
	for n := t.root; n != nil; depth++ {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n, depth, true
		}
	}
	return nil, 0, false
}

// Find looks for key anywhere in the tree and returns its node and depth.
func (t *Tree) Find(key int) (*Node, int, bool) {
	var (
		found *Node
		at    int
	)
	t.Walk(func(n *Node, depth int, _ string) bool {
		if n.key == key {
			found, at = n, depth
			return false
		}
		return true
	})
	return found, at, found != nil
}

// InOrder returns the keys in left, self, right order.
func (t *Tree) InOrder() []int {
	var keys []int
	inOrder(t.root, &keys)
	return keys
}

func inOrder(n *Node, keys *[]int) {
	if n == nil {
		return
	}
	inOrder(n.left, keys)
	*keys = append(*keys, n.key)
	inOrder(n.right, keys)
}

// Snapshot lists every reachable node in pre-order.
func (t *Tree) Snapshot() []NodeState {
	var states []NodeState
	t.Walk(func(n *Node, _ int, path string) bool {
		states = append(states, NodeState{Path: path, Key: n.key, Height: n.height})
		return true
	})
	return states
}
