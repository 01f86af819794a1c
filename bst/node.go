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

// Package bst implements the eagerly rebalanced binary search tree behind the
// guessing game. Insertion places keys the usual way and then runs a
// height-driven rebalance check on every ancestor while the recursion unwinds.
// Heights are a cached metric that drifts on single-child chains, and
// rotations swap keys instead of moving nodes, so the tree is neither an AVL
// tree nor globally ordered once rotations have run.
package bst

// Node is a single key-holding unit. A node exclusively owns its children.
type Node struct {
	key    int
	height int
	left   *Node
	right  *Node
}

// NewNode returns a leaf holding key with height 0.
func NewNode(key int) *Node {
	return &Node{key: key}
}

func (n *Node) Key() int { return n.key }

// Height returns the cached height. It follows the drifting rule used by
// insertion and is not a reliable subtree height.
func (n *Node) Height() int { return n.height }

func (n *Node) Left() *Node { return n.left }

func (n *Node) Right() *Node { return n.right }

func (n *Node) IsLeaf() bool { return n.left == nil && n.right == nil }

// Insert places key in the subtree rooted at n. Inserting a key that is
// already present is a no-op. The only error is a *RotationError when a
// rebalance step finds the grandchild it needs missing; the subtree is then
// left as it was right before that rotation.
func (n *Node) Insert(key int) error {
	_, err := n.insert(key, nil)
	return err
}

// insert reports whether a new node was placed. Ancestors only recompute
// and rebalance when something was placed below them.
func (n *Node) insert(key int, observe func(Step)) (bool, error) {
	switch {
	case key < n.key:
		if n.left == nil {
			n.left = NewNode(key)
		} else if placed, err := n.left.insert(key, observe); !placed || err != nil {
			return placed, err
		}
	case key > n.key:
		if n.right == nil {
			n.right = NewNode(key)
		} else if placed, err := n.right.insert(key, observe); !placed || err != nil {
			return placed, err
		}
	default:
		return false, nil
	}

	step := n.rebalanceStep()
	if observe != nil {
		observe(step)
	}

	switch step.Rotation {
	case RotateLeft:
		return true, n.rotateLeft()
	case RotateRight:
		return true, n.rotateRight()
	}
	return true, nil
}

// rebalanceStep recomputes the height and decides which rotation, if any,
// the current shape asks for.
func (n *Node) rebalanceStep() Step {
	lh, rh := n.childHeights()
	n.height = n.refreshHeight()
	balance := lh - rh

	step := Step{Key: n.key, Height: n.height, Balance: balance}
	switch {
	case balance < -1:
		step.Rotation = RotateLeft
	case balance > 1:
		step.Rotation = RotateRight
	case balance == 1 && n.right == nil:
		step.Rotation = RotateRight
	case balance == -1 && n.left == nil:
		step.Rotation = RotateLeft
	}
	return step
}
