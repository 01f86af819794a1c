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

// ErrRotationPrecondition is returned when a rotation is triggered on a node
// whose required grandchild is missing.
var ErrRotationPrecondition = errors.New("malformed rotation precondition")

// Rotation names the restructuring chosen by a rebalance check.
type Rotation int

const (
	RotateNone Rotation = iota
	RotateLeft
	RotateRight
)

func (r Rotation) String() string {
	switch r {
	case RotateLeft:
		return "left"
	case RotateRight:
		return "right"
	default:
		return "none"
	}
}

// RotationError reports which rotation failed and at which key.
type RotationError struct {
	Rotation Rotation
	Key      int
}

func (e *RotationError) Error() string {
	return fmt.Sprintf("rotate %s at key %d: %s", e.Rotation, e.Key, ErrRotationPrecondition)
}

func (e *RotationError) Unwrap() error {
	return ErrRotationPrecondition
}

// rotateRight swaps keys with the left child, which then moves to the right
// slot. The left grandchild becomes the new left child and keeps its key.
// Whatever was in the right slot before is dropped.
//
//	    10          5
//	   /           / \
//	  5     ->    1   10
//	 /
//	1
func (n *Node) rotateRight() error {
	if n.left == nil || n.left.left == nil {
		return &RotationError{Rotation: RotateRight, Key: n.key}
	}

	pivot := n.left
	n.key, pivot.key = pivot.key, n.key

	n.right = pivot
	n.left = pivot.left
	pivot.left = nil

	n.height = n.refreshHeight()
	return nil
}

// rotateLeft is the mirror image of rotateRight.
func (n *Node) rotateLeft() error {
	if n.right == nil || n.right.right == nil {
		return &RotationError{Rotation: RotateLeft, Key: n.key}
	}

	pivot := n.right
	n.key, pivot.key = pivot.key, n.key

	n.left = pivot
	n.right = pivot.right
	pivot.right = nil

	n.height = n.refreshHeight()
	return nil
}
