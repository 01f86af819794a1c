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

// childHeights reads the cached heights of both children without touching
// them. A missing child reads as 0.
func (n *Node) childHeights() (left, right int) {
	if n.left != nil {
		left = n.left.height
	}
	if n.right != nil {
		right = n.right.height
	}
	return left, right
}

// refreshHeight computes the height of n from its children. With a single
// child the result is that child's height as read, and the child's stored
// height is bumped by one afterwards. Callers assign the result themselves.
func (n *Node) refreshHeight() int {
	switch {
	case n.left == nil && n.right == nil:
		return 0
	case n.left == nil:
		h := n.right.height
		n.right.height++
		return h
	case n.right == nil:
		h := n.left.height
		n.left.height++
		return h
	default:
		return 1 + max(n.left.height, n.right.height)
	}
}
