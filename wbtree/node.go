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

package wbtree

// RebalanceRatio is the child weight ratio, (heavy+1)/(light+1), at which an
// insertion rotates the heavy child up.
const RebalanceRatio = 3

// Node is a single vertex of the tree. Weight is the number of nodes in the
// subtree rooted here.
type Node struct {
	key    string
	value  string
	weight int
	left   *Node
	right  *Node
}

func newNode(key, value string) *Node {
	return &Node{key: key, value: value, weight: 1}
}

// Key returns the word stored at the node.
func (n *Node) Key() string { return n.key }

// Value returns the meaning stored at the node.
func (n *Node) Value() string { return n.value }

// Weight returns the size of the subtree rooted at the node.
func (n *Node) Weight() int { return weightOf(n) }

// Left returns the left child, or nil.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, or nil.
func (n *Node) Right() *Node { return n.right }

func weightOf(n *Node) int {
	if n == nil {
		return 0
	}
	return n.weight
}

// updateWeight recomputes the weight from the children and returns the
// child weights it used.
func (n *Node) updateWeight() (int, int) {
	l, r := weightOf(n.left), weightOf(n.right)
	n.weight = 1 + l + r
	return l, r
}

// unbalanced reports whether (max(l, r)+1)/(min(l, r)+1) >= RebalanceRatio.
func unbalanced(l, r int) bool {
	return max(l, r)+1 >= RebalanceRatio*(min(l, r)+1)
}

// insert places key/value in the subtree rooted at n and returns the root of
// the resulting subtree, which differs from n when a rotation happened.
// Replacing the value of an existing key still re-weighs and re-checks every
// node on the path, so a skewed node there can rotate.
func insert(n *Node, key, value string) *Node {
	if n == nil {
		return newNode(key, value)
	}

	if key < n.key {
		n.left = insert(n.left, key, value)
	} else if key > n.key {
		n.right = insert(n.right, key, value)
	} else {
		n.value = value
	}

	l, r := n.updateWeight()
	if unbalanced(l, r) {
		if l > r {
			return n.rotateRight()
		}
		return n.rotateLeft()
	}

	return n
}

// rotateLeft promotes the right child. n must have one.
func (n *Node) rotateLeft() *Node {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	n.updateWeight()
	pivot.updateWeight()

	return pivot
}

// rotateRight promotes the left child. n must have one.
func (n *Node) rotateRight() *Node {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	n.updateWeight()
	pivot.updateWeight()

	return pivot
}

func search(n *Node, key string) (string, bool) {
	for n != nil {
		if key < n.key {
			n = n.left
		} else if key > n.key {
			n = n.right
		} else {
			return n.value, true
		}
	}
	return "", false
}
