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

// Package wbtree implements a string-keyed weight-balanced binary search
// tree. Every node records the size of its subtree and each insertion
// rotates a node whose child weights drift to a ratio of RebalanceRatio or
// more.
//
// A Tree is not safe for concurrent use while it is being written to.
package wbtree

import (
	"iter"
	"strings"
)

// Entry is a single word/meaning pair.
type Entry struct {
	Key   string
	Value string
}

// Tree maps words to meanings.
type Tree struct {
	root *Node
}

// New builds a tree from entries. The insertion order follows map iteration,
// which changes the shape of the tree but never its content.
func New(entries map[string]string) *Tree {
	tree := &Tree{}
	for key, value := range entries {
		tree.Insert(key, value)
	}
	return tree
}

// FromEntries builds a tree by inserting entries in slice order. Later
// duplicates overwrite earlier ones.
func FromEntries(entries []Entry) *Tree {
	tree := &Tree{}
	for _, e := range entries {
		tree.Insert(e.Key, e.Value)
	}
	return tree
}

// Insert adds key with value, or replaces the value if key is present.
func (tree *Tree) Insert(key, value string) {
	tree.root = insert(tree.root, key, value)
}

// Search returns the value stored for key and whether it was found.
func (tree *Tree) Search(key string) (string, bool) {
	if tree.root == nil {
		return "", false
	}
	return search(tree.root, key)
}

// Root returns the root node, or nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of entries.
func (tree *Tree) Len() int {
	return weightOf(tree.root)
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree) Depth() int {
	return depth(tree.root)
}

func depth(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

// Entries returns every entry in ascending key order.
func (tree *Tree) Entries() []Entry {
	entries := make([]Entry, 0, tree.Len())
	inOrder(tree.root, &entries)
	return entries
}

func inOrder(n *Node, entries *[]Entry) {
	if n == nil {
		return
	}
	inOrder(n.left, entries)
	*entries = append(*entries, Entry{Key: n.key, Value: n.value})
	inOrder(n.right, entries)
}

// All returns an iterator over the entries in ascending key order. Each call
// to the iterator walks the tree from the start.
func (tree *Tree) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		walk(tree.root, yield)
	}
}

func walk(n *Node, yield func(string, string) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.key, n.value) && walk(n.right, yield)
}

// Prefix returns the entries whose key starts with prefix, in order.
func (tree *Tree) Prefix(prefix string) []Entry {
	if prefix == "" {
		return tree.Entries()
	}

	var results []Entry
	prefixSearch(tree.root, prefix, &results)
	return results
}

// prefixSearch appends the matching entries under n. Keys sharing a prefix
// form one contiguous run starting at the prefix itself, so subtrees outside
// that run are skipped.
func prefixSearch(n *Node, prefix string, results *[]Entry) {
	if n == nil {
		return
	}

	matches := strings.HasPrefix(n.key, prefix)
	if n.key >= prefix {
		prefixSearch(n.left, prefix, results)
	}
	if matches {
		*results = append(*results, Entry{Key: n.key, Value: n.value})
	}
	if n.key < prefix || matches {
		prefixSearch(n.right, prefix, results)
	}
}
