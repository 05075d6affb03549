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

package main

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gizak/termui/v3/widgets"

	"github.com/cybrota/lexicon/wbtree"
)

func TestBuildTreeNodes(t *testing.T) {
	tree := wbtree.New(nil)
	for c := 'a'; c <= 'g'; c++ {
		tree.Insert(string(c), "meaning of "+string(c))
	}

	root := buildTreeNodes(tree.Root(), "", 0)
	if got := root.Value.String(); got != "d (w=7)" {
		t.Errorf("Root label = %q; want %q", got, "d (w=7)")
	}
	if !root.Expanded {
		t.Errorf("Expected the root to start expanded")
	}
	if len(root.Nodes) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(root.Nodes))
	}
	if got := root.Nodes[0].Value.String(); got != "L b (w=3)" {
		t.Errorf("Left label = %q", got)
	}
	if got := root.Nodes[1].Nodes[1].Value.String(); got != "R g (w=1)" {
		t.Errorf("Right-right label = %q", got)
	}
}

func TestBuildTreeNodesCollapsesDeepLevels(t *testing.T) {
	tree := wbtree.New(nil)
	for c := 'a'; c <= 'z'; c++ {
		tree.Insert(string(c), "")
	}

	var walk func(n *widgets.TreeNode, depth int)
	walk = func(n *widgets.TreeNode, depth int) {
		if n.Expanded != (depth < expandedLevels) {
			t.Errorf("Node at depth %d has Expanded=%v", depth, n.Expanded)
		}
		for _, child := range n.Nodes {
			walk(child, depth+1)
		}
	}
	walk(buildTreeNodes(tree.Root(), "", 0), 0)
}

func TestDescribeNode(t *testing.T) {
	tree := wbtree.New(nil)
	for _, key := range []string{"c", "a", "b"} {
		tree.Insert(key, "meaning of "+key)
	}

	got := describeNode(tree.Root())
	for _, want := range []string{"meaning of a", "Weight: 3", "Left weight: 0", "Right weight: 2", "Ratio: 3.00", "(skewed)"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in description:\n%s", want, got)
		}
	}

	leaf := describeNode(tree.Root().Right().Left())
	if !strings.Contains(leaf, "Ratio: 1.00") || strings.Contains(leaf, "skewed") {
		t.Errorf("Unexpected leaf description:\n%s", leaf)
	}
}

func TestRandomEntry(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	if _, ok := randomEntry(nil, rnd); ok {
		t.Errorf("Expected no entry from an empty dictionary")
	}

	entries := []wbtree.Entry{{Key: "apple"}, {Key: "banana"}}
	for i := 0; i < 20; i++ {
		entry, ok := randomEntry(entries, rnd)
		if !ok || (entry.Key != "apple" && entry.Key != "banana") {
			t.Fatalf("Unexpected entry %+v", entry)
		}
	}

	if got := wordOfTheDay(nil, rnd); !strings.Contains(got, "empty") {
		t.Errorf("Unexpected word of the day %q", got)
	}
}

func TestComputeHeaderRatio(t *testing.T) {
	tests := map[int]float64{
		0:   0.05,
		10:  0.25,
		30:  0.1,
		100: 0.05,
	}
	for height, want := range tests {
		if got := computeHeaderRatio(height); got != want {
			t.Errorf("computeHeaderRatio(%d) = %v; want %v", height, got, want)
		}
	}
}
