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

import "fmt"

// InvariantError reports a node that breaks ordering or weight bookkeeping.
type InvariantError struct {
	Key    string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("node %q: %s", e.Key, e.Reason)
}

// Validate checks key ordering, key uniqueness and subtree weights over the
// whole tree.
func (tree *Tree) Validate() error {
	_, err := validate(tree.root, nil, nil)
	return err
}

// validate returns the live size of the subtree. low and high are the
// exclusive key bounds inherited from the ancestors.
func validate(n *Node, low, high *string) (int, error) {
	if n == nil {
		return 0, nil
	}

	if low != nil && n.key <= *low {
		return 0, &InvariantError{Key: n.key, Reason: fmt.Sprintf("not greater than ancestor %q", *low)}
	}
	if high != nil && n.key >= *high {
		return 0, &InvariantError{Key: n.key, Reason: fmt.Sprintf("not less than ancestor %q", *high)}
	}

	l, err := validate(n.left, low, &n.key)
	if err != nil {
		return 0, err
	}
	r, err := validate(n.right, &n.key, high)
	if err != nil {
		return 0, err
	}

	if size := 1 + l + r; n.weight != size {
		return 0, &InvariantError{Key: n.key, Reason: fmt.Sprintf("weight %d, subtree holds %d", n.weight, size)}
	}
	return n.weight, nil
}

// Stats summarises the shape of a tree.
type Stats struct {
	Size  int
	Depth int
	// MaxRatio is the largest (heavy+1)/(light+1) child weight ratio.
	MaxRatio float64
	// Skewed counts nodes whose ratio is at or above RebalanceRatio.
	Skewed int
}

// Stats walks the tree and reports its shape.
func (tree *Tree) Stats() Stats {
	stats := Stats{Size: tree.Len(), Depth: tree.Depth()}
	if tree.root != nil {
		stats.MaxRatio = 1
	}
	collectStats(tree.root, &stats)
	return stats
}

func collectStats(n *Node, stats *Stats) {
	if n == nil {
		return
	}

	l, r := weightOf(n.left), weightOf(n.right)
	ratio := float64(max(l, r)+1) / float64(min(l, r)+1)
	if ratio > stats.MaxRatio {
		stats.MaxRatio = ratio
	}
	if unbalanced(l, r) {
		stats.Skewed++
	}

	collectStats(n.left, stats)
	collectStats(n.right, stats)
}
