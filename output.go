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
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/xlab/treeprint"

	"github.com/cybrota/lexicon/wbtree"
)

// writeEntries prints entries either as "word: meaning" lines or as a table
func writeEntries(w io.Writer, entries []wbtree.Entry, asTable bool) {
	if !asTable {
		for _, e := range entries {
			fmt.Fprintf(w, "%s: %s\n", e.Key, e.Value)
		}
		return
	}

	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	tw.AppendHeader(table.Row{
		"WORD",
		"MEANING",
	})
	for _, e := range entries {
		tw.AppendRow(table.Row{
			e.Key,
			e.Value,
		})
	}
	fmt.Fprintf(w, "%s\n", tw.Render())
}

// renderStats tabulates the shape of the tree
func renderStats(stats wbtree.Stats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"METRIC", "VALUE"})
	tw.AppendRow(table.Row{"words", stats.Size})
	tw.AppendRow(table.Row{"depth", stats.Depth})
	tw.AppendRow(table.Row{"max weight ratio", fmt.Sprintf("%.2f", stats.MaxRatio)})
	tw.AppendRow(table.Row{"skewed nodes", stats.Skewed})
	return tw.Render()
}

func nodeLabel(n *wbtree.Node) string {
	return fmt.Sprintf("%s (w=%d)", n.Key(), n.Weight())
}

// renderShape draws the tree with each child marked L or R
func renderShape(tree *wbtree.Tree) string {
	root := tree.Root()
	if root == nil {
		return "(empty)\n"
	}

	printer := treeprint.NewWithRoot(nodeLabel(root))
	addChildren(printer, root)
	return printer.String()
}

func addChildren(branch treeprint.Tree, n *wbtree.Node) {
	if left := n.Left(); left != nil {
		addChildren(branch.AddBranch("L "+nodeLabel(left)), left)
	}
	if right := n.Right(); right != nil {
		addChildren(branch.AddBranch("R "+nodeLabel(right)), right)
	}
}
