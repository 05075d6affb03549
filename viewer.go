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
	"math/rand"
	"strings"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/lexicon/wbtree"
)

// expandedLevels is how many tree levels start unfolded in the viewer
const expandedLevels = 3

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// treeNodeValue labels a widget row with the node and the side it hangs on
type treeNodeValue struct {
	side string
	node *wbtree.Node
}

func (v treeNodeValue) String() string {
	label := nodeLabel(v.node)
	if v.side == "" {
		return label
	}
	return v.side + " " + label
}

// buildTreeNodes mirrors the subtree at n as termui tree rows
func buildTreeNodes(n *wbtree.Node, side string, depth int) *widgets.TreeNode {
	row := &widgets.TreeNode{
		Value:    treeNodeValue{side: side, node: n},
		Expanded: depth < expandedLevels,
	}
	if n.Left() != nil {
		row.Nodes = append(row.Nodes, buildTreeNodes(n.Left(), "L", depth+1))
	}
	if n.Right() != nil {
		row.Nodes = append(row.Nodes, buildTreeNodes(n.Right(), "R", depth+1))
	}
	return row
}

// describeNode is the detail text shown for a selected node
func describeNode(n *wbtree.Node) string {
	l, r := n.Left().Weight(), n.Right().Weight()
	ratio := nodeRatio(n)

	var b strings.Builder
	fmt.Fprintf(&b, "[%s](fg:green)\n\n", n.Key())
	fmt.Fprintf(&b, "%s\n\n", n.Value())
	fmt.Fprintf(&b, "Weight: %d\n", n.Weight())
	fmt.Fprintf(&b, "Left weight: %d\n", l)
	fmt.Fprintf(&b, "Right weight: %d\n", r)
	fmt.Fprintf(&b, "Ratio: %.2f", ratio)
	if ratio >= wbtree.RebalanceRatio {
		b.WriteString(" [(skewed)](fg:yellow)")
	}
	return b.String()
}

// nodeRatio is (heavy+1)/(light+1) over the child weights of n
func nodeRatio(n *wbtree.Node) float64 {
	l, r := n.Left().Weight(), n.Right().Weight()
	return float64(max(l, r)+1) / float64(min(l, r)+1)
}

// randomEntry picks the word of the day shown in the header
func randomEntry(entries []wbtree.Entry, rnd *rand.Rand) (wbtree.Entry, bool) {
	if len(entries) == 0 {
		return wbtree.Entry{}, false
	}
	return entries[rnd.Intn(len(entries))], true
}

func wordOfTheDay(entries []wbtree.Entry, rnd *rand.Rand) string {
	entry, ok := randomEntry(entries, rnd)
	if !ok {
		return " The dictionary is empty. "
	}
	return fmt.Sprintf(" [%s](fg:green): %s ", entry.Key, firstLine(entry.Value))
}

// computeHeaderRatio determines the share of vertical space given to the
// word of the day. It keeps at least three lines and at most a quarter of
// the screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	ratio := 3.0 / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

func layoutViewer(grid *ui.Grid, treeWidget *widgets.Tree, detailPara, wordPara, keysPara *widgets.Paragraph, headerRatio float64) {
	grid.Set(
		ui.NewRow(headerRatio, wordPara),
		ui.NewRow(1-headerRatio,
			ui.NewCol(0.5, treeWidget),
			ui.NewCol(0.5,
				ui.NewRow(0.7, detailPara),
				ui.NewRow(0.3, keysPara),
			),
		),
	)
}

func showSelected(treeWidget *widgets.Tree, detailPara *widgets.Paragraph) {
	selected := treeWidget.SelectedNode()
	if selected == nil {
		return
	}
	value, ok := selected.Value.(treeNodeValue)
	if !ok {
		return
	}
	detailPara.Text = describeNode(value.node)
	if nodeRatio(value.node) >= wbtree.RebalanceRatio {
		detailPara.BorderStyle = StyleWarning()
	} else {
		detailPara.BorderStyle = StyleBorder(false)
	}
}

// runViewer shows the tree structure of dict in a termui dashboard
func runViewer(dict *Dictionary) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	entries := dict.Entries()

	wordPara := widgets.NewParagraph()
	wordPara.Title = " Word of the Day "
	wordPara.Text = wordOfTheDay(entries, rnd)
	wordPara.WrapText = true
	wordPara.BorderStyle = StyleBorder(false)

	treeWidget := widgets.NewTree()
	treeWidget.Title = fmt.Sprintf(" Words (%d) ", dict.Len())
	treeWidget.TextStyle = StyleText()
	treeWidget.SelectedRowStyle = StylePrimary()
	treeWidget.BorderStyle = StyleBorder(true)
	if root := dict.Tree().Root(); root != nil {
		treeWidget.SetNodes([]*widgets.TreeNode{buildTreeNodes(root, "", 0)})
	}

	detailPara := widgets.NewParagraph()
	detailPara.Title = " Node "
	detailPara.Text = "The dictionary is empty."
	detailPara.WrapText = true
	detailPara.BorderStyle = StyleBorder(false)
	showSelected(treeWidget, detailPara)

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keyboard Shortcuts "
	keysPara.TextStyle = StyleTextMuted()
	keysPara.Text = `[<up>/<down>](fg:green) -> Move between nodes, [<pgup>/<pgdn>](fg:green) by page
[<enter>](fg:green) or [<space>](fg:green) -> Expand or collapse a node
[e](fg:green) / [c](fg:green) -> Expand or collapse everything
[<esc>](fg:green) or [q](fg:green) -> Quit`

	termWidth, termHeight := ui.TerminalDimensions()
	headerRatio := computeHeaderRatio(termHeight)
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	layoutViewer(grid, treeWidget, detailPara, wordPara, keysPara, headerRatio)
	ui.Render(grid)

	done := make(chan struct{})
	defer close(done)
	wordTi := time.NewTicker(10 * time.Second)
	defer wordTi.Stop()

	go func() {
		for {
			select {
			case <-done:
				return
			case <-wordTi.C:
				wordPara.Text = wordOfTheDay(entries, rnd)
				ui.Render(wordPara)
			}
		}
	}()

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "<C-c>", "<Escape>", "q":
			return nil
		}

		// An empty tree has no rows to move through
		if treeWidget.SelectedNode() == nil && e.ID != "<Resize>" {
			continue
		}

		switch e.ID {
		case "<Up>", "k":
			treeWidget.ScrollUp()
		case "<Down>", "j":
			treeWidget.ScrollDown()
		case "<PageUp>":
			treeWidget.ScrollPageUp()
		case "<PageDown>":
			treeWidget.ScrollPageDown()
		case "<Home>":
			treeWidget.ScrollTop()
		case "<End>":
			treeWidget.ScrollBottom()
		case "<Enter>", "<Space>":
			treeWidget.ToggleExpand()
		case "e":
			treeWidget.ExpandAll()
		case "c":
			treeWidget.CollapseAll()
			treeWidget.ScrollTop()
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
				headerRatio = computeHeaderRatio(payload.Height)
			}
			layoutViewer(grid, treeWidget, detailPara, wordPara, keysPara, headerRatio)
			ui.Clear()
		}

		showSelected(treeWidget, detailPara)
		ui.Render(grid)
	}
}
