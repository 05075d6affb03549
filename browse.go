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
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/lexicon/wbtree"
)

// Focus targets of the browser, cycled with tab
const (
	focusInput = iota
	focusWords
	focusDefinition
)

// BrowseModel is the Bubble Tea state of the dictionary browser
type BrowseModel struct {
	ready bool

	textInput  textinput.Model
	wordsList  list.Model
	definition viewport.Model

	dict *Dictionary

	focusIndex int
	matches    []wbtree.Entry
	lastQuery  string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// wordItem is a row of the words list
type wordItem struct {
	entry wbtree.Entry
}

func (i wordItem) FilterValue() string { return i.entry.Key }
func (i wordItem) Title() string       { return i.entry.Key }
func (i wordItem) Description() string { return firstLine(i.entry.Value) }

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func wordItems(entries []wbtree.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = wordItem{entry: e}
	}
	return items
}

// definitionMarkdown is the page shown for an entry in the definition pane
func definitionMarkdown(e wbtree.Entry) string {
	return fmt.Sprintf("# %s\n\n%s\n", e.Key, e.Value)
}

// NewBrowseModel creates the browser over dict, listing every word
func NewBrowseModel(dict *Dictionary) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Type a word prefix..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	wordsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	wordsList.SetShowTitle(false)
	wordsList.SetShowHelp(false)
	wordsList.SetFilteringEnabled(false)

	definition := viewport.New(0, 0)
	definition.SetContent("Select a word to see its meaning...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := BrowseModel{
		textInput:       ti,
		wordsList:       wordsList,
		definition:      definition,
		dict:            dict,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	model.updateMatches("")

	return model
}

// Init is called when the program starts
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}
	return m, nil
}

func (m BrowseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusInput {
			m.textInput.Focus()
		} else {
			m.textInput.Blur()
		}
		return m, nil
	case "enter":
		if entry, ok := m.selected(); ok && m.focusIndex != focusInput {
			return m, func() tea.Msg {
				if err := copyToClipboard(entry.Value); err != nil {
					fmt.Fprintf(os.Stderr, "Failed to copy meaning: %v\n", err)
				}
				return tea.Quit()
			}
		}
		return m, nil
	case "pgup":
		m.definition.LineUp(m.definition.Height)
		return m, nil
	case "pgdown":
		m.definition.LineDown(m.definition.Height)
		return m, nil
	case "up", "k":
		if m.focusIndex == focusWords {
			m.wordsList.CursorUp()
			m.updateDefinition()
			return m, nil
		}
		if m.focusIndex == focusDefinition {
			m.definition.LineUp(1)
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == focusWords {
			m.wordsList.CursorDown()
			m.updateDefinition()
			return m, nil
		}
		if m.focusIndex == focusDefinition {
			m.definition.LineDown(1)
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
		if query := m.textInput.Value(); query != m.lastQuery {
			m.updateMatches(query)
		}
	case focusWords:
		m.wordsList, cmd = m.wordsList.Update(msg)
		m.updateDefinition()
	default:
		m.definition, cmd = m.definition.Update(msg)
	}

	return m, cmd
}

// selected returns the entry under the list cursor
func (m *BrowseModel) selected() (wbtree.Entry, bool) {
	index := m.wordsList.Index()
	if index < 0 || index >= len(m.matches) {
		return wbtree.Entry{}, false
	}
	return m.matches[index], true
}

// updateMatches lists the words starting with query
func (m *BrowseModel) updateMatches(query string) {
	m.lastQuery = query
	m.matches = m.dict.Prefix(query)
	m.wordsList.SetItems(wordItems(m.matches))
	m.wordsList.Select(0)

	if len(m.matches) == 0 {
		m.definition.SetContent(fmt.Sprintf("No words start with %q.", query))
		return
	}
	m.updateDefinition()
}

// updateDefinition shows the meaning of the selected word
func (m *BrowseModel) updateDefinition() {
	entry, ok := m.selected()
	if !ok {
		return
	}

	page := definitionMarkdown(entry)
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(page); err == nil {
			page = rendered
		}
	}
	m.definition.SetContent(page)
	m.definition.GotoTop()
}

func (m *BrowseModel) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.wordsList.SetSize(leftWidth-2, listHeight-2)
	m.definition.Width = rightWidth - 2
	m.definition.Height = inputHeight + listHeight
}

// boxStyle picks the border and title for a pane
func (m BrowseModel) boxStyle(focus int, title string) (lipgloss.Style, string) {
	if m.focusIndex == focus {
		return m.styles.BorderFocused, " " + title + " (Active) "
	}
	return m.styles.BorderBlurred, " " + title + " "
}

// View renders the UI
func (m BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, inputTitle := m.boxStyle(focusInput, "🔍 Search Words")
	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.textInput.View(),
		))

	listStyle, listTitle := m.boxStyle(focusWords, fmt.Sprintf("📚 Words (%d)", len(m.matches)))
	listBox := listStyle.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(listTitle),
			m.wordsList.View(),
		))

	defStyle, defTitle := m.boxStyle(focusDefinition, "📖 Meaning")
	defBox := defStyle.
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(defTitle),
			m.definition.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, listBox),
		defBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m BrowseModel) renderHelp() string {
	shortcuts := [][2]string{
		{"enter", "copy meaning"},
		{"tab", "switch focus"},
		{"pgup/pgdown", "scroll meaning"},
		{"esc", "quit"},
	}

	var helpEntries []string
	for _, s := range shortcuts {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(s[0]),
				m.styles.HelpDesc.Render(s[1])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBrowser starts the Bubble Tea dictionary browser
func runBrowser(dict *Dictionary) error {
	program := tea.NewProgram(
		NewBrowseModel(dict),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
