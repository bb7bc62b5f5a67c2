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
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/bimap/bimap"
)

// Styles holds all the styling for the browser
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Cursor         lipgloss.Style
	Key            lipgloss.Style
	Value          lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the styles for the detected color scheme
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(scheme.Accent).
			Bold(true),
		Key: lipgloss.NewStyle().
			Foreground(scheme.Text),
		Value: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	First  key.Binding
	Last   key.Binding
	Flip   key.Binding
	Delete key.Binding
	Copy   key.Binding
	Jump   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Flip, k.Jump, k.Delete, k.Copy, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last},
		{k.Flip, k.Jump, k.Delete, k.Copy},
		{k.Help, k.Quit},
	}
}

var browseKeys = browseKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
	First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
	Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
	Flip:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "flip side")),
	Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete pair")),
	Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy partner")),
	Jump:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump to key")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseRow is one line of the pair listing.
type browseRow struct {
	key, value string
	current    bool
}

// browseModel is the Bubble Tea state of the pair browser. It walks the
// pairs with a bimap iterator; tab flips the iterator to the other side
// without losing the current pair.
type browseModel struct {
	session *Session
	it      *bimap.Iterator[string]
	side    side

	jumpInput    textinput.Model
	jumping      bool
	helpViewport viewport.Model
	showHelp     bool
	help         help.Model
	keys         browseKeyMap

	status    string
	statusErr bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
	ready  bool
}

func newBrowseModel(session *Session) browseModel {
	ti := textinput.New()
	ti.Placeholder = "key to jump to..."
	ti.CharLimit = 256
	ti.Width = 40

	m := browseModel{
		session:      session,
		it:           session.Pairs().LeftIterator(),
		side:         sideLeft,
		jumpInput:    ti,
		helpViewport: viewport.New(0, 0),
		help:         help.New(),
		keys:         browseKeys,
		styles:       NewStyles(),
	}
	if m.it.HasNext() {
		m.it.Next()
	}
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.helpViewport.Width = max(msg.Width-4, 0)
		m.helpViewport.Height = max(msg.Height-6, 0)
		m.ready = true
		return m, nil
	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}
		if m.showHelp {
			return m.updateHelp(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m browseModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.it.HasPrev() {
			m.it.Prev()
		}
	case key.Matches(msg, m.keys.Down):
		if m.it.HasNext() {
			m.it.Next()
		}
	case key.Matches(msg, m.keys.First):
		m.it = m.freshIterator()
		if m.it.HasNext() {
			m.it.Next()
		}
	case key.Matches(msg, m.keys.Last):
		m.toLast()
	case key.Matches(msg, m.keys.Flip):
		m.it = m.it.Flip()
		m.side = 1 - m.side
	case key.Matches(msg, m.keys.Delete):
		m.deleteCurrent()
	case key.Matches(msg, m.keys.Copy):
		if _, v, ok := m.it.Current(); ok {
			if err := clipboard.WriteAll(v); err != nil {
				m.setError(fmt.Sprintf("copy failed: %v", err))
			} else {
				m.status = fmt.Sprintf("copied %q", v)
			}
		}
	case key.Matches(msg, m.keys.Jump):
		m.jumping = true
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.helpViewport.SetContent(m.renderHelpPage())
		m.helpViewport.GotoTop()
	}
	return m, nil
}

func (m browseModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	case "enter":
		m.jumping = false
		m.jumpInput.Blur()
		m.jumpTo(m.jumpInput.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m browseModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "q", "esc":
		m.showHelp = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.helpViewport, cmd = m.helpViewport.Update(msg)
	return m, cmd
}

func (m *browseModel) freshIterator() *bimap.Iterator[string] {
	if m.side == sideLeft {
		return m.session.Pairs().LeftIterator()
	}
	return m.session.Pairs().RightIterator()
}

func (m *browseModel) view() *bimap.View[string] {
	if m.side == sideLeft {
		return m.session.Pairs().LeftView()
	}
	return m.session.Pairs().RightView()
}

func (m *browseModel) toLast() {
	k, _, ok := m.view().Last()
	if !ok {
		return
	}
	m.it = m.freshIterator()
	m.it.Seek(k)
}

// jumpTo moves onto the first key not less than target, or the last pair
// when every key is smaller.
func (m *browseModel) jumpTo(target string) {
	it := m.freshIterator()
	if _, _, err := it.Seek(target); err != nil {
		m.toLast()
		m.setError(fmt.Sprintf("no %s key at or after %q", m.side, target))
		return
	}
	m.it = it
}

// deleteCurrent removes the pair under the cursor and moves onto the pair
// that followed it, or the one before when it was the last.
func (m *browseModel) deleteCurrent() {
	k, v, ok := m.it.Current()
	if !ok {
		return
	}
	if err := m.it.Remove(); err != nil {
		// The cursor was not moved onto this pair by Next or Prev; reseek.
		m.it = m.freshIterator()
		m.it.Seek(k)
		if err := m.it.Remove(); err != nil {
			m.setError(err.Error())
			return
		}
	}
	if m.side == sideLeft {
		m.session.Forget(k, v)
	} else {
		m.session.Forget(v, k)
	}
	m.status = fmt.Sprintf("deleted %s ↔ %s", k, v)

	if m.it.HasNext() {
		m.it.Next()
	}
}

func (m *browseModel) setError(s string) {
	m.status = s
	m.statusErr = true
}

// visibleRows returns up to n rows around the cursor, the cursor's row
// roughly in the middle.
func (m browseModel) visibleRows(n int) []browseRow {
	k, v, ok := m.it.Current()
	if !ok || n <= 0 {
		return nil
	}

	var before []browseRow
	back := m.it.Clone()
	for len(before) < (n-1)/2 && back.HasPrev() {
		pk, pv, _ := back.Prev()
		before = append(before, browseRow{key: pk, value: pv})
	}

	rows := make([]browseRow, 0, n)
	for i := len(before) - 1; i >= 0; i-- {
		rows = append(rows, before[i])
	}
	rows = append(rows, browseRow{key: k, value: v, current: true})

	fwd := m.it.Clone()
	for len(rows) < n && fwd.HasNext() {
		nk, nv, _ := fwd.Next()
		rows = append(rows, browseRow{key: nk, value: nv})
	}
	return rows
}

func (m browseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 8 {
		return "Terminal too small. Please resize your terminal."
	}

	if m.showHelp {
		return m.styles.BorderFocused.
			Width(m.width - 2).
			Render(lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Title.Render(" 📖 Help (press ? to close) "),
				m.helpViewport.View(),
			))
	}

	listHeight := m.height - 7
	title := fmt.Sprintf(" 🔗 %d pairs by %s key ", m.session.Pairs().Len(), m.side)

	var body strings.Builder
	rows := m.visibleRows(listHeight)
	if len(rows) == 0 {
		body.WriteString(m.styles.Value.Render("no pairs"))
	}
	for i, r := range rows {
		if i > 0 {
			body.WriteByte('\n')
		}
		line := fmt.Sprintf("%s  →  %s", m.styles.Key.Render(r.key), m.styles.Value.Render(r.value))
		if r.current {
			line = m.styles.Cursor.Render("▶ ") + line
		} else {
			line = "  " + line
		}
		body.WriteString(line)
	}

	list := m.styles.BorderFocused.
		Width(m.width - 2).
		Height(listHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, m.styles.Title.Render(title), body.String()))

	var footer string
	switch {
	case m.jumping:
		footer = m.styles.InputPrompt.Render("jump: ") + m.jumpInput.View()
	case m.status != "" && m.statusErr:
		footer = m.styles.ErrorMessage.Render(m.status)
	case m.status != "":
		footer = m.styles.SuccessMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		list,
		footer,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(m.help.View(m.keys)),
	)
}

func (m *browseModel) renderHelpPage() string {
	var b strings.Builder
	b.WriteString("# Browsing pairs\n\n")
	b.WriteString("The cursor sits on one pair. Tab shows the same pairs ordered by the other side's keys, keeping the cursor on the same pair.\n\n")
	b.WriteString("| Key | Action |\n|---|---|\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "| `%s` | %s |\n", h.Key, h.Desc)
		}
	}

	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(b.String()); err == nil {
			return rendered
		}
	}
	return b.String()
}

// runBrowser starts the Bubble Tea pair browser
func runBrowser(session *Session) error {
	InitializeColors()

	program := tea.NewProgram(
		newBrowseModel(session),
		tea.WithAltScreen(),
		tea.WithOutput(os.Stderr),
	)

	_, err := program.Run()
	return err
}
