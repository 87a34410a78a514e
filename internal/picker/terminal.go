package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/emoti/internal/config"
	"github.com/muurk/emoti/internal/entries"
	"github.com/muurk/emoti/internal/ui"
)

// entryItem wraps a DisplayEntry for use with bubbles/list
type entryItem struct {
	entry entries.DisplayEntry
}

// FilterValue filters by key and value
func (e entryItem) FilterValue() string {
	return e.entry.Key + " " + e.entry.Value
}

// entryDelegate renders one entry per line in the configured style
type entryDelegate struct {
	style lipgloss.Style
}

func (d entryDelegate) Height() int { return 1 }

func (d entryDelegate) Spacing() int { return 0 }

func (d entryDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d entryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(entryItem)
	if !ok {
		return
	}

	// Tabs render unpredictably inside lipgloss blocks
	line := strings.Replace(it.entry.Text, "\t", "  ", 1)

	if index == m.Index() {
		fmt.Fprint(w, ui.SelectedItemStyle.Render("→ ")+d.style.Bold(true).Render(line))
		return
	}
	fmt.Fprint(w, "  "+d.style.Render(line))
}

// pickKeyMap defines the extra key bindings of the terminal picker
type pickKeyMap struct {
	Choose key.Binding
	Cancel key.Binding
}

var pickKeys = pickKeyMap{
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// pickModel is the Bubble Tea model of the terminal picker
type pickModel struct {
	list      list.Model
	choice    int
	cancelled bool
}

func newPickModel(items []entries.DisplayEntry, style config.Style) pickModel {
	listItems := make([]list.Item, len(items))
	for i, e := range items {
		listItems[i] = entryItem{entry: e}
	}

	width, height := ui.GetTerminalSize()
	l := list.New(listItems, entryDelegate{style: ui.EntryStyle(style)}, width, height-2)
	l.Title = "emoti"
	l.Styles.Title = ui.TitleStyle
	l.SetShowStatusBar(false)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{pickKeys.Choose, pickKeys.Cancel}
	}

	return pickModel{list: l, choice: -1}
}

// Init implements tea.Model
func (m pickModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		// While filtering, keys belong to the filter input
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, pickKeys.Choose):
			if it, ok := m.list.SelectedItem().(entryItem); ok {
				m.choice = it.entry.Index
			}
			return m, tea.Quit
		case key.Matches(msg, pickKeys.Cancel):
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m pickModel) View() string {
	return ui.AppStyle.Render(m.list.View())
}

// Terminal picks entries from a list drawn in the current terminal.
type Terminal struct {
	style config.Style
	opts  []tea.ProgramOption
}

// NewTerminal creates a terminal picker that renders entries in style.
func NewTerminal(style config.Style, opts ...tea.ProgramOption) *Terminal {
	return &Terminal{style: style, opts: opts}
}

// Pick runs the list until the user chooses an entry or cancels.
func (t *Terminal) Pick(ctx context.Context, items []entries.DisplayEntry) (int, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, t.opts...)
	p := tea.NewProgram(newPickModel(items, t.style), opts...)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			err = ctx.Err()
		}
		return -1, &Error{Picker: string(KindTerminal), ExitCode: -1, Err: err}
	}

	m, ok := final.(pickModel)
	if !ok {
		return -1, &Error{Picker: string(KindTerminal), ExitCode: -1, Err: fmt.Errorf("unexpected model %T", final)}
	}
	if m.cancelled || m.choice < 0 {
		return -1, ErrNoSelection
	}
	if m.choice >= len(items) {
		return -1, &Error{Picker: string(KindTerminal), ExitCode: -1, Output: fmt.Sprint(m.choice)}
	}
	return m.choice, nil
}
