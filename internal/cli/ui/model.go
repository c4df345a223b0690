package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Option is one selectable row.
type Option struct {
	Value       string
	Label       string
	Description string
}

type model struct {
	title     string
	options   []Option
	cursor    int
	chosen    int
	cancelled bool
	showHelp  bool
	width     int
	keys      keyMap
}

func newModel(title string, options []Option) model {
	return model{
		title:   title,
		options: options,
		cursor:  0,
		chosen:  -1,
		width:   72,
		keys:    defaultKeyMap(),
	}
}

func (model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return m, nil
		}

		if m.showHelp {
			if key.Matches(msg, m.keys.CloseHelp) {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.CloseHelp):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if len(m.options) == 0 {
				return m, nil
			}
			m.chosen = m.cursor
			return m, tea.Quit
		case key.Matches(msg, m.keys.CursorDown):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.CursorUp):
			if m.cursor > 0 {
				m.cursor--
			}
		default:
			if i, ok := m.digitIndex(msg); ok {
				m.cursor = i
				m.chosen = i
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// digitIndex maps "1".."9" onto the matching option, like the numbered menu.
func (m model) digitIndex(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	i := int(r - '1')
	if i >= len(m.options) {
		return 0, false
	}
	return i, true
}

func (m model) done() bool {
	return m.cancelled || m.chosen >= 0
}
