package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.done() {
		return ""
	}

	width := m.width
	if width < 1 {
		width = 72
	}

	body := panelStyle.Width(contentWidthForStyle(width, panelStyle)).Render(m.renderList())
	footer := footerStyle.Width(contentWidthForStyle(width, footerStyle)).Render(m.footerText())

	if m.showHelp {
		help := helpStyle.Width(contentWidthForStyle(width, helpStyle)).Render(
			"Help\n- up/down: move cursor\n- 1-9: pick by number\n- enter: select\n- q: cancel\n- esc: close help")
		return lipgloss.JoinVertical(lipgloss.Left, body, footer, "", help)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m model) renderList() string {
	lines := []string{titleStyle.Render(m.title), ""}
	for i, opt := range m.options {
		label := fmt.Sprintf("%d. %s", i+1, opt.Label)
		line := "  " + label
		if i == m.cursor {
			line = highlightStyle.Render("> " + label)
		}
		if opt.Description != "" {
			line += "  " + mutedStyle.Render(opt.Description)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m model) footerText() string {
	return "up/down: move  enter: select  q: cancel  ?: help"
}

func contentWidthForStyle(totalWidth int, style lipgloss.Style) int {
	content := totalWidth - styleFrameWidth(style)
	if content < 1 {
		return 1
	}
	return content
}

func styleFrameWidth(style lipgloss.Style) int {
	return lipgloss.Width(style.Width(1).Render("x")) - 1
}
