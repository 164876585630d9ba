package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textSource is the part of *typewriter.Cycler the view reads.
type textSource interface {
	CurrentText() string
	Stop()
}

type frameMsg time.Time

const cursorPeriod = 500 * time.Millisecond

var (
	roleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#67E8F9")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type model struct {
	source   textSource
	name     string
	interval time.Duration

	elapsed  time.Duration
	text     string
	quitting bool
}

func newModel(source textSource, name string, interval time.Duration) model {
	return model{source: source, name: name, interval: interval}
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.source.Stop()
			m.quitting = true
			return m, tea.Quit
		}
	case frameMsg:
		// One read of the cycler per rendered frame.
		m.text = m.source.CurrentText()
		m.elapsed += m.interval
		return m, m.tick()
	}
	return m, nil
}

func (m model) cursorVisible() bool {
	return (m.elapsed/cursorPeriod)%2 == 0
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	cursor := " "
	if m.cursorVisible() {
		cursor = cursorStyle.Render("|")
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(roleStyle.Render(strings.ToUpper(m.text)))
	b.WriteString(cursor)
	b.WriteString("\n\n  Hi, I'm ")
	b.WriteString(nameStyle.Render(m.name))
	b.WriteString("\n\n  ")
	b.WriteString(hintStyle.Render("q to quit"))
	b.WriteString("\n")
	return b.String()
}
