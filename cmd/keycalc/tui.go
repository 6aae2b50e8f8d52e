package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/keycalc"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	displayStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(28).Align(lipgloss.Right)
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// model is the interactive keypad. It owns no calculator state of its own;
// every key goes to calc and the view shows calc's display.
type model struct {
	calc *keycalc.Calculator
}

func runTUI(calc *keycalc.Calculator) error {
	_, err := tea.NewProgram(model{calc: calc}).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		press(m.calc, '=')
	case tea.KeyEsc:
		press(m.calc, 'c')
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == 'q' {
				return m, tea.Quit
			}
			press(m.calc, r)
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("keycalc"))
	b.WriteString("\n")
	text := m.calc.Display()
	switch _, err := m.calc.Result(); {
	case err != nil:
		text = errorStyle.Render(text)
	case m.calc.HasResult():
		text = resultStyle.Render(text)
	}
	b.WriteString(displayStyle.Render(text))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("0-9 . + - * / • = or enter evaluate • c or esc clear • q quit"))
	b.WriteString("\n")
	return b.String()
}
