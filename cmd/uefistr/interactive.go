package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	uefistrings "github.com/wippyai/uefi-strings"
	"github.com/wippyai/uefi-strings/status"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	nulStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	remainderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	minCapacity = 1
	maxCapacity = 64
)

type interactiveModel struct {
	input    textinput.Model
	capacity int
	useUCS2  bool
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "type text to encode"
	ti.Focus()
	ti.SetValue("hi\\n")
	return &interactiveModel{
		input:    ti,
		capacity: 8,
		useUCS2:  true,
	}
}

func runInteractive() error {
	_, err := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen()).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.useUCS2 = !m.useUCS2
			return m, nil
		case "up", "right":
			if m.capacity < maxCapacity {
				m.capacity++
			}
			return m, nil
		case "down", "left":
			if m.capacity > minCapacity {
				m.capacity--
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// inputText interprets escape sequences so line feeds and NULs can be typed.
func (m *interactiveModel) inputText() string {
	s := m.input.Value()
	s = strings.ReplaceAll(s, "\\n", "\n")
	s = strings.ReplaceAll(s, "\\r", "\r")
	s = strings.ReplaceAll(s, "\\0", "\x00")
	return s
}

type encodeResult struct {
	units []uint64
	rest  string
	err   error
}

func (m *interactiveModel) encode(text string) encodeResult {
	if m.useUCS2 {
		buf := make([]uint16, m.capacity)
		s, rest, err := uefistrings.Encode(uefistrings.UCS2{}, text, buf)
		if err != nil {
			return encodeResult{err: err}
		}
		units := make([]uint64, 0, len(s.UnitsWithNul()))
		for _, u := range s.UnitsWithNul() {
			units = append(units, uint64(u))
		}
		return encodeResult{units: units, rest: rest}
	}

	buf := make([]uint8, m.capacity)
	s, rest, err := uefistrings.Encode(uefistrings.Latin1{}, text, buf)
	if err != nil {
		return encodeResult{err: err}
	}
	units := make([]uint64, 0, len(s.UnitsWithNul()))
	for _, u := range s.UnitsWithNul() {
		units = append(units, uint64(u))
	}
	return encodeResult{units: units, rest: rest}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uefi-strings truncation explorer"))
	b.WriteString("\n\n")

	kind := "latin1"
	if m.useUCS2 {
		kind = "ucs2"
	}
	b.WriteString(labelStyle.Render("Kind:     "))
	b.WriteString(kind)
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Capacity: "))
	b.WriteString(fmt.Sprintf("%d units (%d usable + terminator)", m.capacity, m.capacity-1))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	res := m.encode(m.inputText())
	st := status.FromError(res.err)

	b.WriteString(labelStyle.Render("Status:   "))
	switch {
	case st.IsError():
		b.WriteString(errorStyle.Render(st.String()))
	case st.IsWarning():
		b.WriteString(warnStyle.Render(st.String()))
	default:
		b.WriteString(okStyle.Render(st.String()))
	}
	b.WriteString("\n")

	if res.err != nil {
		b.WriteString(errorStyle.Render(res.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(labelStyle.Render("Units:    "))
		for i, u := range res.units {
			if i == len(res.units)-1 {
				b.WriteString(nulStyle.Render("0000"))
			} else {
				b.WriteString(unitStyle.Render(fmt.Sprintf("%04X", u)))
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Rest:     "))
		if res.rest != "" {
			b.WriteString(remainderStyle.Render(fmt.Sprintf("%q", res.rest)))
		} else {
			b.WriteString("none")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ capacity · tab kind · \\n \\r \\0 escapes · esc quit"))
	b.WriteString("\n")

	return b.String()
}
