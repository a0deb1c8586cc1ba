package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arraykit/typemap/descriptor"
	"github.com/arraykit/typemap/mapper"
	"github.com/arraykit/typemap/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateInput
	stateShowResult
)

type entry struct {
	name    string
	preview string
}

type interactiveModel struct {
	err      error
	input    textinput.Model
	entries  []entry
	native   string
	canon    string
	itemSize int
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `{"class": "H5T_STRING", "strsize": 10, "cset": "H5T_CSET_ASCII"}`
	ti.Prompt = "descriptor: "
	ti.Width = 76

	var entries []entry
	for _, base := range registry.Names() {
		for _, suffix := range []string{"LE", "BE"} {
			name := base + suffix
			preview := ""
			if dt, err := registry.Resolve(name, registry.ClassAny); err == nil {
				preview = dt.String()
			}
			entries = append(entries, entry{name: name, preview: preview})
		}
	}

	return &interactiveModel{
		input:   ti,
		entries: entries,
		state:   stateBrowse,
	}
}

type evalMsg struct {
	err      error
	native   string
	canon    string
	itemSize int
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInput {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "e":
			if m.state == stateBrowse {
				m.state = stateInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				name := m.entries[m.selected].name
				return m, evalDescriptor([]byte(`"` + name + `"`))

			case stateInput:
				m.input.Blur()
				return m, evalDescriptor([]byte(m.input.Value()))

			case stateShowResult:
				m.state = stateBrowse
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInput:
				m.state = stateBrowse
				m.input.Blur()
			case stateShowResult:
				m.state = stateBrowse
				m.err = nil
			}
		}

	case evalMsg:
		m.err = msg.err
		m.native = msg.native
		m.canon = msg.canon
		m.itemSize = msg.itemSize
		m.state = stateShowResult
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func evalDescriptor(data []byte) tea.Cmd {
	return func() tea.Msg {
		t, err := descriptor.Unmarshal(data)
		if err != nil {
			return evalMsg{err: err}
		}

		canon, err := mapper.Canonicalize(t)
		if err != nil {
			return evalMsg{err: err}
		}
		canonJSON, err := descriptor.Marshal(canon)
		if err != nil {
			return evalMsg{err: err}
		}

		dt, err := mapper.BuildTop(t)
		if err != nil {
			return evalMsg{err: err, canon: string(canonJSON)}
		}

		return evalMsg{
			native:   dt.String(),
			canon:    string(canonJSON),
			itemSize: dt.ItemSize(),
		}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Type Mapper"))
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString("Select a predefined type, or press e to enter a descriptor:\n\n")
		for i, e := range m.entries {
			line := nameStyle.Render(e.name)
			if e.preview != "" {
				line += "  " + typeStyle.Render(e.preview)
			}
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + e.name))
				if e.preview != "" {
					b.WriteString("  " + typeStyle.Render(e.preview))
				}
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter map • e edit descriptor • q quit"))

	case stateInput:
		b.WriteString("Enter a wire descriptor (JSON):\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter map • esc back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			if m.canon != "" {
				b.WriteString("\n\nCanonical: " + typeStyle.Render(m.canon))
			}
		} else {
			b.WriteString("Native type: " + resultStyle.Render(m.native))
			b.WriteString(fmt.Sprintf("\nItem size:   %d bytes", m.itemSize))
			b.WriteString("\nCanonical:   " + typeStyle.Render(m.canon))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
