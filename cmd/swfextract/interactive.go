package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/swf-transcoder/swf"
	"github.com/wippyai/swf-transcoder/transcoder"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	idStyle = lipgloss.NewStyle().
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
	stateSelect modelState = iota
	stateOutput
	stateDone
)

type interactiveModel struct {
	err      error
	filename string
	data     []byte
	movie    *swf.Movie
	exports  []swf.ExportEntry
	output   textinput.Model
	result   string
	selected int
	state    modelState
}

func newInteractiveModel(filename string) (*interactiveModel, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	movie, err := swf.ReadMovie(data)
	if err != nil {
		return nil, err
	}
	exports, err := transcoder.ListExports(data)
	if err != nil {
		return nil, err
	}
	if len(exports) == 0 {
		return nil, fmt.Errorf("%s exports no symbols", filename)
	}

	output := textinput.New()
	output.Placeholder = "symbol.swf"
	output.CharLimit = 256
	output.Width = 40

	return &interactiveModel{
		filename: filename,
		data:     data,
		movie:    movie,
		exports:  exports,
		output:   output,
	}, nil
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateSelect:
		switch keyMsg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.exports)-1 {
				m.selected++
			}
		case "enter":
			m.state = stateOutput
			m.output.SetValue("")
			m.output.Focus()
			return m, textinput.Blink
		}

	case stateOutput:
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateSelect
			m.output.Blur()
		case "enter":
			m.extract()
			m.state = stateDone
			m.output.Blur()
		default:
			var cmd tea.Cmd
			m.output, cmd = m.output.Update(msg)
			return m, cmd
		}

	case stateDone:
		switch keyMsg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		default:
			m.state = stateSelect
			m.err = nil
			m.result = ""
		}
	}

	return m, nil
}

func (m *interactiveModel) extract() {
	outFile := m.output.Value()
	if outFile == "" {
		outFile = m.output.Placeholder
	}
	name := m.exports[m.selected].Name

	var buf bytes.Buffer
	res, err := transcoder.Extract(m.data, []byte(name), &buf, transcoder.Options{})
	if err != nil {
		m.err = err
		return
	}
	if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
		m.err = err
		return
	}

	m.result = fmt.Sprintf("wrote %s (%d bytes)", outFile, res.FileLength)
	if res.Bounds != nil {
		m.result += fmt.Sprintf(", bounds %dx%d twips", res.Bounds.Width, res.Bounds.Height)
	}
}

func (m *interactiveModel) View() string {
	var b bytes.Buffer

	header := fmt.Sprintf("%s  v%d  %d exported symbol(s)",
		m.filename, m.movie.Version, len(m.exports))
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		for i, e := range m.exports {
			line := fmt.Sprintf("%s %s", idStyle.Render(fmt.Sprintf("%5d", e.ID)), symbolStyle.Render(e.Name))
			if i == m.selected {
				line = selectedStyle.Render(fmt.Sprintf("%5d %s", e.ID, e.Name))
			}
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("↑/↓ select · enter extract · q quit"))

	case stateOutput:
		b.WriteString("  extract " + symbolStyle.Render(m.exports[m.selected].Name) + " to:\n\n")
		b.WriteString("  " + m.output.View() + "\n")
		b.WriteString("\n" + helpStyle.Render("enter confirm · esc back"))

	case stateDone:
		if m.err != nil {
			b.WriteString("  " + errorStyle.Render(m.err.Error()) + "\n")
		} else {
			b.WriteString("  " + resultStyle.Render(m.result) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("any key to continue · q quit"))
	}

	b.WriteString("\n")
	return b.String()
}

func runInteractive(filename string) error {
	m, err := newInteractiveModel(filename)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
