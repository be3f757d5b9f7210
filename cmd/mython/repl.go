package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mython-lang/mython/mython"
)

var (
	accentColor  = lipgloss.Color("#3B82F6")
	successColor = lipgloss.Color("#10B981")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	keyColor     = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	outputStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(keyColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	session     *mython.Session
	sink        *bytes.Buffer
	pending     []string
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous line"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next line"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "print 'hello'"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = ">>> "

	sink := new(bytes.Buffer)
	interp := mython.NewInterpreter(mython.Config{Output: sink})

	return replModel{
		textInput:  ti,
		session:    interp.NewSession(),
		sink:       sink,
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			m = m.submitLine(m.textInput.Value())
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// submitLine feeds one input line to the session. A line opening a block
// (":" suffix) starts a pending buffer that keeps collecting until an empty
// line flushes it, mirroring the interactive behavior of python.
func (m replModel) submitLine(line string) replModel {
	trimmed := strings.TrimRight(line, " ")
	if len(m.pending) > 0 {
		if strings.TrimSpace(trimmed) == "" {
			return m.execute(strings.Join(m.pending, "\n") + "\n")
		}
		m.pending = append(m.pending, trimmed)
		m.cmdHistory = append(m.cmdHistory, trimmed)
		return m
	}
	if strings.TrimSpace(trimmed) == "" {
		return m
	}
	m.cmdHistory = append(m.cmdHistory, trimmed)
	if strings.HasSuffix(strings.TrimSpace(trimmed), ":") {
		m.pending = append(m.pending, trimmed)
		return m
	}
	return m.execute(trimmed + "\n")
}

func (m replModel) execute(source string) replModel {
	m.pending = nil
	m.sink.Reset()
	err := m.session.Eval(source)
	entry := historyEntry{input: strings.TrimRight(source, "\n")}
	if err != nil {
		entry.output = err.Error()
		entry.isErr = true
	} else {
		entry.output = strings.TrimRight(m.sink.String(), "\n")
	}
	m.history = append(m.history, entry)
	return m
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Mython REPL")
	b.WriteString(header + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		for _, line := range strings.Split(entry.input, "\n") {
			b.WriteString(mutedStyle.Render("  › ") + line + "\n")
		}
		if entry.output != "" {
			style := outputStyle
			if entry.isErr {
				style = errorStyle
			}
			for _, line := range strings.Split(entry.output, "\n") {
				b.WriteString("  " + style.Render(line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(m.pending) > 0 {
		for _, line := range m.pending {
			b.WriteString(mutedStyle.Render("  … ") + line + "\n")
		}
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("enter") + helpDescStyle.Render(" run  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
