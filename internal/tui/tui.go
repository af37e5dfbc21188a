// Package tui is a terminal client for the Plox HTTP API.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// parseMsg carries the server's answer for one submitted source text.
type parseMsg struct {
	output string
	lines  int
	err    error
}

func parseCmd(addr, source string) tea.Cmd {
	return func() tea.Msg {
		out, err := parseSource(addr, source)
		return parseMsg{output: out, lines: strings.Count(out, "\n") + 1, err: err}
	}
}

type keyMap struct {
	Quit  key.Binding
	Run   key.Binding
	Clear key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "parse"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear input"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Clear, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Clear},
		{k.Quit},
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

type Model struct {
	addr     string
	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	status   string
	loading  bool
	err      error
	width    int
	height   int
}

func NewModel(addr string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type an expression. Use :q to exit."
	ta.Focus()
	ta.Prompt = "> "
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("The expression tree will appear here."))

	h := help.New()

	return Model{
		addr:     addr,
		input:    ta,
		viewport: vp,
		help:     h,
		keys:     newKeyMap(),
		status:   "Connected to " + addr,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		if key.Matches(msg, m.keys.Clear) {
			m.input.Reset()
			return m, nil
		}

		if key.Matches(msg, m.keys.Run) {
			source := strings.TrimSpace(m.input.Value())
			if source == "" {
				return m, nil
			}
			if source == ":q" || source == ":quit" || source == "exit" {
				return m, tea.Quit
			}

			m.loading = true
			m.status = "Parsing..."
			m.err = nil
			return m, parseCmd(m.addr, m.input.Value())
		}
	case parseMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Parse failed"
			m.viewport.SetContent(errorStyle.Render(msg.err.Error()))
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Parsed (%d lines)", msg.lines)
			m.viewport.SetContent(msg.output)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize splits the terminal between the input box and the tree viewport.
// Everything else takes a fixed number of lines.
func (m *Model) resize() {
	const chromeLines = 10
	const minInputHeight = 3
	const minResultsHeight = 3

	available := max(m.height-chromeLines, 1)

	var inputHeight, resultsHeight int
	if available <= minInputHeight+minResultsHeight {
		inputHeight = max(available/2, 1)
		resultsHeight = max(available-inputHeight, 1)
	} else {
		inputHeight = max(available/3, minInputHeight)
		resultsHeight = max(available-inputHeight, minResultsHeight)
	}

	m.input.SetWidth(m.width - 6)
	m.input.SetHeight(inputHeight)
	m.viewport.Width = m.width - 6
	m.viewport.Height = resultsHeight
}

func (m Model) View() string {
	title := titleStyle.Render("Plox") + " " + subtle.Render("expression viewer")
	addr := subtle.Render("Server: " + m.addr)

	status := m.status
	if m.loading {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if m.err != nil {
		statusLine += "  " + errorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		addr,
		"",
		"Source:",
		boxStyle.Render(m.input.View()),
		"",
		"Tree:",
		boxStyle.Render(m.viewport.View()),
		"",
		statusLine,
		m.help.View(m.keys),
	)
}

// Run starts the client against the server at addr.
func Run(addr string) error {
	if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
		addr = "http://" + addr
	}

	p := tea.NewProgram(NewModel(addr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
