package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rata-lang/rata/ast"
	ratalog "github.com/rata-lang/rata/core/log"
	"github.com/rata-lang/rata/parser"
	ratastringx "github.com/rata-lang/rata/utils/stringx"
)

// View selects which rendering of the last parse result is shown
type View int

const (
	ViewTree View = iota
	ViewTokens
)

// sampleSource seeds the editor so the tree view has something to show.
const sampleSource = `library Math as m

module Sample {
  scale = ~ .x * 100
  result = data |> clean() |> scale()
}`

// Model is the main TUI model
type Model struct {
	// State
	view    View
	width   int
	height  int
	ready   bool
	loading bool

	// Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Parse state
	parser   *parser.Parser
	node     ast.Node
	tokens   []parser.Token
	parseErr error
	elapsed  time.Duration
	content  string
}

// NewModel creates the initial TUI model
func NewModel() Model {
	ta := textarea.New()
	ta.Placeholder = "Enter Rata source..."
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.ShowLineNumbers = true
	ta.SetValue(sampleSource)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	// Parser diagnostics show up in the viewport, not in a log stream.
	logger := ratalog.New().WithLevel(ratalog.LevelFatal).WithOutput(io.Discard)
	p, _ := parser.New(parser.Options{Logger: logger})

	return Model{
		view:     ViewTree,
		textarea: ta,
		spinner:  sp,
		parser:   p,
	}
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, m.parseCmd(sampleSource))
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % 2
			m.updateContent()
			return m, nil

		case "ctrl+p":
			if m.loading {
				return m, nil
			}
			source := m.textarea.Value()
			if strings.TrimSpace(source) == "" {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.parseCmd(source))

		case "ctrl+l":
			m.textarea.Reset()
			m.node = nil
			m.tokens = nil
			m.parseErr = nil
			m.elapsed = 0
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			// Header, input box, and status bar take 16 rows.
			m.viewport = viewport.New(msg.Width, max(3, msg.Height-16))
			m.viewport.YPosition = 3
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(3, msg.Height-16)
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateContent()

	case parseResultMsg:
		m.loading = false
		m.node = msg.node
		m.tokens = msg.tokens
		m.parseErr = msg.err
		m.elapsed = msg.elapsed
		m.updateContent()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update components
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	if m.loading {
		s.WriteString(m.spinner.View() + " Parsing...\n")
	}
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("Rata AST Explorer")

	tabs := []string{"Tree", "Tokens"}
	var renderedTabs []string
	for i, tab := range tabs {
		if View(i) == m.view {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m Model) renderFooter() string {
	help := "Tab: View • Ctrl+P: Parse • Ctrl+L: Clear • Ctrl+C: Quit"
	status := m.statusText()

	spacer := strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(status)-4))
	return StatusBarStyle.Width(m.width).Render(help + spacer + status)
}

func (m Model) statusText() string {
	switch {
	case m.loading:
		return "parsing..."
	case m.parseErr != nil:
		return "parse failed"
	case m.node != nil:
		return fmt.Sprintf("%d tokens • %s", len(m.tokens), m.elapsed.Round(time.Microsecond))
	default:
		return ""
	}
}

// updateContent rebuilds the viewport for the active view.
func (m *Model) updateContent() {
	switch m.view {
	case ViewTree:
		switch {
		case m.parseErr != nil:
			m.content = RenderError(m.parseErr.Error())
		case m.node != nil:
			m.content = TreeStyle.Render(renderTree(m.node))
		default:
			m.content = HintStyle.Render("Press ctrl+p to parse the source.")
		}
	case ViewTokens:
		switch {
		case len(m.tokens) > 0:
			m.content = renderTokenTable(m.tokens)
		case m.parseErr != nil:
			m.content = RenderError(m.parseErr.Error())
		default:
			m.content = HintStyle.Render("Press ctrl+p to tokenize the source.")
		}
	}

	m.viewport.SetContent(m.content)
	m.viewport.GotoTop()
}

func renderTree(node ast.Node) string {
	tv := ast.NewTreeVisitor()
	node.Accept(tv)
	return tv.String()
}

func renderTokenTable(tokens []parser.Token) string {
	var b strings.Builder

	header := ratastringx.PadRight("POS", 8, ' ') + ratastringx.PadRight("TYPE", 14, ' ') + "VALUE"
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, tok := range tokens {
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		b.WriteString(ratastringx.PadRight(pos, 8, ' '))
		b.WriteString(ratastringx.PadRight(tok.Type.String(), 14, ' '))
		b.WriteString(tok.Value)
		b.WriteString("\n")
	}

	return b.String()
}

// parseCmd tokenizes and parses the source off the update loop.
func (m Model) parseCmd(source string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		// A lex failure surfaces through ParseLine below.
		tokens, _ := parser.TokenizeInput(source)
		node, err := m.parser.ParseLine(source)

		return parseResultMsg{
			node:    node,
			tokens:  tokens,
			err:     err,
			elapsed: time.Since(start),
		}
	}
}

// Message types

type parseResultMsg struct {
	node    ast.Node
	tokens  []parser.Token
	err     error
	elapsed time.Duration
}
