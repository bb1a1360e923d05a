// Package tui is the terminal explorer: the navigation tree on the left, the
// highlighted file on the right, and a draggable divider between them.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ziadkadry99/codeview/internal/config"
	"github.com/ziadkadry99/codeview/internal/explorer"
	"github.com/ziadkadry99/codeview/internal/highlight"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dirStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	fileStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	activeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("237"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	handleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	dragStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	pathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	linkStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Underline(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	placeholderSty = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Layout rows outside the tree and content panes.
const (
	headerHeight  = 1
	footerHeight  = 1
	contentHeader = 2
	resizeStep    = 2
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Collapse key.Binding
	Narrower key.Binding
	Wider    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
	Collapse: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse all")),
	Narrower: key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "narrower")),
	Wider:    key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "wider")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "scroll down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// StateOptions returns explorer options sized in terminal cells.
func StateOptions(cfg *config.Config, logger *zap.Logger) explorer.Options {
	opts := explorer.OptionsFromConfig(cfg, cfg.Terminal, logger)
	opts.Unit = 2
	opts.Offset = 1
	return opts
}

// Model is the bubbletea model of the terminal explorer.
type Model struct {
	state       *explorer.State
	highlighter highlight.Highlighter
	title       string

	cursor   int
	offset   int
	viewport viewport.Model
	shown    string // path rendered into the viewport

	width   int
	height  int
	message string
}

// New returns a model over state.
func New(state *explorer.State, h highlight.Highlighter, title string) Model {
	return Model{
		state:       state,
		highlighter: h,
		title:       title,
		viewport:    viewport.New(40, 10),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.state.Rows()
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Activate):
		if m.cursor < len(rows) {
			m.activate(rows[m.cursor].Node.Path)
		}
	case key.Matches(msg, keys.Collapse):
		m.state.CollapseAll()
	case key.Matches(msg, keys.Narrower):
		m.state.Panel.Resize(m.state.Panel.Width() - resizeStep)
		m.layout()
	case key.Matches(msg, keys.Wider):
		m.state.Panel.Resize(m.state.Panel.Width() + resizeStep)
		m.layout()
	case key.Matches(msg, keys.PageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, keys.PageDown):
		m.viewport.HalfViewDown()
	}
	m.clampCursor()
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	panel := m.state.Panel
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if msg.X == panel.Width() {
				panel.BeginDrag()
				return m, nil
			}
			if msg.X < panel.Width() {
				m.clickRow(msg.Y)
			}
		case tea.MouseButtonWheelUp:
			if msg.X > panel.Width() {
				m.viewport.LineUp(3)
			} else if m.cursor > 0 {
				m.cursor--
			}
		case tea.MouseButtonWheelDown:
			if msg.X > panel.Width() {
				m.viewport.LineDown(3)
			} else {
				m.cursor++
			}
		}
	case tea.MouseActionMotion:
		if panel.DragTo(msg.X) {
			m.layout()
		}
	case tea.MouseActionRelease:
		// The button can come up anywhere on screen.
		panel.EndDrag()
	}
	m.clampCursor()
	return m, nil
}

func (m *Model) clickRow(y int) {
	i := m.offset + y - headerHeight
	if y < headerHeight || y >= headerHeight+m.listHeight() {
		return
	}
	rows := m.state.Rows()
	if i < 0 || i >= len(rows) {
		return
	}
	m.cursor = i
	m.activate(rows[i].Node.Path)
}

func (m *Model) activate(path string) {
	if err := m.state.Activate(path); err != nil {
		m.message = err.Error()
		return
	}
	m.message = ""
	m.refreshContent()
}

// refreshContent re-highlights the viewport when the selection changed.
func (m *Model) refreshContent() {
	c := m.state.Content()
	if c.Empty || c.Path == m.shown {
		return
	}
	body, err := m.highlighter.Highlight(c.Text, c.Language)
	if err != nil {
		m.message = fmt.Sprintf("highlighting %s: %v", c.Path, err)
		body = c.Text
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
	m.shown = c.Path
}

func (m *Model) listHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}

func (m *Model) layout() {
	m.viewport.Width = max(1, m.width-m.state.Panel.Width()-1)
	m.viewport.Height = max(1, m.listHeight()-contentHeader)
}

func (m *Model) clampCursor() {
	n := len(m.state.Rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	h := m.listHeight()
	w := m.state.Panel.Width()

	header := titleStyle.Render(m.title)

	list := lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(m.renderRows(w, h))

	hs := handleStyle
	if m.state.Panel.Dragging() {
		hs = dragStyle
	}
	handle := hs.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))

	content := lipgloss.NewStyle().Width(m.viewport.Width).Height(h).MaxHeight(h).Render(m.renderContent())

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, handle, content)

	footer := helpStyle.Render("↑/↓ move • enter open • c collapse • </> resize • drag │ to resize • q quit")
	if m.message != "" {
		footer = errorStyle.Render(m.message)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderRows(width, height int) string {
	rows := m.state.Rows()
	line := lipgloss.NewStyle().MaxWidth(width)
	var b strings.Builder
	for i := m.offset; i < len(rows) && i < m.offset+height; i++ {
		b.WriteString(line.Render(m.rowText(rows[i], i == m.cursor)))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m Model) rowText(r explorer.Row, atCursor bool) string {
	marker := " "
	style := fileStyle
	if r.Node.IsDir() {
		style = dirStyle
		marker = "▸"
		if r.Open {
			marker = "▾"
		}
	}
	text := strings.Repeat(" ", r.Padding) + marker + " " + r.Node.Name
	switch {
	case atCursor:
		return cursorStyle.Render(text)
	case r.Active:
		return activeStyle.Render(text)
	default:
		return style.Render(text)
	}
}

func (m Model) renderContent() string {
	c := m.state.Content()
	if c.Empty {
		return "\n" + placeholderSty.Render(explorer.Placeholder)
	}
	link := ""
	if c.URL != "" {
		link = linkStyle.Render(c.URL)
	}
	return pathStyle.Render(c.Path) + "\n" + link + "\n" + m.viewport.View()
}

// Run starts the terminal explorer with mouse tracking in the alternate
// screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
