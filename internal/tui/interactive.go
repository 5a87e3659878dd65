package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/nestframe/internal/form"
	"github.com/san-kum/nestframe/internal/pattern"
	"github.com/san-kum/nestframe/internal/render"
	"github.com/san-kum/nestframe/internal/storage"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var fieldNames = []string{"width", "height", "padding"}

type model struct {
	fields [3]string
	cursor int

	limits form.Limits
	theme  render.Theme
	store  *storage.Store

	dims    pattern.Dimensions
	grid    pattern.Grid
	errs    []string
	status  string
	drawing bool

	width  int
	height int
}

// Options configure the interactive form.
type Options struct {
	Initial pattern.Dimensions
	Limits  form.Limits
	Theme   render.Theme
	// Store receives drawings saved with the s key. Saving is disabled when nil.
	Store *storage.Store
}

func NewInteractiveApp(opts Options) *model {
	m := &model{
		limits: opts.Limits,
		theme:  opts.Theme,
		store:  opts.Store,
		width:  80,
		height: 24,
	}
	m.fields[0] = fmt.Sprint(opts.Initial.Width)
	m.fields[1] = fmt.Sprint(opts.Initial.Height)
	m.fields[2] = fmt.Sprint(opts.Initial.Padding)
	m.submit()
	return m
}

// Run starts the form on the terminal's alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewInteractiveApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "shift+tab":
		m.cursor = (m.cursor + len(m.fields) - 1) % len(m.fields)
	case "down", "tab":
		m.cursor = (m.cursor + 1) % len(m.fields)
	case "backspace":
		if f := m.fields[m.cursor]; len(f) > 0 {
			m.fields[m.cursor] = f[:len(f)-1]
		}
	case "enter":
		m.submit()
	case "t":
		m.theme = render.NextTheme(m.theme)
		m.status = "theme " + m.theme.Name
	case "s":
		m.save()
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.fields[m.cursor] += s
		}
	}
	return m, nil
}

// submit validates the fields and redraws. A rejected form keeps the
// previous drawing on screen.
func (m *model) submit() {
	d, err := form.ValidateAll(form.Input{
		Width:   m.fields[0],
		Height:  m.fields[1],
		Padding: m.fields[2],
	}, m.limits)
	if err != nil {
		m.errs = form.Messages(err)
		m.status = ""
		return
	}
	m.errs = nil
	m.dims = d
	m.grid = d.Generate()
	m.drawing = true
	m.status = "drew " + d.String()
}

func (m *model) save() {
	if m.store == nil || !m.drawing {
		return
	}
	if err := m.store.Init(); err != nil {
		m.errs = []string{err.Error()}
		return
	}
	id, err := m.store.Save(m.dims, m.theme.Name, m.grid)
	if err != nil {
		m.errs = []string{err.Error()}
		return
	}
	m.status = "saved " + id
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + cyan.Render("n e s t f r a m e") + "  " + dim.Render(m.theme.Name) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 30)) + "\n\n")

	for i, name := range fieldNames {
		val := m.fields[i]
		if i == m.cursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-8s", name)) + magenta.Render(val+"▋") + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-8s", name)) + dim.Render(val) + "\n")
		}
	}
	b.WriteString("\n")

	for _, e := range m.errs {
		b.WriteString("   " + red.Render(e) + "\n")
	}
	if m.status != "" {
		b.WriteString("   " + green.Render(m.status) + "\n")
	}
	b.WriteString("\n")

	if m.drawing {
		if m.grid.Width()+3 > m.width || m.grid.Height() > m.height {
			b.WriteString("   " + dim.Render(fmt.Sprintf("%dx%d drawing, %dx%d terminal: enlarge the window to see all of it",
				m.grid.Width(), m.grid.Height(), m.width, m.height)) + "\n\n")
		}
		for _, line := range strings.Split(strings.TrimSuffix(render.Styled(m.grid, m.theme), "\n"), "\n") {
			b.WriteString("   " + line + "\n")
		}
		b.WriteString("\n")
	}

	help := "   ↑↓ field  0-9 type  enter draw  t theme  q quit"
	if m.store != nil {
		help = "   ↑↓ field  0-9 type  enter draw  t theme  s save  q quit"
	}
	b.WriteString(dim.Render(help) + "\n")

	return b.String()
}
