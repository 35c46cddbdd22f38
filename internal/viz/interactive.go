package viz

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/jointviz/internal/colormap"
	"github.com/san-kum/jointviz/internal/config"
	"github.com/san-kum/jointviz/internal/dist"
	"github.com/san-kum/jointviz/internal/joint"
)

const (
	stateFamily = iota
	stateParams
	stateSurface
)

const rotStep = 0.1

var axisNames = [2]string{"X", "Y"}

type model struct {
	state, axis int
	cursor      int
	families    [2]dist.Family
	fields      [2][]string
	field       int
	dists       [2]dist.Dist
	err         error
	warn        string

	cfg       *config.Config
	surface   *joint.Surface
	colors    *colormap.ColorArray
	camera    *Camera
	theme     Theme
	gradients []string
	gradient  int

	width, height int
}

// Minimum surface size in cells.
const (
	minWidth  = 10
	minHeight = 8
)

// NewInteractiveApp returns the family and parameter prompt, seeded
// from cfg.
func NewInteractiveApp(cfg *config.Config) tea.Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := model{
		cfg:       cfg,
		camera:    NewCamera(),
		theme:     GetTheme(cfg.Theme),
		gradients: colormap.Names(),
		width:     max(cfg.View.Width, minWidth),
		height:    max(cfg.View.Height, minHeight),
	}
	m.camera.RotX, m.camera.RotY = cfg.View.RotX, cfg.View.RotY
	if cfg.View.Zoom > 0 {
		m.camera.Zoom = cfg.View.Zoom
	}
	for i, name := range m.gradients {
		if name == cfg.Gradient {
			m.gradient = i
		}
	}
	for axis, dc := range [2]config.DistConfig{cfg.X, cfg.Y} {
		f, err := dist.ParseFamily(dc.Family)
		if err != nil {
			f = dist.Normal
		}
		m.setFamily(axis, f)
		if len(dc.Params) == len(f.ParamNames()) {
			for i, p := range dc.Params {
				m.fields[axis][i] = strconv.FormatFloat(p, 'g', -1, 64)
			}
		}
	}
	m.cursor = int(m.families[0]) - 1
	return m
}

func (m *model) setFamily(axis int, f dist.Family) {
	if m.families[axis] == f && m.fields[axis] != nil {
		return
	}
	m.families[axis] = f
	m.fields[axis] = make([]string, len(f.ParamNames()))
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = max(msg.Width-4, minWidth), max(msg.Height-12, minHeight)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateFamily:
		return m.familyKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	case stateSurface:
		return m.surfaceKey(msg)
	}
	return m, nil
}

func (m model) familyKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "esc":
		if m.axis > 0 {
			m.axis--
			m.state, m.field = stateParams, 0
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(dist.Families)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5":
		m.cursor = int(key[0] - '1')
		m.pickFamily()
	case "enter", " ":
		m.pickFamily()
	}
	return m, nil
}

func (m *model) pickFamily() {
	m.setFamily(m.axis, dist.Families[m.cursor])
	m.state, m.field, m.err = stateParams, 0, nil
}

func (m model) paramsKey(msg tea.KeyMsg) (model, tea.Cmd) {
	buf := &m.fields[m.axis][m.field]
	switch msg.String() {
	case "esc":
		m.state, m.err = stateFamily, nil
		m.cursor = int(m.families[m.axis]) - 1
	case "up", "shift+tab":
		if m.field > 0 {
			m.field--
		}
	case "down", "tab":
		if m.field < len(m.fields[m.axis])-1 {
			m.field++
		}
	case "backspace":
		if len(*buf) > 0 {
			*buf = (*buf)[:len(*buf)-1]
		}
	case "enter":
		if m.field < len(m.fields[m.axis])-1 {
			m.field++
			return m, nil
		}
		return m.submit()
	default:
		if s := msg.String(); len(s) == 1 {
			c := s[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
				*buf += s
			}
		}
	}
	return m, nil
}

// submit validates the current axis and moves on, keeping the user on
// the same screen with the error when the parameters are rejected.
func (m model) submit() (model, tea.Cmd) {
	f := m.families[m.axis]
	params := make([]float64, len(m.fields[m.axis]))
	for i, s := range m.fields[m.axis] {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			m.err = fmt.Errorf("%s: %q is not a number", f.ParamNames()[i], s)
			m.field = i
			return m, nil
		}
		params[i] = v
	}
	d, err := dist.New(f, params...)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.dists[m.axis], m.err = d, nil

	if m.axis == 0 {
		m.axis, m.state = 1, stateFamily
		m.cursor = int(m.families[1]) - 1
		return m, nil
	}
	m.rebuild()
	return m, nil
}

func (m *model) rebuild() {
	g, _ := colormap.ByName(m.gradients[m.gradient])
	s, colors, err := Prepare(m.dists[0], m.dists[1], m.cfg.JointConfig(), g)
	m.warn = ""
	switch {
	case errors.Is(err, colormap.ErrDegenerateColorRange):
		log.Printf("warning: %v", err)
		m.warn = "X density is constant; colors fixed at the gradient midpoint"
	case err != nil:
		m.err = err
		return
	}
	m.surface, m.colors = s, colors
	m.state = stateSurface
}

func (m model) surfaceKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "x":
		m.camera.RotateX(rotStep)
	case "X":
		m.camera.RotateX(-rotStep)
	case "y":
		m.camera.RotateY(rotStep)
	case "Y":
		m.camera.RotateY(-rotStep)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "t":
		m.theme = NextTheme(m.theme)
	case "g":
		m.gradient = (m.gradient + 1) % len(m.gradients)
		m.rebuild()
	case "r":
		m.state, m.axis, m.err, m.warn = stateFamily, 0, nil, ""
		m.cursor = int(m.families[0]) - 1
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateFamily:
		return m.viewFamily()
	case stateParams:
		return m.viewParams()
	case stateSurface:
		return m.viewSurface()
	}
	return ""
}

func (m model) header(sub string) string {
	h := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	s := lipgloss.NewStyle().Foreground(m.theme.Muted)
	return "\n\n    " + h.Render("JOINTVIZ") + "\n    " + s.Render(sub) + "\n    " + s.Render("─────────────────────────") + "\n\n"
}

func (m model) help(pairs ...string) string {
	key := lipgloss.NewStyle().Foreground(m.theme.Secondary).Bold(true)
	txt := lipgloss.NewStyle().Foreground(m.theme.Muted)
	var b strings.Builder
	b.WriteString("\n    ")
	for i := 0; i+1 < len(pairs); i += 2 {
		b.WriteString(key.Render(pairs[i]) + txt.Render(" "+pairs[i+1]+"  "))
	}
	return b.String() + "\n"
}

func (m model) viewFamily() string {
	var b strings.Builder
	b.WriteString(m.header(fmt.Sprintf("choose the %s distribution", axisNames[m.axis])))
	if m.axis == 1 && m.dists[0] != nil {
		b.WriteString("    " + lipgloss.NewStyle().Foreground(m.theme.Muted).Render("X = "+m.dists[0].String()) + "\n\n")
	}
	for i, f := range dist.Families {
		name := fmt.Sprintf("%d. %-12s", i+1, f)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render(name),
				lipgloss.NewStyle().Foreground(m.theme.Accent).Render(f.Describe())))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(name),
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(f.Describe())))
		}
	}
	b.WriteString(m.help("j/k", "navigate", "1-5", "pick", "enter", "select", "q", "quit"))
	return b.String()
}

func (m model) viewParams() string {
	f := m.families[m.axis]
	var b strings.Builder
	b.WriteString(m.header(fmt.Sprintf("%s parameters for %s", f, axisNames[m.axis])))
	for i, name := range f.ParamNames() {
		val := m.fields[m.axis][i]
		if i == m.field {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render(fmt.Sprintf("%-10s", name)),
				lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render(val+"_")))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(fmt.Sprintf("%-10s", name)),
				lipgloss.NewStyle().Foreground(m.theme.Muted).Render(val)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.err.Error()) + "\n")
	}
	b.WriteString(m.help("tab", "next field", "enter", "confirm", "esc", "back"))
	return b.String()
}

func (m model) viewSurface() string {
	g, _ := colormap.ByName(m.gradients[m.gradient])
	v := View{
		Width:    m.width,
		Height:   m.height,
		Camera:   m.camera,
		Theme:    m.theme,
		Gradient: g,
	}
	var b strings.Builder
	b.WriteString(RenderSurface(m.surface, m.colors, v))
	if m.surface.Capped > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).Render(
			fmt.Sprintf("%d unbounded density samples capped", m.surface.Capped)) + "\n")
	}
	if m.warn != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Error).Render(m.warn) + "\n")
	}
	b.WriteString(m.help("x/X y/Y", "rotate", "+/-", "zoom", "t", "theme ("+m.theme.Name+")", "g", "gradient ("+g.Name()+")", "r", "restart", "q", "quit"))
	return b.String()
}

// RunInteractive runs the terminal flow until the user quits.
func RunInteractive(cfg *config.Config) error {
	_, err := tea.NewProgram(NewInteractiveApp(cfg), tea.WithAltScreen()).Run()
	return err
}
