package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/seqbench/internal/bench"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var structureInfo = map[string]string{
	"arraylist": "contiguous, shifts on insert/remove",
	"queue":     "ring buffer, O(1) at both ends",
}

// inspectable is what the explorer needs beyond the measured operation set.
type inspectable interface {
	bench.Container
	Cap() int
	Contains(value int) bool
	Values() []int
}

type state int

const (
	stateMenu state = iota
	stateExplore
)

const maxHistory = 60

type model struct {
	state      state
	cursor     int
	structures []string
	selected   string
	capacity   int

	c       inspectable
	next    int
	status  string
	failed  bool
	history []float64

	width  int
	height int
}

func newModel(capacity int) model {
	return model{
		state:      stateMenu,
		structures: []string{"arraylist", "queue"},
		capacity:   capacity,
		history:    make([]float64, 0, maxHistory),
		width:      80,
		height:     24,
	}
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
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateExplore:
		return m.exploreKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.structures)-1 {
			m.cursor++
		}
	case "enter", " ":
		if err := m.open(m.structures[m.cursor]); err != nil {
			m.status, m.failed = err.Error(), true
			return m, nil
		}
		return m, tea.ClearScreen
	}
	return m, nil
}

// open builds a fresh container and switches to the explore view.
func (m *model) open(structure string) error {
	factory, err := bench.NewRegistry().GetStructure(structure)
	if err != nil {
		return err
	}
	c, err := factory(m.capacity)
	if err != nil {
		return err
	}
	ins, ok := c.(inspectable)
	if !ok {
		return fmt.Errorf("structure %s cannot be inspected", structure)
	}
	m.selected = structure
	m.c = ins
	m.next = 1
	m.status, m.failed = "", false
	m.history = m.history[:0]
	m.state = stateExplore
	m.record()
	return nil
}

func (m model) exploreKey(msg tea.KeyMsg) (model, tea.Cmd) {
	mid := m.c.Size() / 2
	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
		m.c = nil
		return m, tea.ClearScreen
	case "r":
		_ = m.open(m.selected)
		return m, nil
	case "a":
		m.c.Append(m.next)
		m.done(fmt.Sprintf("append %d", m.next))
		m.next++
	case "f":
		m.c.InsertFirst(m.next)
		m.done(fmt.Sprintf("insert first %d", m.next))
		m.next++
	case "m":
		if m.apply(m.c.InsertAt(m.next, mid), fmt.Sprintf("insert %d at %d", m.next, mid)) {
			m.next++
		}
	case "x":
		m.apply(m.c.RemoveLast(), "remove last")
	case "d":
		m.apply(m.c.RemoveFirst(), "remove first")
	case "c":
		m.apply(m.c.RemoveAt(mid), fmt.Sprintf("remove at %d", mid))
	case "s":
		v := m.next - 1
		m.done(fmt.Sprintf("contains %d: %t", v, m.c.Contains(v)))
	}
	return m, nil
}

func (m *model) apply(err error, what string) bool {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return false
	}
	m.done(what)
	return true
}

func (m *model) done(what string) {
	m.status, m.failed = what, false
	m.record()
}

func (m *model) record() {
	m.history = append(m.history, float64(m.c.Size()))
	if len(m.history) > maxHistory {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateExplore:
		return m.viewExplore()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("s e q b e n c h") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.structures {
		desc := structureInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	if m.failed {
		b.WriteString("\n      " + red.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m model) viewExplore() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + cyan.Render(m.selected) + "  " + dim.Render(structureInfo[m.selected]) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n\n")

	b.WriteString(fmt.Sprintf("   %s %s   %s %s\n\n",
		dim.Render("size"), white.Render(fmt.Sprintf("%d", m.c.Size())),
		dim.Render("capacity"), magenta.Render(fmt.Sprintf("%d", m.c.Cap()))))

	b.WriteString(m.slots())
	b.WriteString("\n")

	b.WriteString("   " + dim.Render("values ") + white.Render(m.values()) + "\n")
	b.WriteString("   " + dim.Render("size   ") + cyan.Render(m.sparkline(m.history, 40)) + "\n\n")

	switch {
	case m.status == "":
	case m.failed:
		b.WriteString("   " + red.Render("✗ "+m.status) + "\n")
	default:
		b.WriteString("   " + green.Render("✓ "+m.status) + "\n")
	}

	b.WriteString("\n" + dim.Render("   a append  f first  m middle  x rm last  d rm first  c rm middle") + "\n")
	b.WriteString(dim.Render("   s contains last  r reset  esc back") + "\n")

	return b.String()
}

// slots renders one cell per capacity slot, wrapped to the window width.
func (m model) slots() string {
	perRow := (m.width - 6) / 2
	if perRow < 8 {
		perRow = 8
	}

	var b strings.Builder
	capacity, size := m.c.Cap(), m.c.Size()
	for i := 0; i < capacity; i++ {
		if i%perRow == 0 {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("   ")
		}
		if i < size {
			b.WriteString(yellow.Render("■ "))
		} else {
			b.WriteString(dimmer.Render("□ "))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) values() string {
	const shown = 16
	vals := m.c.Values()
	if len(vals) == 0 {
		return "[]"
	}
	parts := make([]string, 0, shown+1)
	for i, v := range vals {
		if i == shown {
			parts = append(parts, fmt.Sprintf("… +%d", len(vals)-shown))
			break
		}
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (m model) sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// Run starts the explorer. A non-empty structure skips the menu.
func Run(structure string, capacity int) error {
	m := newModel(capacity)
	if structure != "" {
		if err := m.open(structure); err != nil {
			return err
		}
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
