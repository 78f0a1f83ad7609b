package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubesolve"
)

type editorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	NextFace  key.Binding
	PrevFace  key.Binding
	Cycle     key.Binding
	Set       key.Binding
	ResetCell key.Binding
	ResetFace key.Binding
	ResetAll  key.Binding
	Solve     key.Binding
	Cancel    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextFace:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next face")),
		PrevFace:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous face")),
		Cycle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "cycle color")),
		Set:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "set U R F D L B")),
		ResetCell: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset sticker")),
		ResetFace: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "reset face")),
		ResetAll:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset cube")),
		Solve:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "solve")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel solve")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.NextFace, k.Solve, k.Help, k.Quit}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextFace, k.PrevFace, k.Cycle, k.Set},
		{k.ResetCell, k.ResetFace, k.ResetAll},
		{k.Solve, k.Cancel, k.Help, k.Quit},
	}
}

// solveDoneMsg carries a finished solve back to the editor. gen ties it to
// the request that started it.
type solveDoneMsg struct {
	gen int
	sol *cubesolve.Solution
	err error
}

// editorModel is the interactive sticker editor.
type editorModel struct {
	grid    *cubesolve.Grid
	gateway *cubesolve.Gateway
	engine  string

	face     int // index into cubesolve.Faces
	row, col int

	keys    editorKeyMap
	help    help.Model
	spinner spinner.Model

	solving bool
	gen     int
	cancel  context.CancelFunc

	solution *cubesolve.Solution
	err      error
	status   string
	quitting bool
}

func newEditorModel(gw *cubesolve.Gateway, engineName string) *editorModel {
	return &editorModel{
		grid:    cubesolve.NewGrid(),
		gateway: gw,
		engine:  engineName,
		face:    2, // start on Front
		row:     1,
		col:     1,
		keys:    newEditorKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *editorModel) Init() tea.Cmd {
	return nil
}

func (m *editorModel) currentFace() cubesolve.Facelet {
	return cubesolve.Faces[m.face]
}

func (m *editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case solveDoneMsg:
		if msg.gen != m.gen {
			// Result of an abandoned solve
			return m, nil
		}
		m.stopSolve()
		m.solution, m.err = msg.sol, msg.err
		if msg.err == nil {
			m.status = fmt.Sprintf("Solved by %s in %s", msg.sol.Engine, formatDuration(msg.sol.Elapsed))
		} else {
			m.status = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.solving {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopSolve()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < 2 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < 2 {
			m.col++
		}
	case key.Matches(msg, m.keys.NextFace):
		m.face = (m.face + 1) % len(cubesolve.Faces)
	case key.Matches(msg, m.keys.PrevFace):
		m.face = (m.face + len(cubesolve.Faces) - 1) % len(cubesolve.Faces)

	case key.Matches(msg, m.keys.Cycle):
		_, err := m.grid.Cycle(m.currentFace(), m.row, m.col)
		m.edited(err)
	case key.Matches(msg, m.keys.Set):
		n := int(msg.String()[0] - '1')
		m.edited(m.grid.Set(m.currentFace(), m.row, m.col, cubesolve.Faces[n]))
	case key.Matches(msg, m.keys.ResetCell):
		m.edited(m.grid.ResetCell(m.currentFace(), m.row, m.col))
	case key.Matches(msg, m.keys.ResetFace):
		m.edited(m.grid.ResetFace(m.currentFace()))
	case key.Matches(msg, m.keys.ResetAll):
		m.grid.Reset()
		m.edited(nil)

	case key.Matches(msg, m.keys.Solve):
		return m, m.startSolve()
	case key.Matches(msg, m.keys.Cancel):
		if m.solving {
			m.stopSolve()
			m.gen++
			m.status = "Solve cancelled"
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// edited clears the previous answer after a grid change.
func (m *editorModel) edited(err error) {
	m.err = err
	if !m.solving {
		m.solution = nil
		m.status = ""
	}
}

// startSolve validates a snapshot of the grid and solves it in the
// background. Edits made while the solve runs do not affect it.
func (m *editorModel) startSolve() tea.Cmd {
	if m.solving {
		return nil
	}
	state, err := cubesolve.NewState(m.grid.Snapshot())
	if err != nil {
		m.err = err
		m.solution = nil
		m.status = ""
		return nil
	}

	m.gen++
	gen := m.gen
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.solving = true
	m.err = nil
	m.solution = nil
	m.status = ""

	gw := m.gateway
	solve := func() tea.Msg {
		sol, err := gw.Solve(ctx, state)
		return solveDoneMsg{gen: gen, sol: sol, err: err}
	}
	return tea.Batch(solve, m.spinner.Tick)
}

func (m *editorModel) stopSolve() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.solving = false
}

func (m *editorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesolve editor"))
	b.WriteString("\n\n")

	f := m.currentFace()
	b.WriteString(fmt.Sprintf("Editing: %s (%s) row %d col %d\n\n",
		faceStyle.Render(f.Name()), f.Color(), m.row+1, m.col+1))

	b.WriteString(m.renderNet())
	b.WriteString("\n")

	switch {
	case m.solving:
		b.WriteString(fmt.Sprintf("%s Solving with %s... (esc to cancel)\n", m.spinner.View(), m.engine))
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.solution != nil:
		b.WriteString(moveStyle.Render(cubesolve.DisplayText(m.solution.Moves, cubesolve.StyleArrow)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	return b.String()
}

// renderNet draws the grid unfolded: U on top, L F R B across, D below.
func (m *editorModel) renderNet() string {
	const blank = "         " // width of one face

	faceRow := func(fi, row int) string {
		face := cubesolve.Faces[fi]
		var s strings.Builder
		for col := 0; col < 3; col++ {
			sticker, _ := m.grid.Cell(face, row, col)
			s.WriteString(renderSticker(sticker, fi == m.face && row == m.row && col == m.col))
		}
		return s.String()
	}

	var b strings.Builder
	// Face indices: U=0 R=1 F=2 D=3 L=4 B=5
	for row := 0; row < 3; row++ {
		b.WriteString(blank + " " + faceRow(0, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(faceRow(4, row) + " " + faceRow(2, row) + " " + faceRow(1, row) + " " + faceRow(5, row) + "\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(blank + " " + faceRow(3, row) + "\n")
	}
	return b.String()
}
