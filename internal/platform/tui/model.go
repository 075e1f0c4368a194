package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// MatchResult summarizes a finished match.
type MatchResult struct {
	Winner      pong.Side
	PlayerScore int
	CPUScore    int
	WinScore    int
	Tick        uint64 // Simulation tick the match ended on
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one Pong match.
type Model struct {
	ctx    *Context
	match  *pong.Match
	screen *core.Screen
	held   *HeldKeys
	help   help.Model

	lastState  pong.State
	onMatchEnd func(MatchResult)
	quitting   bool
}

// NewModel creates a model whose sound cues go to sink.
// onMatchEnd, if not nil, is called every time a match finishes.
func NewModel(ctx *Context, sink pong.SoundSink, onMatchEnd func(MatchResult)) Model {
	rt := ctx.Runtime
	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		ctx:        ctx,
		match:      pong.NewMatch(ctx.Game, ctx.NewRandomSource(), sink),
		screen:     core.NewScreen(rt.ScreenW, courtRows(rt.ScreenH)),
		held:       NewHeldKeys(ctx.HoldTicks),
		help:       h,
		lastState:  pong.StatePlaying,
		onMatchEnd: onMatchEnd,
	}
}

// courtRows leaves the bottom terminal row for the help line.
func courtRows(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ctx.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, courtRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns key presses into held paddle movement or queued commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	res := m.ctx.Keys.MapKey(msg, m.match.State(), m.match.WinScore())
	if res.Action != core.ActionNone {
		m.held.Press(res.Action)
	}
	if res.Command != nil {
		m.match.Enqueue(*res.Command)
	}
	return m, nil
}

// handleTick advances the match by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.match.Step(m.held.Frame())

	if result.State == pong.StateGameOver && m.lastState != pong.StateGameOver {
		m.held.Release()
		if m.onMatchEnd != nil {
			p, c := m.match.Scores()
			m.onMatchEnd(MatchResult{
				Winner:      result.Winner,
				PlayerScore: p,
				CPUScore:    c,
				WinScore:    m.match.WinScore(),
				Tick:        m.match.Snapshot().Tick,
			})
		}
	}
	m.lastState = result.State

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.ctx.Runtime.TickRate)
}

// Match returns the running match.
func (m Model) Match() *pong.Match {
	return m.match
}

// View renders the court and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.ctx.Keys))
}

// Run plays matches in the local terminal until the user quits.
// Frames and sound cues share out. Finished matches are returned in order.
func Run(ctx *Context, out io.Writer) ([]MatchResult, error) {
	out = NewOutput(out)

	var results []MatchResult
	model := NewModel(ctx, ctx.NewSink(out), func(r MatchResult) {
		results = append(results, r)
	})

	p := tea.NewProgram(model, tea.WithOutput(out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return results, err
	}
	return results, nil
}
