package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is everything the platform needs to draw one frame.
// It is a plain value, so two snapshots can be compared with ==.
type Snapshot struct {
	Tick   uint64
	CourtW float64
	CourtH float64

	Player core.RectF
	CPU    core.RectF
	Ball   core.RectF

	PlayerScore int
	CPUScore    int
	WinScore    int

	State  State
	Winner Side  // SideNone while playing
	Event  Event // Event of the last tick
}

// Snapshot returns the current match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:        m.tickCount,
		CourtW:      m.cfg.Court.Width,
		CourtH:      m.cfg.Court.Height,
		Player:      m.player.Bounds(),
		CPU:         m.cpu.Bounds(),
		Ball:        m.ball.Bounds(),
		PlayerScore: m.playerScore,
		CPUScore:    m.cpuScore,
		WinScore:    m.winScore,
		State:       m.state,
		Winner:      m.winner,
		Event:       m.lastEvent,
	}
}
