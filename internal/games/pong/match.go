// Package pong implements the Pong match: a ball bouncing between a
// human-controlled left paddle and a CPU-controlled right paddle.
//
// The match is a pure, single-threaded simulation advanced one tick at a
// time by the platform. It never touches the terminal, files or audio;
// input arrives as a core.InputFrame plus queued Commands, and output
// leaves through Snapshot and a SoundSink.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// State is the match state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Side identifies one of the two players.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideCPU
)

// String returns a display name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideCPU:
		return "CPU"
	default:
		return "None"
	}
}

// StepResult is returned by Match.Step after each tick.
type StepResult struct {
	State  State
	Event  Event // Sound cue for this tick, EventNone if nothing happened
	Winner Side  // Set once the match is over
	Quit   bool  // A quit command was consumed this tick
}

// Match owns the ball, both paddles and the score.
type Match struct {
	cfg    config.PongConfig
	player *Paddle // Left, human
	cpu    *Paddle // Right, computer
	ball   *Ball

	playerScore int
	cpuScore    int
	winScore    int

	state     State
	winner    Side
	lastEvent Event
	tickCount uint64

	commands []Command
	sink     SoundSink
}

// NewMatch creates a match in the Playing state.
// cfg is expected to have passed config.Validate. A nil sink discards events.
func NewMatch(cfg config.PongConfig, rng RandomSource, sink SoundSink) *Match {
	if sink == nil {
		sink = nopSink{}
	}

	court := cfg.Court
	pc := cfg.Paddles
	startY := (court.Height - pc.Height) / 2

	player := NewPaddle(pc.Offset, startY, pc.Width, pc.Height, pc.PlayerSpeed)
	cpu := NewPaddle(court.Width-pc.Offset-pc.Width, startY, pc.Width, pc.Height, pc.CPUSpeed)
	cpu.Deadzone = pc.Deadzone

	return &Match{
		cfg:      cfg,
		player:   player,
		cpu:      cpu,
		ball:     NewBall(cfg.Ball, court.Width, court.Height, rng),
		winScore: cfg.Gameplay.WinScore,
		state:    StatePlaying,
		sink:     sink,
	}
}

// Enqueue queues a command for the next tick.
func (m *Match) Enqueue(cmd Command) {
	m.commands = append(m.commands, cmd)
}

// Step advances the match by one tick.
// Order within a tick: commands, player input, ball motion, paddle
// collision, scoring, game-over check, CPU paddle.
func (m *Match) Step(in core.InputFrame) StepResult {
	result := StepResult{}
	if m.drainCommands() {
		result.Quit = true
	}

	m.lastEvent = EventNone
	if m.state != StatePlaying {
		return m.finish(result)
	}
	m.tickCount++

	courtH := m.cfg.Court.Height

	// Player paddle
	if in.Has(core.ActionUp) {
		m.player.Move(-m.player.Speed, courtH)
	}
	if in.Has(core.ActionDown) {
		m.player.Move(m.player.Speed, courtH)
	}

	// Ball
	m.emit(m.ball.Advance())
	m.emit(m.ball.ResolveCollision(m.player, m.cpu))

	// Scoring
	if m.ball.X <= 0 {
		m.cpuScore++
		m.emit(EventScored)
		m.ball.Reset(ServeRight)
		m.checkGameOver()
	} else if m.ball.X+m.ball.W >= m.cfg.Court.Width {
		m.playerScore++
		m.emit(EventScored)
		m.ball.Reset(ServeLeft)
		m.checkGameOver()
	}

	m.cpu.AutoTrack(m.ball, courtH)

	if m.lastEvent != EventNone {
		m.sink.Play(m.lastEvent)
	}
	return m.finish(result)
}

// emit records e if it outranks the event already recorded this tick.
func (m *Match) emit(e Event) {
	if e > m.lastEvent {
		m.lastEvent = e
	}
}

// finish fills in the state fields of a step result.
func (m *Match) finish(r StepResult) StepResult {
	r.State = m.state
	r.Event = m.lastEvent
	r.Winner = m.winner
	return r
}

// checkGameOver ends the match once either side reaches the threshold.
func (m *Match) checkGameOver() {
	switch {
	case m.playerScore >= m.winScore:
		m.state = StateGameOver
		m.winner = SidePlayer
	case m.cpuScore >= m.winScore:
		m.state = StateGameOver
		m.winner = SideCPU
	}
}

// startNewMatch resets scores, paddles and ball and resumes play.
func (m *Match) startNewMatch(winScore int) {
	courtH := m.cfg.Court.Height

	m.winScore = winScore
	m.playerScore = 0
	m.cpuScore = 0
	m.winner = SideNone
	m.player.Recenter(courtH)
	m.cpu.Recenter(courtH)
	m.ball.Reset(ServeRandom)
	m.state = StatePlaying
}

// State returns the current match state.
func (m *Match) State() State {
	return m.state
}

// Scores returns the player and CPU scores.
func (m *Match) Scores() (player, cpu int) {
	return m.playerScore, m.cpuScore
}

// WinScore returns the threshold for the current match.
func (m *Match) WinScore() int {
	return m.winScore
}

// Winner returns the winning side, or SideNone while playing.
func (m *Match) Winner() Side {
	return m.winner
}

// WinScores returns the thresholds a new match may be started with.
func (m *Match) WinScores() []int {
	return m.cfg.Gameplay.WinScores
}

// Ball returns the match ball.
func (m *Match) Ball() *Ball {
	return m.ball
}

// Player returns the human paddle.
func (m *Match) Player() *Paddle {
	return m.player
}

// CPU returns the computer paddle.
func (m *Match) CPU() *Paddle {
	return m.cpu
}
