package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Context carries everything a session needs to run a match.
// It is built once by the command layer and shared read-only by every
// session; nothing in this package keeps global state.
type Context struct {
	Logger    *log.Logger
	Keys      KeyMap
	Game      config.PongConfig
	Runtime   core.RuntimeConfig
	HoldTicks int
	Muted     bool
}

// NewContext creates a context whose replay keys follow game's thresholds.
func NewContext(logger *log.Logger, game config.PongConfig, runtime core.RuntimeConfig) *Context {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Context{
		Logger:    logger,
		Keys:      NewKeyMap(game.Gameplay.WinScores),
		Game:      game,
		Runtime:   runtime,
		HoldTicks: DefaultHoldTicks,
	}
}

// NewSink creates the sound sink for one output stream.
func (c *Context) NewSink(out io.Writer) *BellSink {
	return NewBellSink(out, c.Game.Sound, c.Muted)
}

// NewRandomSource returns the serve randomness for a new match.
// A zero seed picks a fresh one from the clock.
func (c *Context) NewRandomSource() pong.RandomSource {
	seed := c.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return pong.NewRandomSource(seed)
}
