package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// BellSink plays sound cues as terminal bells.
// Only cues enabled in the sound config ring; everything else is dropped.
type BellSink struct {
	mu      sync.Mutex
	out     io.Writer
	enabled map[pong.Event]bool
	rung    int
}

// NewBellSink creates a sink writing to out. A muted sink never rings.
// out should be the NewOutput stream the program renders to, so bells
// and frames do not interleave.
func NewBellSink(out io.Writer, cfg config.PongSound, muted bool) *BellSink {
	s := &BellSink{
		out:     out,
		enabled: make(map[pong.Event]bool),
	}
	if muted || out == nil {
		return s
	}
	s.enabled[pong.EventWallBounce] = cfg.Wall
	s.enabled[pong.EventPaddleHit] = cfg.Paddle
	s.enabled[pong.EventScored] = cfg.Score
	return s
}

// Play rings the bell for e if its cue is enabled.
// Write errors are ignored: a lost bell is not worth stopping the match.
func (s *BellSink) Play(e pong.Event) {
	if !s.enabled[e] {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	//nolint:errcheck // Best-effort cue
	io.WriteString(s.out, bell)
	s.rung++
}

// Rung returns how many bells have been written.
func (s *BellSink) Rung() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rung
}
