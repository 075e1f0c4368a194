package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// DefaultHoldTicks covers the gap between the first key press and the
// terminal's auto-repeat, which is typically 250-500ms.
const DefaultHoldTicks = 18

// HeldKeys approximates "is this key held" on top of a terminal that only
// reports presses. A press keeps its action held for a fixed number of
// ticks; auto-repeat presses keep refreshing it.
type HeldKeys struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHeldKeys creates an empty held-key tracker.
func NewHeldKeys(holdTicks int) *HeldKeys {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldKeys{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
	}
}

// Press marks an action as held. Up and Down are exclusive, so pressing
// one releases the other.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionUp:
		delete(h.remaining, core.ActionDown)
	case core.ActionDown:
		delete(h.remaining, core.ActionUp)
	}
	h.remaining[a] = h.holdTicks
}

// Release drops every held action.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}

// Frame returns the input frame for this tick and ages every held action.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}
