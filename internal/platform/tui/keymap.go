package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// KeyMap holds the key bindings for a match.
// It implements help.KeyMap so the bindings can be shown in the help line.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Replay key.Binding
	Reset  key.Binding
	Quit   key.Binding
	Exit   key.Binding // Only active on the game-over screen
}

// DefaultKeyMap returns the bindings for the default replay thresholds.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultPongConfig().Gameplay.WinScores)
}

// NewKeyMap returns the default bindings with one replay key per threshold.
// Thresholds are single digits, as enforced by config validation.
func NewKeyMap(winScores []int) KeyMap {
	replayKeys := make([]string, len(winScores))
	for i, s := range winScores {
		replayKeys[i] = strconv.Itoa(s)
	}

	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Replay: key.NewBinding(
			key.WithKeys(replayKeys...),
			key.WithHelp(strings.Join(replayKeys, "/"), "replay"),
		),
		Reset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
	}
}

// ShortHelp returns bindings for the one-line help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reset, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Replay, k.Reset},
		{k.Quit, k.Exit},
	}
}

// KeyResult is what a key press means for the match.
type KeyResult struct {
	Action  core.Action   // Paddle movement, ActionNone otherwise
	Command *pong.Command // Match-control command, nil otherwise
}

// MapKey translates a key message into paddle movement or a match command.
// state decides whether esc exits; winScore is the threshold used by a
// manual restart.
func (k KeyMap) MapKey(msg tea.KeyMsg, state pong.State, winScore int) KeyResult {
	switch {
	case key.Matches(msg, k.Quit):
		return commandResult(pong.QuitCommand())
	case key.Matches(msg, k.Exit):
		if state == pong.StateGameOver {
			return commandResult(pong.QuitCommand())
		}
	case key.Matches(msg, k.Up):
		return KeyResult{Action: core.ActionUp}
	case key.Matches(msg, k.Down):
		return KeyResult{Action: core.ActionDown}
	case key.Matches(msg, k.Replay):
		n, err := strconv.Atoi(msg.String())
		if err == nil {
			return commandResult(pong.NewMatchCommand(n))
		}
	case key.Matches(msg, k.Reset):
		return commandResult(pong.ManualResetCommand(winScore))
	}
	return KeyResult{}
}

func commandResult(cmd pong.Command) KeyResult {
	return KeyResult{Command: &cmd}
}
