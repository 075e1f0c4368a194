package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyMovement(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", runeKey('w'), core.ActionUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := km.MapKey(tc.msg, pong.StatePlaying, 5)
			if res.Action != tc.expected {
				t.Errorf("Action = %s, expected %s", res.Action, tc.expected)
			}
			if res.Command != nil {
				t.Errorf("unexpected command %+v", *res.Command)
			}
		})
	}
}

func TestMapKeyCommands(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		state    pong.State
		expected *pong.Command
	}{
		{"replay 3", runeKey('3'), pong.StateGameOver, &pong.Command{Kind: pong.CommandNewMatch, WinScore: 3}},
		{"replay 7", runeKey('7'), pong.StateGameOver, &pong.Command{Kind: pong.CommandNewMatch, WinScore: 7}},
		{"unbound digit", runeKey('4'), pong.StateGameOver, nil},
		{"manual restart", runeKey('n'), pong.StatePlaying, &pong.Command{Kind: pong.CommandNewMatch, WinScore: 5, Manual: true}},
		{"q quits", runeKey('q'), pong.StatePlaying, &pong.Command{Kind: pong.CommandQuit}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, pong.StatePlaying, &pong.Command{Kind: pong.CommandQuit}},
		{"esc ignored while playing", tea.KeyMsg{Type: tea.KeyEsc}, pong.StatePlaying, nil},
		{"esc exits on game over", tea.KeyMsg{Type: tea.KeyEsc}, pong.StateGameOver, &pong.Command{Kind: pong.CommandQuit}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := km.MapKey(tc.msg, tc.state, 5)
			switch {
			case tc.expected == nil && res.Command != nil:
				t.Errorf("unexpected command %+v", *res.Command)
			case tc.expected != nil && res.Command == nil:
				t.Errorf("expected command %+v, got none", *tc.expected)
			case tc.expected != nil && *res.Command != *tc.expected:
				t.Errorf("command = %+v, expected %+v", *res.Command, *tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 6 {
		t.Errorf("FullHelp() lists %d bindings, expected 6", n)
	}
}

func TestKeyMapFollowsConfiguredThresholds(t *testing.T) {
	km := NewKeyMap([]int{2, 4, 6})

	for _, r := range []rune{'2', '4', '6'} {
		res := km.MapKey(runeKey(r), pong.StateGameOver, 4)
		expected := pong.NewMatchCommand(int(r - '0'))
		if res.Command == nil || *res.Command != expected {
			t.Errorf("key %q: command = %v, expected %+v", r, res.Command, expected)
		}
	}
	for _, r := range []rune{'3', '5', '7'} {
		if res := km.MapKey(runeKey(r), pong.StateGameOver, 4); res.Command != nil {
			t.Errorf("key %q is not a configured threshold, got %+v", r, *res.Command)
		}
	}

	if got := km.Replay.Help().Key; got != "2/4/6" {
		t.Errorf("replay help = %q, expected \"2/4/6\"", got)
	}
}
