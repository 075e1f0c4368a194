package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderCourt(t *testing.T) {
	m := newTestMatch(t)
	screen := core.NewScreen(80, 24)
	m.Render(screen)

	// 22 court rows: paddle 250..350 covers rows 10..13
	for y := 10; y <= 13; y++ {
		if got := screen.GetCell(1, y); got.Rune != PaddleChar || got.Color != core.ColorCyan {
			t.Errorf("player paddle cell (1, %d) = %q/%d", y, got.Rune, got.Color)
		}
		if got := screen.Get(78, y); got != PaddleChar {
			t.Errorf("CPU paddle cell (78, %d) = %q", y, got)
		}
	}
	if screen.Get(1, 9) == PaddleChar || screen.Get(1, 14) == PaddleChar {
		t.Error("player paddle drawn outside its rows")
	}

	if got := screen.Get(40, 12); got != BallChar {
		t.Errorf("ball cell = %q, expected %q", got, BallChar)
	}
	if got := screen.Get(40, 1); got != NetChar {
		t.Errorf("net cell = %q, expected %q", got, NetChar)
	}

	hud := screen.Row(0)
	if !strings.Contains(hud, "P1") || !strings.Contains(hud, "CPU") {
		t.Errorf("HUD row = %q", hud)
	}
	if got := screen.GetCell(20, 0); got.Rune != '0' || got.Color != core.ColorYellow {
		t.Errorf("player score cell = %q/%d", got.Rune, got.Color)
	}
	if footer := screen.Row(23); !strings.Contains(footer, "First to 5 wins") {
		t.Errorf("footer row = %q", footer)
	}
}

func TestRenderGameOver(t *testing.T) {
	m := newTestMatch(t)
	m.playerScore = 2
	m.cpuScore = 5
	m.state = StateGameOver
	m.winner = SideCPU

	screen := core.NewScreen(80, 24)
	m.Render(screen)
	out := screen.String()

	for _, want := range []string{
		"CPU Wins!",
		"Press 3, 5 or 7 to replay, Esc to exit",
		"Final Score  Player: 2   CPU: 5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("game-over screen missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	m := newTestMatch(t)
	screen := core.NewScreen(18, 5)
	m.Render(screen)

	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestJoinChoices(t *testing.T) {
	tests := []struct {
		choices  []int
		expected string
	}{
		{nil, "a number"},
		{[]int{5}, "5"},
		{[]int{3, 7}, "3 or 7"},
		{[]int{3, 5, 7}, "3, 5 or 7"},
	}

	for _, tc := range tests {
		if got := joinChoices(tc.choices); got != tc.expected {
			t.Errorf("joinChoices(%v) = %q, expected %q", tc.choices, got, tc.expected)
		}
	}
}
