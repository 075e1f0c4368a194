package pong

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
)

// Smallest terminal the court can be drawn on
const (
	minScreenW = 20
	minScreenH = 6
)

// Render draws the match into the screen buffer.
func (m *Match) Render(dst *core.Screen) {
	RenderSnapshot(m.Snapshot(), m.WinScores(), dst)
}

// RenderSnapshot draws a snapshot scaled onto the character grid.
// Row 0 holds the scores, the last row the instructions, and the court
// fills the rows in between. choices are the thresholds offered on the
// game-over screen.
func RenderSnapshot(s Snapshot, choices []int, dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	v := viewport{snap: s, w: w, rows: h - 2}

	// Net
	centerX := w / 2
	for y := 1; y < h-1; y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	v.drawPaddle(dst, s.Player, core.ColorCyan)
	v.drawPaddle(dst, s.CPU, core.ColorOrange)
	dst.SetColored(v.col(s.Ball.X+s.Ball.W/2), v.row(s.Ball.CenterY()), BallChar, core.ColorBrightWhite)

	// Scores
	dst.DrawText(1, 0, "P1")
	dst.DrawText(w-4, 0, "CPU")
	dst.DrawTextColored(w/4, 0, strconv.Itoa(s.PlayerScore), core.ColorYellow)
	dst.DrawTextColored(w*3/4, 0, strconv.Itoa(s.CPUScore), core.ColorYellow)

	dst.DrawText(1, h-1, fmt.Sprintf("W/S = Move | First to %d wins", s.WinScore))

	if s.State == StateGameOver {
		drawGameOver(dst, s, choices)
	}
}

// viewport maps court units onto screen cells.
type viewport struct {
	snap Snapshot
	w    int
	rows int // Court rows, starting at screen row 1
}

func (v viewport) col(x float64) int {
	return core.Clamp(int(x/v.snap.CourtW*float64(v.w)), 0, v.w-1)
}

func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(y/v.snap.CourtH*float64(v.rows)), 0, v.rows-1)
}

// drawPaddle fills every row the paddle covers, at least one.
func (v viewport) drawPaddle(dst *core.Screen, r core.RectF, c core.Color) {
	x := v.col(r.X)
	top := v.row(r.Y)
	end := 1 + core.Clamp(int(math.Ceil(r.Bottom()/v.snap.CourtH*float64(v.rows)))-1, 0, v.rows-1)
	dst.DrawVLine(x, top, max(top, end)-top+1, PaddleChar, c)
}

// drawGameOver draws the winner box in the center of the screen.
func drawGameOver(dst *core.Screen, s Snapshot, choices []int) {
	title := fmt.Sprintf("%s Wins!", s.Winner)
	prompt := fmt.Sprintf("Press %s to replay, Esc to exit", joinChoices(choices))
	detail := fmt.Sprintf("Final Score  Player: %d   CPU: %d", s.PlayerScore, s.CPUScore)

	boxW := max(len(title), len(prompt), len(detail)) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorGreen)
	dst.DrawText(boxX+(boxW-len(prompt))/2, boxY+3, prompt)
	dst.DrawText(boxX+(boxW-len(detail))/2, boxY+5, detail)
}

// joinChoices formats thresholds as "3, 5 or 7".
func joinChoices(choices []int) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = strconv.Itoa(c)
	}
	switch len(parts) {
	case 0:
		return "a number"
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
	}
}
