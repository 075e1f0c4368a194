package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultDeadzone is the center offset below which the CPU paddle stays still.
const DefaultDeadzone = 5.0

// Paddle is a vertical-only rectangular body.
// X is fixed at construction; Y is kept within [0, courtH-Height].
type Paddle struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Speed    float64 // Maximum displacement per tick
	Deadzone float64 // Only used by AutoTrack
}

// NewPaddle creates a paddle at the given position.
func NewPaddle(x, y, width, height, speed float64) *Paddle {
	return &Paddle{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Speed:    speed,
		Deadzone: DefaultDeadzone,
	}
}

// Move shifts the paddle by dy (positive is down) and clamps it to the court.
func (p *Paddle) Move(dy, courtH float64) {
	p.Y = core.ClampF(p.Y+dy, 0, courtH-p.Height)
}

// AutoTrack moves the paddle toward the ball's vertical center, never
// faster than Speed. Offsets inside the deadzone are ignored so the
// paddle does not jitter once it has caught up.
func (p *Paddle) AutoTrack(ball *Ball, courtH float64) {
	diff := ball.Bounds().CenterY() - p.Center()
	if math.Abs(diff) < p.Deadzone {
		return
	}
	if diff > 0 {
		p.Move(math.Min(p.Speed, diff), courtH)
	} else {
		p.Move(-math.Min(p.Speed, -diff), courtH)
	}
}

// Center returns the vertical center of the paddle.
func (p *Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Recenter puts the paddle back in the middle of the court.
func (p *Paddle) Recenter(courtH float64) {
	p.Y = (courtH - p.Height) / 2
}

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}
