package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

const (
	testCourtW = 800.0
	testCourtH = 600.0
)

// fixedRandom always returns the same coin flip.
type fixedRandom struct {
	value bool
}

func (f fixedRandom) Bool() bool {
	return f.value
}

func newTestBall(t *testing.T) *Ball {
	t.Helper()
	return NewBall(config.DefaultPongConfig().Ball, testCourtW, testCourtH, fixedRandom{true})
}

func TestPaddleMoveClamps(t *testing.T) {
	tests := []struct {
		name     string
		y, dy    float64
		expected float64
	}{
		{"free move down", 200, 9, 209},
		{"free move up", 200, -9, 191},
		{"clamp at top", 4, -9, 0},
		{"clamp at bottom", 495, 9, 500},
		{"already at top", 0, -9, 0},
		{"already at bottom", 500, 9, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(10, tc.y, 10, 100, 9)
			p.Move(tc.dy, testCourtH)
			if p.Y != tc.expected {
				t.Errorf("Move(%g) from %g: Y = %g, expected %g", tc.dy, tc.y, p.Y, tc.expected)
			}
		})
	}
}

func TestPaddleStaysInCourt(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPaddle(10, 250, 10, 100, 9)

	for i := 0; i < 5000; i++ {
		p.Move((rng.Float64()-0.5)*60, testCourtH)
		if p.Y < 0 || p.Y > testCourtH-p.Height {
			t.Fatalf("tick %d: paddle Y = %g out of [0, %g]", i, p.Y, testCourtH-p.Height)
		}
	}
}

func TestPaddleAutoTrack(t *testing.T) {
	tests := []struct {
		name      string
		paddleY   float64
		ballY     float64 // Ball top; ball height is 8
		expectedY float64
	}{
		// Paddle center is paddleY+50, ball center is ballY+4
		{"inside deadzone below", 250, 300, 250},
		{"inside deadzone above", 250, 292, 250},
		{"exactly on center", 250, 296, 250},
		{"just past deadzone moves by offset", 250, 302, 256},
		{"far below moves by speed", 250, 500, 257},
		{"far above moves by speed", 250, 10, 243},
		{"clamped at bottom", 498, 590, 500},
		{"clamped at top", 3, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(780, tc.paddleY, 10, 100, 7)
			b := newTestBall(t)
			b.Y = tc.ballY

			p.AutoTrack(b, testCourtH)
			if p.Y != tc.expectedY {
				t.Errorf("AutoTrack: Y = %g, expected %g", p.Y, tc.expectedY)
			}
		})
	}
}

func TestPaddleAutoTrackNeverExceedsSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewPaddle(780, 250, 10, 100, 7)
	b := newTestBall(t)

	for i := 0; i < 2000; i++ {
		b.Y = rng.Float64() * (testCourtH - b.H)
		before := p.Y
		p.AutoTrack(b, testCourtH)

		if moved := p.Y - before; math.Abs(moved) > p.Speed+epsilon {
			t.Fatalf("tick %d: paddle moved %g, speed is %g", i, moved, p.Speed)
		}
	}
}

func TestPaddleAutoTrackFractionalPosition(t *testing.T) {
	// 123.456 - 7 is not exact in float64, so the step is compared with a tolerance
	p := NewPaddle(780, 123.456, 10, 100, 7)
	b := newTestBall(t)
	b.Y = 0

	before := p.Y
	p.AutoTrack(b, testCourtH)

	moved := before - p.Y
	if !nearlyEqual(moved, p.Speed) {
		t.Errorf("paddle moved %g, expected a full step of %g", moved, p.Speed)
	}
	if moved > p.Speed+epsilon {
		t.Errorf("paddle moved %g, more than its speed %g", moved, p.Speed)
	}
}

func TestPaddleRecenterAndBounds(t *testing.T) {
	p := NewPaddle(10, 0, 10, 100, 9)
	p.Recenter(testCourtH)

	if p.Y != 250 {
		t.Errorf("Recenter: Y = %g, expected 250", p.Y)
	}
	if p.Center() != 300 {
		t.Errorf("Center() = %g, expected 300", p.Center())
	}

	r := p.Bounds()
	if r.X != 10 || r.Y != 250 || r.W != 10 || r.H != 100 {
		t.Errorf("Bounds() = %+v, expected {10 250 10 100}", r)
	}
}
