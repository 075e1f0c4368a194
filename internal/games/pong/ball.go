package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// ServeDirection selects where a reset ball travels.
type ServeDirection int

const (
	ServeRandom ServeDirection = iota
	ServeLeft                  // Toward the player
	ServeRight                 // Toward the CPU
)

// Ball is a rectangular body with continuous position and velocity.
type Ball struct {
	X, Y   float64 // Top-left corner
	W, H   float64
	VX, VY float64

	// BaseSpeed is the nominal horizontal speed used for serves and spin.
	BaseSpeed float64

	spawnX, spawnY float64
	courtH         float64

	speedUp    float64
	maxSpeed   float64 // 0 means uncapped
	minSpin    float64
	spinFactor float64

	rng RandomSource
}

// NewBall creates a ball at the center of the court and serves it in a
// random direction.
func NewBall(cfg config.PongBall, courtW, courtH float64, rng RandomSource) *Ball {
	b := &Ball{
		W:          cfg.Size,
		H:          cfg.Size,
		BaseSpeed:  cfg.Speed,
		spawnX:     (courtW - cfg.Size) / 2,
		spawnY:     (courtH - cfg.Size) / 2,
		courtH:     courtH,
		speedUp:    cfg.SpeedUp,
		maxSpeed:   cfg.MaxSpeed,
		minSpin:    cfg.MinSpin,
		spinFactor: cfg.SpinFactor,
		rng:        rng,
	}
	b.Reset(ServeRandom)
	return b
}

// Advance moves the ball by its velocity and bounces it off the top and
// bottom walls. Returns EventWallBounce when a wall was touched.
func (b *Ball) Advance() Event {
	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 {
		b.Y = 0
		b.VY = -b.VY
		return EventWallBounce
	}
	if b.Y+b.H >= b.courtH {
		b.Y = b.courtH - b.H
		b.VY = -b.VY
		return EventWallBounce
	}
	return EventNone
}

// ResolveCollision bounces the ball off whichever paddle it overlaps.
// The player paddle is tested first and wins if both overlap.
// The ball is pushed out of the paddle so it cannot stick or tunnel back.
func (b *Ball) ResolveCollision(player, cpu *Paddle) Event {
	bounds := b.Bounds()

	if bounds.Intersects(player.Bounds()) {
		b.X = player.Bounds().Right()
		b.VX = math.Abs(b.VX)
		b.applySpin(player)
		b.accelerate(1)
		return EventPaddleHit
	}
	if bounds.Intersects(cpu.Bounds()) {
		b.X = cpu.X - b.W
		b.VX = -math.Abs(b.VX)
		b.applySpin(cpu)
		b.accelerate(-1)
		return EventPaddleHit
	}
	return EventNone
}

// applySpin sets the vertical speed from where the ball struck the paddle:
// edges send it steeply up or down, the middle keeps it flat.
func (b *Ball) applySpin(p *Paddle) {
	offset := (b.Bounds().CenterY() - p.Center()) / (p.Height / 2)
	maxVertical := math.Max(b.minSpin, math.Abs(b.BaseSpeed)*b.spinFactor)
	b.VY = offset * maxVertical
}

// accelerate adds the speed-up increment to |vx| in direction dir (+1 or -1),
// honoring the speed cap when one is configured.
func (b *Ball) accelerate(dir float64) {
	speed := math.Abs(b.VX) + b.speedUp
	if b.maxSpeed > 0 {
		speed = math.Min(speed, b.maxSpeed)
	}
	b.VX = dir * speed
}

// Reset puts the ball back at its spawn point with a fresh serve velocity.
func (b *Ball) Reset(dir ServeDirection) {
	b.X = b.spawnX
	b.Y = b.spawnY

	speed := math.Abs(b.BaseSpeed)
	switch dir {
	case ServeLeft:
		b.VX = -speed
	case ServeRight:
		b.VX = speed
	default:
		b.VX = randomSign(b.rng) * speed
	}
	b.VY = randomSign(b.rng) * speed / 2
}

// Speed returns the current horizontal speed magnitude.
func (b *Ball) Speed() float64 {
	return math.Abs(b.VX)
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}
