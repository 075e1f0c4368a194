// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the Pong match.
package config

import (
	"errors"
	"fmt"
	"slices"
)

// PongConfig contains all configuration for a Pong match.
// Distances and speeds are in court units (one unit per tick for speeds).
type PongConfig struct {
	Court    PongCourt    `yaml:"court"`
	Paddles  PongPaddles  `yaml:"paddles"`
	Ball     PongBall     `yaml:"ball"`
	Gameplay PongGameplay `yaml:"gameplay"`
	Sound    PongSound    `yaml:"sound"`
}

// PongCourt defines the size of the simulated court.
type PongCourt struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddles defines paddle geometry and speeds.
type PongPaddles struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Offset      float64 `yaml:"offset"` // Distance from the side edge
	PlayerSpeed float64 `yaml:"player_speed"`
	CPUSpeed    float64 `yaml:"cpu_speed"`
	Deadzone    float64 `yaml:"deadzone"` // CPU ignores smaller offsets
}

// PongBall defines ball size and physics.
type PongBall struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`       // Base horizontal speed
	SpeedUp    float64 `yaml:"speed_up"`    // Added to |vx| on every paddle hit
	MaxSpeed   float64 `yaml:"max_speed"`   // Cap for |vx|, 0 disables the cap
	MinSpin    float64 `yaml:"min_spin"`    // Floor for the maximum spin speed
	SpinFactor float64 `yaml:"spin_factor"` // Max spin as a fraction of base speed
}

// PongGameplay defines match rules.
type PongGameplay struct {
	WinScore  int   `yaml:"win_score"`
	WinScores []int `yaml:"win_scores"` // Thresholds offered on replay
}

// PongSound selects which cues are played.
type PongSound struct {
	Wall   bool `yaml:"wall"`
	Paddle bool `yaml:"paddle"`
	Score  bool `yaml:"score"`
}

// Bounds for win_scores entries: each must be a single digit key.
const (
	MinWinScore = 1
	MaxWinScore = 9
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable match.
func (c PongConfig) Validate() error {
	switch {
	case c.Court.Width <= 0 || c.Court.Height <= 0:
		return fmt.Errorf("config: court must be positive, got %gx%g: %w",
			c.Court.Width, c.Court.Height, ErrInvalidConfig)
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("config: paddle size must be positive: %w", ErrInvalidConfig)
	case c.Paddles.Height > c.Court.Height:
		return fmt.Errorf("config: paddle height %g exceeds court height %g: %w",
			c.Paddles.Height, c.Court.Height, ErrInvalidConfig)
	case c.Paddles.Offset < 0 || 2*(c.Paddles.Offset+c.Paddles.Width) >= c.Court.Width:
		return fmt.Errorf("config: paddle offset %g does not fit the court: %w",
			c.Paddles.Offset, ErrInvalidConfig)
	case c.Paddles.PlayerSpeed <= 0 || c.Paddles.CPUSpeed <= 0:
		return fmt.Errorf("config: paddle speeds must be positive: %w", ErrInvalidConfig)
	case c.Paddles.Deadzone < 0:
		return fmt.Errorf("config: deadzone must not be negative: %w", ErrInvalidConfig)
	case c.Ball.Size <= 0 || c.Ball.Size >= c.Court.Height:
		return fmt.Errorf("config: ball size %g does not fit the court: %w",
			c.Ball.Size, ErrInvalidConfig)
	case c.Ball.Speed <= 0:
		return fmt.Errorf("config: ball speed must be positive: %w", ErrInvalidConfig)
	case c.Ball.SpeedUp < 0:
		return fmt.Errorf("config: ball speed_up must not be negative: %w", ErrInvalidConfig)
	case c.Ball.MaxSpeed != 0 && c.Ball.MaxSpeed < c.Ball.Speed:
		return fmt.Errorf("config: max_speed %g is below ball speed %g: %w",
			c.Ball.MaxSpeed, c.Ball.Speed, ErrInvalidConfig)
	case len(c.Gameplay.WinScores) == 0:
		return fmt.Errorf("config: win_scores must not be empty: %w", ErrInvalidConfig)
	}

	// Each threshold doubles as its replay key
	for _, s := range c.Gameplay.WinScores {
		if s < MinWinScore || s > MaxWinScore {
			return fmt.Errorf("config: win score %d must be between %d and %d: %w",
				s, MinWinScore, MaxWinScore, ErrInvalidConfig)
		}
	}
	if !c.AllowsWinScore(c.Gameplay.WinScore) {
		return fmt.Errorf("config: win_score %d is not one of %v: %w",
			c.Gameplay.WinScore, c.Gameplay.WinScores, ErrInvalidConfig)
	}
	return nil
}

// AllowsWinScore reports whether score is one of the selectable thresholds.
func (c PongConfig) AllowsWinScore(score int) bool {
	return slices.Contains(c.Gameplay.WinScores, score)
}
