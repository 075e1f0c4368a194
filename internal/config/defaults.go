package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Court: PongCourt{
			Width:  800,
			Height: 600,
		},
		Paddles: PongPaddles{
			Width:       10,
			Height:      100,
			Offset:      10,
			PlayerSpeed: 9,
			CPUSpeed:    7,
			Deadzone:    5,
		},
		Ball: PongBall{
			Size:       8,
			Speed:      6,
			SpeedUp:    0.2,
			MaxSpeed:   18, // 3x base speed
			MinSpin:    3,
			SpinFactor: 0.8,
		},
		Gameplay: PongGameplay{
			WinScore:  5,
			WinScores: []int{3, 5, 7},
		},
		Sound: PongSound{
			Wall:   true,
			Paddle: true,
			Score:  true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
