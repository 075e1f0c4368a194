package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only change how fast the CPU paddle can move.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// CPU paddle speed per preset
const (
	cpuSpeedEasy   = 5.0
	cpuSpeedNormal = 7.0
	cpuSpeedHard   = 9.0
)

// ParsePreset converts a flag value into a preset.
// An empty string yields an empty preset, meaning "keep the config value".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// CPUSpeedForPreset returns the CPU paddle speed for a preset.
func CPUSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return cpuSpeedEasy
	case DifficultyHard:
		return cpuSpeedHard
	default:
		return cpuSpeedNormal
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Paddles.CPUSpeed = CPUSpeedForPreset(preset)
}
