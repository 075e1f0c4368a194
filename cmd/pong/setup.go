package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

// newLogger builds the process logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong",
		Level:           level,
	}), nil
}

// loadGameConfig loads the config file and applies the command-line overrides.
func loadGameConfig(logger *log.Logger) (config.PongConfig, error) {
	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagWinScore != 0 {
		cfg.Gameplay.WinScore = flagWinScore
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newContext builds the shared session context.
func newContext(logger *log.Logger, screenW, screenH int) (*tui.Context, error) {
	cfg, err := loadGameConfig(logger)
	if err != nil {
		return nil, err
	}

	rt := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rt.TickRate <= 0 {
		return nil, fmt.Errorf("--fps must be positive, got %d", rt.TickRate)
	}

	ctx := tui.NewContext(logger, cfg, rt)
	ctx.Muted = flagMute
	return ctx, nil
}
