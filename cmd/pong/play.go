package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong in this terminal",
	Long: `Play Pong against the CPU in this terminal.

Controls:
  W/Up, S/Down  - Move your paddle
  N             - Restart the match
  3, 5, 7       - Replay to that score (after game over)
  Esc           - Exit (after game over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Slow CPU paddle
  normal - Default CPU paddle
  hard   - CPU paddle as fast as yours

Examples:
  pong play
  pong play --difficulty easy
  pong play --win-score 3 --mute
  pong play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	ctx, err := newContext(logger, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	results, err := tui.Run(ctx, os.Stdout)

	// The alt screen is gone now, so the log can use the terminal again
	for i, r := range results {
		logger.Info("match finished",
			"match", i+1,
			"winner", r.Winner,
			"player", r.PlayerScore,
			"cpu", r.CPUScore,
			"first_to", r.WinScore,
		)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
