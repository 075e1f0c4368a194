// pong is a terminal Pong game: one human paddle against a CPU paddle.
//
// Usage:
//
//	pong                - Play in this terminal (same as "pong play")
//	pong play           - Play in this terminal
//	pong serve          - Start SSH server for remote play
//	pong config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible serves
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - CPU preset: easy, normal, hard
//	--win-score <n>       - Points needed to win the first match
//	--mute                - Disable the terminal bell
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagWinScore   int
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong in your terminal",
	Long: `Pong in your terminal: you play the left paddle against the CPU.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  pong
  pong play --difficulty hard --win-score 7
  pong serve --ssh :2222
  pong config > ~/.pong/pong.yaml`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "CPU preset: easy, normal, hard")
	pf.IntVar(&flagWinScore, "win-score", 0, "Points needed to win (0 = config value)")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound cues")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
