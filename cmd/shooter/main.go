// shooter is a side-scrolling space shooter for the terminal.
//
// Usage:
//
//	shooter play [view]      - Play, starting at the main menu by default
//	shooter list             - List the screens that can be opened directly
//	shooter scores [player]  - Show high scores
//	shooter serve            - Start SSH server for remote play
//	shooter bench            - Run a headless game and report frame throughput
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible enemy waves
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom shooter.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import views to register them
	_ "github.com/vovakirdan/tui-shooter/internal/views/game"
	_ "github.com/vovakirdan/tui-shooter/internal/views/menu"
	_ "github.com/vovakirdan/tui-shooter/internal/views/scores"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Shooter - a side-scrolling space shooter in your terminal",
	Long: `Shooter is a side-scrolling space shooter drawn with half-block
characters. Fly your ship, switch between three guns and shoot down
invaders and asteroids before they reach you.

Available commands:
  play     - Start playing
  list     - Show screens that can be opened directly
  scores   - View high scores
  serve    - Start SSH server for remote play
  bench    - Headless run for frame throughput

Examples:
  shooter play
  shooter play game --difficulty hard
  shooter scores --browse
  shooter serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shooter config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory with replacement sprites and sounds")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.arcade/shooter.log, stderr for serve)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(benchCmd)
}
