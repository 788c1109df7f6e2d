package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/assets"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagMute bool
	flagName string
)

var playCmd = &cobra.Command{
	Use:   "play [view]",
	Short: "Play the shooter",
	Long: `Start the shooter, at the main menu unless another screen is named.

Controls:
  Arrows/WASD  - Move
  Space        - Fire
  1/2/3        - Switch gun
  Enter        - Select / play again
  Esc          - Back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  shooter play
  shooter play game --difficulty hard
  shooter play --config ./my-shooter.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name recorded with scores (default: login name)")
}

func runPlay(_ *cobra.Command, args []string) {
	viewID := "menu"
	if len(args) == 1 {
		viewID = args[0]
	}

	if !registry.Exists(viewID) {
		fmt.Fprintf(os.Stderr, "Error: unknown view %q\n", viewID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available views.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger("shooter", nil)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	loader := assets.NewLoader(flagAssets)
	player, closeAudio := newAudio(cfg, loader, logger, flagMute)

	name := flagName
	if name == "" {
		if u, userErr := user.Current(); userErr == nil {
			name = u.Username
		}
	}

	runErr := tui.Run(tui.Options{
		Config:     &cfg,
		Assets:     loader,
		Audio:      player,
		Store:      store,
		Logger:     logger,
		FirstView:  viewID,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		Cols:       width,
		Rows:       height,
		PlayerName: name,
		SessionID:  uuid.NewString(),
	})

	// Release devices before potential exit
	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game stopped", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
