package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagBrowse bool
	flagClear  bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show high scores",
	Long: `Display the best runs, optionally for a single player.

Examples:
  shooter scores
  shooter scores alice --limit 5
  shooter scores --browse
  shooter scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive leaderboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fatalf("%v", err)
		}
		fmt.Println("All scores cleared.")
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fatalf("%v", err)
		}
		return
	}

	title := "High Scores"
	var scores []storage.ScoreEntry
	if len(args) == 1 {
		title = fmt.Sprintf("High Scores - %s", args[0])
		scores, err = store.PlayerScores(args[0], flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		store.Close()
		fatalf("retrieving scores: %v", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, row := range tui.ScoreRows(scores) {
		date := scores[i].CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-6s  %s\n", row[0], row[1], row[2], row[3], row[4], date)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Total kills: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalKills)
	}
}
