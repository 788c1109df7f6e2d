package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the screens play can start at",
	Long:  `Shows every registered view. Any of them can be passed to 'shooter play'.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	views := registry.List()

	if len(views) == 0 {
		fmt.Println("No views available.")
		return
	}

	fmt.Println("Available views:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range views {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, v := range views {
		fmt.Printf("  %-*s  %s\n", maxIDLen, v.ID, v.Title)
	}

	fmt.Println()
	fmt.Println("Run 'shooter play <id>' to start there.")
}
