package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/morningparty/frequency-rescue/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available stories",
	Long:  `Shows a list of all stories registered on the platform.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	stories := registry.List()

	if len(stories) == 0 {
		fmt.Println("No stories available.")
		return
	}

	fmt.Println("Available stories:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, st := range stories {
		if len(st.ID) > maxIDLen {
			maxIDLen = len(st.ID)
		}
		if len(st.Title) > maxTitleLen {
			maxTitleLen = len(st.Title)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Tagline")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-------")

	for _, st := range stories {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, st.ID, maxTitleLen, st.Title, st.Tag)
	}

	fmt.Println()
	fmt.Println("Run 'party play <id>' to play a story.")
}
