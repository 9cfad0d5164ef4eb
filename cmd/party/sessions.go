package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/morningparty/frequency-rescue/internal/registry"
	"github.com/morningparty/frequency-rescue/internal/storage"
)

var flagSessionsLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions [story]",
	Short: "Show the session journal",
	Long: `Display recent sessions, best rescue times and the ending tally.

With a story argument, shows that story's journal only.

Examples:
  party sessions
  party sessions frequency
  party sessions frequency --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 10, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, args []string) {
	storyID := ""
	if len(args) > 0 {
		storyID = args[0]
		if !registry.Exists(storyID) {
			fmt.Fprintf(os.Stderr, "Error: unknown story %q\n", storyID)
			fmt.Fprintln(os.Stderr, "Run 'party list' to see available stories.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(storyID, flagSessionsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if storyID != "" {
		fmt.Printf("Session Journal - %s\n", storyID)
	} else {
		fmt.Println("Session Journal")
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No nights on record.")
		fmt.Println()
		fmt.Println("Play 'party menu' to fill the journal!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-9s  %-10s  %-6s  %s\n", "When", "Story", "Hero", "Ending", "Took", "Gear")
	fmt.Printf("  %-16s  %-10s  %-9s  %-10s  %-6s  %s\n", "----", "-----", "----", "------", "----", "----")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-10s  %-9s  %-10s  %3d m  %4d\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.StoryID,
			s.CharacterID,
			s.Ending,
			s.ElapsedMinutes,
			s.ItemsCollected,
		)
	}

	if storyID == "" {
		return
	}

	fmt.Println()
	if best, ok, err := store.BestTime(storyID); err == nil && ok {
		fmt.Printf("Best rescue: %d minutes\n", best)
	}

	tally, err := store.EndingTally(storyID)
	if err != nil || len(tally) == 0 {
		return
	}

	endings := make([]string, 0, len(tally))
	for e := range tally {
		endings = append(endings, e)
	}
	sort.Strings(endings)

	fmt.Println("Endings:")
	for _, e := range endings {
		fmt.Printf("  %-10s %d\n", e, tally[e])
	}
}
