package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/config"
	"github.com/morningparty/frequency-rescue/internal/platform/tui"
	"github.com/morningparty/frequency-rescue/internal/registry"
	"github.com/morningparty/frequency-rescue/internal/storage"
)

var flagCharacter string

var playCmd = &cobra.Command{
	Use:   "play <story>",
	Short: "Play a story",
	Long: `Start playing the specified story.

Controls:
  Enter/Space  - Continue dialogue / take selected choice
  Up/Down/j/k  - Move between choices
  1-9          - Quick pick a choice
  R            - Play again (after the night ends)
  Q/Ctrl+C     - Quit

Examples:
  party play frequency
  party play frequency --character dudette
  party play matcha --config ./slow-clock.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagCharacter, "character", "dude", "Hero to play as (dude, dudette)")
}

func runPlay(cmd *cobra.Command, args []string) {
	storyID := args[0]

	if !registry.Exists(storyID) {
		fmt.Fprintf(os.Stderr, "Error: unknown story %q\n", storyID)
		fmt.Fprintln(os.Stderr, "Run 'party list' to see available stories.")
		os.Exit(1)
	}

	hero, ok := character.Get(flagCharacter)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", flagCharacter)
		for _, c := range character.All() {
			fmt.Fprintf(os.Stderr, "  %s - %s\n", c.ID, c.Name)
		}
		os.Exit(1)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	story, err := registry.Create(storyID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating story: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the story still plays
		store = nil
	}

	runErr := tui.Run(story, hero, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running story: %v\n", runErr)
		os.Exit(1)
	}
}
