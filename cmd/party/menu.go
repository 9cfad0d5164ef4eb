package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/morningparty/frequency-rescue/internal/character"
	"github.com/morningparty/frequency-rescue/internal/config"
	"github.com/morningparty/frequency-rescue/internal/platform/tui"
	"github.com/morningparty/frequency-rescue/internal/registry"
	"github.com/morningparty/frequency-rescue/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the party with a story picker menu",
	Long: `Start the platform in interactive menu mode.

Pick a night, pick a hero, and play. After a night ends you return
to the menu. The session journal is one Tab away.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Session journal
  Esc          - Back
  Q            - Quit

Examples:
  party menu
  party menu --db ./sessions.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		store = nil
	}

	// Get terminal size for the journal screen
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		if menuResult.Quit {
			break
		}

		if menuResult.WantsJournal {
			goBack, jErr := tui.RunJournal(store, width, height)
			if jErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", jErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from journal
		}

		story, err := registry.Create(menuResult.StoryID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating story: %v\n", err)
			continue
		}

		hero, ok := character.Get(menuResult.CharacterID)
		if !ok {
			continue
		}

		if err := tui.Run(story, hero, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running story: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
