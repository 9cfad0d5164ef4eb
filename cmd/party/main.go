// party is a terminal adventure platform for racing the clock before sunrise.
//
// Usage:
//
//	party list               - List available stories
//	party play <story>       - Play a story
//	party menu               - Interactive story and hero picker
//	party serve              - Start SSH server for remote play
//	party sessions [story]   - Show the session journal
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.morningparty/sessions.db)
//	--config <path>  - Path to custom pacing/UI config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import stories to register them
	_ "github.com/morningparty/frequency-rescue/internal/stories/frequency"
	_ "github.com/morningparty/frequency-rescue/internal/stories/matcha"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "party",
	Short: "The Morning Party - save the sunrise from your terminal",
	Long: `The Morning Party is a terminal adventure platform. Each story is a
race against the clock: gather what the morning needs before midnight
strikes and the party is lost.

Available commands:
  list      - Show all available stories
  play      - Play a specific story directly
  menu      - Interactive story and hero picker
  serve     - Start SSH server for remote play
  sessions  - View the session journal

Examples:
  party list
  party play frequency
  party play frequency --character dudette
  party menu
  party serve --ssh :2222
  party sessions frequency`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.morningparty/sessions.db", "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
}
