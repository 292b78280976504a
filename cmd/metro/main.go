// metro is a terminal endless runner. Pick a character, jump between
// metro platforms, dodge obstacles and collect coins.
//
// Usage:
//
//	metro play               - Play in the current terminal
//	metro scores             - Show the profile and recent runs
//	metro serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.metro-runner/metro.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "metro",
	Short: "Metro Runner - endless runner in your terminal",
	Long: `Metro Runner is a terminal endless runner. The world scrolls ever
faster while you jump between metro platforms, dodge obstacles and
collect coins. Four characters, each with a timed ability.

Available commands:
  play     - Play in the current terminal
  scores   - View your profile and recent runs
  serve    - Start SSH server for remote play

Examples:
  metro play
  metro play --seed 42
  metro scores --interactive
  metro serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.metro-runner/metro.db", "Path to profile database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
