package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mfarouk/metro-runner/internal/platform/tui"
	"github.com/mfarouk/metro-runner/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the profile and recent runs",
	Long: `Display the stored profile (best score, lifetime coins, selected
character) and the most recent runs.

Examples:
  metro scores
  metro scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	record, err := store.LoadRecord()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}

	runs, best, coins, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Metro Runner - Profile")
	fmt.Println()
	fmt.Printf("  Best score:      %d\n", record.BestScore)
	fmt.Printf("  Lifetime coins:  %d\n", record.TotalCoins)
	fmt.Printf("  Runner:          %s\n", record.SelectedCharacter)
	fmt.Printf("  Runs recorded:   %d\n", runs)
	fmt.Println()

	if runs == 0 {
		fmt.Println("No runs recorded yet. Play 'metro play' to set the first score!")
		return
	}

	// The runs table can disagree with the profile if the database was
	// edited by hand; prefer the profile but show both.
	if best != record.BestScore || coins != record.TotalCoins {
		fmt.Printf("  (run history: best %d, coins %d)\n\n", best, coins)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-8s  %-8s  %-12s  %-6s  %s\n", "Score", "Coins", "Runner", "Time", "Date")
	fmt.Printf("  %-8s  %-8s  %-12s  %-6s  %s\n", "-----", "-----", "------", "----", "----")
	for _, entry := range recent {
		fmt.Printf("  %-8d  %-8d  %-12s  %-6s  %s\n",
			entry.Score, entry.Coins, entry.Character,
			fmt.Sprintf("%.0fs", entry.Duration),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
