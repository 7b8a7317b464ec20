package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-stacker/internal/registry"
	"github.com/vovakirdan/gravity-stacker/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every game mode registered in the arcade, with its best score.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Best scores are optional; a missing database just leaves the column blank.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, err = store.GetAllGamesStats()
		if err != nil {
			newLogger(os.Stderr).Debug("could not load stats", "error", err)
		}
		store.Close()
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Best")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, g := range games {
		best := "-"
		if s, ok := stats[g.ID]; ok && s.GamesCount > 0 {
			best = fmt.Sprintf("%d", s.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, best)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a mode.")
}
