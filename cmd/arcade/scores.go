package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-stacker/internal/registry"
	"github.com/vovakirdan/gravity-stacker/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a game mode",
	Long: `Display the top scores for the specified mode, with the rows
cleared and the play time of each run.

Examples:
  arcade scores stacker
  arcade scores stacker_classic --limit 25
  arcade scores stacker --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	logger := newLogger(os.Stderr)

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		logger.Debug("scores cleared", "game", gameID, "count", n)
		fmt.Printf("Cleared %d scores for %s.\n", n, title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %s\n", "Rank", "Score", "Lines", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-7s  %s\n", "----", "-----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-5d  %-7s  %s\n",
			i+1, entry.Score, entry.Lines, entry.Duration.Round(time.Second), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		logger.Warn("could not load stats", "game", gameID, "error", err)
		return nil
	}
	fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Lines: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	return nil
}
