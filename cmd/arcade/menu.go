package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravity-stacker/internal/platform/tui"
	"github.com/vovakirdan/gravity-stacker/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a mode picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, press B to return to the menu and play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return fmt.Errorf("running scoreboard: %w", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// --seed fixes only the first game; later games get a fresh one.
		quit, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if quit {
			return nil
		}
		cfg.Seed = time.Now().UnixNano()
	}
}
