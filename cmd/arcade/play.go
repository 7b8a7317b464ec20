package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gravity-stacker/internal/config"
	"github.com/vovakirdan/gravity-stacker/internal/core"
	"github.com/vovakirdan/gravity-stacker/internal/games/stacker"
	"github.com/vovakirdan/gravity-stacker/internal/platform/tui"
	"github.com/vovakirdan/gravity-stacker/internal/registry"
	"github.com/vovakirdan/gravity-stacker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (stacker if omitted).

Modes:
  stacker          - Gravity flips on a timer and with G
  stacker_classic  - Gravity only flips when you press G

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, X            - Rotate clockwise
  Z                - Rotate counter-clockwise
  Space            - Hard drop
  G                - Flip gravity
  P/Esc            - Pause
  R                - Restart
  B                - Back (when paused or after game over)
  ?                - Toggle full key help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower drops and flips, speeds up from the start
  normal - Config speeds, progression starts at 30%
  hard   - Faster drops and flips, progression starts at 70%
  fixed  - No progression, speed stays at the configured interval

Examples:
  arcade play
  arcade play stacker_classic
  arcade play --difficulty hard
  arcade play --config ./my-stacker.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom stacker config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags validates --config and --difficulty and hands them to the game package.
func applyGameFlags() error {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadStacker(flagConfig); err != nil {
			return err
		}
	}
	stacker.SetConfigPath(flagConfig)
	stacker.SetDifficultyPreset(string(preset))
	return nil
}

// openStore opens the score database. A failure is logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "stacker"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	logger.Debug("starting game", "game", gameID, "difficulty", flagDifficulty, "config", flagConfig)
	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
