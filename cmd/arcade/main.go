// arcade is a terminal gravity-flip block stacker.
//
// Usage:
//
//	arcade list              - List available game modes
//	arcade play [mode]       - Play a mode (default: stacker)
//	arcade menu              - Start menu to pick modes interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <mode>     - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.arcade/scores.db)
//	--verbose          - Log debug messages
//	--log-file <path>  - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/gravity-stacker/internal/games/stacker"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Gravity Stacker - a falling-block game where gravity flips",
	Long: `Gravity Stacker is a terminal falling-block game. Complete rows to
clear them, and keep an eye on the gravity arrow: every few seconds the
pull reverses and pieces fall towards the other edge.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play
  arcade play stacker_classic --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores stacker`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while a game or menu is running")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger returns a logger that cannot draw over the alternate screen:
// it writes to --log-file when set and discards otherwise. The returned
// closer must be called when the TUI exits.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		newLogger(os.Stderr).Warn("could not open log file", "path", flagLogFile, "error", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}
