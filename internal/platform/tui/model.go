package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gravity-stacker/internal/core"
	"github.com/vovakirdan/gravity-stacker/internal/registry"
	"github.com/vovakirdan/gravity-stacker/internal/storage"
)

// highScoreSeeder is implemented by games that show the stored best score.
type highScoreSeeder interface {
	SetHighScore(score int)
}

// runStats is implemented by games that report per-session details.
type runStats interface {
	Stats() (lines, pieces int)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a single game.
// It is used directly by `arcade play` and embedded in SSH sessions.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	standalone bool // Back quits the program instead of signalling the session
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// config.ScreenH is the full terminal height; the help bar takes the bottom rows.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
	}
	m.help.Width = cfg.ScreenW
	gc := m.gameConfig()
	m.screen = core.NewScreen(gc.ScreenW, gc.ScreenH)
	m.seedHighScore()
	return m
}

// seedHighScore hands the stored best score to the game.
func (m Model) seedHighScore() {
	seeder, ok := m.game.(highScoreSeeder)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return
	}
	seeder.SetHighScore(best)
}

// helpHeight is the number of rows the help bar occupies.
func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	h := 0
	for _, col := range m.keys.Keys.FullHelp() {
		h = max(h, len(col))
	}
	return h
}

// gameConfig is the runtime config with the help bar rows removed.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = max(0, cfg.ScreenH-m.helpHeight())
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		// Leaving mid-run is only allowed from the pause or game over screens.
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize updates the screen size. The game keeps running; it lays
// itself out again on the next render.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width
	gc := m.gameConfig()
	m.screen.Resize(gc.ScreenW, gc.ScreenH)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.started = time.Now()
		m.scoreSaved = false
		if m.gameState.GameOver {
			// Fresh seed so the next run deals a different sequence.
			m.config.Seed = time.Now().UnixNano()
			m.seedHighScore()
			m.game.Reset(m.gameConfig())
			m.gameState = m.game.State()
			m.inputFrame.Clear()
			return m, tickCmd(m.config.TickRate)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Zero scores are not stored.
func (m Model) saveRun() {
	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Duration: time.Since(m.started).Round(time.Millisecond),
	}
	if st, ok := m.game.(runStats); ok {
		run.Lines, run.Pieces = st.Stats()
	}
	m.logger.Debug("game over", "game", run.GameID, "score", run.Score, "lines", run.Lines, "pieces", run.Pieces)

	if m.store == nil || run.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(run); err != nil {
		m.logger.Warn("could not save score", "game", run.GameID, "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys)))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game.
// Returns true if the player asked to quit rather than go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (quit bool, err error) {
	model := NewModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return true, err
	}
	if m, ok := final.(Model); ok {
		return m.IsQuitting(), nil
	}
	return true, nil
}
