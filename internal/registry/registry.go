// Package registry lets game modes register themselves so the platform can
// list and start them by ID. Modes call Register from init(); the CLI, menu
// and SSH server only ever see the Game interface.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic and
// never touch the terminal: the platform maps keys to actions, calls Step at
// a fixed rate and prints whatever Render draws.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score-table key (e.g. "stacker", "stacker_classic").
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset starts a fresh session. It is called once before the first Step
	// and again whenever the platform restarts the game.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one fixed tick after applying the frame's
	// actions in arrival order.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports score and status without advancing the game.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game instance.
type Factory func() Game

// Registry maps game IDs to factories. The zero value is not usable; call New.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	titles    map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		titles:    make(map[string]string),
	}
}

// Register adds a factory under id. It panics on an empty or duplicate id
// since both are programming errors caught at startup.
func (r *Registry) Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.factories[id] = f
	r.titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]GameInfo, 0, len(r.factories))
	for id := range r.factories {
		out = append(out, GameInfo{ID: id, Title: r.titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates the game registered under id.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

// defaultRegistry backs the package-level functions used by init() hooks.
var defaultRegistry = New()

// Register adds a game to the default registry.
func Register(id string, f Factory) { defaultRegistry.Register(id, f) }

// List returns the games in the default registry.
func List() []GameInfo { return defaultRegistry.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return defaultRegistry.Create(id) }

// Exists reports whether id is in the default registry.
func Exists(id string) bool { return defaultRegistry.Exists(id) }
