package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

// GameKeyMap holds the in-game key bindings.
// It implements help.KeyMap so the bindings double as the help bar.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	SoftDrop   key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	HardDrop   key.Binding
	Flip       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.RotateCW, k.HardDrop, k.Flip, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop},
		{k.RotateCW, k.RotateCCW, k.HardDrop},
		{k.Flip, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "soft drop"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "w", "k", "x"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate ccw"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Flip: key.NewBinding(
			key.WithKeys("g", "f"),
			key.WithHelp("g", "flip"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap

	actions []boundAction
}

// boundAction pairs a binding with the action it produces.
type boundAction struct {
	binding *key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{Keys: DefaultGameKeyMap()}
	km.actions = []boundAction{
		{&km.Keys.Left, core.ActionLeft},
		{&km.Keys.Right, core.ActionRight},
		{&km.Keys.SoftDrop, core.ActionDown},
		{&km.Keys.RotateCW, core.ActionRotateCW},
		{&km.Keys.RotateCCW, core.ActionRotateCCW},
		{&km.Keys.HardDrop, core.ActionHardDrop},
		{&km.Keys.Flip, core.ActionFlip},
		{&km.Keys.Pause, core.ActionPause},
		{&km.Keys.Restart, core.ActionRestart},
		{&km.Keys.Back, core.ActionBack},
	}
	return km
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.Keys.Quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.actions {
		if key.Matches(msg, *b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
