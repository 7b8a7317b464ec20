package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // A, H, Left arrow - shift piece left
	ActionRight            // D, L, Right arrow - shift piece right
	ActionDown             // S, J, Down arrow - soft drop
	ActionRotateCW         // W, K, X, Up arrow - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionHardDrop         // Space - hard drop
	ActionFlip             // G, F - flip gravity
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionFlip:
		return "Flip"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame, in arrival order.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// order keeps first-arrival order so games can replay commands
	// in the sequence the player pressed them.
	order []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if !f.Actions[a] {
		f.order = append(f.order, a)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Ordered returns the triggered actions in the order they were first set.
func (f InputFrame) Ordered() []Action {
	out := make([]Action, 0, len(f.order))
	for _, a := range f.order {
		if f.Actions[a] {
			out = append(out, a)
		}
	}
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for _, a := range f.Ordered() {
		clone.Set(a)
	}
	return clone
}
