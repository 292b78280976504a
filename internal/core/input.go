package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the session only ever sees
// actions, which keeps input handling testable without a terminal.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - jump / double jump
	ActionDuck           // S, Down - duck while held
	ActionLeft           // Left, A - previous character
	ActionRight          // Right, D - next character
	ActionConfirm        // Space, Enter - commit selection / leave game over
	ActionAbility        // Q - activate character ability
	ActionMute           // M - toggle audio mute
	ActionQuit           // Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionAbility:
		return "Ability"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were seen during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were seen this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as seen for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was seen this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Any returns true if any action at all was seen this frame.
func (f InputFrame) Any() bool {
	return len(f.Actions) > 0
}

// RisingEdge reports whether the action transitioned from released in the
// previous frame to pressed in this one. Edge-triggered controls (menu
// navigation, ability activation, mute) are debounced this way instead of
// with per-key static flags, so the logic is a pure function of two
// snapshots.
func (f InputFrame) RisingEdge(prev InputFrame, a Action) bool {
	return f.Has(a) && !prev.Has(a)
}

// AnyRisingEdge reports whether this frame has input while the previous
// frame had none at all. Used by the start screen's "press any key".
func (f InputFrame) AnyRisingEdge(prev InputFrame) bool {
	return f.Any() && !prev.Any()
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
