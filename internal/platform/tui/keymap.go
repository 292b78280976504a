package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mfarouk/metro-runner/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// The ability key is q, matching the in-game hint; quitting is esc or
// ctrl+c only, so a mistimed ability press never exits the game.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message. A single
// key may set several actions: space means jump during a run and confirm
// on menu screens, and the session picks by state. Returns true if the
// key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c", "esc":
		frame.Set(core.ActionQuit)
		return true
	case " ":
		frame.Set(core.ActionJump)
		frame.Set(core.ActionConfirm)
	case "up", "w":
		frame.Set(core.ActionJump)
	case "down", "s":
		frame.Set(core.ActionDuck)
	case "left", "a":
		frame.Set(core.ActionLeft)
	case "right", "d":
		frame.Set(core.ActionRight)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "q":
		frame.Set(core.ActionAbility)
	case "m":
		frame.Set(core.ActionMute)
	}
	return false
}
