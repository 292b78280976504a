// Package game implements the Metro Runner simulation: player physics and
// abilities, the scrolling world, and the session state machine. It is
// pure logic stepped at a fixed tick; the platform layer owns the terminal.
package game

import "github.com/mfarouk/metro-runner/internal/config"

// Character identifies one of the four playable characters. Each binds a
// distinct ability effect to the shared timer/cooldown envelope.
type Character int

const (
	BigJoe    Character = iota // Shield: invincible to obstacles
	AliAloka                   // Double Jump: one extra jump while airborne
	Hamda                      // Magnet: coins are worth double
	Speedy                     // Dash: world scrolls 1.8x faster
	CharacterCount
)

// String returns the character's display name.
func (c Character) String() string {
	switch c {
	case BigJoe:
		return "Big Joe"
	case AliAloka:
		return "Ali 3aloka"
	case Hamda:
		return "Hamda"
	case Speedy:
		return "Speedy"
	default:
		return "?"
	}
}

// AbilityName returns the display name of the character's ability.
func (c Character) AbilityName() string {
	switch c {
	case BigJoe:
		return "Shield"
	case AliAloka:
		return "Double Jump"
	case Hamda:
		return "Magnet"
	case Speedy:
		return "Dash"
	default:
		return "?"
	}
}

// AbilityDuration returns how long the character's ability stays active.
func (c Character) AbilityDuration(cfg config.AbilitiesConfig) float64 {
	switch c {
	case BigJoe:
		return cfg.ShieldDuration
	case AliAloka:
		return cfg.DoubleJumpDuration
	case Hamda:
		return cfg.MagnetDuration
	case Speedy:
		return cfg.DashDuration
	default:
		return 0
	}
}

// Next cycles forward through the characters, wrapping around.
func (c Character) Next() Character {
	return (c + 1) % CharacterCount
}

// Prev cycles backward through the characters, wrapping around.
func (c Character) Prev() Character {
	return (c + CharacterCount - 1) % CharacterCount
}

// AbilityState is the shared envelope every ability runs in: an active
// flag with remaining duration, and a cooldown gating reactivation. The
// cooldown starts exactly when the ability activates and is the same
// length for every character.
type AbilityState struct {
	Active   bool
	Timer    float64 // Seconds of active time remaining
	Cooldown float64 // Seconds until the ability can be activated again
}

// Ready reports whether the ability can be activated.
func (a AbilityState) Ready() bool {
	return a.Cooldown <= 0
}
