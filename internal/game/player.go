package game

import (
	"github.com/mfarouk/metro-runner/internal/config"
	"github.com/mfarouk/metro-runner/internal/core"
)

// Player owns position, vertical physics and the ability envelope for one
// run. Horizontal position never changes: the world scrolls instead.
// Positions integrate once per tick; timers decay in wall-clock seconds.
type Player struct {
	X, Y      float64
	VelocityY float64
	Width     float64
	Height    float64

	Jumping bool
	Ducking bool

	Character Character
	Ability   AbilityState

	// Double-jump bookkeeping, meaningful only for AliAloka.
	CanDoubleJump   bool
	HasDoubleJumped bool

	physics   config.PhysicsConfig
	abilities config.AbilitiesConfig
	standH    float64
	duckH     float64
}

// NewPlayer creates a fresh player for the given character, standing at
// its configured x position. The caller places it at ground level.
func NewPlayer(cfg config.Config, c Character) *Player {
	return &Player{
		X:         cfg.Player.X,
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		Character: c,
		physics:   cfg.Physics,
		abilities: cfg.Abilities,
		standH:    cfg.Player.Height,
		duckH:     cfg.Player.DuckHeight,
	}
}

// Jump starts a jump from the ground, or performs the double jump if the
// character is AliAloka with the ability active, airborne, and the extra
// jump unused. Any other call is a no-op, so holding the jump key and
// re-invoking every frame is safe.
func (p *Player) Jump() bool {
	if !p.Jumping {
		p.VelocityY = p.physics.JumpImpulse
		p.Jumping = true
		p.HasDoubleJumped = false
		return true
	}
	if p.Character == AliAloka && p.Ability.Active && !p.HasDoubleJumped {
		p.VelocityY = p.physics.JumpImpulse
		p.HasDoubleJumped = true
		return true
	}
	return false
}

// ActivateAbility arms the character's ability if the cooldown has
// elapsed. The cooldown is uniform across characters and starts at the
// moment of activation, not expiry.
func (p *Player) ActivateAbility() bool {
	if !p.Ability.Ready() {
		return false
	}
	p.Ability.Active = true
	p.Ability.Timer = p.Character.AbilityDuration(p.abilities)
	if p.Character == AliAloka {
		p.CanDoubleJump = true
	}
	p.Ability.Cooldown = p.abilities.Cooldown
	return true
}

// Duck lowers the player's profile. Only possible while grounded.
func (p *Player) Duck() {
	if !p.Jumping && !p.Ducking {
		p.Ducking = true
		p.Height = p.duckH
	}
}

// StandUp restores the full standing height.
func (p *Player) StandUp() {
	if p.Ducking {
		p.Ducking = false
		p.Height = p.standH
	}
}

// Walkoff switches a grounded player into a fall after the platform under
// it scrolled away. A fall starts with a small downward push instead of
// the jump impulse, and counts as airborne for the double-jump rules.
func (p *Player) Walkoff() {
	p.Jumping = true
	p.VelocityY = p.physics.WalkoffVelocity
}

// Update advances ability timers by dt seconds and integrates vertical
// physics for one tick against the given ground level. supported reports
// whether a platform currently lies under the player's center: landing
// happens only when the player reaches ground level while supported, so
// crossing ground level over a gap keeps falling.
func (p *Player) Update(groundY, dt float64, supported bool) {
	p.tickAbility(dt)

	p.Y += p.VelocityY

	if p.Jumping {
		p.VelocityY += p.physics.Gravity

		if p.Y >= groundY && supported {
			p.Y = groundY
			p.VelocityY = 0
			p.Jumping = false
			p.HasDoubleJumped = false
		}
	} else if p.Y != groundY {
		// Grounded: pin to the resting line without touching velocity.
		// Ducking and standing up change the height, which moves the
		// resting top line in either direction.
		p.Y = groundY
	}
}

// tickAbility decays the active timer and the cooldown.
func (p *Player) tickAbility(dt float64) {
	if p.Ability.Active {
		p.Ability.Timer -= dt
		if p.Ability.Timer <= 0 {
			p.Ability.Active = false
			p.Ability.Timer = 0
			if p.Character == AliAloka {
				p.CanDoubleJump = false
			}
		}
	}
	if p.Ability.Cooldown > 0 {
		p.Ability.Cooldown -= dt
	}
}

// Invincible reports whether obstacle collisions are ignored.
func (p *Player) Invincible() bool {
	return p.Character == BigJoe && p.Ability.Active
}

// DoubleCoinBonus reports whether collected coins count double.
func (p *Player) DoubleCoinBonus() bool {
	return p.Character == Hamda && p.Ability.Active
}

// AbilitySpeedMultiplier returns the dash scroll multiplier.
func (p *Player) AbilitySpeedMultiplier() float64 {
	if p.Character == Speedy && p.Ability.Active {
		return p.abilities.DashMultiplier
	}
	return 1.0
}

// SpeedMultiplier is a reserved base modifier kept at 1.0; it multiplies
// into the effective scroll speed alongside the ability multiplier.
func (p *Player) SpeedMultiplier() float64 {
	return 1.0
}

// Bounds returns the player's collision box.
func (p *Player) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}
