package game

import (
	"testing"

	"github.com/mfarouk/metro-runner/internal/config"
)

const testDT = 1.0 / 60.0

func newTestPlayer(c Character) (*Player, config.Config) {
	cfg := config.Default()
	p := NewPlayer(cfg, c)
	p.Y = cfg.World.PlatformY - p.Height
	return p, cfg
}

func TestPlayerJumpFromGround(t *testing.T) {
	p, cfg := newTestPlayer(BigJoe)

	if !p.Jump() {
		t.Fatal("Jump() from ground should succeed")
	}
	if !p.Jumping {
		t.Error("player should be airborne after jump")
	}
	if p.VelocityY != cfg.Physics.JumpImpulse {
		t.Errorf("VelocityY = %v, want %v", p.VelocityY, cfg.Physics.JumpImpulse)
	}
}

func TestPlayerJumpWhileAirborneFails(t *testing.T) {
	p, _ := newTestPlayer(BigJoe)

	p.Jump()
	if p.Jump() {
		t.Error("second Jump() should fail for a character without double jump")
	}
}

func TestPlayerDoubleJump(t *testing.T) {
	p, cfg := newTestPlayer(AliAloka)

	if !p.ActivateAbility() {
		t.Fatal("ActivateAbility() should succeed with no cooldown")
	}
	if !p.Jump() {
		t.Fatal("first jump should succeed")
	}
	if !p.Jump() {
		t.Error("double jump should succeed while ability is active")
	}
	if p.VelocityY != cfg.Physics.JumpImpulse {
		t.Errorf("double jump VelocityY = %v, want %v", p.VelocityY, cfg.Physics.JumpImpulse)
	}
	if p.Jump() {
		t.Error("third jump should fail: double jump already used")
	}
}

func TestPlayerDoubleJumpRequiresAbility(t *testing.T) {
	p, _ := newTestPlayer(AliAloka)

	p.Jump()
	if p.Jump() {
		t.Error("double jump without active ability should fail")
	}
}

func TestPlayerDoubleJumpResetsOnLanding(t *testing.T) {
	p, _ := newTestPlayer(AliAloka)
	groundY := p.Y

	p.ActivateAbility()
	p.Jump()
	p.Jump()

	// Fall back to the ground over a platform
	for i := 0; i < 600 && p.Jumping; i++ {
		p.Update(groundY, testDT, true)
	}
	if p.Jumping {
		t.Fatal("player never landed")
	}
	if p.HasDoubleJumped {
		t.Error("HasDoubleJumped should reset on landing")
	}

	p.Jump()
	if !p.Jump() {
		t.Error("double jump should be available again after landing")
	}
}

func TestPlayerNeverLandsOverGap(t *testing.T) {
	p, _ := newTestPlayer(BigJoe)
	groundY := p.Y

	p.Jump()
	// Integrate well past the point where the arc crosses ground level,
	// but with nothing underneath.
	for i := 0; i < 120; i++ {
		p.Update(groundY, testDT, false)
	}
	if !p.Jumping {
		t.Error("player should keep falling with no platform under it")
	}
	if p.Y <= groundY {
		t.Errorf("player should have fallen past ground level, Y = %v", p.Y)
	}
}

func TestPlayerGravityArc(t *testing.T) {
	p, cfg := newTestPlayer(BigJoe)
	groundY := p.Y

	p.Jump()
	p.Update(groundY, testDT, true)

	wantY := groundY + cfg.Physics.JumpImpulse
	if p.Y != wantY {
		t.Errorf("after one tick Y = %v, want %v", p.Y, wantY)
	}
	wantVel := cfg.Physics.JumpImpulse + cfg.Physics.Gravity
	if p.VelocityY != wantVel {
		t.Errorf("after one tick VelocityY = %v, want %v", p.VelocityY, wantVel)
	}
}

func TestPlayerAbilityCooldown(t *testing.T) {
	p, cfg := newTestPlayer(Hamda)
	groundY := p.Y

	if !p.ActivateAbility() {
		t.Fatal("first activation should succeed")
	}
	if p.ActivateAbility() {
		t.Error("activation during cooldown should fail")
	}

	// Tick just short of the cooldown
	ticks := int(cfg.Abilities.Cooldown/testDT) - 1
	for i := 0; i < ticks; i++ {
		p.Update(groundY, testDT, true)
	}
	if p.ActivateAbility() {
		t.Error("activation should still fail just before the cooldown elapses")
	}

	// And past it
	for i := 0; i < 5; i++ {
		p.Update(groundY, testDT, true)
	}
	if !p.ActivateAbility() {
		t.Error("activation should succeed after the cooldown elapses")
	}
}

func TestPlayerAbilityExpires(t *testing.T) {
	p, cfg := newTestPlayer(BigJoe)
	groundY := p.Y

	p.ActivateAbility()
	if !p.Invincible() {
		t.Fatal("shield should be up right after activation")
	}

	ticks := int(cfg.Abilities.ShieldDuration/testDT) + 2
	for i := 0; i < ticks; i++ {
		p.Update(groundY, testDT, true)
	}
	if p.Invincible() {
		t.Error("shield should be down after its duration")
	}
	if p.Ability.Active {
		t.Error("ability should be inactive after its duration")
	}
}

func TestPlayerAbilityPredicatesPerCharacter(t *testing.T) {
	cases := []struct {
		character  Character
		invincible bool
		doubleCoin bool
		speedMult  float64
	}{
		{BigJoe, true, false, 1.0},
		{AliAloka, false, false, 1.0},
		{Hamda, false, true, 1.0},
		{Speedy, false, false, 1.8},
	}

	for _, tc := range cases {
		p, _ := newTestPlayer(tc.character)

		// Inactive: every bonus is off
		if p.Invincible() || p.DoubleCoinBonus() || p.AbilitySpeedMultiplier() != 1.0 {
			t.Errorf("%v: bonuses active before activation", tc.character)
		}

		p.ActivateAbility()
		if p.Invincible() != tc.invincible {
			t.Errorf("%v: Invincible() = %v, want %v", tc.character, p.Invincible(), tc.invincible)
		}
		if p.DoubleCoinBonus() != tc.doubleCoin {
			t.Errorf("%v: DoubleCoinBonus() = %v, want %v", tc.character, p.DoubleCoinBonus(), tc.doubleCoin)
		}
		if p.AbilitySpeedMultiplier() != tc.speedMult {
			t.Errorf("%v: AbilitySpeedMultiplier() = %v, want %v",
				tc.character, p.AbilitySpeedMultiplier(), tc.speedMult)
		}
	}
}

func TestPlayerDuck(t *testing.T) {
	p, cfg := newTestPlayer(BigJoe)

	p.Duck()
	if !p.Ducking {
		t.Error("grounded player should duck")
	}
	if p.Height != cfg.Player.DuckHeight {
		t.Errorf("ducking Height = %v, want %v", p.Height, cfg.Player.DuckHeight)
	}

	p.StandUp()
	if p.Ducking {
		t.Error("player should stand after StandUp")
	}
	if p.Height != cfg.Player.Height {
		t.Errorf("standing Height = %v, want %v", p.Height, cfg.Player.Height)
	}
}

func TestPlayerDuckTracksGroundLine(t *testing.T) {
	p, cfg := newTestPlayer(BigJoe)

	p.Duck()
	duckGround := cfg.World.PlatformY - p.Height
	p.Update(duckGround, testDT, true)
	if p.Y != duckGround {
		t.Errorf("ducking Y = %v, want %v", p.Y, duckGround)
	}

	p.StandUp()
	standGround := cfg.World.PlatformY - p.Height
	p.Update(standGround, testDT, true)
	if p.Y != standGround {
		t.Errorf("standing Y = %v, want %v", p.Y, standGround)
	}
}

func TestPlayerDuckWhileAirborneIgnored(t *testing.T) {
	p, cfg := newTestPlayer(BigJoe)

	p.Jump()
	p.Duck()
	if p.Ducking {
		t.Error("airborne player should not duck")
	}
	if p.Height != cfg.Player.Height {
		t.Errorf("Height = %v, want %v", p.Height, cfg.Player.Height)
	}
}

func TestCharacterCycle(t *testing.T) {
	c := BigJoe
	for i := 0; i < int(CharacterCount); i++ {
		c = c.Next()
	}
	if c != BigJoe {
		t.Errorf("cycling forward through all characters should wrap, got %v", c)
	}

	if BigJoe.Prev() != Speedy {
		t.Errorf("BigJoe.Prev() = %v, want %v", BigJoe.Prev(), Speedy)
	}
	if Speedy.Next() != BigJoe {
		t.Errorf("Speedy.Next() = %v, want %v", Speedy.Next(), BigJoe)
	}
}
