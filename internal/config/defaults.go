package config

import (
	_ "embed"
)

//go:embed defaults/metro.yaml
var defaultYAML []byte

// Default returns the default gameplay configuration. Values match the
// embedded defaults/metro.yaml and serve as a last-resort fallback if the
// embedded YAML fails to parse.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			X:          200,
			Width:      40,
			Height:     80,
			DuckHeight: 40,
		},
		Physics: PhysicsConfig{
			JumpImpulse:     -12,
			Gravity:         0.5,
			WalkoffVelocity: 1.0,
		},
		World: WorldConfig{
			PlatformY:          500,
			PlatformCount:      8,
			PlatformWidth:      350,
			FirstPlatformWidth: 600,
			PlatformGap:        80,
			BaseSpeed:          3.0,
			SpeedStep:          0.5,
			SpeedStepEvery:     10.0,
			RecycleMargin:      50,
			FallMargin:         50,
			GroundTolerance:    5,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 2.0,
			Width:         40,
			GroundHeight:  60,
			FlyingHeight:  30,
			GroundOffset:  60,
			FlyingOffset:  180,
			SpawnMargin:   50,
		},
		Coins: CoinConfig{
			SpawnInterval: 1.5,
			Size:          20,
			SpawnMargin:   30,
			MinOffset:     150,
			HeightBand:    100,
			BaseValue:     1,
			BonusValue:    2,
		},
		Abilities: AbilitiesConfig{
			Cooldown:           8.0,
			ShieldDuration:     5.0,
			DoubleJumpDuration: 8.0,
			MagnetDuration:     6.0,
			DashDuration:       5.0,
			DashMultiplier:     1.8,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
