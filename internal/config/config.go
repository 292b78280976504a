// Package config provides YAML-based gameplay configuration loading for
// the runner. All values are in logical world units (1280x720 space) and
// seconds.
package config

// Config contains all gameplay configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	World     WorldConfig     `yaml:"world"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Coins     CoinConfig      `yaml:"coins"`
	Abilities AbilitiesConfig `yaml:"abilities"`
}

// ScreenConfig defines the logical simulation space.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player dimensions and start position.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DuckHeight float64 `yaml:"duck_height"`
}

// PhysicsConfig defines jump and gravity parameters.
type PhysicsConfig struct {
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Upward velocity on jump (negative = up)
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration per tick while airborne
	WalkoffVelocity float64 `yaml:"walkoff_velocity"` // Initial fall speed when stepping off a platform edge
}

// WorldConfig defines platform layout, scroll speed and the difficulty ramp.
type WorldConfig struct {
	PlatformY          float64 `yaml:"platform_y"`           // Y of the platform walking surface
	PlatformCount      int     `yaml:"platform_count"`       // Fixed number of platform slots
	PlatformWidth      float64 `yaml:"platform_width"`       // Width of every platform after the first
	FirstPlatformWidth float64 `yaml:"first_platform_width"` // Long starting platform
	PlatformGap        float64 `yaml:"platform_gap"`         // Gap between platforms
	BaseSpeed          float64 `yaml:"base_speed"`           // Scroll speed at run start, units per tick
	SpeedStep          float64 `yaml:"speed_step"`           // Speed added at each difficulty step
	SpeedStepEvery     float64 `yaml:"speed_step_every"`     // Seconds between difficulty steps
	RecycleMargin      float64 `yaml:"recycle_margin"`       // How far past the left edge before recycling
	FallMargin         float64 `yaml:"fall_margin"`          // How far below platform level counts as fallen
	GroundTolerance    float64 `yaml:"ground_tolerance"`     // Vertical slack for on-platform detection
}

// ObstacleConfig defines obstacle spawning.
type ObstacleConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	Width         float64 `yaml:"width"`
	GroundHeight  float64 `yaml:"ground_height"`  // Height of ground obstacles
	FlyingHeight  float64 `yaml:"flying_height"`  // Height of flying obstacles
	GroundOffset  float64 `yaml:"ground_offset"`  // Ground obstacle top, above platform level
	FlyingOffset  float64 `yaml:"flying_offset"`  // Flying obstacle top, above platform level
	SpawnMargin   float64 `yaml:"spawn_margin"`   // How far right of the screen obstacles appear
}

// CoinConfig defines coin spawning and values.
type CoinConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	Size          float64 `yaml:"size"`
	SpawnMargin   float64 `yaml:"spawn_margin"`    // How far right of the screen coins appear
	MinOffset     float64 `yaml:"min_offset"`      // Minimum height above platform level
	HeightBand    float64 `yaml:"height_band"`     // Random extra height above the minimum
	BaseValue     int     `yaml:"base_value"`      // Coins credited per pickup
	BonusValue    int     `yaml:"bonus_value"`     // Coins credited with the magnet bonus
}

// AbilitiesConfig defines per-character ability durations and the shared
// cooldown. The cooldown is uniform across characters regardless of their
// individual durations.
type AbilitiesConfig struct {
	Cooldown           float64 `yaml:"cooldown"`
	ShieldDuration     float64 `yaml:"shield_duration"`
	DoubleJumpDuration float64 `yaml:"double_jump_duration"`
	MagnetDuration     float64 `yaml:"magnet_duration"`
	DashDuration       float64 `yaml:"dash_duration"`
	DashMultiplier     float64 `yaml:"dash_multiplier"`
}
