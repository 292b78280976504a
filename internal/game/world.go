package game

import (
	"math/rand"

	"github.com/mfarouk/metro-runner/internal/config"
	"github.com/mfarouk/metro-runner/internal/core"
)

// Platform is one recyclable metro ledge. Platforms live in a fixed-size
// array of slots; a slot that scrolls off the left edge is relocated to
// the right of the current rightmost slot instead of being freed, so the
// slot count and memory stay constant for the whole run.
type Platform struct {
	X     float64
	Width float64
}

// Obstacle is a scrolling hazard, either at ground level or airborne.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64
	Flying bool
}

// Bounds returns the obstacle's collision box.
func (o Obstacle) Bounds() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Coin is a collectible scrolling pickup.
type Coin struct {
	X, Y      float64
	Size      float64
	Collected bool
}

// Bounds returns the coin's collision box.
func (c Coin) Bounds() core.Box {
	return core.NewBox(c.X, c.Y, c.Size, c.Size)
}

// World owns every scrolling entity, the spawn timers and the difficulty
// ramp. It reads the player only through its capability predicates.
type World struct {
	cfg config.Config

	platforms []Platform
	obstacles []Obstacle
	coins     []Coin

	speed      float64
	speedTimer float64

	obstacleTimer float64
	coinTimer     float64

	coinsCollected int

	rng *rand.Rand
}

// NewWorld creates a world and lays out the initial platforms.
func NewWorld(cfg config.Config, seed int64) *World {
	w := &World{cfg: cfg}
	w.Reset(seed)
	return w
}

// Reset rebuilds the initial platform layout and zeroes all timers, the
// scroll speed and the coin tally for a fresh run.
func (w *World) Reset(seed int64) {
	wc := w.cfg.World

	w.platforms = make([]Platform, 0, wc.PlatformCount)
	w.platforms = append(w.platforms, Platform{X: 0, Width: wc.FirstPlatformWidth})
	for i := 1; i < wc.PlatformCount; i++ {
		x := wc.FirstPlatformWidth + float64(i-1)*(wc.PlatformWidth+wc.PlatformGap)
		w.platforms = append(w.platforms, Platform{X: x, Width: wc.PlatformWidth})
	}

	w.obstacles = w.obstacles[:0]
	w.coins = w.coins[:0]

	w.speed = wc.BaseSpeed
	w.speedTimer = 0
	w.obstacleTimer = 0
	w.coinTimer = 0
	w.coinsCollected = 0

	w.rng = rand.New(rand.NewSource(seed))
}

// Update advances the world by one tick of dt seconds: difficulty ramp,
// platform scroll and recycling, obstacle spawning and expiry, coin
// spawning and collection.
func (w *World) Update(dt float64, p *Player) {
	w.speedTimer += dt
	if w.speedTimer >= w.cfg.World.SpeedStepEvery {
		w.speed += w.cfg.World.SpeedStep
		w.speedTimer = 0
	}

	w.updatePlatforms(p)
	w.updateObstacles(dt, p)
	w.updateCoins(dt, p)
}

// effectiveSpeed is the scroll speed with all player modifiers applied.
func (w *World) effectiveSpeed(p *Player) float64 {
	return w.speed * p.SpeedMultiplier() * p.AbilitySpeedMultiplier()
}

// updatePlatforms scrolls the platform slots and recycles any slot whose
// right edge has passed the recycle margin left of the screen. A recycled
// slot reappears after the current rightmost slot, preserving the
// strictly increasing x-order of the visible run.
func (w *World) updatePlatforms(p *Player) {
	speed := w.effectiveSpeed(p)
	margin := -w.cfg.World.RecycleMargin

	for i := range w.platforms {
		w.platforms[i].X -= speed
		if w.platforms[i].X+w.platforms[i].Width < margin {
			maxX := w.platforms[0].X
			for _, m := range w.platforms {
				if m.X > maxX {
					maxX = m.X
				}
			}
			w.platforms[i].X = maxX + w.cfg.World.PlatformWidth + w.cfg.World.PlatformGap
		}
	}
}

// updateObstacles runs the obstacle spawn timer, scrolls obstacles and
// drops the ones fully past the left edge.
func (w *World) updateObstacles(dt float64, p *Player) {
	oc := w.cfg.Obstacles
	w.obstacleTimer += dt

	if w.obstacleTimer > oc.SpawnInterval {
		flying := w.rng.Intn(2) == 0
		obs := Obstacle{
			X:      w.cfg.Screen.Width + oc.SpawnMargin,
			Width:  oc.Width,
			Flying: flying,
		}
		if flying {
			obs.Y = w.cfg.World.PlatformY - oc.FlyingOffset
			obs.Height = oc.FlyingHeight
		} else {
			obs.Y = w.cfg.World.PlatformY - oc.GroundOffset
			obs.Height = oc.GroundHeight
		}
		w.obstacles = append(w.obstacles, obs)
		w.obstacleTimer = 0
	}

	speed := w.effectiveSpeed(p)
	alive := w.obstacles[:0]
	for _, obs := range w.obstacles {
		obs.X -= speed
		if obs.X+obs.Width >= 0 {
			alive = append(alive, obs)
		}
	}
	w.obstacles = alive
}

// updateCoins runs the coin spawn timer, scrolls coins, collects the ones
// overlapping the player and drops collected or off-screen coins.
func (w *World) updateCoins(dt float64, p *Player) {
	cc := w.cfg.Coins
	w.coinTimer += dt

	if w.coinTimer > cc.SpawnInterval {
		band := 0.0
		if cc.HeightBand > 0 {
			band = float64(w.rng.Intn(int(cc.HeightBand)))
		}
		w.coins = append(w.coins, Coin{
			X:    w.cfg.Screen.Width + cc.SpawnMargin,
			Y:    w.cfg.World.PlatformY - cc.MinOffset - band,
			Size: cc.Size,
		})
		w.coinTimer = 0
	}

	speed := w.effectiveSpeed(p)
	playerBox := p.Bounds()
	alive := w.coins[:0]
	for _, coin := range w.coins {
		coin.X -= speed

		if !coin.Collected && playerBox.Overlaps(coin.Bounds()) {
			coin.Collected = true
			value := cc.BaseValue
			if p.DoubleCoinBonus() {
				value = cc.BonusValue
			}
			w.coinsCollected += value
		}

		if !coin.Collected && coin.X+coin.Size >= 0 {
			alive = append(alive, coin)
		}
	}
	w.coins = alive
}

// GroundY returns the y position of the player's feet line: platform
// level minus the player's current height. Ducking raises it.
func (w *World) GroundY(p *Player) float64 {
	return w.cfg.World.PlatformY - p.Height
}

// OverPlatform reports whether the player's horizontal center lies
// strictly inside some platform span, ignoring height. Standing exactly
// on a platform edge does not count.
func (w *World) OverPlatform(p *Player) bool {
	centerX := p.X + p.Width/2
	for _, m := range w.platforms {
		if centerX > m.X && centerX < m.X+m.Width {
			return true
		}
	}
	return false
}

// PlayerOnPlatform reports whether the player stands on a platform: its
// vertical position is within the ground tolerance of ground level and
// its horizontal center lies strictly inside some platform span. The
// tolerance absorbs float jitter at the landing boundary.
func (w *World) PlayerOnPlatform(p *Player) bool {
	if p.Y < w.GroundY(p)-w.cfg.World.GroundTolerance {
		return false
	}
	return w.OverPlatform(p)
}

// ObstacleCollision reports whether the player overlaps any obstacle.
// Always false while the shield is up.
func (w *World) ObstacleCollision(p *Player) bool {
	if p.Invincible() {
		return false
	}
	playerBox := p.Bounds()
	for _, obs := range w.obstacles {
		if playerBox.Overlaps(obs.Bounds()) {
			return true
		}
	}
	return false
}

// FallThrough reports whether the player has fallen into a gap: no
// platform under its center, and dropped past the fall margin below
// platform level.
func (w *World) FallThrough(p *Player) bool {
	if w.OverPlatform(p) {
		return false
	}
	return p.Y > w.cfg.World.PlatformY+w.cfg.World.FallMargin
}

// Speed returns the current base scroll speed.
func (w *World) Speed() float64 {
	return w.speed
}

// CoinsCollected returns the run's coin tally.
func (w *World) CoinsCollected() int {
	return w.coinsCollected
}

// Platforms returns the platform slots for rendering.
func (w *World) Platforms() []Platform {
	return w.platforms
}

// Obstacles returns the live obstacles for rendering.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Coins returns the live coins for rendering.
func (w *World) Coins() []Coin {
	return w.coins
}
