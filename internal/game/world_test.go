package game

import (
	"math"
	"sort"
	"testing"

	"github.com/mfarouk/metro-runner/internal/config"
)

func newTestWorld(seed int64) (*World, *Player, config.Config) {
	cfg := config.Default()
	w := NewWorld(cfg, seed)
	p := NewPlayer(cfg, BigJoe)
	p.Y = w.GroundY(p)
	return w, p, cfg
}

func TestWorldInitialLayout(t *testing.T) {
	w, _, cfg := newTestWorld(1)

	platforms := w.Platforms()
	if len(platforms) != cfg.World.PlatformCount {
		t.Fatalf("platform count = %d, want %d", len(platforms), cfg.World.PlatformCount)
	}

	if platforms[0].X != 0 || platforms[0].Width != cfg.World.FirstPlatformWidth {
		t.Errorf("first platform = %+v, want X=0 Width=%v", platforms[0], cfg.World.FirstPlatformWidth)
	}

	for i := 1; i < len(platforms); i++ {
		wantX := cfg.World.FirstPlatformWidth + float64(i-1)*(cfg.World.PlatformWidth+cfg.World.PlatformGap)
		if platforms[i].X != wantX {
			t.Errorf("platform %d X = %v, want %v", i, platforms[i].X, wantX)
		}
		if platforms[i].Width != cfg.World.PlatformWidth {
			t.Errorf("platform %d Width = %v, want %v", i, platforms[i].Width, cfg.World.PlatformWidth)
		}
	}
}

func TestWorldPlatformCountIsInvariant(t *testing.T) {
	w, p, cfg := newTestWorld(7)

	for i := 0; i < 5000; i++ {
		w.Update(testDT, p)
		if len(w.Platforms()) != cfg.World.PlatformCount {
			t.Fatalf("tick %d: platform count = %d, want %d", i, len(w.Platforms()), cfg.World.PlatformCount)
		}
	}
}

func TestWorldPlatformRecycles(t *testing.T) {
	w, p, cfg := newTestWorld(7)

	// Step one tick at a time until the first platform recycles (its
	// right edge starts at FirstPlatformWidth and recycles once it is
	// RecycleMargin past the left edge), remembering the rightmost x
	// just before the recycle tick.
	maxBefore := math.Inf(-1)
	recycled := false
	for i := 0; i < 1000 && !recycled; i++ {
		maxBefore = math.Inf(-1)
		for _, m := range w.Platforms() {
			if m.X > maxBefore {
				maxBefore = m.X
			}
		}
		prev := w.Platforms()[0].X
		w.Update(testDT, p)
		recycled = w.Platforms()[0].X > prev
	}
	if !recycled {
		t.Fatal("first platform never recycled")
	}

	// A recycled platform reappears one slot past the rightmost one.
	want := maxBefore + cfg.World.PlatformWidth + cfg.World.PlatformGap
	if got := w.Platforms()[0].X; got != want {
		t.Errorf("recycled platform X = %v, want %v", got, want)
	}
	if w.Platforms()[0].Width != cfg.World.FirstPlatformWidth {
		t.Errorf("recycling changed the platform width to %v", w.Platforms()[0].Width)
	}

	// Sorted by x the visible run stays strictly increasing.
	xs := make([]float64, 0, len(w.Platforms()))
	for _, m := range w.Platforms() {
		xs = append(xs, m.X)
	}
	sort.Float64s(xs)
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("platform x-order not strictly increasing: %v", xs)
		}
	}
}

func TestWorldSpeedRamp(t *testing.T) {
	w, p, cfg := newTestWorld(3)

	if w.Speed() != cfg.World.BaseSpeed {
		t.Fatalf("initial speed = %v, want %v", w.Speed(), cfg.World.BaseSpeed)
	}

	// Clearly short of the step interval: no increase yet.
	ticks := int(cfg.World.SpeedStepEvery/testDT) - 5
	for i := 0; i < ticks; i++ {
		w.Update(testDT, p)
	}
	if w.Speed() != cfg.World.BaseSpeed {
		t.Errorf("speed before the interval = %v, want %v", w.Speed(), cfg.World.BaseSpeed)
	}

	// A few ticks past it: exactly one step.
	for i := 0; i < 10; i++ {
		w.Update(testDT, p)
	}
	if w.Speed() != cfg.World.BaseSpeed+cfg.World.SpeedStep {
		t.Errorf("speed after the interval = %v, want %v", w.Speed(), cfg.World.BaseSpeed+cfg.World.SpeedStep)
	}
}

func TestWorldSpeedRampIsUnbounded(t *testing.T) {
	w, p, cfg := newTestWorld(3)

	intervals := 10
	ticks := intervals * int(cfg.World.SpeedStepEvery/testDT+1)
	for i := 0; i < ticks; i++ {
		w.Update(testDT, p)
	}
	want := cfg.World.BaseSpeed + float64(intervals)*cfg.World.SpeedStep
	if w.Speed() < want {
		t.Errorf("speed after %d intervals = %v, want at least %v", intervals, w.Speed(), want)
	}
}

func TestWorldOnPlatformBoundaries(t *testing.T) {
	w, p, cfg := newTestWorld(1)
	groundY := w.GroundY(p)

	// Standing at ground level on the first platform.
	p.Y = groundY
	p.X = 200
	if !w.PlayerOnPlatform(p) {
		t.Error("player at ground level over a platform should be on it")
	}

	// Within the tolerance above ground level.
	p.Y = groundY - cfg.World.GroundTolerance + 1
	if !w.PlayerOnPlatform(p) {
		t.Error("player just inside the tolerance should be on the platform")
	}

	// Above the tolerance.
	p.Y = groundY - cfg.World.GroundTolerance - 1
	if w.PlayerOnPlatform(p) {
		t.Error("player above the tolerance should not be on the platform")
	}

	// The first gap opens after the second platform (the first two are
	// laid flush).
	gapStart := cfg.World.FirstPlatformWidth + cfg.World.PlatformWidth

	// Center exactly on the platform edge does not count.
	p.Y = groundY
	p.X = gapStart - p.Width/2 // center == right edge
	if w.PlayerOnPlatform(p) {
		t.Error("center exactly on the platform edge should not count")
	}

	// Center inside the gap.
	p.X = gapStart + cfg.World.PlatformGap/2 - p.Width/2
	if w.PlayerOnPlatform(p) {
		t.Error("center over a gap should not be on a platform")
	}
}

func TestWorldFallThrough(t *testing.T) {
	w, p, cfg := newTestWorld(1)

	// Center over the first gap, which opens after the second platform.
	p.X = cfg.World.FirstPlatformWidth + cfg.World.PlatformWidth + cfg.World.PlatformGap/2 - p.Width/2

	p.Y = cfg.World.PlatformY + cfg.World.FallMargin - 1
	if w.FallThrough(p) {
		t.Error("player above the fall margin should not count as fallen")
	}

	p.Y = cfg.World.PlatformY + cfg.World.FallMargin + 1
	if !w.FallThrough(p) {
		t.Error("player past the fall margin over a gap should count as fallen")
	}

	// Same depth over a platform never counts.
	p.X = 200
	if w.FallThrough(p) {
		t.Error("player over a platform should not count as fallen")
	}
}

func TestWorldObstacleSpawnAndExpiry(t *testing.T) {
	w, p, cfg := newTestWorld(11)

	// No obstacle before the spawn interval.
	ticks := int(cfg.Obstacles.SpawnInterval / testDT)
	for i := 0; i < ticks; i++ {
		w.Update(testDT, p)
	}
	if len(w.Obstacles()) == 0 {
		// One more tick pushes the timer past the threshold.
		w.Update(testDT, p)
	}
	if len(w.Obstacles()) != 1 {
		t.Fatalf("obstacle count after the spawn interval = %d, want 1", len(w.Obstacles()))
	}

	obs := w.Obstacles()[0]
	if obs.Width != cfg.Obstacles.Width {
		t.Errorf("obstacle width = %v, want %v", obs.Width, cfg.Obstacles.Width)
	}
	if obs.Flying {
		if obs.Y != cfg.World.PlatformY-cfg.Obstacles.FlyingOffset || obs.Height != cfg.Obstacles.FlyingHeight {
			t.Errorf("flying obstacle = %+v", obs)
		}
	} else {
		if obs.Y != cfg.World.PlatformY-cfg.Obstacles.GroundOffset || obs.Height != cfg.Obstacles.GroundHeight {
			t.Errorf("ground obstacle = %+v", obs)
		}
	}

	// Obstacles vanish once fully past the left edge.
	for i := 0; i < 40000; i++ {
		w.Update(testDT, p)
	}
	for _, o := range w.Obstacles() {
		if o.X+o.Width < 0 {
			t.Errorf("off-screen obstacle not removed: %+v", o)
		}
	}
}

func TestWorldCoinCollection(t *testing.T) {
	w, p, cfg := newTestWorld(5)

	// Plant a coin overlapping the player.
	w.coins = append(w.coins, Coin{X: p.X, Y: p.Y, Size: cfg.Coins.Size})

	w.Update(testDT, p)
	if w.CoinsCollected() != cfg.Coins.BaseValue {
		t.Errorf("CoinsCollected() = %d, want %d", w.CoinsCollected(), cfg.Coins.BaseValue)
	}
}

func TestWorldCoinMagnetBonus(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, 5)
	p := NewPlayer(cfg, Hamda)
	p.Y = w.GroundY(p)
	p.ActivateAbility()

	w.coins = append(w.coins, Coin{X: p.X, Y: p.Y, Size: cfg.Coins.Size})

	w.Update(testDT, p)
	if w.CoinsCollected() != cfg.Coins.BonusValue {
		t.Errorf("CoinsCollected() with magnet = %d, want %d", w.CoinsCollected(), cfg.Coins.BonusValue)
	}
}

func TestWorldCoinStrictOverlap(t *testing.T) {
	w, p, cfg := newTestWorld(5)

	// Coin exactly touching the player's right edge: strict AABB means
	// no collection.
	w.coins = append(w.coins, Coin{
		X:    p.X + p.Width + w.effectiveSpeed(p), // touches after this tick's scroll
		Y:    p.Y,
		Size: cfg.Coins.Size,
	})

	w.Update(testDT, p)
	if w.CoinsCollected() != 0 {
		t.Errorf("edge-touching coin collected, CoinsCollected() = %d", w.CoinsCollected())
	}
}

func TestWorldShieldBlocksCollision(t *testing.T) {
	w, p, cfg := newTestWorld(5)

	w.obstacles = append(w.obstacles, Obstacle{
		X: p.X, Y: p.Y, Width: cfg.Obstacles.Width, Height: cfg.Obstacles.GroundHeight,
	})

	if !w.ObstacleCollision(p) {
		t.Fatal("overlapping obstacle should collide")
	}

	p.ActivateAbility() // BigJoe's shield
	if w.ObstacleCollision(p) {
		t.Error("shielded player should not collide")
	}
}

func TestWorldDashScrollsFaster(t *testing.T) {
	cfg := config.Default()
	w := NewWorld(cfg, 9)
	p := NewPlayer(cfg, Speedy)
	p.Y = w.GroundY(p)

	base := w.effectiveSpeed(p)
	p.ActivateAbility()
	dashed := w.effectiveSpeed(p)

	want := base * cfg.Abilities.DashMultiplier
	if math.Abs(dashed-want) > 1e-9 {
		t.Errorf("dash speed = %v, want %v", dashed, want)
	}
}

func TestWorldResetRestoresEverything(t *testing.T) {
	w, p, cfg := newTestWorld(13)

	for i := 0; i < 3000; i++ {
		w.Update(testDT, p)
	}
	w.coins = append(w.coins, Coin{X: p.X, Y: p.Y, Size: cfg.Coins.Size})
	w.Update(testDT, p)

	w.Reset(13)

	if w.Speed() != cfg.World.BaseSpeed {
		t.Errorf("speed after reset = %v, want %v", w.Speed(), cfg.World.BaseSpeed)
	}
	if w.CoinsCollected() != 0 {
		t.Errorf("coins after reset = %d, want 0", w.CoinsCollected())
	}
	if len(w.Obstacles()) != 0 || len(w.Coins()) != 0 {
		t.Error("entities should be cleared on reset")
	}
	if w.Platforms()[0].X != 0 {
		t.Errorf("first platform X after reset = %v, want 0", w.Platforms()[0].X)
	}
}

func TestWorldDeterminism(t *testing.T) {
	w1, p1, _ := newTestWorld(99)
	w2, p2, _ := newTestWorld(99)

	for i := 0; i < 4000; i++ {
		w1.Update(testDT, p1)
		w2.Update(testDT, p2)
	}

	if len(w1.Obstacles()) != len(w2.Obstacles()) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(w1.Obstacles()), len(w2.Obstacles()))
	}
	for i := range w1.Obstacles() {
		if w1.Obstacles()[i] != w2.Obstacles()[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, w1.Obstacles()[i], w2.Obstacles()[i])
		}
	}
	if len(w1.Coins()) != len(w2.Coins()) {
		t.Fatalf("coin counts differ: %d vs %d", len(w1.Coins()), len(w2.Coins()))
	}
	for i := range w1.Coins() {
		if w1.Coins()[i] != w2.Coins()[i] {
			t.Errorf("coin %d differs: %+v vs %+v", i, w1.Coins()[i], w2.Coins()[i])
		}
	}
}
