package game

import (
	"github.com/charmbracelet/log"

	"github.com/mfarouk/metro-runner/internal/config"
	"github.com/mfarouk/metro-runner/internal/core"
)

// State identifies a screen of the session state machine.
type State int

const (
	StateStartScreen State = iota
	StateCharacterSelect
	StatePlaying
	StateGameOver
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateStartScreen:
		return "start_screen"
	case StateCharacterSelect:
		return "character_select"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "?"
	}
}

// Session is the top-level simulation: the screen state machine, the
// current run's player and world, and the persistent record. It is pure
// logic stepped at a fixed tick; all terminal and timer concerns live in
// the platform layer.
//
// Input is edge-triggered where the UI reacts to discrete presses
// (menus, ability, mute): the session keeps the previous tick's
// InputFrame and fires those only on a rising edge, so a key held
// across ticks does not repeat. Jumping and ducking read the current
// frame level directly; Jump() guards itself against re-entry.
type Session struct {
	cfg config.Config

	state    State
	selected Character

	player *Player
	world  *World

	prev core.InputFrame

	runTime   float64
	lastCoins int
	lastScore int

	record Record

	seed   int64
	store  RecordStore
	sounds Sounds
	logger *log.Logger
}

// NewSession creates a session on the start screen. store and sounds may
// be nil; the seed drives every run's spawn sequence, so equal seeds and
// equal input produce identical runs.
func NewSession(cfg config.Config, seed int64, store RecordStore, sounds Sounds, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		cfg:    cfg,
		state:  StateStartScreen,
		seed:   seed,
		store:  store,
		sounds: sounds,
		logger: logger,
	}
	s.world = NewWorld(cfg, seed)

	if store != nil {
		rec, err := store.LoadRecord()
		if err != nil {
			logger.Warn("cannot load record, starting fresh", "err", err)
		} else {
			s.record = rec
			s.selected = rec.SelectedCharacter
		}
	}
	if s.selected < 0 || s.selected >= CharacterCount {
		s.selected = BigJoe
	}
	return s
}

// Step advances the session by one tick of dt seconds with the given
// input frame.
func (s *Session) Step(in core.InputFrame, dt float64) {
	if in.RisingEdge(s.prev, core.ActionMute) && s.sounds != nil {
		s.sounds.ToggleMute()
	}

	switch s.state {
	case StateStartScreen:
		s.stepStartScreen(in)
	case StateCharacterSelect:
		s.stepCharacterSelect(in)
	case StatePlaying:
		s.stepPlaying(in, dt)
	case StateGameOver:
		s.stepGameOver(in)
	}

	s.prev = in.Clone()
}

// stepStartScreen waits for any fresh key press.
func (s *Session) stepStartScreen(in core.InputFrame) {
	if in.AnyRisingEdge(s.prev) {
		s.state = StateCharacterSelect
	}
}

// stepCharacterSelect cycles the highlighted character and commits it.
func (s *Session) stepCharacterSelect(in core.InputFrame) {
	if in.RisingEdge(s.prev, core.ActionLeft) {
		s.selected = s.selected.Prev()
	}
	if in.RisingEdge(s.prev, core.ActionRight) {
		s.selected = s.selected.Next()
	}
	if in.RisingEdge(s.prev, core.ActionConfirm) {
		s.startRun()
	}
}

// startRun commits the character choice, builds a fresh player and world
// and enters the playing state.
func (s *Session) startRun() {
	s.record.SelectedCharacter = s.selected
	if s.store != nil {
		if err := s.store.SaveSelectedCharacter(s.selected); err != nil {
			s.logger.Warn("cannot save selected character", "err", err)
		}
	}

	s.player = NewPlayer(s.cfg, s.selected)
	s.world.Reset(s.seed)
	s.player.Y = s.world.GroundY(s.player)
	s.runTime = 0
	s.lastCoins = 0
	s.lastScore = 0
	s.state = StatePlaying
}

// stepPlaying advances one tick of gameplay: input, player physics, world
// scroll and the two loss conditions.
func (s *Session) stepPlaying(in core.InputFrame, dt float64) {
	p := s.player
	s.runTime += dt

	// Jump follows the key level: Jump() itself is a guarded no-op while
	// airborne, so re-invoking it every frame the key is down is safe.
	if in.Has(core.ActionJump) {
		wasAirborne := p.Jumping
		if p.Jump() && s.sounds != nil {
			if wasAirborne {
				s.sounds.PlayDoubleJump()
			} else {
				s.sounds.PlayJump()
			}
		}
	}

	// Ducking follows the key level, not the edge.
	if in.Has(core.ActionDuck) {
		p.Duck()
	} else {
		p.StandUp()
	}

	if in.RisingEdge(s.prev, core.ActionAbility) {
		if p.ActivateAbility() && s.sounds != nil {
			s.sounds.PlayAbility()
		}
	}

	// A grounded player whose platform scrolled away starts falling.
	if !p.Jumping && !s.world.OverPlatform(p) {
		p.Walkoff()
	}

	supported := s.world.OverPlatform(p)
	p.Update(s.world.GroundY(p), dt, supported)

	s.world.Update(dt, p)

	if coins := s.world.CoinsCollected(); coins > s.lastCoins {
		s.lastCoins = coins
		if s.sounds != nil {
			s.sounds.PlayCoin()
		}
	}

	if s.world.ObstacleCollision(p) || s.world.FallThrough(p) {
		s.endRun()
	}
}

// endRun commits the finished run to the record and enters game over.
func (s *Session) endRun() {
	result := RunResult{
		Score:     s.world.CoinsCollected(),
		Coins:     s.world.CoinsCollected(),
		Character: s.player.Character,
		Duration:  s.runTime,
	}
	s.lastScore = result.Score

	if result.Score > s.record.BestScore {
		s.record.BestScore = result.Score
	}
	s.record.TotalCoins += result.Coins

	if s.store != nil {
		rec, err := s.store.SaveRun(result)
		if err != nil {
			s.logger.Warn("cannot save run", "err", err)
		} else {
			s.record = rec
		}
	}

	if s.sounds != nil {
		s.sounds.PlayGameOver()
	}
	s.state = StateGameOver
}

// stepGameOver waits for confirm, then returns to character select.
func (s *Session) stepGameOver(in core.InputFrame) {
	if in.RisingEdge(s.prev, core.ActionConfirm) {
		s.state = StateCharacterSelect
	}
}

// State returns the current screen state.
func (s *Session) State() State {
	return s.state
}

// Selected returns the highlighted character.
func (s *Session) Selected() Character {
	return s.selected
}

// Player returns the current run's player, nil outside a run.
func (s *Session) Player() *Player {
	return s.player
}

// World returns the world simulation.
func (s *Session) World() *World {
	return s.world
}

// Record returns the current profile.
func (s *Session) Record() Record {
	return s.record
}

// LastScore returns the score of the most recently finished run.
func (s *Session) LastScore() int {
	return s.lastScore
}

// RunTime returns the elapsed time of the current run in seconds.
func (s *Session) RunTime() float64 {
	return s.runTime
}

// Muted reports the audio mute state for the HUD.
func (s *Session) Muted() bool {
	return s.sounds != nil && s.sounds.Muted()
}
