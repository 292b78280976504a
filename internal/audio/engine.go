package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and mixes the short gameplay cues. A nil
// *Engine is safe to call everywhere and stays silent, so callers never
// need to branch on whether audio initialized.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewEngine creates an engine and opens the speaker. The error is
// non-fatal for the game: a caller may log it and continue with a nil
// engine.
func NewEngine() (*Engine, error) {
	e := &Engine{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return e, nil
}

// Close silences the mixer. beep keeps the speaker open for the process
// lifetime, so clearing pending streamers is all the shutdown there is.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// play adds a one-shot streamer to the mixer.
func (e *Engine) play(s beep.Streamer) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized || e.muted {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayJump plays a short rising blip.
func (e *Engine) PlayJump() {
	d := 90 * time.Millisecond
	e.play(NewEnvelope(NewSweep(320, 620, d, WaveSquare, sampleRate),
		d, 5*time.Millisecond, 30*time.Millisecond, 0.25, sampleRate))
}

// PlayDoubleJump plays a higher second blip.
func (e *Engine) PlayDoubleJump() {
	d := 90 * time.Millisecond
	e.play(NewEnvelope(NewSweep(520, 980, d, WaveSquare, sampleRate),
		d, 5*time.Millisecond, 30*time.Millisecond, 0.25, sampleRate))
}

// PlayCoin plays a bright ping.
func (e *Engine) PlayCoin() {
	d := 70 * time.Millisecond
	e.play(NewEnvelope(NewTone(1320, d, WaveSine, sampleRate),
		d, 2*time.Millisecond, 40*time.Millisecond, 0.3, sampleRate))
}

// PlayAbility plays a long upward sweep.
func (e *Engine) PlayAbility() {
	d := 250 * time.Millisecond
	e.play(NewEnvelope(NewSweep(220, 880, d, WaveSaw, sampleRate),
		d, 10*time.Millisecond, 80*time.Millisecond, 0.2, sampleRate))
}

// PlayGameOver plays a falling tone.
func (e *Engine) PlayGameOver() {
	d := 450 * time.Millisecond
	e.play(NewEnvelope(NewSweep(440, 110, d, WaveSaw, sampleRate),
		d, 10*time.Millisecond, 150*time.Millisecond, 0.25, sampleRate))
}

// ToggleMute flips the mute state and returns the new state.
func (e *Engine) ToggleMute() bool {
	if e == nil {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	if e.muted && e.initialized {
		speaker.Lock()
		e.mixer.Clear()
		speaker.Unlock()
	}
	return e.muted
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	if e == nil {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}
