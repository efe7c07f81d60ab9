// Package audio plays the short feedback cues of the drawing surface
// through the system speaker.
//
// Audio is optional: a Player that failed to initialize, or was never
// initialized, accepts every cue silently.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gogpu/sketchpad"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Config holds speaker settings.
type Config struct {
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	Muted      bool    `toml:"muted"`
}

// DefaultConfig returns 48 kHz at a comfortable volume.
func DefaultConfig() Config {
	return Config{SampleRate: 48000, Volume: 0.5}
}

// Player is a sketchpad.Feedback backed by the beep speaker.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

var _ sketchpad.Feedback = (*Player)(nil)

// NewPlayer creates a player. Call Initialize to open the speaker.
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return &Player{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. A second call is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	sketchpad.Logger().Debug("audio: speaker ready", "rate", int(p.rate))
	return nil
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Cue implements sketchpad.Feedback. Cues are dropped while the player is
// muted or not initialized.
func (p *Player) Cue(c sketchpad.Cue) error {
	v := Voice(c, p.rate)
	if v == nil {
		return fmt.Errorf("audio: no voice for cue %v", c)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.cfg.Muted {
		return nil
	}
	speaker.Lock()
	p.mixer.Add(withVolume(v, p.cfg.Volume))
	speaker.Unlock()
	return nil
}

// SetMuted toggles output without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.cfg.Muted = muted
	p.mu.Unlock()
}

// withVolume scales s by a linear gain. Log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
