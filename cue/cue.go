// Package cue is a ready-made audio sink for the meander engine, built on
// [beep]. It synthesizes a short two-tone chime for agent arrivals instead of
// shipping sample assets.
//
// The speaker is initialized lazily on the first cue rather than at
// construction, because browsers and some desktop backends reject audio
// output before the first user gesture. If the speaker cannot be opened the
// player stays silent and keeps reporting the failure through Err.
//
// [beep]: https://github.com/gopxl/beep
package cue

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/meander"
)

const sampleRate = beep.SampleRate(44100)

// Player synthesizes and plays the agent transition chime. The zero value is
// ready to use. Player is safe for concurrent use, though the engine itself
// calls it from a single goroutine.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	started bool
	err     error

	// Volume scales chime amplitude, in [0, 1]. Zero means the default 0.4;
	// use Mute to silence instead.
	Volume float64
	// Mute suppresses playback without tearing down the speaker.
	Mute bool
}

var _ meander.AudioSink = (*Player)(nil)

// PlayTransitionCue implements meander.AudioSink. The first call opens the
// speaker; if that fails the player goes silent rather than failing the
// engine's snap completion.
func (p *Player) PlayTransitionCue() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.Mute {
		return
	}
	if !p.started {
		p.started = true
		p.err = speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond))
		if p.err == nil {
			p.mixer = &beep.Mixer{}
			speaker.Play(p.mixer)
		}
	}
	if p.err != nil {
		return
	}

	volume := p.Volume
	if volume <= 0 {
		volume = 0.4
	}
	speaker.Lock()
	p.mixer.Add(newChime(volume))
	speaker.Unlock()
}

// Err returns the speaker initialization error, if any. Nil before the first
// cue and after a successful open.
func (p *Player) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// chime is a finite streamer: a perfect-fifth pair of decaying sine tones.
type chime struct {
	pos       int
	total     int
	volume    float64
	phaseLow  float64
	phaseHigh float64
}

const (
	chimeLowHz   = 523.25 // C5
	chimeHighHz  = 783.99 // G5
	chimeSeconds = 0.35
)

func newChime(volume float64) beep.Streamer {
	return &chime{
		total:  int(chimeSeconds * float64(sampleRate)),
		volume: volume,
	}
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		// Exponential decay with a short linear attack to avoid a click.
		progress := float64(c.pos) / float64(c.total)
		envelope := math.Exp(-5 * progress)
		if attack := float64(c.pos) / (0.005 * float64(sampleRate)); attack < 1 {
			envelope *= attack
		}

		v := c.volume * envelope * (0.6*math.Sin(2*math.Pi*c.phaseLow) + 0.4*math.Sin(2*math.Pi*c.phaseHigh))
		samples[i][0] = v
		samples[i][1] = v

		c.phaseLow += chimeLowHz / float64(sampleRate)
		c.phaseHigh += chimeHighHz / float64(sampleRate)
		if c.phaseLow >= 1 {
			c.phaseLow -= 1
		}
		if c.phaseHigh >= 1 {
			c.phaseHigh -= 1
		}
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
