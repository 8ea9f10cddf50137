// Package audio plays the short tones raised by widgets as cues.
// Sound is optional: a host that fails to open the speaker keeps running
// without it.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/showcase/internal/core"
)

// ErrNotInitialized is returned when playing before Init succeeded.
var ErrNotInitialized = errors.New("audio: player not initialized")

// speaker.Init may only succeed once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
)

// Player mixes cue tones into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates an idle player at the given volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.Clamp(volume, 0, 1),
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if speakerErr != nil {
		return fmt.Errorf("audio: init speaker: %w", speakerErr)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play mixes in the tone for every cue.
func (p *Player) Play(cues []core.Cue) error {
	if len(cues) == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return ErrNotInitialized
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, c := range cues {
		if s, ok := Tone(c, p.volume); ok {
			p.mixer.Add(s)
		}
	}
	return nil
}

// Close silences everything still playing. The speaker stays open for
// the next player.
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
