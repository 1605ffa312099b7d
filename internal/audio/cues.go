// Package audio plays short sound cues for game events.
// Sound is optional: the game only sees the Cues interface and runs the same
// with Nop.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a game event with a sound.
type Cue int

const (
	CueCatch Cue = iota // ingredient landed in the cauldron
	CueFling            // drag released
	CueLost             // ingredient left the window
)

// Cues plays sound cues. Implementations must not block the caller.
type Cues interface {
	Play(c Cue)
	Close()
}

// Nop is a silent Cues.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueCatch: {{659.25, 60 * time.Millisecond}, {987.77, 90 * time.Millisecond}},
	CueFling: {{330, 40 * time.Millisecond}},
	CueLost:  {{196, 120 * time.Millisecond}},
}

// Speaker plays cues through the default audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker opens the audio device. volume is in [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue on the mixer.
func (s *Speaker) Play(c Cue) {
	st := cueStreamer(c, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.mixer.Add(st)
}

// Close silences pending cues.
func (s *Speaker) Close() {
	speaker.Lock()
	defer speaker.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.mixer.Clear()
}

// cueStreamer builds the tone sequence for c, or nil for unknown cues.
func cueStreamer(c Cue, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume)
}

// withVolume scales a stream linearly. log2(0) is -Inf, so zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
