// Package audio plays short sound effects.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the output rate every sound is resampled to.
const SampleRate = beep.SampleRate(44100)

// Player plays named sounds. Play never blocks the caller.
type Player interface {
	Play(name string)
}

// Nop is a Player that plays nothing. Used for muted and remote sessions.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}

// Decode reads a WAV stream fully into a buffer at SampleRate.
func Decode(r io.Reader) (*beep.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: decode wav: %w", err)
	}
	return buf, nil
}

// Beep plays decoded sounds through the system speaker.
type Beep struct {
	mu     sync.Mutex
	sounds map[string]*beep.Buffer
	volume float64
}

// NewBeep initializes the speaker and returns a player with no sounds loaded.
// volume is linear, 1 leaves samples unchanged and 0 mutes.
func NewBeep(volume float64) (*Beep, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Beep{
		sounds: make(map[string]*beep.Buffer),
		volume: volume,
	}, nil
}

// Load decodes a WAV stream and registers it under name.
func (b *Beep) Load(name string, r io.Reader) error {
	buf, err := Decode(r)
	if err != nil {
		return fmt.Errorf("audio: load %s: %w", name, err)
	}

	b.mu.Lock()
	b.sounds[name] = buf
	b.mu.Unlock()
	return nil
}

// Play starts a sound. Unknown names are ignored.
func (b *Beep) Play(name string) {
	b.mu.Lock()
	buf, ok := b.sounds[name]
	b.mu.Unlock()
	if !ok {
		return
	}

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if b.volume <= 0 {
		return
	}
	if b.volume != 1 {
		s = &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(b.volume)}
	}
	speaker.Play(s)
}

// Close stops playback and releases the audio device.
func (b *Beep) Close() {
	speaker.Clear()
	speaker.Close()
}
