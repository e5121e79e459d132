// Package audio produces the tone that is played while the sound timer runs.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Tone parameters.
const (
	SampleRate = 44100
	Frequency  = 440
	Amplitude  = 0x2000

	bytesPerSample = 2
)

// Output switches a tone on and off.
type Output interface {
	SetActive(active bool)
	Close() error
}

var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

// otoContext initializes the oto audio context on first use, oto supports only
// a single context per process.
func otoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-ready
	})
	return otoCtx, otoInitErr
}

// Beeper plays a square wave through the system audio device.
type Beeper struct {
	player *oto.Player
	tone   *Tone
}

// NewBeeper opens the audio device and starts a silent player.
func NewBeeper() (*Beeper, error) {
	ctx, err := otoContext()
	if err != nil {
		return nil, fmt.Errorf("audio output not available: %w", err)
	}

	tone := NewTone(SampleRate, Frequency)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Beeper{
		player: player,
		tone:   tone,
	}, nil
}

// SetActive switches the tone on or off.
func (b *Beeper) SetActive(active bool) {
	b.tone.SetActive(active)
}

// Close stops the playback.
func (b *Beeper) Close() error {
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}

// Silent discards all tone requests, it is used when audio is disabled or
// no audio device is available.
type Silent struct{}

// SetActive does nothing.
func (Silent) SetActive(bool) {}

// Close does nothing.
func (Silent) Close() error { return nil }

// Tone is an endless stream of mono signed 16 bit little endian samples of a
// square wave. The samples are silent while the tone is not active.
type Tone struct {
	active     atomic.Bool
	halfPeriod int // samples per half wave
	position   int
}

// NewTone returns an inactive tone generator.
func NewTone(sampleRate, frequency int) *Tone {
	return &Tone{
		halfPeriod: max(sampleRate/(2*frequency), 1),
	}
}

// SetActive switches the tone on or off, it is safe to call concurrently
// with Read.
func (t *Tone) SetActive(active bool) {
	t.active.Store(active)
}

// Read fills p with samples, it never returns an error.
func (t *Tone) Read(p []byte) (int, error) {
	active := t.active.Load()
	n := len(p) - len(p)%bytesPerSample

	for i := 0; i < n; i += bytesPerSample {
		var sample int16
		if active {
			sample = Amplitude
			if (t.position/t.halfPeriod)%2 == 1 {
				sample = -Amplitude
			}
		}
		t.position = (t.position + 1) % (2 * t.halfPeriod)

		p[i] = byte(sample)
		p[i+1] = byte(uint16(sample) >> 8)
	}
	return n, nil
}
