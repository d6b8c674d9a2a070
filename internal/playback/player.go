// Package playback plays rendered tracks through the system audio device.
package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/rbrindha8-hub/moodtunes/internal/encode"
	"github.com/rbrindha8-hub/moodtunes/internal/synth"
)

var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

// initSpeaker opens the audio device once per process. The device keeps the
// sample rate of the first track played; later tracks at other rates are
// resampled.
func initSpeaker(sr beep.SampleRate) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sr, sr.N(time.Second/10))
		speakerRate = sr
	})
	return speakerErr
}

// Player plays a single rendered track with pause and volume control.
type Player struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
	src    beep.StreamSeeker
	rate   beep.SampleRate
	done   chan struct{}
}

// NewPlayer prepares buf for playback. The audio device is opened on the
// first call.
func NewPlayer(buf *synth.Buffer) (*Player, error) {
	format := encode.Format(buf)
	if err := initSpeaker(format.SampleRate); err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}

	src := encode.Streamer(buf)
	var stream beep.Streamer = src
	if format.SampleRate != speakerRate {
		stream = beep.Resample(4, format.SampleRate, speakerRate, src)
	}

	ctrl := &beep.Ctrl{Streamer: stream}
	volume := &effects.Volume{
		Streamer: ctrl,
		Base:     2,
	}
	return &Player{
		ctrl:   ctrl,
		volume: volume,
		src:    src,
		rate:   format.SampleRate,
		done:   make(chan struct{}),
	}, nil
}

// Play starts playback. It returns immediately; use Wait to block until the
// track ends.
func (p *Player) Play() {
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		close(p.done)
	})))
}

// Pause suspends playback without losing position.
func (p *Player) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Resume continues a paused track.
func (p *Player) Resume() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
}

// Seek jumps to the given offset from the start of the track.
func (p *Player) Seek(d time.Duration) error {
	speaker.Lock()
	defer speaker.Unlock()
	return p.src.Seek(p.rate.N(d))
}

// Position reports how far into the track playback has advanced.
func (p *Player) Position() time.Duration {
	speaker.Lock()
	defer speaker.Unlock()
	return p.rate.D(p.src.Position())
}

// SetVolume adjusts loudness. v is in octaves of base 2: 0 is unity, -1
// halves the power, and anything at or below -6 mutes.
func (p *Player) SetVolume(v float64) {
	speaker.Lock()
	p.volume.Volume = v
	p.volume.Silent = v <= -6
	speaker.Unlock()
}

// Wait blocks until the track finishes playing.
func (p *Player) Wait() {
	<-p.done
}
