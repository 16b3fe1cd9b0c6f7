package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/sirupsen/logrus"
)

// The speaker is process wide and can only be initialised once
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return speakerRate, speakerErr
}

// BeepPlayer plays a local mp3 or wav file through the beep speaker
type BeepPlayer struct {
	mu       sync.Mutex
	dispatch func(func())

	source   string
	gen      int
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	ready    bool
	loadErr  error
	onReady  func()
	started  bool
}

func NewBeepPlayer(config Config) *BeepPlayer {
	return &BeepPlayer{dispatch: dispatcher(config.Dispatch)}
}

// SetSource swaps the track and starts loading its metadata in the background
func (b *BeepPlayer) SetSource(ref string) {
	b.mu.Lock()
	if ref == b.source && (b.ready || b.gen > 0) {
		b.mu.Unlock()
		return
	}
	b.releaseLocked()
	b.source = ref
	b.gen++
	b.ready = false
	b.loadErr = nil
	gen := b.gen
	b.mu.Unlock()

	go b.load(gen, ref)
}

// releaseLocked detaches the current stream from the speaker and closes it
func (b *BeepPlayer) releaseLocked() {
	if b.ctrl != nil && b.started {
		speaker.Lock()
		b.ctrl.Paused = true
		b.ctrl.Streamer = nil
		speaker.Unlock()
	}
	if b.streamer != nil {
		b.streamer.Close()
	}
	b.streamer = nil
	b.ctrl = nil
	b.started = false
}

func (b *BeepPlayer) load(gen int, ref string) {
	streamer, format, err := decode(ref)

	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		if streamer != nil {
			streamer.Close()
		}
		return
	}

	if err != nil {
		b.loadErr = err
		logrus.WithError(err).WithField("source", ref).Warn("Failed to load audio track")
	} else {
		b.streamer = streamer
		b.format = format
		b.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true}
		logrus.WithFields(logrus.Fields{
			"source":   ref,
			"duration": format.SampleRate.D(streamer.Len()).Round(time.Second),
		}).Debug("Audio track ready")
	}
	b.ready = true
	cb := b.onReady
	b.onReady = nil
	b.mu.Unlock()

	if cb != nil {
		b.dispatch(cb)
	}
}

func decode(ref string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(ref)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open %s: %w", ref, err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		streamer, format, err = mp3.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", ref, err)
	}
	return streamer, format, nil
}

func (b *BeepPlayer) Ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ready
}

func (b *BeepPlayer) OnReady(fn func()) {
	b.mu.Lock()
	if b.ready {
		b.mu.Unlock()
		b.dispatch(fn)
		return
	}
	b.onReady = fn
	b.mu.Unlock()
}

// Cue seeks to offset, clamped to the track length
func (b *BeepPlayer) Cue(offset time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.streamer == nil {
		return
	}
	pos := b.format.SampleRate.N(offset)
	if n := b.streamer.Len(); pos >= n {
		pos = 0
	}

	if b.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	if err := b.streamer.Seek(pos); err != nil {
		logrus.WithError(err).Debug("Failed to cue audio track")
	}
}

func (b *BeepPlayer) Play(done func(error)) {
	err := b.play()
	if done != nil {
		b.dispatch(func() { done(err) })
	}
}

func (b *BeepPlayer) play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		return ErrNotReady
	}
	if b.loadErr != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackDenied, b.loadErr)
	}

	rate, err := initSpeaker(b.format.SampleRate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlaybackDenied, err)
	}

	if !b.started {
		var s beep.Streamer = b.ctrl
		if rate != b.format.SampleRate {
			s = beep.Resample(4, b.format.SampleRate, rate, b.ctrl)
		}
		speaker.Lock()
		b.ctrl.Paused = false
		speaker.Unlock()
		speaker.Play(s)
		b.started = true
		return nil
	}

	speaker.Lock()
	b.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

func (b *BeepPlayer) Pause() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return
	}
	if b.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	b.ctrl.Paused = true
}

func (b *BeepPlayer) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ctrl == nil {
		return true
	}
	if b.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return b.ctrl.Paused
}

func (b *BeepPlayer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	b.onReady = nil
	b.releaseLocked()
	return nil
}
