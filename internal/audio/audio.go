package audio

import (
	"errors"
	"time"
)

var (
	ErrNotReady       = errors.New("audio: metadata not loaded")
	ErrPlaybackDenied = errors.New("audio: playback denied")
)

type Config struct {
	Type string
	// Dispatch runs player callbacks on the caller's event loop.
	// Nil runs them inline on whatever goroutine produced them.
	Dispatch func(func())
}

// Player is the background track element. It always loops.
type Player interface {
	SetSource(ref string)
	// Ready reports whether the current source's metadata is loaded
	Ready() bool
	// OnReady registers a one-shot callback for the metadata ready signal.
	// A later registration replaces an earlier one.
	OnReady(fn func())
	Cue(offset time.Duration)
	// Play starts playback; done receives nil or the rejection reason
	Play(done func(error))
	Pause()
	Paused() bool
	Close() error
}

func dispatcher(d func(func())) func(func()) {
	if d != nil {
		return d
	}
	return func(fn func()) { fn() }
}
