package presenter

import (
	"time"

	"galadeck/internal/audio"
	"galadeck/internal/deck"

	"github.com/sirupsen/logrus"
)

// Measurer is supplied by the renderer. It reports how far the credits
// roll must travel to centre the closing title.
type Measurer interface {
	Measure() float64
}

// Synchronizer starts the closing music when the show reaches the credits
// and pauses it everywhere else
type Synchronizer struct {
	player   audio.Player
	registry *deck.AudioRegistry
	nav      *Navigator
	gestures *Gestures
	credits  int
	cue      time.Duration

	measurer   Measurer
	rollOffset float64

	retry   *Subscription
	waiting bool
	closed  bool
}

func NewSynchronizer(player audio.Player, registry *deck.AudioRegistry, nav *Navigator, gestures *Gestures, cue time.Duration) *Synchronizer {
	s := &Synchronizer{
		player:   player,
		registry: registry,
		nav:      nav,
		gestures: gestures,
		credits:  nav.Topology().Credits,
		cue:      cue,
	}
	player.SetSource(registry.Source())
	return s
}

func (s *Synchronizer) SetMeasurer(m Measurer) {
	s.measurer = m
}

// RollOffset is the last credits roll distance measured on entry
func (s *Synchronizer) RollOffset() float64 {
	return s.rollOffset
}

func (s *Synchronizer) atCredits() bool {
	return s.nav.Current() == s.credits
}

// Sync reacts to the show being at index
func (s *Synchronizer) Sync(index int) {
	if s.closed {
		return
	}
	if index != s.credits {
		s.player.Pause()
		return
	}

	if s.measurer != nil {
		s.rollOffset = s.measurer.Measure()
	}
	s.cueAndPlay()
}

func (s *Synchronizer) cueAndPlay() {
	if s.player.Ready() {
		s.startPlay()
		return
	}
	if s.waiting {
		return
	}

	s.waiting = true
	s.player.OnReady(func() {
		s.waiting = false
		if s.closed || !s.atCredits() {
			return
		}
		s.startPlay()
	})
}

func (s *Synchronizer) startPlay() {
	s.player.Cue(s.cue)
	s.player.Play(func(err error) {
		if err == nil {
			return
		}
		logrus.WithError(err).Debug("Playback rejected, retrying on next gesture")
		s.armRetry()
	})
}

// armRetry waits for one user gesture, then tries once more if the music
// is still paused and the show is still at the credits
func (s *Synchronizer) armRetry() {
	if s.closed {
		return
	}
	s.retry.Cancel()
	s.retry = s.gestures.Once(func() {
		s.retry = nil
		if !s.player.Paused() || !s.atCredits() {
			return
		}
		s.player.Cue(s.cue)
		s.player.Play(func(err error) {
			if err != nil {
				logrus.WithError(err).Debug("Playback retry rejected")
			}
		})
	})
}

// RetryArmed reports whether a gesture retry is pending
func (s *Synchronizer) RetryArmed() bool {
	return s.retry != nil
}

// StopAudio pauses the music without moving
func (s *Synchronizer) StopAudio() {
	s.player.Pause()
}

// SetSource swaps the track. Playback is left to the next position change.
func (s *Synchronizer) SetSource(ref string) {
	s.registry.SetSource(ref)
	s.player.SetSource(s.registry.Source())
}

func (s *Synchronizer) Source() string {
	return s.registry.Source()
}

// Close detaches the retry listener and drops any deferred start
func (s *Synchronizer) Close() {
	s.closed = true
	s.retry.Cancel()
	s.retry = nil
	s.player.Pause()
}
