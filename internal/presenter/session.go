package presenter

import (
	"fmt"
	"time"

	"galadeck/internal/audio"
	"galadeck/internal/deck"
	"galadeck/internal/domain/quiz"
	"galadeck/internal/domain/slide"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Topology    quiz.Topology
	CreditsCue  time.Duration
	DoubleClick time.Duration

	CanvasWidth    float64
	CanvasHeight   float64
	Margin         float64
	ViewportWidth  float64
	ViewportHeight float64
}

// Fullscreen is the host's fullscreen toggle. Toggle may be refused.
type Fullscreen interface {
	Toggle() error
}

// Session wires the presenter core together and is what a renderer talks
// to. It is not safe for concurrent use: drive it from a Loop.
type Session struct {
	store    *deck.Store
	nav      *Navigator
	playback *Synchronizer
	scaler   *Scaler
	input    *Dispatcher
	gestures *Gestures
	reveal   Reveal

	fullscreen Fullscreen
	onRender   func()
	onNotice   func(string)
}

// NewSession restores persisted state and positions the show on its
// first slide
func NewSession(store *deck.Store, registry *deck.AudioRegistry, player audio.Player, sched Scheduler, opts Options) (*Session, error) {
	store.Load()
	registry.Load()

	if err := opts.Topology.Validate(store.Len()); err != nil {
		return nil, fmt.Errorf("quiz layout does not fit the deck: %w", err)
	}

	s := &Session{
		store:    store,
		gestures: NewGestures(),
	}
	s.nav = NewNavigator(opts.Topology, store)
	s.playback = NewSynchronizer(player, registry, s.nav, s.gestures, opts.CreditsCue)
	s.scaler = NewScaler(opts.CanvasWidth, opts.CanvasHeight, opts.Margin, opts.ViewportWidth, opts.ViewportHeight)
	s.input = NewDispatcher(s, s.gestures, sched, opts.DoubleClick)

	s.nav.OnChange(func(from, to int) {
		s.reveal.Reset()
		s.playback.Sync(to)
		logrus.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
			"mode": s.nav.Mode().String(),
		}).Debug("Moved")
		s.changed()
	})
	s.playback.Sync(s.nav.Current())

	return s, nil
}

func (s *Session) changed() {
	if s.onRender != nil {
		s.onRender()
	}
}

func (s *Session) notice(msg string) {
	if s.onNotice != nil {
		s.onNotice(msg)
	}
}

// OnRender registers the re-render signal
func (s *Session) OnRender(fn func()) { s.onRender = fn }

// OnNotice registers the one-line user notice sink
func (s *Session) OnNotice(fn func(string)) { s.onNotice = fn }

func (s *Session) SetFullscreen(f Fullscreen) { s.fullscreen = f }

func (s *Session) SetMeasurer(m Measurer) { s.playback.SetMeasurer(m) }

func (s *Session) CurrentSlide() slide.Record {
	r, _ := s.store.Slide(s.nav.Current())
	return r
}

func (s *Session) Deck() slide.Deck {
	return s.store.Deck()
}

func (s *Session) Index() int {
	return s.nav.Current()
}

func (s *Session) Mode() quiz.Mode {
	return s.nav.Mode()
}

func (s *Session) Topology() quiz.Topology {
	return s.nav.Topology()
}

func (s *Session) Scale() float64 {
	return s.scaler.Scale()
}

func (s *Session) Stage() int {
	return s.reveal.Stage()
}

func (s *Session) AudioSource() string {
	return s.playback.Source()
}

func (s *Session) RollOffset() float64 {
	return s.playback.RollOffset()
}

func (s *Session) RequestAdvance() bool { return s.nav.Advance() }

func (s *Session) RequestRetreat() bool { return s.nav.Retreat() }

func (s *Session) RequestJump(index int) bool { return s.nav.Select(index) }

// RequestPick jumps to a board cell by category position and point value
func (s *Session) RequestPick(category, points int) bool {
	tier, ok := s.nav.Topology().TierOf(points)
	if !ok {
		return false
	}
	return s.nav.Pick(category, tier)
}

func (s *Session) RequestEditSlide(id int, patch slide.Patch) {
	if patch.Empty() {
		return
	}
	s.store.UpdateSlide(id, patch)
	s.changed()
}

func (s *Session) RequestSetAudioSource(ref string) {
	s.playback.SetSource(ref)
	s.changed()
}

// Advance et al. implement Intents for the input dispatcher

func (s *Session) Advance() { s.RequestAdvance() }

func (s *Session) Retreat() { s.RequestRetreat() }

func (s *Session) JumpToBoard() { s.nav.JumpToBoard() }

func (s *Session) StopAudio() { s.playback.StopAudio() }

func (s *Session) ToggleFullscreen() {
	if s.fullscreen == nil {
		s.notice("Fullscreen is not available here.")
		return
	}
	if err := s.fullscreen.Toggle(); err != nil {
		logrus.WithError(err).Debug("Fullscreen refused")
		s.notice("Fullscreen was refused, use your terminal's fullscreen instead.")
		return
	}
	s.changed()
}

func (s *Session) Reveal() {
	if s.nav.Mode() != quiz.ModeQuestion {
		return
	}
	if s.reveal.Next() {
		s.changed()
	}
}

func (s *Session) Click(region Region) bool { return s.input.Click(region) }

func (s *Session) Key(k Key) bool { return s.input.Key(k) }

func (s *Session) SetEditing(editing bool) { s.input.SetEditing(editing) }

func (s *Session) Resize(width, height float64) float64 {
	scale := s.scaler.Resize(width, height)
	s.changed()
	return scale
}

// Close cancels the click timer and the playback retry
func (s *Session) Close() {
	s.input.Close()
	s.playback.Close()
}
