package presenter

import (
	"testing"
	"time"

	"galadeck/internal/audio"
	"galadeck/internal/deck"
	"galadeck/internal/domain/quiz"
	"galadeck/internal/domain/slide"
	"galadeck/internal/storage"
)

type fakeTimer struct {
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler fires timers only when told to
type fakeScheduler struct {
	timers []*fakeTimer
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	t := &fakeTimer{fn: fn}
	f.timers = append(f.timers, t)
	return t
}

// Elapse fires every live timer
func (f *fakeScheduler) Elapse() {
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.fn()
		}
	}
}

func (f *fakeScheduler) live() int {
	n := 0
	for _, t := range f.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type fixedMeasurer float64

func (m fixedMeasurer) Measure() float64 { return float64(m) }

type harness struct {
	session *Session
	player  *audio.MockPlayer
	sched   *fakeScheduler
	mem     *storage.MemoryBackend
	store   *deck.Store
	renders int
}

func testOptions() Options {
	return Options{
		Topology:       quiz.DefaultTopology(),
		CreditsCue:     30 * time.Second,
		DoubleClick:    DefaultDoubleClick,
		CanvasWidth:    1920,
		CanvasHeight:   1080,
		Margin:         20,
		ViewportWidth:  1920,
		ViewportHeight: 1080,
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		player: audio.NewMockPlayer(audio.Config{}),
		sched:  &fakeScheduler{},
		mem:    storage.NewMemoryBackend(),
	}
	h.store = deck.NewStore(h.mem, slide.DefaultDeck())
	registry := deck.NewAudioRegistry(h.mem, "./bgm.mp3")

	s, err := NewSession(h.store, registry, h.player, h.sched, testOptions())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.OnRender(func() { h.renders++ })
	t.Cleanup(s.Close)
	h.session = s
	return h
}

func newTestNavigator() (*Navigator, *deck.Store) {
	store := deck.NewStore(storage.NewMemoryBackend(), slide.DefaultDeck())
	store.Load()
	return NewNavigator(quiz.DefaultTopology(), store), store
}
