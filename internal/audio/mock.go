package audio

import (
	"sync"
	"time"

	"github.com/fatih/color"
)

// MockPlayer - silent player that records what it was asked to do.
// Callbacks run through Dispatch like the real player.
type MockPlayer struct {
	mu       sync.Mutex
	dispatch func(func())
	verbose  bool

	source  string
	ready   bool
	paused  bool
	cue     time.Duration
	onReady func()

	// HoldMetadata keeps new sources unready until MarkReady is called
	HoldMetadata bool
	// RejectPlays makes the next n Play calls fail with ErrPlaybackDenied
	RejectPlays int

	Plays  int
	Pauses int
	Cues   int
}

func NewMockPlayer(c Config) *MockPlayer {
	return &MockPlayer{
		dispatch: dispatcher(c.Dispatch),
		paused:   true,
		verbose:  c.Type == EngineTypeMock.String(),
	}
}

func (m *MockPlayer) SetSource(ref string) {
	m.mu.Lock()
	m.source = ref
	m.ready = !m.HoldMetadata
	m.paused = true
	m.mu.Unlock()
}

func (m *MockPlayer) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

// MarkReady fires the metadata ready signal
func (m *MockPlayer) MarkReady() {
	m.mu.Lock()
	m.ready = true
	cb := m.onReady
	m.onReady = nil
	m.mu.Unlock()

	if cb != nil {
		m.dispatch(cb)
	}
}

func (m *MockPlayer) Ready() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ready
}

func (m *MockPlayer) OnReady(fn func()) {
	m.mu.Lock()
	if m.ready {
		m.mu.Unlock()
		m.dispatch(fn)
		return
	}
	m.onReady = fn
	m.mu.Unlock()
}

func (m *MockPlayer) Cue(offset time.Duration) {
	m.mu.Lock()
	m.cue = offset
	m.Cues++
	m.mu.Unlock()
}

// Offset is the last cue position
func (m *MockPlayer) Offset() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cue
}

func (m *MockPlayer) Play(done func(error)) {
	m.mu.Lock()
	var err error
	switch {
	case !m.ready:
		err = ErrNotReady
	case m.RejectPlays > 0:
		m.RejectPlays--
		err = ErrPlaybackDenied
	default:
		m.paused = false
		m.Plays++
	}
	m.mu.Unlock()

	if err == nil && m.verbose {
		color.Yellow("🔊 Playing %s from %v (simulated)", m.Source(), m.Offset())
	}
	if done != nil {
		m.dispatch(func() { done(err) })
	}
}

func (m *MockPlayer) Pause() {
	m.mu.Lock()
	if !m.paused {
		m.Pauses++
	}
	m.paused = true
	m.mu.Unlock()
}

func (m *MockPlayer) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *MockPlayer) Close() error {
	m.Pause()
	return nil
}
