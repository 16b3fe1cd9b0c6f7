package audio

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer(Config{Type: "mock"})
	if err != nil {
		t.Fatalf("NewPlayer(mock): %v", err)
	}
	if _, ok := p.(*MockPlayer); !ok {
		t.Fatalf("expected *MockPlayer, got %T", p)
	}
	if _, err := NewPlayer(Config{Type: "vinyl"}); err == nil {
		t.Fatal("expected error for unknown engine")
	}
}

func TestMockPlayerMetadataAndRejection(t *testing.T) {
	m := NewMockPlayer(Config{})
	m.HoldMetadata = true
	m.SetSource("./bgm.mp3")

	var got error
	m.Play(func(err error) { got = err })
	if !errors.Is(got, ErrNotReady) {
		t.Fatalf("expected ErrNotReady before metadata, got %v", got)
	}

	fired := 0
	m.OnReady(func() { fired++ })
	m.MarkReady()
	m.MarkReady()
	if fired != 1 {
		t.Fatalf("ready callback should fire once, fired %d", fired)
	}

	m.RejectPlays = 1
	m.Play(func(err error) { got = err })
	if !errors.Is(got, ErrPlaybackDenied) || !m.Paused() {
		t.Fatalf("expected rejected play to stay paused, got %v", got)
	}
	m.Cue(30 * time.Second)
	m.Play(func(err error) { got = err })
	if got != nil || m.Paused() || m.Offset() != 30*time.Second {
		t.Fatalf("expected playback from 30s, got err=%v paused=%v", got, m.Paused())
	}
}

func TestBeepPlayerRejectsMissingFile(t *testing.T) {
	readied := make(chan struct{})
	b := NewBeepPlayer(Config{})
	defer b.Close()

	b.OnReady(func() { close(readied) })
	b.SetSource(filepath.Join(t.TempDir(), "missing.mp3"))

	select {
	case <-readied:
	case <-time.After(5 * time.Second):
		t.Fatal("expected ready signal after failed load")
	}

	errc := make(chan error, 1)
	b.Play(func(err error) { errc <- err })
	if err := <-errc; !errors.Is(err, ErrPlaybackDenied) {
		t.Fatalf("expected ErrPlaybackDenied for a missing file, got %v", err)
	}
	if !b.Paused() {
		t.Fatal("player should report paused")
	}
}
