package presenter

import (
	"testing"
	"time"
)

func TestCreditsCueAndPlay(t *testing.T) {
	h := newHarness(t)

	if !h.player.Paused() {
		t.Fatal("music should be paused at the opening slide")
	}

	h.session.RequestJump(43)
	h.session.RequestAdvance()
	if h.session.Index() != 44 {
		t.Fatalf("expected credits at 44, got %d", h.session.Index())
	}
	if h.player.Paused() {
		t.Fatal("expected music to play at the credits")
	}
	if h.player.Offset() != 30*time.Second {
		t.Fatalf("expected cue at 30s, got %v", h.player.Offset())
	}

	h.session.RequestRetreat()
	if !h.player.Paused() {
		t.Fatal("expected music to pause after leaving the credits")
	}
}

func TestRejectedPlayRetriesOnGesture(t *testing.T) {
	h := newHarness(t)
	h.player.RejectPlays = 1

	h.session.RequestJump(44)
	if !h.player.Paused() || !h.session.playback.RetryArmed() {
		t.Fatal("expected a rejected play to arm a retry")
	}

	h.session.Key(KeyUnknown)
	if h.player.Paused() {
		t.Fatal("expected the gesture to start playback")
	}
	if h.player.Plays != 1 || h.session.playback.RetryArmed() {
		t.Fatalf("retry should run once and detach, plays=%d", h.player.Plays)
	}
}

func TestStaleRetryDoesNotResume(t *testing.T) {
	h := newHarness(t)
	h.player.RejectPlays = 1

	h.session.RequestJump(44)
	h.session.Key(KeyLeft)

	if h.session.Index() != 43 {
		t.Fatalf("expected to be back at 43, got %d", h.session.Index())
	}
	if !h.player.Paused() || h.player.Plays != 0 {
		t.Fatal("a retry after navigating away must not resume the music")
	}
	if h.session.gestures.Pending() != 0 {
		t.Fatal("the retry listener should detach after one gesture")
	}
}

func TestFailedRetryDetaches(t *testing.T) {
	h := newHarness(t)
	h.player.RejectPlays = 2

	h.session.RequestJump(44)
	h.session.Key(KeyUnknown)
	if !h.player.Paused() {
		t.Fatal("second rejection should leave the music paused")
	}
	if h.session.gestures.Pending() != 0 {
		t.Fatal("the listener should detach regardless of outcome")
	}
}

func TestDeferredUntilMetadataReady(t *testing.T) {
	h := newHarness(t)
	h.player.HoldMetadata = true
	h.session.RequestSetAudioSource("/music/closing.mp3")

	h.session.RequestJump(44)
	if h.player.Plays != 0 {
		t.Fatal("playback should wait for metadata")
	}

	h.player.MarkReady()
	if h.player.Plays != 1 || h.player.Offset() != 30*time.Second {
		t.Fatalf("expected one cued play after metadata, plays=%d", h.player.Plays)
	}

	h.player.MarkReady()
	if h.player.Plays != 1 {
		t.Fatal("deferred start must run once")
	}
}

func TestDeferredStartDroppedAfterLeaving(t *testing.T) {
	h := newHarness(t)
	h.player.HoldMetadata = true
	h.session.RequestSetAudioSource("/music/closing.mp3")

	h.session.RequestJump(44)
	h.session.RequestJump(43)
	h.player.MarkReady()

	if h.player.Plays != 0 || !h.player.Paused() {
		t.Fatal("metadata arriving after leaving the credits must not start playback")
	}
}

func TestSetSourcePersistsWithoutPlaying(t *testing.T) {
	h := newHarness(t)

	h.session.RequestSetAudioSource("/music/closing.mp3")
	if h.player.Source() != "/music/closing.mp3" || h.session.AudioSource() != "/music/closing.mp3" {
		t.Fatal("expected the new source on the player and registry")
	}
	if h.player.Plays != 0 {
		t.Fatal("changing the source must not start playback")
	}
}

func TestRollOffsetMeasuredOnEntry(t *testing.T) {
	h := newHarness(t)
	h.session.SetMeasurer(fixedMeasurer(-1250))

	h.session.RequestJump(44)
	if h.session.RollOffset() != -1250 {
		t.Fatalf("expected measured roll offset, got %v", h.session.RollOffset())
	}
}

func TestCloseCancelsRetry(t *testing.T) {
	h := newHarness(t)
	h.player.RejectPlays = 1

	h.session.RequestJump(44)
	h.session.Close()
	if h.session.gestures.Pending() != 0 {
		t.Fatal("close should detach the retry listener")
	}
	h.session.Close()
}
