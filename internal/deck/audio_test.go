package deck

import (
	"testing"

	"galadeck/internal/storage"
)

func TestAudioRegistry(t *testing.T) {
	mem := storage.NewMemoryBackend()
	reg := NewAudioRegistry(mem, "./bgm.mp3")

	if got := reg.Load(); got != "./bgm.mp3" {
		t.Fatalf("expected default source, got %q", got)
	}

	reg.SetSource("/music/closing.mp3")
	if got := NewAudioRegistry(mem, "./bgm.mp3").Load(); got != "/music/closing.mp3" {
		t.Fatalf("expected persisted source, got %q", got)
	}

	reg.SetSource("")
	if reg.Source() != "/music/closing.mp3" {
		t.Fatal("empty source should be ignored")
	}

	mem.Put(storage.KeyAudioSource, []byte("not json"))
	if got := reg.Load(); got != "./bgm.mp3" {
		t.Fatalf("expected default on corrupt record, got %q", got)
	}

	reg.SetSource("/music/other.mp3")
	if got := reg.Reset(); got != "./bgm.mp3" {
		t.Fatalf("expected default after reset, got %q", got)
	}
}

func TestAudioRegistrySaveFailureIsSilent(t *testing.T) {
	mem := storage.NewMemoryBackend()
	mem.Quota = 4
	reg := NewAudioRegistry(mem, "./bgm.mp3")

	reg.SetSource("/a/very/long/path/to/music.mp3")
	if reg.Source() != "/a/very/long/path/to/music.mp3" {
		t.Fatal("in-memory source should update even when persisting fails")
	}
}
