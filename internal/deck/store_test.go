package deck

import (
	"encoding/json"
	"testing"

	"galadeck/internal/domain/slide"
	"galadeck/internal/storage"
)

func newTestStore() (*Store, *storage.MemoryBackend) {
	mem := storage.NewMemoryBackend()
	return NewStore(mem, slide.DefaultDeck()), mem
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	s, mem := newTestStore()

	if deck := s.Load(); len(deck) != 45 || deck[0].Title != slide.DefaultDeck()[0].Title {
		t.Fatal("expected built-in deck when nothing is persisted")
	}

	cases := map[string]string{
		"corrupt json": `[{"id":1,`,
		"not an array": `{"id":1}`,
		"empty":        `[]`,
		"unknown kind": `[{"id":1,"type":"video","title":"x"}]`,
		"wrong length": `[{"id":1,"type":"title","title":"x"}]`,
	}
	for name, raw := range cases {
		mem.Put(storage.KeySlides, []byte(raw))
		deck := s.Load()
		if len(deck) != 45 {
			t.Fatalf("%s: expected default deck, got %d slides", name, len(deck))
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, mem := newTestStore()
	before := s.Load()
	s.Save(before)

	reloaded := NewStore(mem, slide.DefaultDeck()).Load()
	a, _ := json.Marshal(before)
	b, _ := json.Marshal(reloaded)
	if string(a) != string(b) {
		t.Fatal("save(load()) should not change content")
	}
}

func TestUpdateSlidePersists(t *testing.T) {
	s, mem := newTestStore()
	s.Load()

	title := "Countdown!"
	deck := s.UpdateSlide(2, slide.Patch{Title: &title, Lines: map[int]string{0: "Ten seconds"}})
	if deck[1].Title != title || deck[1].Content[0] != "Ten seconds" {
		t.Fatalf("expected edit to apply to slide id 2, got %+v", deck[1])
	}
	if deck[0].Title != slide.DefaultDeck()[0].Title {
		t.Fatal("other slides must be untouched")
	}

	reloaded := NewStore(mem, slide.DefaultDeck()).Load()
	if reloaded[1].Title != title {
		t.Fatalf("expected reload to reflect the edit, got %q", reloaded[1].Title)
	}
}

func TestUpdateUnknownSlideIsNoop(t *testing.T) {
	s, mem := newTestStore()
	s.Load()

	title := "ghost"
	deck := s.UpdateSlide(999, slide.Patch{Title: &title})
	for i, r := range deck {
		if r.Title == title {
			t.Fatalf("slide %d unexpectedly edited", i)
		}
	}
	if _, err := mem.Get(storage.KeySlides); err == nil {
		t.Fatal("a no-op edit should not write")
	}
}

func TestMarkVisitedIsMonotonic(t *testing.T) {
	s, _ := newTestStore()
	s.Load()

	deck := s.MarkVisited(20)
	if !deck[20].Visited {
		t.Fatal("expected slide 20 visited")
	}
	deck = s.MarkVisited(20)
	if !deck[20].Visited {
		t.Fatal("repeated mark must keep visited")
	}

	// Edits cannot clear the flag.
	title := "renamed"
	deck = s.UpdateSlide(deck[20].ID, slide.Patch{Title: &title})
	if !deck[20].Visited {
		t.Fatal("edit must not reset visited")
	}

	before := s.Deck()
	s.MarkVisited(-1)
	s.MarkVisited(45)
	after := s.Deck()
	for i := range before {
		if before[i].Visited != after[i].Visited {
			t.Fatalf("out of range mark changed slide %d", i)
		}
	}
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	s, mem := newTestStore()
	s.Load()
	mem.Quota = 8

	title := "still edited"
	deck := s.UpdateSlide(1, slide.Patch{Title: &title})
	if deck[0].Title != title {
		t.Fatal("in-memory edit should survive a failed save")
	}
}

func TestDeckReturnsCopy(t *testing.T) {
	s, _ := newTestStore()
	s.Load()

	d := s.Deck()
	d[0].Title = "mutated"
	if s.Deck()[0].Title == "mutated" {
		t.Fatal("Deck should return a copy")
	}
}

func TestReset(t *testing.T) {
	s, mem := newTestStore()
	s.Load()
	s.MarkVisited(18)

	deck := s.Reset()
	if deck[18].Visited {
		t.Fatal("reset should restore the defaults")
	}
	if _, err := mem.Get(storage.KeySlides); err == nil {
		t.Fatal("reset should clear storage")
	}
}
