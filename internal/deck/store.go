package deck

import (
	"encoding/json"
	"errors"
	"fmt"

	"galadeck/internal/domain/slide"
	"galadeck/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store owns the slide deck. It is the only writer of slide records and
// persists after every mutation. It is not safe for concurrent use.
type Store struct {
	backend  storage.Backend
	defaults slide.Deck
	deck     slide.Deck
}

// NewStore creates a store over backend. defaults is the built-in deck
// used whenever nothing valid is persisted.
func NewStore(backend storage.Backend, defaults slide.Deck) *Store {
	return &Store{
		backend:  backend,
		defaults: defaults.Clone(),
		deck:     defaults.Clone(),
	}
}

// Load restores the persisted deck, or the defaults if it is missing or
// does not parse. It never fails.
func (s *Store) Load() slide.Deck {
	deck, err := s.readPersisted()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logrus.WithError(err).Warn("Persisted slides unusable, using built-in deck")
		}
		s.deck = s.defaults.Clone()
		return s.Deck()
	}

	s.deck = deck
	logrus.WithField("slides", len(deck)).Info("Loaded slides from storage")
	return s.Deck()
}

func (s *Store) readPersisted() (slide.Deck, error) {
	data, err := s.backend.Get(storage.KeySlides)
	if err != nil {
		return nil, err
	}

	var deck slide.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse slides: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, err
	}
	if len(deck) != len(s.defaults) {
		return nil, fmt.Errorf("persisted deck has %d slides, show needs %d", len(deck), len(s.defaults))
	}
	return deck, nil
}

// Save persists deck as the current deck. Failures are logged and dropped.
func (s *Store) Save(deck slide.Deck) {
	s.deck = deck.Clone()
	s.persist()
}

func (s *Store) persist() {
	data, err := json.Marshal(s.deck)
	if err != nil {
		logrus.WithError(err).Warn("Failed to encode slides")
		return
	}
	if err := s.backend.Put(storage.KeySlides, data); err != nil {
		logrus.WithError(err).Warn("Failed to persist slides")
	}
}

// Deck returns a copy of the current deck
func (s *Store) Deck() slide.Deck {
	return s.deck.Clone()
}

// Len is the fixed number of slides
func (s *Store) Len() int {
	return len(s.deck)
}

// Slide returns a copy of the record at index
func (s *Store) Slide(index int) (slide.Record, bool) {
	if index < 0 || index >= len(s.deck) {
		return slide.Record{}, false
	}
	return s.deck[index].Clone(), true
}

// UpdateSlide applies patch to the slide with the given id.
// Unknown ids leave the deck unchanged.
func (s *Store) UpdateSlide(id int, patch slide.Patch) slide.Deck {
	i := s.deck.IndexOf(id)
	if i < 0 {
		logrus.WithField("id", id).Debug("Ignoring edit for unknown slide")
		return s.Deck()
	}

	s.deck[i] = patch.Apply(s.deck[i])
	s.persist()

	logrus.WithFields(logrus.Fields{
		"id":    id,
		"index": i,
	}).Debug("Updated slide")
	return s.Deck()
}

// MarkVisited flags the slide at index as shown. The flag never resets.
func (s *Store) MarkVisited(index int) slide.Deck {
	if index < 0 || index >= len(s.deck) || s.deck[index].Visited {
		return s.Deck()
	}

	s.deck[index].Visited = true
	s.persist()
	return s.Deck()
}

// Reset deletes the persisted deck and goes back to the defaults
func (s *Store) Reset() slide.Deck {
	if err := s.backend.Delete(storage.KeySlides); err != nil {
		logrus.WithError(err).Warn("Failed to clear persisted slides")
	}
	s.deck = s.defaults.Clone()
	return s.Deck()
}
