package slide

import (
	"errors"
	"fmt"
)

// Kind selects how a slide is laid out by the renderer
type Kind string

const (
	KindTitle   Kind = "title"
	KindContent Kind = "content"
	KindList    Kind = "list"
	KindBoard   Kind = "board"
	KindTopLeft Kind = "top-left"
	KindSoup    Kind = "soup"
	KindCredits Kind = "credits"
)

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known slide kinds
func (k Kind) Valid() bool {
	switch k {
	case KindTitle, KindContent, KindList, KindBoard, KindTopLeft, KindSoup, KindCredits:
		return true
	}
	return false
}

// Record is one editable slide of the show
type Record struct {
	ID       int      `json:"id"`
	Kind     Kind     `json:"type"`
	Title    string   `json:"title"`
	Subtitle *string  `json:"subtitle,omitempty"`
	Content  []string `json:"content,omitempty"`
	Image    *string  `json:"image,omitempty"`
	Visited  bool     `json:"visited,omitempty"`
}

// Clone returns a deep copy of the record
func (r Record) Clone() Record {
	out := r
	if r.Content != nil {
		out.Content = append([]string(nil), r.Content...)
	}
	if r.Subtitle != nil {
		s := *r.Subtitle
		out.Subtitle = &s
	}
	if r.Image != nil {
		s := *r.Image
		out.Image = &s
	}
	return out
}

// Line returns content line i or "" when the slide has fewer lines
func (r Record) Line(i int) string {
	if i < 0 || i >= len(r.Content) {
		return ""
	}
	return r.Content[i]
}

// Deck is the ordered show. Insertion order is show order.
type Deck []Record

var (
	ErrEmptyDeck   = errors.New("deck is empty")
	ErrDuplicateID = errors.New("duplicate slide id")
	ErrUnknownKind = errors.New("unknown slide kind")
)

// Clone returns a deep copy of the deck
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	for i, r := range d {
		out[i] = r.Clone()
	}
	return out
}

// IndexOf returns the position of the slide with the given id, or -1
func (d Deck) IndexOf(id int) int {
	for i, r := range d {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Validate checks the structural invariants of a deck
func (d Deck) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDeck
	}
	seen := make(map[int]bool, len(d))
	for i, r := range d {
		if seen[r.ID] {
			return fmt.Errorf("slide %d: %w: %d", i, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true
		if !r.Kind.Valid() {
			return fmt.Errorf("slide %d: %w: %q", i, ErrUnknownKind, r.Kind)
		}
	}
	return nil
}
