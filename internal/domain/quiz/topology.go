package quiz

import (
	"errors"
	"fmt"
)

// Mode is the behavioural zone a deck index falls in
type Mode int

const (
	ModeLinear Mode = iota
	ModeBoard
	ModeQuestion
	ModePostQuiz
	ModeCredits
)

func (m Mode) String() string {
	switch m {
	case ModeBoard:
		return "board"
	case ModeQuestion:
		return "question"
	case ModePostQuiz:
		return "post-quiz"
	case ModeCredits:
		return "credits"
	default:
		return "linear"
	}
}

// Topology is the fixed partition of deck indices used by the quiz round.
// Questions are laid out category-major: each category owns len(Tiers)
// consecutive questions starting at FirstQuestion.
type Topology struct {
	Board         int   `mapstructure:"board"`
	FirstQuestion int   `mapstructure:"first_question"`
	LastQuestion  int   `mapstructure:"last_question"`
	PostQuiz      int   `mapstructure:"post_quiz"`
	Credits       int   `mapstructure:"credits"`
	Categories    int   `mapstructure:"categories"`
	Tiers         []int `mapstructure:"tiers"`
}

// DefaultTopology matches slide.DefaultDeck: the board sits before the
// questions and the grand prize slide follows them.
func DefaultTopology() Topology {
	return Topology{
		Board:         17,
		FirstQuestion: 18,
		LastQuestion:  42,
		PostQuiz:      43,
		Credits:       44,
		Categories:    5,
		Tiers:         []int{100, 200, 300, 400, 500},
	}
}

var ErrInvalidTopology = errors.New("invalid quiz topology")

// Validate checks every zone against a deck of length n
func (t Topology) Validate(n int) error {
	inRange := func(i int) bool { return i >= 0 && i < n }

	switch {
	case !inRange(t.Board), !inRange(t.PostQuiz), !inRange(t.Credits):
		return fmt.Errorf("%w: zone index outside deck of %d", ErrInvalidTopology, n)
	case !inRange(t.FirstQuestion), !inRange(t.LastQuestion), t.FirstQuestion > t.LastQuestion:
		return fmt.Errorf("%w: question range %d-%d", ErrInvalidTopology, t.FirstQuestion, t.LastQuestion)
	case t.InQuestions(t.Board), t.InQuestions(t.PostQuiz), t.InQuestions(t.Credits):
		return fmt.Errorf("%w: single-index zone inside question range", ErrInvalidTopology)
	case t.Board == t.PostQuiz, t.Board == t.Credits, t.PostQuiz == t.Credits:
		return fmt.Errorf("%w: zones overlap", ErrInvalidTopology)
	}

	if t.Categories*len(t.Tiers) != t.QuestionCount() {
		return fmt.Errorf("%w: %d categories x %d tiers != %d questions",
			ErrInvalidTopology, t.Categories, len(t.Tiers), t.QuestionCount())
	}
	return nil
}

// QuestionCount is the size of the question range
func (t Topology) QuestionCount() int {
	return t.LastQuestion - t.FirstQuestion + 1
}

// InQuestions reports whether i is a question index
func (t Topology) InQuestions(i int) bool {
	return i >= t.FirstQuestion && i <= t.LastQuestion
}

// ModeOf classifies index i
func (t Topology) ModeOf(i int) Mode {
	switch {
	case i == t.Board:
		return ModeBoard
	case t.InQuestions(i):
		return ModeQuestion
	case i == t.PostQuiz:
		return ModePostQuiz
	case i == t.Credits:
		return ModeCredits
	default:
		return ModeLinear
	}
}

// QuestionIndex returns the deck index of the board cell at
// (category, tier). Both are zero based.
func (t Topology) QuestionIndex(category, tier int) (int, bool) {
	if category < 0 || category >= t.Categories || tier < 0 || tier >= len(t.Tiers) {
		return 0, false
	}
	i := t.FirstQuestion + category*len(t.Tiers) + tier
	if !t.InQuestions(i) {
		return 0, false
	}
	return i, true
}

// TierOf returns the tier position of a point value, e.g. 300 -> 2
func (t Topology) TierOf(points int) (int, bool) {
	for i, p := range t.Tiers {
		if p == points {
			return i, true
		}
	}
	return 0, false
}
