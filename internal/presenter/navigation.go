package presenter

import (
	"galadeck/internal/deck"
	"galadeck/internal/domain/quiz"

	"github.com/sirupsen/logrus"
)

// Navigator owns the current position. Inside the quiz zone the board is
// the hub: every question returns to it, and its next leaves the zone.
type Navigator struct {
	topo    quiz.Topology
	store   *deck.Store
	current int

	listeners []func(from, to int)
}

func NewNavigator(topo quiz.Topology, store *deck.Store) *Navigator {
	return &Navigator{topo: topo, store: store}
}

// OnChange registers fn to run after every position change
func (n *Navigator) OnChange(fn func(from, to int)) {
	n.listeners = append(n.listeners, fn)
}

func (n *Navigator) Current() int {
	return n.current
}

func (n *Navigator) Mode() quiz.Mode {
	return n.topo.ModeOf(n.current)
}

func (n *Navigator) Topology() quiz.Topology {
	return n.topo
}

func (n *Navigator) valid(index int) bool {
	return index >= 0 && index < n.store.Len()
}

func (n *Navigator) moveTo(index int) bool {
	if index == n.current {
		return false
	}
	from := n.current
	n.current = index
	for _, fn := range n.listeners {
		fn(from, index)
	}
	return true
}

// JumpTo moves directly to index. Questions are marked visited first.
// It returns false when the position did not change.
func (n *Navigator) JumpTo(index int) bool {
	if !n.valid(index) {
		logrus.WithField("index", index).Debug("Rejected jump outside deck")
		return false
	}
	if n.topo.InQuestions(index) {
		n.store.MarkVisited(index)
	}
	return n.moveTo(index)
}

// Select is direct selection from a progress indicator. It skips the
// quiz redirects and is the way into a question from outside the board.
func (n *Navigator) Select(index int) bool {
	return n.JumpTo(index)
}

// Pick jumps to the board cell at (category, tier)
func (n *Navigator) Pick(category, tier int) bool {
	index, ok := n.topo.QuestionIndex(category, tier)
	if !ok {
		return false
	}
	return n.JumpTo(index)
}

func (n *Navigator) JumpToBoard() bool {
	return n.JumpTo(n.topo.Board)
}

func (n *Navigator) Advance() bool {
	switch n.Mode() {
	case quiz.ModeBoard:
		return n.JumpTo(n.topo.PostQuiz)
	case quiz.ModeQuestion:
		return n.JumpTo(n.topo.Board)
	}
	if n.current >= n.store.Len()-1 {
		return false
	}
	return n.moveTo(n.current + 1)
}

func (n *Navigator) Retreat() bool {
	if n.Mode() == quiz.ModePostQuiz {
		return n.JumpTo(n.topo.Board)
	}
	if n.current <= 0 {
		return false
	}
	return n.moveTo(n.current - 1)
}
