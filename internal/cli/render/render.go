package render

import (
	"fmt"
	"io"
	"strings"

	"galadeck/internal/cli/scheme/colours"
	"galadeck/internal/domain/quiz"
	"galadeck/internal/domain/slide"
	"galadeck/internal/presenter"
)

// View is the read side of a presenter session
type View interface {
	CurrentSlide() slide.Record
	Deck() slide.Deck
	Index() int
	Mode() quiz.Mode
	Topology() quiz.Topology
	Scale() float64
	Stage() int
	AudioSource() string
	RollOffset() float64
}

const defaultRows = 24

// Renderer draws the current slide of a View as text
type Renderer struct {
	out  io.Writer
	view View
	rows int
}

func New(out io.Writer, view View) *Renderer {
	return &Renderer{out: out, view: view, rows: defaultRows}
}

// SetRows sets the terminal height used to centre the credits
func (r *Renderer) SetRows(rows int) {
	if rows > 0 {
		r.rows = rows
	}
}

// Measure reports how many rows the credits roll travels before the
// closing title sits in the middle of the screen
func (r *Renderer) Measure() float64 {
	s := r.view.CurrentSlide()
	return float64(r.rows)/2 + float64(len(s.Content)+1)
}

// Frame draws one full frame: slide, progress bar and status line
func (r *Renderer) Frame() {
	fmt.Fprintln(r.out)
	r.Slide()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.Progress())
	fmt.Fprintln(r.out, r.Status())
}

// Slide draws the current slide by kind
func (r *Renderer) Slide() {
	s := r.view.CurrentSlide()
	switch r.view.Mode() {
	case quiz.ModeBoard:
		r.board(s)
		return
	case quiz.ModeQuestion:
		r.question(s)
		return
	}

	switch s.Kind {
	case slide.KindTitle:
		colours.Title.Fprintf(r.out, "  ✨ %s ✨\n", s.Title)
		r.subtitle(s)
		for _, line := range s.Content {
			colours.Body.Fprintf(r.out, "     %s\n", line)
		}
	case slide.KindList:
		colours.Heading.Fprintln(r.out, "  "+s.Title)
		r.subtitle(s)
		for i, line := range s.Content {
			fmt.Fprintf(r.out, "  %d. ", i+1)
			colours.Body.Fprintln(r.out, line)
		}
	case slide.KindSoup:
		colours.Heading.Fprintf(r.out, "  🐢 %s\n", s.Title)
		r.subtitle(s)
		for _, line := range s.Content {
			colours.Body.Fprintf(r.out, "  %s\n", line)
		}
	case slide.KindCredits:
		r.credits(s)
	default:
		colours.Heading.Fprintln(r.out, "  "+s.Title)
		r.subtitle(s)
		for _, line := range s.Content {
			fmt.Fprint(r.out, "  • ")
			colours.Body.Fprintln(r.out, line)
		}
	}
	r.image(s)
}

func (r *Renderer) subtitle(s slide.Record) {
	if s.Subtitle != nil && *s.Subtitle != "" {
		colours.Muted.Fprintf(r.out, "  %s\n", *s.Subtitle)
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) image(s slide.Record) {
	if s.Image != nil && *s.Image != "" {
		colours.Info.Fprintf(r.out, "  🖼️  %s\n", *s.Image)
	}
}

func (r *Renderer) question(s slide.Record) {
	colours.Heading.Fprintln(r.out, "  "+s.Title)
	fmt.Fprintln(r.out)
	colours.Body.Fprintf(r.out, "  %s\n", s.Line(0))

	stage := r.view.Stage()
	if stage >= presenter.StageHint {
		if s.Image != nil && *s.Image != "" {
			colours.Info.Fprintf(r.out, "  💡 %s\n", *s.Image)
		} else {
			colours.Muted.Fprintln(r.out, "  💡 no hint for this one")
		}
	}
	if stage >= presenter.StageAnswer {
		fmt.Fprint(r.out, "  ")
		colours.Answer.Fprintf(r.out, " %s ", s.Line(1))
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) board(s slide.Record) {
	colours.Title.Fprintf(r.out, "  %s\n\n", s.Title)
	topo := r.view.Topology()
	deck := r.view.Deck()

	const cell = 12
	fmt.Fprint(r.out, "  ")
	for c := 0; c < topo.Categories; c++ {
		name := s.Line(c)
		if name == "" {
			name = fmt.Sprintf("Category %d", c+1)
		}
		colours.Heading.Fprint(r.out, pad(name, cell))
	}
	fmt.Fprintln(r.out)

	for tier, points := range topo.Tiers {
		fmt.Fprint(r.out, "  ")
		for c := 0; c < topo.Categories; c++ {
			label := pad(fmt.Sprintf("%d$", points), cell)
			idx, ok := topo.QuestionIndex(c, tier)
			if ok && idx < len(deck) && deck[idx].Visited {
				colours.Spent.Fprint(r.out, label)
				continue
			}
			colours.Body.Fprint(r.out, label)
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) credits(s slide.Record) {
	offset := int(r.view.RollOffset())
	lead := offset - len(s.Content) - 1
	if lead > r.rows/2 {
		lead = r.rows / 2
	}
	for i := 0; i < lead; i++ {
		fmt.Fprintln(r.out)
	}
	for _, line := range s.Content {
		colours.Muted.Fprintf(r.out, "          %s\n", line)
	}
	fmt.Fprintln(r.out)
	colours.Title.Fprintf(r.out, "        🎆 %s 🎆\n", s.Title)
	if s.Subtitle != nil {
		colours.Body.Fprintf(r.out, "        %s\n", *s.Subtitle)
	}
}

// Progress draws one marker per slide. Questions are hidden, and while on a
// question the board marker is highlighted.
func (r *Renderer) Progress() string {
	topo := r.view.Topology()
	current := r.view.Index()
	if topo.InQuestions(current) {
		current = topo.Board
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, s := range r.view.Deck() {
		if topo.InQuestions(i) {
			continue
		}
		marker := "○"
		switch {
		case i == topo.Board:
			marker = "▦"
		case s.Visited:
			marker = "●"
		}
		if i == current {
			b.WriteString(colours.Current.Sprint(marker))
			continue
		}
		b.WriteString(colours.Muted.Sprint(marker))
	}
	return b.String()
}

// Status is the one-line footer
func (r *Renderer) Status() string {
	deck := r.view.Deck()
	return colours.Muted.Sprintf("  %d/%d  %s  scale %.2f  ♪ %s",
		r.view.Index()+1, len(deck), r.view.Mode(), r.view.Scale(), r.view.AudioSource())
}

// List prints the deck for the list command, numbered from 1 like the
// status line
func List(out io.Writer, deck slide.Deck, topo quiz.Topology) {
	for i, s := range deck {
		fmt.Fprintf(out, "  %2d. ", i+1)
		colours.Title.Fprint(out, s.Title)
		colours.Muted.Fprintf(out, "  [%s", s.Kind)
		if mode := topo.ModeOf(i); mode != quiz.ModeLinear {
			colours.Muted.Fprintf(out, ", %s", mode)
		}
		colours.Muted.Fprint(out, "]")
		if s.Visited {
			colours.Success.Fprint(out, " ✓")
		}
		fmt.Fprintf(out, "  id %d\n", s.ID)
	}
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return string([]rune(s)[:width-1]) + " "
}
