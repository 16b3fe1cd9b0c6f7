package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"galadeck/internal/domain/quiz"
	"galadeck/internal/domain/slide"
	"galadeck/internal/presenter"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

type stubView struct {
	deck  slide.Deck
	index int
	stage int
	roll  float64
}

func (v *stubView) CurrentSlide() slide.Record { return v.deck[v.index] }
func (v *stubView) Deck() slide.Deck           { return v.deck }
func (v *stubView) Index() int                 { return v.index }
func (v *stubView) Mode() quiz.Mode            { return quiz.DefaultTopology().ModeOf(v.index) }
func (v *stubView) Topology() quiz.Topology    { return quiz.DefaultTopology() }
func (v *stubView) Scale() float64             { return 0.96 }
func (v *stubView) Stage() int                 { return v.stage }
func (v *stubView) AudioSource() string        { return "./bgm.mp3" }
func (v *stubView) RollOffset() float64        { return v.roll }

func newStub(index int) *stubView {
	return &stubView{deck: slide.DefaultDeck(), index: index}
}

func TestProgressHidesQuestions(t *testing.T) {
	v := newStub(0)
	r := New(&bytes.Buffer{}, v)

	got := strings.TrimSpace(r.Progress())
	if n := len([]rune(got)); n != 45-25 {
		t.Fatalf("expected 20 markers, got %d in %q", n, got)
	}

	v.deck[30].Visited = true
	v.index = 30
	if strings.TrimSpace(r.Progress()) != got {
		t.Fatal("visiting a question should not show up as its own marker")
	}
}

func TestBoardMarksSpentCells(t *testing.T) {
	v := newStub(17)
	v.deck[18].Visited = true
	var out bytes.Buffer
	New(&out, v).Slide()

	text := out.String()
	for _, want := range []string{"Movies", "Riddles", "100$", "500$"} {
		if !strings.Contains(text, want) {
			t.Fatalf("board missing %q:\n%s", want, text)
		}
	}
	if strings.Count(text, "100$") != 5 {
		t.Fatalf("expected one 100$ cell per category:\n%s", text)
	}
}

func TestQuestionStages(t *testing.T) {
	v := newStub(18)
	v.deck[18].Content = []string{"Who directed Jaws?", "Spielberg"}
	var out bytes.Buffer
	r := New(&out, v)

	r.Slide()
	if strings.Contains(out.String(), "Spielberg") {
		t.Fatal("answer shown before it was revealed")
	}

	out.Reset()
	v.stage = presenter.StageAnswer
	r.Slide()
	if !strings.Contains(out.String(), "Spielberg") || !strings.Contains(out.String(), "no hint") {
		t.Fatalf("expected hint and answer:\n%s", out.String())
	}
}

func TestCreditsAndMeasure(t *testing.T) {
	v := newStub(44)
	r := New(&bytes.Buffer{}, v)
	r.SetRows(40)

	want := 20 + float64(len(v.deck[44].Content)+1)
	if got := r.Measure(); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	var out bytes.Buffer
	v.roll = want
	New(&out, v).Slide()
	if !strings.Contains(out.String(), v.deck[44].Title) {
		t.Fatalf("credits should end on the closing title:\n%s", out.String())
	}
}

func TestStatusLine(t *testing.T) {
	r := New(&bytes.Buffer{}, newStub(43))
	status := r.Status()
	for _, want := range []string{"44/45", "post-quiz", "0.96", "./bgm.mp3"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
}

func TestListShowsModes(t *testing.T) {
	var out bytes.Buffer
	List(&out, slide.DefaultDeck(), quiz.DefaultTopology())
	text := out.String()
	if strings.Count(text, "question]") != 25 || !strings.Contains(text, "board]") {
		t.Fatalf("unexpected listing:\n%s", text)
	}
	if !strings.HasPrefix(text, "   1. ") || !strings.Contains(text, "  45. Thank You") || strings.Contains(text, "   0. ") {
		t.Fatalf("listing should be numbered from 1 like the status line:\n%s", text)
	}
}

func TestFullscreenRefusedOffTerminal(t *testing.T) {
	var out bytes.Buffer
	fs := &Fullscreen{out: &out, isTerminal: func(uintptr) bool { return false }}
	if err := fs.Toggle(); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
	if out.Len() != 0 || fs.Active() {
		t.Fatal("refused toggle must not write anything")
	}
}

func TestFullscreenToggle(t *testing.T) {
	var out bytes.Buffer
	fs := &Fullscreen{out: &out, isTerminal: func(uintptr) bool { return true }}
	if err := fs.Toggle(); err != nil || !fs.Active() {
		t.Fatalf("expected fullscreen on, err=%v", err)
	}
	fs.Restore()
	if fs.Active() || !strings.HasSuffix(out.String(), leaveAltScreen) {
		t.Fatalf("restore should leave the alternate screen: %q", out.String())
	}
}
