package show

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"galadeck/internal/cli/scheme/colours"
	"galadeck/internal/domain/slide"
	"galadeck/internal/presenter"
)

// console turns prompt lines into session requests. It runs on the loop.
type console struct {
	session *presenter.Session
	out     io.Writer
}

const consoleHelp = `  Enter            click (next slide; click twice quickly for stop)
  n / p            next / previous (also right, left, space, pgdn, pgup)
  b                back to the quiz board
  r                reveal hint, then answer
  f                toggle fullscreen
  stop             stop the music
  jump N           go to slide N, numbered as in the status line
  pick CAT VALUE   open a board question, e.g. "pick music 300"
  edit title|subtitle|image TEXT
  edit line N TEXT edit one content line of the current slide
  audio PATH       switch the closing track
  resize W H       resize the viewport
  q                quit`

// handle runs one prompt line and reports whether the show should end
func (c *console) handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		c.session.Click(presenter.RegionCanvas)
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return true
	case "h", "help", "?":
		fmt.Fprintln(c.out, consoleHelp)
	case "stop", "dblclick":
		c.session.Click(presenter.RegionCanvas)
		c.session.Click(presenter.RegionCanvas)
	case "jump", "goto":
		c.jump(fields[1:])
	case "pick":
		c.pick(fields[1:])
	case "edit":
		c.edit(line, fields[1:])
	case "audio":
		if len(fields) < 2 {
			colours.Info.Fprintf(c.out, "  ♪ %s\n", c.session.AudioSource())
			return false
		}
		c.session.RequestSetAudioSource(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0])))
		colours.Success.Fprintf(c.out, "  ♪ now %s\n", c.session.AudioSource())
	case "resize":
		c.resize(fields[1:])
	default:
		key := presenter.ParseKey(fields[0])
		if key == presenter.KeyUnknown {
			colours.Warning.Fprintf(c.out, "  Unknown command %q, type 'help'\n", fields[0])
			return false
		}
		c.session.Key(key)
	}
	return false
}

func (c *console) jump(args []string) {
	if len(args) != 1 {
		colours.Warning.Fprintln(c.out, "  Usage: jump N")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || !c.session.RequestJump(n-1) {
		colours.Error.Fprintf(c.out, "  ❌ No slide %q\n", args[0])
	}
}

func (c *console) pick(args []string) {
	if len(args) != 2 {
		colours.Warning.Fprintln(c.out, "  Usage: pick CATEGORY VALUE")
		return
	}
	category, ok := c.category(args[0])
	points, err := strconv.Atoi(strings.TrimSuffix(args[1], "$"))
	if !ok || err != nil || !c.session.RequestPick(category, points) {
		colours.Error.Fprintf(c.out, "  ❌ No question %s for %s\n", args[0], args[1])
	}
}

// category resolves a board column by name or 1-based position
func (c *console) category(arg string) (int, bool) {
	topo := c.session.Topology()
	if n, err := strconv.Atoi(arg); err == nil {
		return n - 1, n >= 1 && n <= topo.Categories
	}
	board := c.session.Deck()[topo.Board]
	for i := 0; i < topo.Categories; i++ {
		if strings.EqualFold(board.Line(i), arg) {
			return i, true
		}
	}
	return 0, false
}

func (c *console) edit(line string, args []string) {
	if len(args) < 2 {
		colours.Warning.Fprintln(c.out, "  Usage: edit title|subtitle|image|line N TEXT")
		return
	}

	c.session.SetEditing(true)
	defer c.session.SetEditing(false)

	rest := func(skip int) string {
		text := strings.TrimSpace(line)
		for i := 0; i < skip; i++ {
			text = strings.TrimSpace(strings.TrimPrefix(text, strings.Fields(text)[0]))
		}
		return text
	}

	var patch slide.Patch
	switch strings.ToLower(args[0]) {
	case "title":
		v := rest(2)
		patch.Title = &v
	case "subtitle":
		v := rest(2)
		patch.Subtitle = &v
	case "image":
		v := rest(2)
		patch.Image = &v
	case "line":
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 || len(args) < 3 {
			colours.Warning.Fprintln(c.out, "  Usage: edit line N TEXT")
			return
		}
		patch.Lines = map[int]string{n - 1: rest(3)}
	default:
		colours.Warning.Fprintf(c.out, "  Cannot edit %q\n", args[0])
		return
	}

	c.session.RequestEditSlide(c.session.CurrentSlide().ID, patch)
}

func (c *console) resize(args []string) {
	if len(args) != 2 {
		colours.Warning.Fprintln(c.out, "  Usage: resize W H")
		return
	}
	w, errW := strconv.ParseFloat(args[0], 64)
	h, errH := strconv.ParseFloat(args[1], 64)
	if errW != nil || errH != nil {
		colours.Error.Fprintln(c.out, "  ❌ Width and height must be numbers")
		return
	}
	c.session.Resize(w, h)
}
