package render

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	enterAltScreen = "\x1b[?1049h\x1b[H"
	leaveAltScreen = "\x1b[?1049l"
)

var ErrNotTerminal = errors.New("output is not a terminal")

// Fullscreen switches the terminal to its alternate screen
type Fullscreen struct {
	out io.Writer
	fd  uintptr
	on  bool

	// isTerminal is swapped in tests
	isTerminal func(fd uintptr) bool
}

func NewFullscreen(out *os.File) *Fullscreen {
	return &Fullscreen{
		out: out,
		fd:  out.Fd(),
		isTerminal: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func (f *Fullscreen) Active() bool {
	return f.on
}

// Toggle enters or leaves the alternate screen. It refuses when the output
// is not a terminal.
func (f *Fullscreen) Toggle() error {
	if !f.on && !f.isTerminal(f.fd) {
		return ErrNotTerminal
	}
	seq := enterAltScreen
	if f.on {
		seq = leaveAltScreen
	}
	if _, err := fmt.Fprint(f.out, seq); err != nil {
		return fmt.Errorf("failed to switch screen: %w", err)
	}
	f.on = !f.on
	return nil
}

// Restore leaves the alternate screen if it is active
func (f *Fullscreen) Restore() {
	if f.on {
		fmt.Fprint(f.out, leaveAltScreen)
		f.on = false
	}
}
