package presenter

import (
	"strings"
	"time"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyRight
	KeyLeft
	KeySpace
	KeyPageDown
	KeyPageUp
	KeyFullscreen
	KeyBoard
	KeyReveal
)

// ParseKey maps a key name as typed at the prompt to a Key
func ParseKey(name string) Key {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "right", "arrowright", "→", "n", "next":
		return KeyRight
	case "left", "arrowleft", "←", "p", "prev":
		return KeyLeft
	case "space":
		return KeySpace
	case "pagedown", "pgdn":
		return KeyPageDown
	case "pageup", "pgup":
		return KeyPageUp
	case "f":
		return KeyFullscreen
	case "b":
		return KeyBoard
	case "r":
		return KeyReveal
	}
	return KeyUnknown
}

// Region is where a click landed
type Region int

const (
	RegionCanvas Region = iota
	RegionControls
	RegionButton
	RegionInput
	RegionUpload
)

// Interactive regions handle their own clicks
func (r Region) Interactive() bool {
	return r != RegionCanvas
}

// Intents are what input turns into
type Intents interface {
	Advance()
	Retreat()
	JumpToBoard()
	StopAudio()
	ToggleFullscreen()
	Reveal()
}

// DefaultDoubleClick is the single/double click window
const DefaultDoubleClick = 250 * time.Millisecond

// Dispatcher turns clicks and keys into intents. A lone canvas click
// advances once the double-click window expires; a second click inside
// the window stops the music instead.
type Dispatcher struct {
	intents  Intents
	gestures *Gestures
	sched    Scheduler
	delay    time.Duration

	editing bool
	timer   Timer
	token   int
}

func NewDispatcher(intents Intents, gestures *Gestures, sched Scheduler, delay time.Duration) *Dispatcher {
	if delay <= 0 {
		delay = DefaultDoubleClick
	}
	return &Dispatcher{intents: intents, gestures: gestures, sched: sched, delay: delay}
}

// SetEditing marks a text field as focused; keys and canvas clicks are
// ignored while it is
func (d *Dispatcher) SetEditing(editing bool) {
	d.editing = editing
	if editing {
		d.Cancel()
	}
}

func (d *Dispatcher) Editing() bool {
	return d.editing
}

// Pending reports whether a click is waiting for its window to expire
func (d *Dispatcher) Pending() bool {
	return d.timer != nil
}

// Click handles a pointer click. It returns false when the click was left
// to the region's own handler.
func (d *Dispatcher) Click(region Region) bool {
	defer d.gestures.Publish()

	if region.Interactive() || d.editing {
		return false
	}

	if d.timer != nil {
		d.Cancel()
		d.intents.StopAudio()
		return true
	}

	d.token++
	token := d.token
	d.timer = d.sched.AfterFunc(d.delay, func() {
		if token != d.token || d.timer == nil {
			return
		}
		d.timer = nil
		d.intents.Advance()
	})
	return true
}

// Key handles a key press. It returns false when the key did nothing.
func (d *Dispatcher) Key(k Key) bool {
	defer d.gestures.Publish()

	if d.editing {
		return false
	}

	switch k {
	case KeyRight, KeySpace, KeyPageDown:
		d.intents.Advance()
	case KeyLeft, KeyPageUp:
		d.intents.Retreat()
	case KeyFullscreen:
		d.intents.ToggleFullscreen()
	case KeyBoard:
		d.intents.JumpToBoard()
	case KeyReveal:
		d.intents.Reveal()
	default:
		return false
	}
	return true
}

// Cancel drops a pending click. Safe to call at any time.
func (d *Dispatcher) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.token++
}

func (d *Dispatcher) Close() {
	d.Cancel()
}
