// Package input turns per-frame polled device state into editor events.
// Window hosts poll their toolkit once per frame, fill a Frame and hand it
// to a Dispatcher.
package input

import "github.com/ha1tch/spritedit/internal/editor"

// WheelNotch is the wheel deltaY reported for one detent, matching what
// browsers report in pixel mode.
const WheelNotch = 100

// Target receives editor events. *editor.Editor satisfies it.
type Target interface {
	PointerDown(p editor.Point, b editor.Button)
	PointerMove(p editor.Point)
	PointerUp(p editor.Point, b editor.Button)
	PointerLeave()
	Wheel(deltaY float64)
	KeyDown(k editor.KeyEvent) bool
	Resize(width, height int)
}

// Frame is one poll of the input devices.
type Frame struct {
	Pos    editor.Point
	Inside bool

	Pressed  []editor.Button
	Released []editor.Button

	// WheelY follows the browser convention: negative when scrolling up.
	WheelY float64
	Keys   []editor.KeyEvent

	Resized       bool
	Width, Height int
}

// Dispatcher remembers pointer state between frames so that moves and
// leaves are reported as transitions.
type Dispatcher struct {
	target Target
	last   editor.Point
	inside bool
	seen   bool
}

func NewDispatcher(t Target) *Dispatcher {
	return &Dispatcher{target: t}
}

// Dispatch forwards f to the target and returns the number of keys it consumed.
func (d *Dispatcher) Dispatch(f Frame) int {
	if f.Resized {
		d.target.Resize(f.Width, f.Height)
	}

	switch {
	case !f.Inside:
		if d.inside {
			d.target.PointerLeave()
		}
	default:
		if !d.seen || !d.inside || f.Pos != d.last {
			d.target.PointerMove(f.Pos)
		}
		for _, b := range f.Pressed {
			d.target.PointerDown(f.Pos, b)
		}
		for _, b := range f.Released {
			d.target.PointerUp(f.Pos, b)
		}
		if f.WheelY != 0 {
			d.target.Wheel(f.WheelY)
		}
	}
	d.inside = f.Inside
	d.last = f.Pos
	d.seen = true

	consumed := 0
	for _, k := range f.Keys {
		if d.target.KeyDown(k) {
			consumed++
		}
	}
	return consumed
}

// Chord folds several physical buttons into one logical button that stays
// down while any of them is held.
type Chord struct {
	held int
}

// Update takes this frame's physical press and release counts and reports
// whether the logical button went down or came up.
func (c *Chord) Update(pressed, released int) (down, up bool) {
	was := c.held > 0
	c.held += pressed - released
	if c.held < 0 {
		c.held = 0
	}
	is := c.held > 0
	return !was && is, was && !is
}
