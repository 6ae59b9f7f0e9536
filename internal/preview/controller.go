// Package preview drives the full-page preview of a single variation: which
// variation is shown, in which mode, and how the preview is dismissed.
package preview

import (
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
	"github.com/alexisbeaulieu97/swatchbook/internal/resolve"
	"github.com/alexisbeaulieu97/swatchbook/internal/variation"
)

// State reports whether the preview is showing.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// CloseReason records how the preview was dismissed.
type CloseReason int

const (
	CloseButton CloseReason = iota + 1
	CloseOverlay
	CloseEscape
)

func (r CloseReason) String() string {
	switch r {
	case CloseButton:
		return "button"
	case CloseOverlay:
		return "overlay"
	case CloseEscape:
		return "escape"
	default:
		return "none"
	}
}

// Controller is the preview state machine. It is not safe for concurrent use;
// callers drive it from a single UI loop.
type Controller struct {
	variations []variation.Variation
	keyboard   ports.Keyboard

	state       State
	index       int
	mode        resolve.Mode
	lastReason  CloseReason
	unsubscribe func()
}

// New creates a closed controller over the given variations. keyboard may be
// nil, in which case Escape handling is left to the caller.
func New(variations []variation.Variation, keyboard ports.Keyboard) *Controller {
	return &Controller{variations: variations, keyboard: keyboard}
}

// Open shows the variation at start in light mode. Out-of-range starts wrap
// around. Opening an empty list does nothing and returns false.
func (c *Controller) Open(start int) bool {
	n := len(c.variations)
	if n == 0 {
		return false
	}
	c.index = wrap(start, n)
	c.mode = resolve.Light
	c.lastReason = 0
	if c.state != Open {
		c.state = Open
		c.subscribe()
	}
	return true
}

// Next advances to the following variation, wrapping after the last.
func (c *Controller) Next() {
	c.step(1)
}

// Previous moves to the preceding variation, wrapping before the first.
func (c *Controller) Previous() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	if c.state != Open || len(c.variations) == 0 {
		return
	}
	c.index = wrap(c.index+delta, len(c.variations))
}

// ToggleMode flips between light and dark while open.
func (c *Controller) ToggleMode() {
	if c.state != Open {
		return
	}
	c.mode = c.mode.Toggle()
}

// Close dismisses the preview. Closing an already closed preview is a no-op.
func (c *Controller) Close(reason CloseReason) {
	if c.state != Open {
		return
	}
	c.state = Closed
	c.lastReason = reason
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Index returns the position of the shown variation.
func (c *Controller) Index() int { return c.index }

// Mode returns the active colour mode.
func (c *Controller) Mode() resolve.Mode { return c.mode }

// LastCloseReason returns how the preview was last closed, or 0 while open.
func (c *Controller) LastCloseReason() CloseReason { return c.lastReason }

// Current returns the shown variation.
func (c *Controller) Current() (variation.Variation, bool) {
	if c.state != Open || len(c.variations) == 0 {
		return variation.Variation{}, false
	}
	return c.variations[c.index], true
}

func (c *Controller) subscribe() {
	if c.keyboard == nil {
		return
	}
	c.unsubscribe = c.keyboard.Subscribe(c.handleKey)
}

func (c *Controller) handleKey(key string) {
	if key == ports.KeyEscape {
		c.Close(CloseEscape)
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
