// Package controller provides the reference presentation controller used by
// the headless launcher path and by tests. The GUI front-end ships its own
// controller wired to key bindings; both expose the same catalog.
package controller

import (
	"github.com/davvil/pdfpc/internal/metadata"
	"github.com/davvil/pdfpc/internal/options"
	"github.com/davvil/pdfpc/internal/session"
)

// catalog is the static table of interactive-configuration actions the
// presenter window understands.
var catalog = []session.Action{
	{Name: "next", Description: "Advance to the next slide"},
	{Name: "prev", Description: "Go back to the previous slide"},
	{Name: "first", Description: "Jump to the first slide"},
	{Name: "last", Description: "Jump to the last slide"},
	{Name: "goto", Description: "Ask for a slide number and jump to it"},
	{Name: "overview", Description: "Toggle the slide overview grid"},
	{Name: "notes", Description: "Edit the notes for the current slide"},
	{Name: "blank", Description: "Blank the presentation screen"},
	{Name: "freeze", Description: "Freeze the presentation screen at the current slide"},
	{Name: "switch", Description: "Swap the presenter and presentation screens"},
	{Name: "timer_pause", Description: "Pause or resume the talk timer"},
	{Name: "timer_reset", Description: "Reset the talk timer"},
	{Name: "quit", Description: "Close the presentation and return to the chooser"},
}

// Actions returns a copy of the static catalog without needing a controller
// instance; --list-actions uses it before anything is launched.
func Actions() []session.Action {
	out := make([]session.Action, len(catalog))
	copy(out, catalog)
	return out
}

// Controller implements session.Controller for headless runs. Close
// subscribers are invoked synchronously on the control thread.
type Controller struct {
	doc  *metadata.Document
	opts options.Options

	nextID      int
	subscribers map[int]func()
}

// New builds a controller for one presentation run.
func New(doc *metadata.Document, opts options.Options) *Controller {
	return &Controller{
		doc:         doc,
		opts:        opts,
		subscribers: make(map[int]func()),
	}
}

// Actions implements session.Controller.
func (c *Controller) Actions() []session.Action {
	return Actions()
}

// NotifyClose implements session.Controller. The returned cancel function is
// idempotent.
func (c *Controller) NotifyClose(fn func()) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	return func() {
		delete(c.subscribers, id)
	}
}

// RequestClose emits the close-presentation signal.
func (c *Controller) RequestClose() {
	// Subscribers may cancel during delivery; snapshot first.
	fns := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}
