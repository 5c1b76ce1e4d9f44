// Package cache tracks render-cache progress for the windows of one session.
//
// Rendering and cache storage themselves live in the GUI front-end; this
// tracker is the shared observer both windows attach to so either can show
// pre-render progress. It exists before any window does, so a freshly created
// window never observes a missing cache state.
package cache

import "sync"

// Status is a point-in-time view of cache progress.
type Status struct {
	Rendered int
	Total    int
}

// Complete reports whether every page has been rendered.
func (s Status) Complete() bool {
	return s.Total > 0 && s.Rendered >= s.Total
}

// Observer receives status updates. Notifications are synchronous on the
// control thread.
type Observer interface {
	CacheStatusChanged(Status)
}

// Tracker is the shared cache-status collaborator of a launch session.
type Tracker struct {
	enabled     bool
	compression bool

	mu        sync.Mutex
	status    Status
	observers []Observer
}

// NewTracker builds a tracker honoring the resolved caching options.
func NewTracker(disableCache, disableCompression bool) *Tracker {
	return &Tracker{
		enabled:     !disableCache,
		compression: !disableCache && !disableCompression,
	}
}

// Enabled reports whether page caching is active for this session.
func (t *Tracker) Enabled() bool { return t.enabled }

// CompressionEnabled reports whether cached pages are stored compressed.
func (t *Tracker) CompressionEnabled() bool { return t.compression }

// Attach registers an observer and immediately delivers the current status.
func (t *Tracker) Attach(obs Observer) {
	if obs == nil {
		return
	}
	t.mu.Lock()
	t.observers = append(t.observers, obs)
	status := t.status
	t.mu.Unlock()
	obs.CacheStatusChanged(status)
}

// Detach removes an observer. Safe to call for observers never attached.
func (t *Tracker) Detach(obs Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, existing := range t.observers {
		if existing == obs {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// SetTotal records the page count and resets progress.
func (t *Tracker) SetTotal(total int) {
	t.update(func(s *Status) {
		s.Total = total
		s.Rendered = 0
	})
}

// PageRendered advances progress by one page.
func (t *Tracker) PageRendered() {
	t.update(func(s *Status) {
		if s.Rendered < s.Total {
			s.Rendered++
		}
	})
}

// Status returns the current progress.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

func (t *Tracker) update(fn func(*Status)) {
	t.mu.Lock()
	fn(&t.status)
	status := t.status
	observers := make([]Observer, len(t.observers))
	copy(observers, t.observers)
	t.mu.Unlock()

	for _, obs := range observers {
		obs.CacheStatusChanged(status)
	}
}
