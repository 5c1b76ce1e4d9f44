// Package locks holds the process-wide named mutex set guarding the shared
// render cache. The registry is initialized once before any window exists and
// is never re-initialized for the lifetime of the process; both window
// contexts obtain locks by name.
package locks

import (
	"fmt"
	"sync"
)

// Names of the locks the render cache relies on.
const (
	RenderLock   = "render"
	CompressLock = "compress"
)

var (
	initOnce sync.Once
	registry map[string]*sync.Mutex
)

// Init creates the named lock set. Only the first call has any effect;
// subsequent calls are ignored so the set can never be re-created while
// windows hold references into it.
func Init(names ...string) {
	initOnce.Do(func() {
		if len(names) == 0 {
			names = []string{RenderLock, CompressLock}
		}
		registry = make(map[string]*sync.Mutex, len(names))
		for _, name := range names {
			registry[name] = &sync.Mutex{}
		}
	})
}

// Get returns the named mutex. It is an error to request a lock before Init
// or one that was not part of the initial set.
func Get(name string) (*sync.Mutex, error) {
	if registry == nil {
		return nil, fmt.Errorf("lock registry not initialized")
	}
	mu, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown lock %q", name)
	}
	return mu, nil
}

// Initialized reports whether Init has run.
func Initialized() bool {
	return registry != nil
}
