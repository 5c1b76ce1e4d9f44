package display

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"github.com/davvil/pdfpc/internal/logging"
)

// Prober enumerates the attached physical outputs. The GUI front-end supplies
// the real implementation; tests and headless runs use StaticProber.
type Prober interface {
	Probe() (Snapshot, error)
}

// StaticProber always returns a fixed snapshot.
type StaticProber struct {
	Snapshot Snapshot
}

func (p StaticProber) Probe() (Snapshot, error) { return p.Snapshot, nil }

// Watcher keeps a current display snapshot while the chooser is open,
// re-probing when the kernel reports a DRM hotplug event. Losing udev access
// is non-fatal: the snapshot simply stays at its last probed state.
type Watcher struct {
	prober  Prober
	logger  *slog.Logger
	onevent func(Snapshot)

	mu       sync.Mutex
	conn     *netlink.UEventConn
	quit     chan struct{}
	running  bool
	snapshot Snapshot
}

// NewWatcher creates a hotplug watcher. onevent, when non-nil, is invoked
// with the fresh snapshot after every re-probe.
func NewWatcher(prober Prober, logger *slog.Logger, onevent func(Snapshot)) *Watcher {
	return &Watcher{
		prober:  prober,
		logger:  logging.NewComponentLogger(logger, "display-watcher"),
		onevent: onevent,
	}
}

// Start probes once and begins listening for hotplug events. A netlink
// connect failure degrades to the initial probe only.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	snapshot, err := w.prober.Probe()
	if err != nil {
		return err
	}
	w.snapshot = snapshot

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		w.logger.Warn("udev socket unavailable; display changes will not be noticed until relaunch",
			logging.Error(err),
		)
		return nil
	}

	w.conn = conn
	w.quit = make(chan struct{})
	w.running = true

	quit := w.quit
	go w.watchLoop(ctx, quit)

	w.logger.Info("display watcher started", logging.Int("monitors", snapshot.Count()))
	return nil
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.quit != nil {
		close(w.quit)
		w.quit = nil
	}
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.running = false
	w.logger.Info("display watcher stopped")
}

// Current returns the latest snapshot.
func (w *Watcher) Current() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

func (w *Watcher) watchLoop(ctx context.Context, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)

	w.mu.Lock()
	conn := w.conn
	w.mu.Unlock()
	if conn == nil {
		return
	}

	monitorQuit := conn.Monitor(queue, errs, drmMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case <-queue:
			w.refresh()
		case err := <-errs:
			w.logger.Warn("display watcher error", logging.Error(err))
		}
	}
}

// drmMatcher selects DRM subsystem change events, which the kernel emits when
// an output is connected or disconnected.
func drmMatcher() netlink.Matcher {
	action := "change"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "drm",
		},
	})
	return rules
}

func (w *Watcher) refresh() {
	snapshot, err := w.prober.Probe()
	if err != nil {
		w.logger.Warn("display probe failed; keeping previous snapshot", logging.Error(err))
		return
	}

	w.mu.Lock()
	w.snapshot = snapshot
	onevent := w.onevent
	w.mu.Unlock()

	w.logger.Info("display inventory changed", logging.Int("monitors", snapshot.Count()))
	if onevent != nil {
		onevent(snapshot)
	}
}
