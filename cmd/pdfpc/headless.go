package main

import (
	"log/slog"

	"github.com/davvil/pdfpc/internal/cache"
	"github.com/davvil/pdfpc/internal/controller"
	"github.com/davvil/pdfpc/internal/display"
	"github.com/davvil/pdfpc/internal/logging"
	"github.com/davvil/pdfpc/internal/metadata"
	"github.com/davvil/pdfpc/internal/options"
	"github.com/davvil/pdfpc/internal/session"
)

// headlessFrontend stands in for the GUI front-end: its windows only log
// their placement. It lets the plain binary drive the full launch lifecycle
// and gives the GUI package a template for the factory wiring.
type headlessFrontend struct {
	logger *slog.Logger
	ctl    *controller.Controller
}

func newHeadlessFrontend(logger *slog.Logger) *headlessFrontend {
	return &headlessFrontend{logger: logger}
}

func (h *headlessFrontend) factories() session.Factories {
	return session.Factories{
		NewController: func(doc *metadata.Document, opts options.Options) session.Controller {
			h.ctl = controller.New(doc, opts)
			return h.ctl
		},
		NewPresenter: func(doc *metadata.Document, monitor int, _ session.Controller) (session.Window, error) {
			return h.newWindow("presenter", doc, monitor), nil
		},
		NewPresentation: func(doc *metadata.Document, monitor int, _ session.Controller) (session.Window, error) {
			return h.newWindow("presentation", doc, monitor), nil
		},
	}
}

func (h *headlessFrontend) newWindow(role string, doc *metadata.Document, monitor int) session.Window {
	return &headlessWindow{
		logger:  logging.NewComponentLogger(h.logger, role+"-window"),
		title:   doc.Title,
		monitor: monitor,
	}
}

type headlessWindow struct {
	logger  *slog.Logger
	title   string
	monitor int
}

func (w *headlessWindow) Show() {
	placement := "unconstrained"
	if w.monitor != display.Unconstrained {
		placement = "pinned"
	}
	w.logger.Info("window shown",
		logging.String("title", w.title),
		logging.Int(logging.FieldMonitor, w.monitor),
		logging.String("placement", placement),
	)
}

func (w *headlessWindow) Update() {
	w.logger.Debug("first slide rendered")
}

func (w *headlessWindow) Destroy() {
	w.logger.Debug("window destroyed")
}

func (w *headlessWindow) AttachCacheStatus(t *cache.Tracker) {
	w.logger.Debug("cache tracker attached", logging.Bool("caching", t.Enabled()))
}
