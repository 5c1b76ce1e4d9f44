// Package session owns the lifecycle of one presentation run: window
// creation order, shared collaborators, and teardown.
package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/davvil/pdfpc/internal/cache"
	"github.com/davvil/pdfpc/internal/display"
	"github.com/davvil/pdfpc/internal/locks"
	"github.com/davvil/pdfpc/internal/logging"
	"github.com/davvil/pdfpc/internal/metadata"
	"github.com/davvil/pdfpc/internal/options"
)

// State of the session lifecycle.
type State int

const (
	StateIdle State = iota
	StateLaunching
	StateActive
	StateClosing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunching:
		return "launching"
	case StateActive:
		return "active"
	case StateClosing:
		return "closing"
	case StateTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Action is one entry of the interactive-configuration catalog.
type Action struct {
	Name        string
	Description string
}

// Controller is the navigation collaborator shared by both windows.
type Controller interface {
	// Actions returns the static catalog of recognized interactive actions.
	Actions() []Action
	// NotifyClose registers a callback for the close-presentation signal and
	// returns its cancel function. The callback runs synchronously on the
	// control thread.
	NotifyClose(fn func()) (cancel func())
}

// Window is one of the two presentation surfaces.
type Window interface {
	Show()
	Update()
	Destroy()
	AttachCacheStatus(*cache.Tracker)
}

// Factories construct the session collaborators. The GUI front-end supplies
// real windows; tests and headless runs use stand-ins.
type Factories struct {
	NewController   func(doc *metadata.Document, opts options.Options) Controller
	NewPresenter    func(doc *metadata.Document, monitor int, ctl Controller) (Window, error)
	NewPresentation func(doc *metadata.Document, monitor int, ctl Controller) (Window, error)
}

// Hooks observe terminal lifecycle transitions.
type Hooks struct {
	// OnIdle runs when a closed session returns control to the chooser.
	OnIdle func()
	// OnTerminate runs instead of OnIdle when the session was started in
	// run-now mode and the process should exit.
	OnTerminate func()
}

// Session sequences one presentation run. All methods are called from the
// single control thread.
type Session struct {
	id        string
	logger    *slog.Logger
	factories Factories
	hooks     Hooks

	state        State
	runNow       bool
	ctl          Controller
	tracker      *cache.Tracker
	presenter    Window
	presentation Window
	cancelClose  func()
}

// New returns an idle session.
func New(factories Factories, hooks Hooks, logger *slog.Logger) *Session {
	return &Session{
		id:        uuid.NewString(),
		logger:    logging.NewComponentLogger(logger, "session"),
		factories: factories,
		hooks:     hooks,
		state:     StateIdle,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Tracker returns the shared cache-status tracker, nil while idle.
func (s *Session) Tracker() *cache.Tracker { return s.tracker }

// Launch moves the session from Idle through Launching to Active: shared
// collaborators first, then the windows the assignment asks for, observer
// attachment, and finally show plus initial render. Windows are never shown
// before the shared collaborators exist.
func (s *Session) Launch(doc *metadata.Document, opts options.Options, plan display.Assignment) error {
	if s.state != StateIdle {
		return fmt.Errorf("launch from %s state", s.state)
	}
	if !plan.CreatePresenter && !plan.CreatePresentation {
		return errors.New("assignment creates no windows")
	}
	if s.factories.NewController == nil {
		return errors.New("controller factory missing")
	}

	s.state = StateLaunching
	s.runNow = opts.RunNow
	s.logger.Info("launching presentation",
		logging.String(logging.FieldSessionID, s.id),
		logging.String(logging.FieldDocument, doc.Path),
		logging.Bool("run_now", opts.RunNow),
	)

	// The render-cache lock set must exist before the first window does and
	// is never re-created afterwards.
	locks.Init()

	s.ctl = s.factories.NewController(doc, opts)
	s.tracker = cache.NewTracker(opts.DisableCache, opts.DisableCompression)

	if plan.CreatePresenter {
		w, err := s.factories.NewPresenter(doc, plan.PresenterMonitor, s.ctl)
		if err != nil {
			s.abortLaunch()
			return fmt.Errorf("create presenter window: %w", err)
		}
		s.presenter = w
	}
	if plan.CreatePresentation {
		w, err := s.factories.NewPresentation(doc, plan.PresentationMonitor, s.ctl)
		if err != nil {
			s.abortLaunch()
			return fmt.Errorf("create presentation window: %w", err)
		}
		s.presentation = w
	}

	for _, w := range s.windows() {
		w.AttachCacheStatus(s.tracker)
	}
	s.cancelClose = s.ctl.NotifyClose(s.Close)
	for _, w := range s.windows() {
		w.Show()
		w.Update()
	}

	s.state = StateActive
	s.logger.Info("presentation active",
		logging.String(logging.FieldSessionID, s.id),
		logging.String(logging.FieldState, s.state.String()),
	)
	return nil
}

// Close tears the session down: both windows destroyed, collaborator
// references dropped, close subscription cancelled. The session ends Idle, or
// Terminated when it was started in run-now mode.
func (s *Session) Close() {
	if s.state != StateActive {
		return
	}
	s.state = StateClosing
	s.logger.Info("closing presentation",
		logging.String(logging.FieldSessionID, s.id),
	)

	for _, w := range s.windows() {
		w.Destroy()
	}
	s.presenter = nil
	s.presentation = nil

	if s.cancelClose != nil {
		s.cancelClose()
		s.cancelClose = nil
	}
	s.ctl = nil
	s.tracker = nil

	if s.runNow {
		s.state = StateTerminated
		if s.hooks.OnTerminate != nil {
			s.hooks.OnTerminate()
		}
		return
	}
	s.state = StateIdle
	if s.hooks.OnIdle != nil {
		s.hooks.OnIdle()
	}
}

func (s *Session) abortLaunch() {
	for _, w := range s.windows() {
		w.Destroy()
	}
	s.presenter = nil
	s.presentation = nil
	s.ctl = nil
	s.tracker = nil
	s.state = StateIdle
}

func (s *Session) windows() []Window {
	ws := make([]Window, 0, 2)
	if s.presenter != nil {
		ws = append(ws, s.presenter)
	}
	if s.presentation != nil {
		ws = append(ws, s.presentation)
	}
	return ws
}
