package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/davvil/pdfpc/internal/config"
	"github.com/davvil/pdfpc/internal/controller"
	"github.com/davvil/pdfpc/internal/display"
	"github.com/davvil/pdfpc/internal/logging"
	"github.com/davvil/pdfpc/internal/metadata"
	"github.com/davvil/pdfpc/internal/options"
	"github.com/davvil/pdfpc/internal/preflight"
	"github.com/davvil/pdfpc/internal/rcfile"
	"github.com/davvil/pdfpc/internal/session"
	"github.com/davvil/pdfpc/internal/sidecar"
)

func runLaunch(cmd *cobra.Command, configPath string, values *flagValues, document string) error {
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = logging.NewComponentLogger(logger, "launcher")

	rcPath := cfg.Paths.RCFile
	if rcPath == "" {
		rcPath, err = rcfile.DefaultPath()
		if err != nil {
			return err
		}
	}

	// The persisted subset is read before any flag is applied; every failure
	// mode degrades to defaults.
	persisted, err := rcfile.Load(rcPath)
	if err != nil {
		var parseErr *rcfile.ParseError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// First run.
		case errors.As(err, &parseErr):
			logger.Warn("rc file partially read",
				logging.String("path", rcPath),
				logging.Int("line", parseErr.Line),
			)
		default:
			logger.Warn("rc file unreadable; using defaults", logging.Error(err))
		}
	}

	var sidecarDuration *int
	if document != "" {
		if minutes, ok := sidecar.DurationHint(document, cfg.Paths.SidecarExtension); ok {
			sidecarDuration = &minutes
			logger.Info("using duration from companion file", logging.Int("minutes", minutes))
		}
	}

	opts, err := options.Resolve(options.Inputs{
		Config:          cfg,
		Persisted:       persisted,
		Flags:           collectFlags(cmd, values),
		SidecarDuration: sidecarDuration,
	})
	if err != nil {
		return &usageError{err: err, usage: cmd.UsageString()}
	}

	if opts.ListActions {
		fmt.Fprintln(cmd.OutOrStdout(), renderActionTable(controller.Actions()))
		return nil
	}

	if document == "" {
		if opts.RunNow {
			return &usageError{
				err:   errors.New("a document path is required with --run-now"),
				usage: cmd.UsageString(),
			}
		}
		// Without a document the chooser front-end takes over; the plain
		// binary has nothing to open.
		return cmd.Help()
	}

	if err := preflight.CheckDocument(document); err != nil {
		return err
	}

	doc, err := metadata.Load(document, cfg.Paths.SidecarExtension, opts.Duration)
	if err != nil {
		return err
	}

	watcher := display.NewWatcher(display.SysfsProber{}, logger, nil)
	if err := watcher.Start(cmd.Context()); err != nil {
		logger.Warn("display enumeration failed; assuming a single screen", logging.Error(err))
	}
	defer watcher.Stop()
	snapshot := watcher.Current()

	plan := display.Assign(display.Inputs{
		DisplaySwitch: opts.DisplaySwitch,
		SingleScreen:  opts.SingleScreen,
		Windowed:      opts.Windowed,
		DisplayCount:  snapshot.Count(),
		PrimaryIndex:  snapshot.Primary,
	})

	// The launch is confirmed at this point; persist the durable subset.
	// A failed write never blocks the presentation.
	if err := rcfile.Save(rcPath, opts.PersistedSubset()); err != nil {
		logger.Warn("could not persist settings", logging.Error(err))
	}

	front := newHeadlessFrontend(logger)
	sess := session.New(front.factories(), session.Hooks{
		OnIdle: func() {
			logger.Info("presentation closed; control returns to the chooser")
		},
		OnTerminate: func() {
			logger.Info("run-now session finished")
		},
	}, logger)

	if err := sess.Launch(doc, opts, plan); err != nil {
		return err
	}

	// The plain binary carries no GUI event loop to pump; close the
	// presentation right away so the lifecycle completes cleanly.
	front.ctl.RequestClose()
	return nil
}
