// Package logging builds slog loggers for the launcher.
//
// Console output is a human-oriented pretty format used when the launcher
// runs from a terminal; the json format is meant for the chooser's log pane
// and for debugging session transitions. All launcher components receive a
// *slog.Logger and tag their records with a component attribute via
// NewComponentLogger.
package logging
