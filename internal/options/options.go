// Package options resolves the effective launcher configuration for one
// presentation run.
//
// Values arrive from five layers, lowest precedence first: compiled defaults,
// the config.toml [defaults] section, the persisted pdfpcrc subset,
// command-line flags, the sidecar duration hint, and finally interactive
// changes made in the chooser. Each layer overrides only the fields it
// actually carries.
package options

import (
	"fmt"
	"strconv"
	"strings"
)

// DurationUnset is the reserved sentinel marking "no fixed duration"; the
// countdown is then driven by EndTime when one is set. The sentinel is an
// ordinary non-negative integer, so a user who passes this exact literal as
// --duration is indistinguishable from one who never set a duration and the
// launcher treats the value as unset. Historical behavior, kept on purpose.
const DurationUnset = 987654321

// Compiled-in defaults.
const (
	DefaultLastMinutes     = 5
	DefaultCurrentSize     = 60
	DefaultOverviewMinSize = 150
)

// Options is the fully resolved configuration for one launch. Resolve
// produces it once per resolution pass; nothing mutates it afterwards.
type Options struct {
	// Duration is the talk length in minutes, DurationUnset when no fixed
	// duration timer is wanted.
	Duration int
	// EndTime is the wall-clock end of the talk as "HH:MM", empty when
	// absent. Mutually exclusive with Duration being set.
	EndTime string
	// LastMinutes is how many minutes before the end the timer turns into an
	// alert.
	LastMinutes int
	// StartTime is the wall-clock start of the talk as "HH:MM", empty when
	// absent.
	StartTime string
	// CurrentSize is the percentage of the presenter screen given to the
	// current slide, clamped to [0,100].
	CurrentSize int
	// OverviewMinSize is the minimum width in pixels of an overview tile.
	OverviewMinSize int

	DisplaySwitch   bool
	DisplayUnswitch bool

	DisableCache       bool
	DisableCompression bool

	BlackOnEnd   bool
	SingleScreen bool
	Windowed     bool
	ListActions  bool
	RunNow       bool
}

// Defaults returns the compiled-in option values.
func Defaults() Options {
	return Options{
		Duration:        DurationUnset,
		LastMinutes:     DefaultLastMinutes,
		CurrentSize:     DefaultCurrentSize,
		OverviewMinSize: DefaultOverviewMinSize,
	}
}

// DurationSet reports whether a fixed duration timer is wanted.
func (o Options) DurationSet() bool {
	return o.Duration != DurationUnset
}

// setDuration installs a fixed duration and drops any end time, preserving
// the mutual exclusion between the two timer modes.
func (o *Options) setDuration(minutes int) {
	o.Duration = minutes
	o.EndTime = ""
}

// setEndTime installs a wall-clock end time and masks the duration with the
// sentinel.
func (o *Options) setEndTime(clock string) {
	o.EndTime = clock
	o.Duration = DurationUnset
}

// ParseClock validates a 24-hour "HH:MM" value and returns it in a normalized
// two-digit form.
func ParseClock(value string) (string, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid time %q: hour must be 0-23", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid time %q: minute must be 0-59", value)
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
