package options

import (
	"fmt"

	"github.com/davvil/pdfpc/internal/config"
	"github.com/davvil/pdfpc/internal/rcfile"
)

// Flags carries the command-line values for one invocation. A nil field means
// the flag was not given.
type Flags struct {
	Duration           *int
	EndTime            *string
	LastMinutes        *int
	StartTime          *string
	CurrentSize        *int
	OverviewMinSize    *int
	SwitchScreens      *bool
	NoSwitchScreens    *bool
	DisableCache       *bool
	DisableCompression *bool
	BlackOnEnd         *bool
	SingleScreen       *bool
	ListActions        *bool
	Windowed           *bool
	RunNow             *bool
}

// Overrides are interactive changes made in the chooser right before launch.
// They sit above every other layer.
type Overrides struct {
	Duration      *int
	EndTime       *string
	LastMinutes   *int
	CurrentSize   *int
	SwitchScreens *bool
	SingleScreen  *bool
	Windowed      *bool
}

// Inputs bundles the layered sources for one resolution pass.
type Inputs struct {
	// Config is the optional config.toml layer; nil skips it.
	Config *config.Config
	// Persisted is whatever the pdfpcrc file yielded, possibly partial.
	Persisted rcfile.Values
	// Flags are the parsed command-line values.
	Flags Flags
	// SidecarDuration is the duration hint from the document's companion
	// file; nil when no hint was found.
	SidecarDuration *int
	// Overrides are interactive chooser changes; nil when launching straight
	// from the command line.
	Overrides *Overrides
}

// Resolve merges all layers into one Options value. Invalid command-line
// input returns an error; the caller reports it as fatal. Lower layers have
// already been validated (or degraded) by their owning packages and cannot
// fail resolution.
func Resolve(in Inputs) (Options, error) {
	o := Defaults()

	applyConfig(&o, in.Config)
	applyPersisted(&o, in.Persisted)
	if err := applyFlags(&o, in.Flags); err != nil {
		return Options{}, err
	}
	applySidecar(&o, in)
	if err := applyOverrides(&o, in.Overrides); err != nil {
		return Options{}, err
	}

	// The unswitch flag is an explicit override, not a toggle: once present
	// it pins DisplaySwitch to false regardless of what any layer said.
	if o.DisplayUnswitch {
		o.DisplaySwitch = false
	}
	o.CurrentSize = clampPercent(o.CurrentSize)

	return o, nil
}

func applyConfig(o *Options, cfg *config.Config) {
	if cfg == nil {
		return
	}
	if v := cfg.Defaults.LastMinutes; v != nil {
		o.LastMinutes = *v
	}
	if v := cfg.Defaults.CurrentSize; v != nil {
		o.CurrentSize = *v
	}
	if v := cfg.Defaults.OverviewMinSize; v != nil {
		o.OverviewMinSize = *v
	}
	if v := cfg.Defaults.BlackOnEnd; v != nil {
		o.BlackOnEnd = *v
	}
}

func applyPersisted(o *Options, values rcfile.Values) {
	if values.SwitchScreens != nil {
		o.DisplaySwitch = *values.SwitchScreens
	}
	if values.LastMinutes != nil {
		o.LastMinutes = *values.LastMinutes
	}
	if values.CurrentSize != nil {
		o.CurrentSize = *values.CurrentSize
	}
}

func applyFlags(o *Options, flags Flags) error {
	if flags.Duration != nil {
		if *flags.Duration < 0 {
			return fmt.Errorf("--duration must be non-negative, got %d", *flags.Duration)
		}
		o.setDuration(*flags.Duration)
	}
	if flags.EndTime != nil {
		clock, err := ParseClock(*flags.EndTime)
		if err != nil {
			return fmt.Errorf("--end-time: %w", err)
		}
		o.setEndTime(clock)
	}
	if flags.LastMinutes != nil {
		if *flags.LastMinutes < 0 {
			return fmt.Errorf("--last-minutes must be non-negative, got %d", *flags.LastMinutes)
		}
		o.LastMinutes = *flags.LastMinutes
	}
	if flags.StartTime != nil {
		clock, err := ParseClock(*flags.StartTime)
		if err != nil {
			return fmt.Errorf("--start-time: %w", err)
		}
		o.StartTime = clock
	}
	if flags.CurrentSize != nil {
		if *flags.CurrentSize < 0 {
			return fmt.Errorf("--current-size must be non-negative, got %d", *flags.CurrentSize)
		}
		o.CurrentSize = *flags.CurrentSize
	}
	if flags.OverviewMinSize != nil {
		if *flags.OverviewMinSize <= 0 {
			return fmt.Errorf("--overview-min-size must be positive, got %d", *flags.OverviewMinSize)
		}
		o.OverviewMinSize = *flags.OverviewMinSize
	}
	if flags.SwitchScreens != nil {
		o.DisplaySwitch = *flags.SwitchScreens
	}
	if flags.NoSwitchScreens != nil {
		o.DisplayUnswitch = *flags.NoSwitchScreens
	}
	if flags.DisableCache != nil {
		o.DisableCache = *flags.DisableCache
	}
	if flags.DisableCompression != nil {
		o.DisableCompression = *flags.DisableCompression
	}
	if flags.BlackOnEnd != nil {
		o.BlackOnEnd = *flags.BlackOnEnd
	}
	if flags.SingleScreen != nil {
		o.SingleScreen = *flags.SingleScreen
	}
	if flags.ListActions != nil {
		o.ListActions = *flags.ListActions
	}
	if flags.Windowed != nil {
		o.Windowed = *flags.Windowed
	}
	if flags.RunNow != nil {
		o.RunNow = *flags.RunNow
	}
	return nil
}

// applySidecar installs the companion-file duration hint, but only when no
// higher-priority layer configured the timer. A --duration equal to the unset
// sentinel counts as no opinion, consistent with DurationUnset.
func applySidecar(o *Options, in Inputs) {
	if in.SidecarDuration == nil {
		return
	}
	if o.DurationSet() || o.EndTime != "" {
		return
	}
	if *in.SidecarDuration < 0 {
		return
	}
	o.setDuration(*in.SidecarDuration)
}

func applyOverrides(o *Options, ov *Overrides) error {
	if ov == nil {
		return nil
	}
	if ov.Duration != nil {
		if *ov.Duration < 0 {
			return fmt.Errorf("duration must be non-negative, got %d", *ov.Duration)
		}
		o.setDuration(*ov.Duration)
	}
	if ov.EndTime != nil {
		clock, err := ParseClock(*ov.EndTime)
		if err != nil {
			return err
		}
		o.setEndTime(clock)
	}
	if ov.LastMinutes != nil {
		if *ov.LastMinutes < 0 {
			return fmt.Errorf("last minutes must be non-negative, got %d", *ov.LastMinutes)
		}
		o.LastMinutes = *ov.LastMinutes
	}
	if ov.CurrentSize != nil {
		o.CurrentSize = *ov.CurrentSize
	}
	if ov.SwitchScreens != nil {
		o.DisplaySwitch = *ov.SwitchScreens
	}
	if ov.SingleScreen != nil {
		o.SingleScreen = *ov.SingleScreen
	}
	if ov.Windowed != nil {
		o.Windowed = *ov.Windowed
	}
	return nil
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// PersistedSubset projects the durable settings out of a resolved option set.
func (o Options) PersistedSubset() rcfile.Subset {
	return rcfile.Subset{
		SwitchScreens: o.DisplaySwitch,
		LastMinutes:   o.LastMinutes,
		CurrentSize:   o.CurrentSize,
	}
}
