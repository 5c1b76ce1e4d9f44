package main

import (
	"github.com/spf13/cobra"

	"github.com/davvil/pdfpc/internal/options"
)

// usageError marks invalid command-line input; main prints the usage text
// after the error and exits non-zero.
type usageError struct {
	err   error
	usage string
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// flagValues holds the raw command-line values; collectFlags turns the subset
// the user actually set into an options.Flags layer.
type flagValues struct {
	duration           int
	endTime            string
	lastMinutes        int
	startTime          string
	currentSize        int
	overviewMinSize    int
	switchScreens      bool
	noSwitchScreens    bool
	disableCache       bool
	disableCompression bool
	blackOnEnd         bool
	singleScreen       bool
	listActions        bool
	windowed           bool
	runNow             bool
}

func newRootCommand() *cobra.Command {
	var configFlag string
	values := &flagValues{}

	rootCmd := &cobra.Command{
		Use:           "pdfpc [flags] <presentation.pdf>",
		Short:         "Dual-screen PDF presentation launcher",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			document := ""
			if len(args) == 1 {
				document = args[0]
			}
			return runLaunch(cmd, configFlag, values, document)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err, usage: cmd.UsageString()}
	})

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.IntVarP(&values.duration, "duration", "d", 0, "Talk duration in minutes")
	flags.StringVarP(&values.endTime, "end-time", "e", "", "Wall-clock end of the talk (HH:MM)")
	flags.IntVarP(&values.lastMinutes, "last-minutes", "l", options.DefaultLastMinutes, "Minutes before the end at which the timer alerts")
	flags.StringVarP(&values.startTime, "start-time", "t", "", "Wall-clock start of the talk (HH:MM)")
	flags.IntVarP(&values.currentSize, "current-size", "u", options.DefaultCurrentSize, "Percentage of the presenter screen for the current slide")
	flags.IntVarP(&values.overviewMinSize, "overview-min-size", "o", options.DefaultOverviewMinSize, "Minimum width of an overview tile in pixels")
	flags.BoolVarP(&values.switchScreens, "switch-screens", "s", false, "Swap the presenter and presentation displays")
	flags.BoolVarP(&values.noSwitchScreens, "no-switch-screens", "n", false, "Force the default display arrangement")
	flags.BoolVarP(&values.disableCache, "disable-cache", "c", false, "Disable page caching")
	flags.BoolVarP(&values.disableCompression, "disable-compression", "z", false, "Store cached pages uncompressed")
	flags.BoolVarP(&values.blackOnEnd, "black-on-end", "b", false, "Black the presentation screen after the last slide")
	flags.BoolVarP(&values.singleScreen, "single-screen", "S", false, "Use only one screen")
	flags.BoolVarP(&values.listActions, "list-actions", "L", false, "List the interactive actions and exit")
	flags.BoolVarP(&values.windowed, "windowed", "w", false, "Run in windowed mode")
	flags.BoolVarP(&values.runNow, "run-now", "r", false, "Present immediately and exit when the presentation closes")

	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func collectFlags(cmd *cobra.Command, v *flagValues) options.Flags {
	f := options.Flags{}
	set := cmd.Flags().Changed
	if set("duration") {
		f.Duration = &v.duration
	}
	if set("end-time") {
		f.EndTime = &v.endTime
	}
	if set("last-minutes") {
		f.LastMinutes = &v.lastMinutes
	}
	if set("start-time") {
		f.StartTime = &v.startTime
	}
	if set("current-size") {
		f.CurrentSize = &v.currentSize
	}
	if set("overview-min-size") {
		f.OverviewMinSize = &v.overviewMinSize
	}
	if set("switch-screens") {
		f.SwitchScreens = &v.switchScreens
	}
	if set("no-switch-screens") {
		f.NoSwitchScreens = &v.noSwitchScreens
	}
	if set("disable-cache") {
		f.DisableCache = &v.disableCache
	}
	if set("disable-compression") {
		f.DisableCompression = &v.disableCompression
	}
	if set("black-on-end") {
		f.BlackOnEnd = &v.blackOnEnd
	}
	if set("single-screen") {
		f.SingleScreen = &v.singleScreen
	}
	if set("list-actions") {
		f.ListActions = &v.listActions
	}
	if set("windowed") {
		f.Windowed = &v.windowed
	}
	if set("run-now") {
		f.RunNow = &v.runNow
	}
	return f
}
