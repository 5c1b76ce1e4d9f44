package display_test

import (
	"context"
	"testing"

	"github.com/davvil/pdfpc/internal/display"
)

func TestAssignTwoDisplays(t *testing.T) {
	cases := []struct {
		name             string
		in               display.Inputs
		wantPresenter    int
		wantPresentation int
	}{
		{
			name:             "primary first",
			in:               display.Inputs{DisplayCount: 2, PrimaryIndex: 0},
			wantPresenter:    0,
			wantPresentation: 1,
		},
		{
			name:             "switched",
			in:               display.Inputs{DisplayCount: 2, PrimaryIndex: 0, DisplaySwitch: true},
			wantPresenter:    1,
			wantPresentation: 0,
		},
		{
			name:             "primary second",
			in:               display.Inputs{DisplayCount: 2, PrimaryIndex: 1},
			wantPresenter:    1,
			wantPresentation: 0,
		},
		{
			name:             "primary second switched",
			in:               display.Inputs{DisplayCount: 2, PrimaryIndex: 1, DisplaySwitch: true},
			wantPresenter:    0,
			wantPresentation: 1,
		},
		{
			// Outputs beyond the first two are ignored.
			name:             "three displays",
			in:               display.Inputs{DisplayCount: 3, PrimaryIndex: 0},
			wantPresenter:    0,
			wantPresentation: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := display.Assign(tc.in)
			if !a.CreatePresenter || !a.CreatePresentation {
				t.Fatalf("both windows should be created: %+v", a)
			}
			if a.PresenterMonitor != tc.wantPresenter {
				t.Fatalf("presenter: got %d want %d", a.PresenterMonitor, tc.wantPresenter)
			}
			if a.PresentationMonitor != tc.wantPresentation {
				t.Fatalf("presentation: got %d want %d", a.PresentationMonitor, tc.wantPresentation)
			}
		})
	}
}

func TestAssignWindowed(t *testing.T) {
	a := display.Assign(display.Inputs{Windowed: true, DisplayCount: 2, PrimaryIndex: 0})
	if !a.CreatePresenter || !a.CreatePresentation {
		t.Fatalf("windowed mode still creates both windows: %+v", a)
	}
	if a.PresenterMonitor != display.Unconstrained || a.PresentationMonitor != display.Unconstrained {
		t.Fatalf("windowed mode must not pin windows to outputs: %+v", a)
	}
}

func TestAssignWindowedSingleScreenFallsThrough(t *testing.T) {
	a := display.Assign(display.Inputs{Windowed: true, SingleScreen: true, DisplayCount: 2})
	if a.CreatePresentation {
		t.Fatalf("single-screen windowed mode creates only the presenter window: %+v", a)
	}
	if !a.CreatePresenter {
		t.Fatal("presenter window missing")
	}
}

func TestAssignSingleWindow(t *testing.T) {
	cases := []struct {
		name             string
		in               display.Inputs
		wantPresenter    bool
		wantPresentation bool
	}{
		{"one display", display.Inputs{DisplayCount: 1}, true, false},
		{"one display switched", display.Inputs{DisplayCount: 1, DisplaySwitch: true}, false, true},
		{"single screen forced", display.Inputs{SingleScreen: true, DisplayCount: 2}, true, false},
		{"single screen switched", display.Inputs{SingleScreen: true, DisplaySwitch: true, DisplayCount: 2}, false, true},
		{"no displays", display.Inputs{DisplayCount: 0}, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := display.Assign(tc.in)
			if a.CreatePresenter != tc.wantPresenter || a.CreatePresentation != tc.wantPresentation {
				t.Fatalf("unexpected windows: %+v", a)
			}
			if a.CreatePresenter && a.PresenterMonitor != display.Unconstrained {
				t.Fatalf("single window must be unconstrained: %+v", a)
			}
			if a.CreatePresentation && a.PresentationMonitor != display.Unconstrained {
				t.Fatalf("single window must be unconstrained: %+v", a)
			}
		})
	}
}

func TestWatcherCurrentUsesProbe(t *testing.T) {
	snapshot := display.Snapshot{
		Monitors: []display.Monitor{
			{Index: 0, Name: "eDP-1", Primary: true},
			{Index: 1, Name: "HDMI-1"},
		},
	}
	w := display.NewWatcher(display.StaticProber{Snapshot: snapshot}, nil, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	got := w.Current()
	if got.Count() != 2 {
		t.Fatalf("expected 2 monitors, got %d", got.Count())
	}
	if got.Monitors[0].Name != "eDP-1" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}
