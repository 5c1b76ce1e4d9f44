// Package display decides how the presenter and presentation window roles map
// onto the physical outputs attached to the machine.
package display

// Unconstrained marks a role that is not tied to a dedicated physical output;
// the window manager (or the window's own placement logic) decides.
const Unconstrained = -1

// Monitor describes one physical output.
type Monitor struct {
	Index   int
	Name    string
	Primary bool
}

// Snapshot is the display inventory at one point in time.
type Snapshot struct {
	Monitors []Monitor
	// Primary is the platform-reported primary output index, 0 when the
	// platform reports none.
	Primary int
}

// Count returns the number of attached outputs.
func (s Snapshot) Count() int { return len(s.Monitors) }

// Assignment maps the two window roles onto outputs. A role whose Create
// field is false gets no window at all; a created role with an Unconstrained
// monitor is placed freely.
type Assignment struct {
	PresenterMonitor    int
	PresentationMonitor int
	CreatePresenter     bool
	CreatePresentation  bool
}

// Inputs are the resolved option bits the assignment depends on.
type Inputs struct {
	DisplaySwitch bool
	SingleScreen  bool
	Windowed      bool
	DisplayCount  int
	PrimaryIndex  int
}

// Assign computes the monitor assignment for one launch.
//
// Windowed multi-screen mode creates both windows without binding either to
// an output. With two or more outputs both windows are created and pinned;
// the arithmetic is binary and outputs beyond the first two are ignored.
// Everything else (one output, or single-screen forced) creates
// exactly one window, the presenter one unless DisplaySwitch asks for the
// presentation view instead.
func Assign(in Inputs) Assignment {
	switch {
	case in.Windowed && !in.SingleScreen:
		return Assignment{
			PresenterMonitor:    Unconstrained,
			PresentationMonitor: Unconstrained,
			CreatePresenter:     true,
			CreatePresentation:  true,
		}
	case !in.Windowed && !in.SingleScreen && in.DisplayCount > 1:
		presenter := in.PrimaryIndex
		if in.DisplaySwitch {
			presenter = (in.PrimaryIndex + 1) % 2
		}
		return Assignment{
			PresenterMonitor:    presenter,
			PresentationMonitor: (presenter + 1) % 2,
			CreatePresenter:     true,
			CreatePresentation:  true,
		}
	default:
		a := Assignment{
			PresenterMonitor:    Unconstrained,
			PresentationMonitor: Unconstrained,
		}
		if in.DisplaySwitch {
			a.CreatePresentation = true
		} else {
			a.CreatePresenter = true
		}
		return a
	}
}
