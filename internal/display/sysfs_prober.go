package display

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SysfsProber enumerates connected outputs from the kernel's DRM tree. It
// needs no GUI stack, which makes it the prober of choice for the plain
// launcher binary; the front-end replaces it with the toolkit's own screen
// API when available.
type SysfsProber struct {
	// Root of the DRM class tree, /sys/class/drm when empty.
	Root string
}

const defaultDRMRoot = "/sys/class/drm"

// Probe implements Prober. Connectors are ordered by name so indices are
// stable across probes; the first connected output is reported as primary,
// matching what window managers do without explicit configuration.
func (p SysfsProber) Probe() (Snapshot, error) {
	root := p.Root
	if root == "" {
		root = defaultDRMRoot
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read drm tree: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		// Connector directories look like card0-HDMI-A-1; bare cardN entries
		// and render nodes carry no connection state.
		if !strings.Contains(name, "-") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var snapshot Snapshot
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(root, name, "status"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) != "connected" {
			continue
		}
		index := len(snapshot.Monitors)
		snapshot.Monitors = append(snapshot.Monitors, Monitor{
			Index:   index,
			Name:    name,
			Primary: index == 0,
		})
	}
	return snapshot, nil
}
