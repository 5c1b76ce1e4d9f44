package display_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davvil/pdfpc/internal/display"
)

func writeConnector(t *testing.T, root, name, status string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if status != "" {
		if err := os.WriteFile(filepath.Join(dir, "status"), []byte(status+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSysfsProber(t *testing.T) {
	root := t.TempDir()
	writeConnector(t, root, "card0", "")
	writeConnector(t, root, "card0-eDP-1", "connected")
	writeConnector(t, root, "card0-HDMI-A-1", "connected")
	writeConnector(t, root, "card0-DP-1", "disconnected")

	snapshot, err := display.SysfsProber{Root: root}.Probe()
	if err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
	if snapshot.Count() != 2 {
		t.Fatalf("expected 2 connected outputs, got %d", snapshot.Count())
	}
	// Names sort card0-DP-1 < card0-HDMI-A-1 < card0-eDP-1.
	if snapshot.Monitors[0].Name != "card0-HDMI-A-1" {
		t.Fatalf("unexpected first monitor: %+v", snapshot.Monitors[0])
	}
	if !snapshot.Monitors[0].Primary || snapshot.Monitors[1].Primary {
		t.Fatal("first connected output should be primary")
	}
	if snapshot.Primary != 0 {
		t.Fatalf("unexpected primary index %d", snapshot.Primary)
	}
}

func TestSysfsProberMissingRoot(t *testing.T) {
	if _, err := (display.SysfsProber{Root: filepath.Join(t.TempDir(), "none")}).Probe(); err == nil {
		t.Fatal("expected error for missing drm tree")
	}
}
