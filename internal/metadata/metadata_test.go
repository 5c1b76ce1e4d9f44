package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davvil/pdfpc/internal/metadata"
	"github.com/davvil/pdfpc/internal/options"
)

func writeDoc(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDerivesTitle(t *testing.T) {
	doc, err := metadata.Load(writeDoc(t, "go-at-scale_v2.pdf"), "", options.DurationUnset)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Title != "Go At Scale V2" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
	if filepath.Ext(doc.SidecarPath) != ".pdfpc" {
		t.Fatalf("unexpected sidecar path %q", doc.SidecarPath)
	}
	if doc.Duration != options.DurationUnset {
		t.Fatalf("duration should stay unset without sidecar: %d", doc.Duration)
	}
}

func TestLoadPicksUpSidecarHint(t *testing.T) {
	path := writeDoc(t, "talk.pdf")
	sidecarPath := filepath.Join(filepath.Dir(path), "talk.pdfpc")
	if err := os.WriteFile(sidecarPath, []byte("[duration]\n25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := metadata.Load(path, "", options.DurationUnset)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Duration != 25 {
		t.Fatalf("sidecar hint not applied: %d", doc.Duration)
	}
}

func TestLoadOverrideBeatsSidecar(t *testing.T) {
	path := writeDoc(t, "talk.pdf")
	sidecarPath := filepath.Join(filepath.Dir(path), "talk.pdfpc")
	if err := os.WriteFile(sidecarPath, []byte("[duration]\n25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := metadata.Load(path, "", 45)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Duration != 45 {
		t.Fatalf("override should win over sidecar: %d", doc.Duration)
	}
}

func TestLoadMissingDocument(t *testing.T) {
	if _, err := metadata.Load(filepath.Join(t.TempDir(), "nope.pdf"), "", options.DurationUnset); err == nil {
		t.Fatal("expected error for missing document")
	}
}
