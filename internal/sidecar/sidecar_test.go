package sidecar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davvil/pdfpc/internal/sidecar"
)

func writeSidecar(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	doc := filepath.Join(dir, "talk.pdf")
	if err := os.WriteFile(doc, []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "talk.pdfpc"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestCompanionPath(t *testing.T) {
	got := sidecar.CompanionPath("/slides/talk.pdf", "")
	if got != "/slides/talk.pdfpc" {
		t.Fatalf("unexpected companion path %q", got)
	}
	got = sidecar.CompanionPath("/slides/talk.pdf", ".notes")
	if got != "/slides/talk.notes" {
		t.Fatalf("unexpected companion path with override %q", got)
	}
}

func TestDurationHint(t *testing.T) {
	doc := writeSidecar(t, "[duration]\n25\n")
	minutes, ok := sidecar.DurationHint(doc, "")
	if !ok || minutes != 25 {
		t.Fatalf("expected hint of 25, got %d ok=%v", minutes, ok)
	}
}

func TestDurationHintSkipsUnrelatedSections(t *testing.T) {
	doc := writeSidecar(t, "[notes]\nremember the demo\n[duration]\n45\n")
	minutes, ok := sidecar.DurationHint(doc, "")
	if !ok || minutes != 45 {
		t.Fatalf("expected hint of 45, got %d ok=%v", minutes, ok)
	}
}

func TestDurationHintNoMarker(t *testing.T) {
	doc := writeSidecar(t, "[notes]\nno duration here\n")
	if _, ok := sidecar.DurationHint(doc, ""); ok {
		t.Fatal("expected no hint without a duration marker")
	}
}

func TestDurationHintNonInteger(t *testing.T) {
	doc := writeSidecar(t, "[duration]\nforty\n")
	if _, ok := sidecar.DurationHint(doc, ""); ok {
		t.Fatal("expected no hint for non-integer duration")
	}
}

func TestDurationHintMarkerAtEOF(t *testing.T) {
	doc := writeSidecar(t, "[duration]\n")
	if _, ok := sidecar.DurationHint(doc, ""); ok {
		t.Fatal("expected no hint when marker has no following line")
	}
}

func TestDurationHintMissingFile(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "talk.pdf")
	if _, ok := sidecar.DurationHint(doc, ""); ok {
		t.Fatal("expected no hint for missing sidecar")
	}
}
