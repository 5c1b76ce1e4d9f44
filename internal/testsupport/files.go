// Package testsupport provides fixture helpers shared by launcher tests.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteDocument creates a placeholder presentation document in a fresh temp
// directory and returns its path.
func WriteDocument(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talk.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.5\n"), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

// WriteSidecar places a companion file next to the given document and returns
// its path.
func WriteSidecar(t testing.TB, documentPath, content string) string {
	t.Helper()
	path := strings.TrimSuffix(documentPath, filepath.Ext(documentPath)) + ".pdfpc"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	return path
}
