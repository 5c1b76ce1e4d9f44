package fileutil_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/davvil/pdfpc/internal/fileutil"
)

func TestWriteFileAtomicReplacesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pdfpcrc")

	if err := fileutil.WriteFileAtomic(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte("second\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic replace failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second\n" {
		t.Fatalf("unexpected content: %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no leftover temp files, found %d entries", len(entries))
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o644 {
			t.Fatalf("unexpected mode: %v", info.Mode().Perm())
		}
	}
}

func TestWriteFileAtomicMissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "pdfpcrc")
	if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestReplaceExt(t *testing.T) {
	cases := []struct {
		in, ext, want string
	}{
		{"slides/talk.pdf", ".pdfpc", "slides/talk.pdfpc"},
		{"talk", ".pdfpc", "talk.pdfpc"},
		{"archive.tar.gz", ".pdfpc", "archive.tar.pdfpc"},
		{".hidden", ".pdfpc", ".pdfpc"},
	}
	for _, tc := range cases {
		if got := fileutil.ReplaceExt(tc.in, tc.ext); got != tc.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tc.in, tc.ext, got, tc.want)
		}
	}
}
