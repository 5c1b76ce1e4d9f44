// Package sidecar extracts the optional per-document duration hint from the
// companion .pdfpc file next to a presentation document.
package sidecar

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/davvil/pdfpc/internal/fileutil"
)

// Extension of the companion metadata file.
const Extension = ".pdfpc"

// DurationMarker introduces the duration section; the next line holds the
// talk length in minutes.
const DurationMarker = "[duration]"

// CompanionPath derives the sidecar path for a document: same directory, same
// basename, sidecar extension.
func CompanionPath(documentPath, ext string) string {
	if ext == "" {
		ext = Extension
	}
	return fileutil.ReplaceExt(documentPath, ext)
}

// DurationHint scans the sidecar next to documentPath for a duration hint in
// minutes. Every failure mode is non-fatal: a missing or unreadable file, a
// file without the duration marker, or a non-integer value all report no
// hint.
func DurationHint(documentPath, ext string) (int, bool) {
	file, err := os.Open(CompanionPath(documentPath, ext))
	if err != nil {
		return 0, false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if strings.TrimRight(scanner.Text(), "\r") != DurationMarker {
			continue
		}
		if !scanner.Scan() {
			return 0, false
		}
		minutes, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || minutes < 0 {
			return 0, false
		}
		return minutes, true
	}
	return 0, false
}
