// Package metadata builds the per-document record the windows are
// constructed from.
package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/davvil/pdfpc/internal/options"
	"github.com/davvil/pdfpc/internal/sidecar"
)

// Document describes one presentation document.
type Document struct {
	Path  string
	Title string
	// Duration is the talk length in minutes, options.DurationUnset when the
	// document carries no hint and no override was given.
	Duration int
	// SidecarPath is the companion file location, whether or not it exists.
	SidecarPath string
}

// Load constructs the document record for path. durationOverride, when
// different from options.DurationUnset, wins over the sidecar hint. The
// sidecar lookup is best-effort and never fails the load.
func Load(path, sidecarExt string, durationOverride int) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve document path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}

	doc := &Document{
		Path:        abs,
		Title:       deriveTitle(abs),
		Duration:    durationOverride,
		SidecarPath: sidecar.CompanionPath(abs, sidecarExt),
	}
	if doc.Duration == options.DurationUnset {
		if minutes, ok := sidecar.DurationHint(abs, sidecarExt); ok {
			doc.Duration = minutes
		}
	}
	return doc, nil
}

// deriveTitle turns the document basename into a human-readable title for the
// chooser and the presenter window caption.
func deriveTitle(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return "Untitled Presentation"
	}
	return cases.Title(language.Und).String(title)
}
