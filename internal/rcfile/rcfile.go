// Package rcfile reads and writes the per-user pdfpcrc file, the durable
// subset of launcher settings that survives across runs.
//
// The format is line oriented: blank lines and lines starting with '#' are
// ignored, everything else must be one of the recognized "key value" pairs.
// The legacy duration key is still accepted and discarded so rc files written
// by old releases keep loading.
package rcfile

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"github.com/davvil/pdfpc/internal/fileutil"
)

const (
	keySwitchScreens = "switch_screens"
	keyLastMinutes   = "last_minutes"
	keyCurrentSize   = "current_size"

	// Written by releases that still persisted the talk duration. Parsed and
	// dropped for backward compatibility.
	keyLegacyDuration = "duration"
)

// Subset is the durable projection of the launcher options.
type Subset struct {
	SwitchScreens bool
	LastMinutes   int
	CurrentSize   int
}

// Values holds the settings found in an rc file. A nil field was absent from
// the file (or followed a malformed line).
type Values struct {
	SwitchScreens *bool
	LastMinutes   *int
	CurrentSize   *int
}

// ParseError reports a malformed rc file line. Parsing stops at the offending
// line; the values read before it remain usable.
type ParseError struct {
	Path string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: unrecognized line %q", e.Path, e.Line, e.Text)
}

// DefaultPath returns the per-user rc file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pdfpc", "pdfpcrc"), nil
}

// Load reads the rc file at path. A missing file surfaces as an error
// satisfying errors.Is(err, fs.ErrNotExist); the caller falls back to
// defaults. A malformed line yields the values parsed so far together with a
// *ParseError carrying the 1-based line number.
func Load(path string) (Values, error) {
	file, err := os.Open(path)
	if err != nil {
		return Values{}, fmt.Errorf("open rc file: %w", err)
	}
	defer file.Close()

	var values Values
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := parseLine(&values, line); err != nil {
			return values, &ParseError{Path: path, Line: lineNo, Text: line}
		}
	}
	if err := scanner.Err(); err != nil {
		return values, fmt.Errorf("read rc file: %w", err)
	}
	return values, nil
}

func parseLine(values *Values, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("expected key and value")
	}
	key, raw := fields[0], fields[1]
	switch key {
	case keySwitchScreens:
		switch raw {
		case "0":
			v := false
			values.SwitchScreens = &v
		case "1":
			v := true
			values.SwitchScreens = &v
		default:
			return fmt.Errorf("switch_screens must be 0 or 1")
		}
	case keyLastMinutes:
		n, err := parseNonNegative(raw)
		if err != nil {
			return err
		}
		values.LastMinutes = &n
	case keyCurrentSize:
		n, err := parseNonNegative(raw)
		if err != nil {
			return err
		}
		values.CurrentSize = &n
	case keyLegacyDuration:
		if _, err := parseNonNegative(raw); err != nil {
			return err
		}
		// Recognized but no longer persisted.
	default:
		return fmt.Errorf("unknown key %q", key)
	}
	return nil
}

func parseNonNegative(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("expected non-negative integer, got %q", raw)
	}
	return n, nil
}

// Save overwrites the rc file at path with the full subset, creating missing
// parent directories. The replacement is atomic relative to partial writes
// and serialized against concurrent launcher instances with a sibling lock
// file.
func Save(path string, subset Subset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create rc directory %q: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock rc file: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	var buf bytes.Buffer
	buf.WriteString("# pdfpc settings. Managed by the launcher; edits are overwritten.\n")
	fmt.Fprintf(&buf, "%s %d\n", keySwitchScreens, boolValue(subset.SwitchScreens))
	fmt.Fprintf(&buf, "%s %d\n", keyLastMinutes, subset.LastMinutes)
	fmt.Fprintf(&buf, "%s %d\n", keyCurrentSize, subset.CurrentSize)

	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write rc file: %w", err)
	}
	return nil
}

func boolValue(v bool) int {
	if v {
		return 1
	}
	return 0
}
