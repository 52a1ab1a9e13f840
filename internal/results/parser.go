// Package results parses raw find-pipeline output into ordered result
// entries.
//
// Parsing is forgiving: a malformed line is dropped, never fatal. The
// 1-based position of an entry in the returned sequence is the number the
// user sees and selects by.
package results

import (
	"regexp"
	"strconv"
	"strings"
)

// Entry is one parsed search result.
// Entries are immutable after parsing.
type Entry struct {
	// Raw is the original pipeline output line.
	Raw string

	// Size is the entry size in bytes.
	Size int64

	// Modified is the modification timestamp exactly as printed by the
	// pipeline, "YYYY-MM-DD HH:MM:SS". It is passed through to output
	// unchanged, so it stays a string.
	Modified string

	// Path is the filesystem path.
	Path string
}

// linePattern matches one metadata-prefixed result line: a right-aligned
// size column of any width, the timestamp, and the path.
var linePattern = regexp.MustCompile(`^\s*(\d+) (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (.+)$`)

// Parse converts raw pipeline output into entries, preserving line order.
//
// Lines without a path separator are discarded: they guard against stray
// warnings or partial lines from the external tool. Identical paths, which
// overlapping search roots can produce, are deduplicated keeping the first
// occurrence.
func Parse(raw []byte) []Entry {
	var entries []Entry
	seen := make(map[string]bool)

	for _, line := range strings.Split(string(raw), "\n") {
		if line == "" {
			continue
		}
		if !strings.ContainsRune(line, '/') {
			continue
		}

		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		size, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}

		path := m[3]
		if seen[path] {
			continue
		}
		seen[path] = true

		entries = append(entries, Entry{
			Raw:      line,
			Size:     size,
			Modified: m[2],
			Path:     path,
		})
	}

	return entries
}
