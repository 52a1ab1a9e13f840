package render

import (
	"sort"
	"strings"
)

// span marks a half-open [start, end) byte range of a path that gets the
// highlight style. Spans are computed first and applied in one pass, so
// style insertion never shifts match offsets.
type span struct {
	start int
	end   int
}

// computeSpans locates the include fragments in path, case-insensitively,
// starting at from (the first byte after the grayed folder prefix).
//
// Sequential mode walks a cursor: each fragment is searched from the end of
// the previous match, a miss is skipped silently and does not advance the
// cursor. Any-order mode searches every fragment from the same minimum
// position, independently of the other fragments' matches.
//
// The returned spans are ordered, non-overlapping, with abutting matches
// merged.
func computeSpans(path string, from int, fragments []string, anyOrder bool) []span {
	lower := asciiLower(path)
	var spans []span

	if anyOrder {
		for _, frag := range fragments {
			f := asciiLower(frag)
			if f == "" {
				continue
			}
			if i := strings.Index(lower[from:], f); i >= 0 {
				start := from + i
				spans = append(spans, span{start, start + len(f)})
			}
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
		return mergeSpans(spans)
	}

	cursor := from
	for _, frag := range fragments {
		f := asciiLower(frag)
		if f == "" {
			continue
		}
		i := strings.Index(lower[cursor:], f)
		if i < 0 {
			continue
		}
		start := cursor + i
		spans = append(spans, span{start, start + len(f)})
		cursor = start + len(f)
	}
	return mergeSpans(spans)
}

// mergeSpans collapses overlapping or abutting spans into one.
// Input must be ordered by start.
func mergeSpans(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	merged := make([]span, 0, len(spans))
	current := spans[0]
	for _, next := range spans[1:] {
		if next.start <= current.end {
			if next.end > current.end {
				current.end = next.end
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// asciiLower lowercases ASCII letters only. Unlike strings.ToLower it can
// never change byte offsets, which keeps spans valid in the original string.
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
