// Package query classifies raw command-line tokens into the parts of a
// file-search query: root folders, include fragments, exclude fragments,
// flags, and result selectors.
//
// Classification is a partition: every token (or sub-fragment of a token)
// lands in at most one bucket. It is also a pure function of the token list
// and the supplied Options, so classifying the same input twice yields an
// identical Classification.
package query

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// Options carries the environment-derived values the classifier needs.
// Threading them in explicitly keeps Classify free of ambient state.
type Options struct {
	// DefaultRoot is the folder substituted when no folder token is given.
	DefaultRoot string

	// Home is the expansion target for ~ tokens.
	Home string

	// WorkingDir is the expansion base for . and .. tokens.
	WorkingDir string
}

// Classification is the partitioned form of a raw query.
type Classification struct {
	// Folders are the normalized search roots, in the order given.
	// Never empty: when the query names none, the default root is used.
	Folders []string

	// Includes are fragments that must appear in a matching path, in the
	// order given. Duplicates are preserved: in sequential mode a repeated
	// fragment must occur repeatedly.
	Includes []string

	// Excludes are lowercased fragments that must not appear in a matching
	// path. Deduplicated, first occurrence order.
	Excludes []string

	// Flags holds recognized flags with duplicates collapsed to their last
	// occurrence, preserving relative order. Later flags win conflicts
	// (sort keys, output modes) when applied left to right.
	Flags []FlagId

	// Selectors are 1-based result indices, deduplicated, in given order.
	Selectors []int

	// Warnings are non-fatal notes about ignored tokens, for inline display.
	Warnings []string
}

// HasFlag reports whether the classification contains the given flag.
func (c *Classification) HasFlag(id FlagId) bool {
	for _, f := range c.Flags {
		if f == id {
			return true
		}
	}
	return false
}

// Classify partitions the argument list into a Classification.
//
// Token rules, in precedence order:
//  1. A token equal to "." or "..", or starting with "./", "../", "/" or
//     "~", is a folder. Folder recognition precedes fragment splitting.
//  2. A "--" token switches to selector-only mode: every later token,
//     minus one optional leading dash, must be a result number; anything
//     else is warned about and ignored.
//  3. Other tokens are split into sub-fragments on runs of characters
//     that are not alphanumeric, "-", "_", "." or "*".
//  4. A sub-fragment "-<digits>" is a selector index (1-based, as typed).
//  5. A sub-fragment exactly matching a reserved flag literal is a flag.
//     Multi-letter dash tokens are never unpacked into stacked flags:
//     "-pin" is the exclude fragment "pin", not -p -i -n.
//  6. Any other dash-prefixed sub-fragment longer than one character is an
//     exclude fragment: dash stripped, lowercased, asterisks stripped.
//     A lone "-" is discarded.
//  7. Everything else is an include fragment with asterisks stripped
//     (wildcarding is reintroduced by the search compiler). Fragments that
//     are blank after stripping are discarded.
func Classify(args []string, opts Options) Classification {
	var c Classification

	seenExcludes := make(map[string]bool)
	seenSelectors := make(map[int]bool)
	selectorOnly := false

	for _, token := range args {
		if !selectorOnly && token == "--" {
			selectorOnly = true
			continue
		}

		if selectorOnly {
			classifySelectorToken(token, &c, seenSelectors)
			continue
		}

		if isFolderToken(token) {
			c.Folders = append(c.Folders, normalizeFolder(token, opts))
			continue
		}

		for _, frag := range splitFragments(token) {
			classifyFragment(frag, &c, seenExcludes, seenSelectors)
		}
	}

	if len(c.Folders) == 0 {
		c.Folders = []string{normalizeFolder(opts.DefaultRoot, opts)}
	}

	return c
}

// classifySelectorToken handles tokens after the "--" separator.
func classifySelectorToken(token string, c *Classification, seen map[int]bool) {
	digits := strings.TrimPrefix(token, "-")
	if digits == "" || !isAllDigits(digits) {
		c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring %q after --: not a result number", token))
		return
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		c.Warnings = append(c.Warnings, fmt.Sprintf("ignoring %q after --: not a result number", token))
		return
	}

	addSelector(c, n, seen)
}

// classifyFragment buckets one sub-fragment of a non-folder token.
func classifyFragment(frag string, c *Classification, seenExcludes map[string]bool, seenSelectors map[int]bool) {
	if len(frag) > 1 && frag[0] == '-' && isAllDigits(frag[1:]) {
		if n, err := strconv.Atoi(frag[1:]); err == nil {
			addSelector(c, n, seenSelectors)
			return
		}
	}

	if id := lookupFlag(frag); id != FlagUnknown {
		addFlag(c, id)
		return
	}

	if strings.HasPrefix(frag, "-") {
		if len(frag) == 1 {
			return
		}
		excl := strings.ReplaceAll(strings.ToLower(frag[1:]), "*", "")
		if excl == "" {
			return
		}
		if !seenExcludes[excl] {
			seenExcludes[excl] = true
			c.Excludes = append(c.Excludes, excl)
		}
		return
	}

	incl := strings.ReplaceAll(frag, "*", "")
	if incl == "" {
		return
	}
	c.Includes = append(c.Includes, incl)
}

// addFlag records a flag, collapsing duplicates to the last occurrence so
// that applying flags left to right makes the final occurrence win.
func addFlag(c *Classification, id FlagId) {
	for i, existing := range c.Flags {
		if existing == id {
			c.Flags = append(c.Flags[:i], c.Flags[i+1:]...)
			break
		}
	}
	c.Flags = append(c.Flags, id)
}

// addSelector records a selector index once, preserving given order.
func addSelector(c *Classification, n int, seen map[int]bool) {
	if seen[n] {
		return
	}
	seen[n] = true
	c.Selectors = append(c.Selectors, n)
}

// isFolderToken reports whether a whole token names a search root.
func isFolderToken(token string) bool {
	return token == "." || token == ".." ||
		strings.HasPrefix(token, "./") ||
		strings.HasPrefix(token, "../") ||
		strings.HasPrefix(token, "/") ||
		strings.HasPrefix(token, "~")
}

// splitFragments splits a token on runs of characters that cannot appear in
// a fragment. "-", "_", "." and "*" survive so that dash tokens, dotted
// names and explicit wildcards stay intact; a token like "a/b-c" therefore
// contributes the fragments "a" and "b-c".
func splitFragments(token string) []string {
	return strings.FieldsFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) &&
			r != '-' && r != '_' && r != '.' && r != '*'
	})
}

// isAllDigits reports whether s is non-empty and consists only of ASCII digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeFolder expands ~, . and .. prefixes and guarantees exactly one
// trailing separator, so downstream prefix comparisons can rely on it.
func normalizeFolder(token string, opts Options) string {
	var path string

	switch {
	case token == "~":
		path = opts.Home
	case strings.HasPrefix(token, "~/"):
		path = filepath.Join(opts.Home, token[2:])
	case strings.HasPrefix(token, "~"):
		path = filepath.Join(opts.Home, token[1:])
	case token == "..":
		path = filepath.Dir(opts.WorkingDir)
	case strings.HasPrefix(token, "../"):
		path = filepath.Join(filepath.Dir(opts.WorkingDir), token[3:])
	case token == ".":
		path = opts.WorkingDir
	case strings.HasPrefix(token, "./"):
		path = filepath.Join(opts.WorkingDir, token[2:])
	default:
		path = filepath.Clean(token)
	}

	if !strings.HasSuffix(path, string(filepath.Separator)) {
		path += string(filepath.Separator)
	}
	return path
}
