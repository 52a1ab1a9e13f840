// Package findexec realizes a search specification as a find|sort pipeline
// and runs it. The realization is exact: the string printed for the
// command-echo flag is built from the same argument vectors that are
// executed, so what the user sees is what ran.
package findexec

import (
	"strings"

	"github.com/marek/ff/internal/search"
)

// printfFormat emits one result per line: a fixed-width size column, the
// modification timestamp, and the path. The fixed width keeps field
// positions stable for sort.
const printfFormat = `%12s %TY-%Tm-%Td %TH:%TM:%.2TS %p\n`

// FindArgs returns the argument vector for find, derived from the spec:
// roots, case-insensitive path-glob matches, negated exclusions, the entity
// type, and the -printf format. Directory mode inserts -prune so that a
// matched directory is printed but never descended into.
func FindArgs(s search.Spec) []string {
	args := append([]string{}, s.Folders...)

	for _, m := range s.Matches {
		args = append(args, "-ipath", m)
	}
	for _, e := range s.Exclusions {
		args = append(args, "!", "-ipath", e)
	}

	switch s.Kind {
	case search.KindDirectory:
		args = append(args, "-type", "d", "-prune", "-printf", printfFormat)
	default:
		args = append(args, "-type", "f", "-printf", printfFormat)
	}

	return args
}

// SortArgs returns the argument vector for sort. Size sorts numerically on
// the first field, name on the path field, time on the date+time fields.
// Descending order appends -r.
func SortArgs(s search.Spec) []string {
	var args []string

	switch s.SortKey {
	case search.SortSize:
		args = append(args, "-k1,1n")
	case search.SortName:
		args = append(args, "-k4")
	default:
		args = append(args, "-k2,3")
	}

	if !s.SortAscending {
		args = append(args, "-r")
	}

	return args
}

// Pipeline returns the shell form of the realized pipeline, suitable for
// echoing to the user and for pasting back into a shell.
func Pipeline(s search.Spec) string {
	return "find " + joinArgs(FindArgs(s)) + " | sort " + joinArgs(SortArgs(s))
}

// joinArgs renders an argument vector in shell syntax, quoting only the
// arguments that need it.
func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = maybeQuote(a)
	}
	return strings.Join(quoted, " ")
}

// Quote wraps s in single quotes for POSIX shells, escaping embedded
// single quotes. Used for the quoted-path output modes, where paths are
// always quoted regardless of content.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// maybeQuote returns s unchanged when it is already a safe shell word,
// otherwise single-quoted.
func maybeQuote(s string) string {
	if s == "" {
		return "''"
	}
	if isSafeWord(s) {
		return s
	}
	return Quote(s)
}

// isSafeWord reports whether s needs no shell quoting. The bang survives
// bare so that negated clauses read naturally.
func isSafeWord(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case strings.ContainsRune("@%_+=:,./-!", r):
		default:
			return false
		}
	}
	return true
}
