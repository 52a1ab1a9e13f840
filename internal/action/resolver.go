// Package action resolves which results a query's selectors put in scope
// and applies the requested action per entry: printing the listing line,
// the quoted path, or the quoted containing folder, and optionally opening
// the entry with the platform launcher.
package action

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/marek/ff/internal/findexec"
	"github.com/marek/ff/internal/render"
	"github.com/marek/ff/internal/results"
	"github.com/marek/ff/internal/search"
)

// Resolver applies selection and action flags to a rendered result set.
type Resolver struct {
	// Opener is the command used to open entries.
	// Empty selects the platform default (open on macOS, xdg-open elsewhere).
	Opener string

	// launch starts the opener detached. Swappable in tests.
	launch func(opener, path string) error

	warn *color.Color
}

// NewResolver creates a Resolver using the given opener command.
func NewResolver(opener string) *Resolver {
	return &Resolver{
		Opener: opener,
		launch: launchDetached,
		warn:   color.New(color.FgYellow),
	}
}

// Run prints and/or opens every in-scope entry, in selector order.
//
// An empty selector set puts all entries in scope. A selector outside
// [1, N] is reported inline, in the normal output stream at the point
// where it occurs, and has no side effects; remaining selectors still
// execute. Launcher failures are likewise per-entry warnings, never fatal.
func (r *Resolver) Run(w io.Writer, spec search.Spec, entries []results.Entry, lines []render.Line, selectors []int) {
	indices := selectors
	if len(indices) == 0 {
		indices = make([]int, len(entries))
		for i := range entries {
			indices[i] = i + 1
		}
	}

	for _, idx := range indices {
		if idx < 1 || idx > len(entries) {
			if spec.Open {
				fmt.Fprintln(w, r.warn.Sprintf("No result %d to open", idx))
			} else {
				fmt.Fprintln(w, r.warn.Sprintf("No result %d to show", idx))
			}
			continue
		}

		line := lines[idx-1]
		target := line.EncodedPath
		if spec.Output == search.OutputFolder {
			target = filepath.Dir(line.EncodedPath)
		}

		switch spec.Output {
		case search.OutputPath:
			fmt.Fprintln(w, line.QuotedPath)
		case search.OutputFolder:
			fmt.Fprintln(w, findexec.Quote(target))
		default:
			fmt.Fprintln(w, line.Display)
		}

		if spec.Open {
			if err := r.launch(r.Opener, target); err != nil {
				fmt.Fprintln(w, r.warn.Sprintf("failed to open %s: %v", target, err))
			}
		}
	}
}
