// Package render formats parsed search results for the terminal: metadata
// column alignment, folder-prefix graying, fragment highlighting, link-safe
// path encoding, and aligned numbering.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/marek/ff/internal/findexec"
	"github.com/marek/ff/internal/results"
	"github.com/marek/ff/internal/search"
)

// Line is the rendered form of one entry.
type Line struct {
	// Display is the numbered, highlighted listing line.
	Display string

	// QuotedPath is the shell-quoted path, encoded when encoding applies.
	QuotedPath string

	// EncodedPath is the path as displayed: link-encoded when the encode
	// mode applies to this entry, the original path otherwise.
	EncodedPath string
}

// Renderer renders entries of one result set. It is built per invocation,
// after parsing, because column widths derive from the whole set: the
// numbering width from the total count, the size width from the largest
// grouped size.
type Renderer struct {
	spec           search.Spec
	encodedFolders []string
	sizeWidth      int
	numberWidth    int

	grayed    *color.Color
	highlight *color.Color
	number    *color.Color
}

// New creates a Renderer for one parsed result set.
func New(spec search.Spec, entries []results.Entry) *Renderer {
	sizeWidth := 0
	for _, e := range entries {
		if w := len(groupThousands(e.Size)); w > sizeWidth {
			sizeWidth = w
		}
	}

	encodedFolders := make([]string, len(spec.Folders))
	for i, f := range spec.Folders {
		encodedFolders[i] = EncodeFilePath(f)
	}

	return &Renderer{
		spec:           spec,
		encodedFolders: encodedFolders,
		sizeWidth:      sizeWidth,
		numberWidth:    len(strconv.Itoa(len(entries))),
		grayed:         color.New(color.FgHiBlack),
		highlight:      color.New(color.FgRed, color.Bold),
		number:         color.New(color.FgCyan),
	}
}

// RenderLine renders one entry at its 1-based position.
func (r *Renderer) RenderLine(e results.Entry, position int) Line {
	path, encoded := r.displayPath(e.Path)

	folders := r.spec.Folders
	if encoded {
		folders = r.encodedFolders
	}
	prefixLen := longestFolderPrefix(path, folders)

	spans := computeSpans(path, prefixLen, r.spec.Includes, r.spec.AnyOrder)
	styled := r.applySpans(path, prefixLen, spans)

	var b strings.Builder
	b.WriteString(r.number.Sprint(fmt.Sprintf("%*d", r.numberWidth, position)))
	b.WriteByte(' ')
	if r.spec.ShowMetadata {
		b.WriteString(r.metadata(e))
	}
	b.WriteString(styled)

	return Line{
		Display:     b.String(),
		QuotedPath:  findexec.Quote(path),
		EncodedPath: path,
	}
}

// displayPath applies the encode mode and reports whether encoding was
// actually used for this entry.
func (r *Renderer) displayPath(path string) (string, bool) {
	switch r.spec.Encode {
	case search.EncodeAlways:
		return EncodeFilePath(path), true
	case search.EncodeOnDemand:
		if enc := EncodeFilePath(path); enc != path {
			return enc, true
		}
	}
	return path, false
}

// metadata renders the size and timestamp columns: the grouped size padded
// to the widest size in the set, a unit marker, and the timestamp as the
// pipeline printed it.
func (r *Renderer) metadata(e results.Entry) string {
	return fmt.Sprintf("%-*s B %s ", r.sizeWidth, groupThousands(e.Size), e.Modified)
}

// applySpans assembles the styled path in one pass: grayed folder prefix,
// plain gaps, highlighted spans.
func (r *Renderer) applySpans(path string, prefixLen int, spans []span) string {
	var b strings.Builder

	if prefixLen > 0 {
		b.WriteString(r.grayed.Sprint(path[:prefixLen]))
	}

	pos := prefixLen
	for _, sp := range spans {
		if sp.start > pos {
			b.WriteString(path[pos:sp.start])
		}
		b.WriteString(r.highlight.Sprint(path[sp.start:sp.end]))
		pos = sp.end
	}
	if pos < len(path) {
		b.WriteString(path[pos:])
	}

	return b.String()
}

// longestFolderPrefix returns the byte length of the longest search folder
// that prefixes path, or 0 if none does.
func longestFolderPrefix(path string, folders []string) int {
	longest := 0
	for _, folder := range folders {
		if len(folder) > longest && strings.HasPrefix(path, folder) {
			longest = len(folder)
		}
	}
	return longest
}

// groupThousands formats n with a comma between each group of three digits.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
