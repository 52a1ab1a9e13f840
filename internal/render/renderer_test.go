package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/marek/ff/internal/results"
	"github.com/marek/ff/internal/search"
)

// withColor forces color output on or off for one test, regardless of the
// test runner's TTY state.
func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = !enabled
	t.Cleanup(func() { color.NoColor = prev })
}

func listSpec(folders []string, includes []string) search.Spec {
	return search.Spec{
		Folders:      folders,
		Includes:     includes,
		ShowMetadata: true,
	}
}

func TestRenderLine_Layout(t *testing.T) {
	withColor(t, false)

	entries := []results.Entry{
		{Size: 1024, Modified: "2025-03-14 09:26:53", Path: "/data/sub/report.txt"},
		{Size: 7, Modified: "2025-01-02 11:00:00", Path: "/data/a.go"},
	}
	r := New(listSpec([]string{"/data/"}, []string{"report"}), entries)

	first := r.RenderLine(entries[0], 1)
	second := r.RenderLine(entries[1], 2)

	assert.Equal(t, "1 1,024 B 2025-03-14 09:26:53 /data/sub/report.txt", first.Display)
	// The size column pads right to the widest grouped size in the set.
	assert.Equal(t, "2 7     B 2025-01-02 11:00:00 /data/a.go", second.Display)
}

func TestRenderLine_MetadataRoundTrip(t *testing.T) {
	withColor(t, false)

	entry := results.Entry{Size: 1024, Modified: "2025-03-14 09:26:53", Path: "/data/a.txt"}

	withMeta := New(listSpec([]string{"/data/"}, nil), []results.Entry{entry})
	without := New(search.Spec{Folders: []string{"/data/"}, ShowMetadata: false}, []results.Entry{entry})

	on := withMeta.RenderLine(entry, 1).Display
	off := without.RenderLine(entry, 1).Display

	// Metadata off equals metadata on minus exactly the metadata columns.
	assert.Equal(t, off, strings.Replace(on, "1,024 B 2025-03-14 09:26:53 ", "", 1))
	assert.Equal(t, "1 /data/a.txt", off)
}

func TestRenderLine_NumberAlignment(t *testing.T) {
	withColor(t, false)

	entries := make([]results.Entry, 12)
	for i := range entries {
		entries[i] = results.Entry{Size: 1, Modified: "2025-01-01 00:00:00", Path: "/d/x"}
	}
	r := New(search.Spec{Folders: []string{"/d/"}, ShowMetadata: false}, entries)

	assert.True(t, strings.HasPrefix(r.RenderLine(entries[2], 3).Display, " 3 "),
		"single-digit labels pad to the width of the total count")
	assert.True(t, strings.HasPrefix(r.RenderLine(entries[11], 12).Display, "12 "))
}

func TestRenderLine_Styling(t *testing.T) {
	withColor(t, true)

	entries := []results.Entry{
		{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/data/report.txt"},
	}
	r := New(listSpec([]string{"/data/"}, []string{"rep"}), entries)

	display := r.RenderLine(entries[0], 1).Display

	assert.Contains(t, display, "\x1b[90m/data/\x1b[0m", "folder prefix grayed")
	assert.Contains(t, display, "\x1b[31;1mrep\x1b[0m", "fragment highlighted")
	assert.Contains(t, display, "\x1b[36m1\x1b[0m", "number colored")
}

func TestRenderLine_GraysLongestPrefix(t *testing.T) {
	withColor(t, true)

	entries := []results.Entry{
		{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/data/sub/x.txt"},
	}
	spec := listSpec([]string{"/data/", "/data/sub/"}, nil)
	r := New(spec, entries)

	display := r.RenderLine(entries[0], 1).Display
	assert.Contains(t, display, "\x1b[90m/data/sub/\x1b[0m")
}

func TestRenderLine_NoPrefixWhenNoFolderMatches(t *testing.T) {
	withColor(t, true)

	entries := []results.Entry{
		{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/elsewhere/x.txt"},
	}
	r := New(listSpec([]string{"/data/"}, nil), entries)

	display := r.RenderLine(entries[0], 1).Display
	assert.NotContains(t, display, "\x1b[90m")
}

func TestRenderLine_HighlightPreservesOriginalCase(t *testing.T) {
	withColor(t, true)

	entries := []results.Entry{
		{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/data/RePort.txt"},
	}
	r := New(listSpec([]string{"/data/"}, []string{"report"}), entries)

	display := r.RenderLine(entries[0], 1).Display
	assert.Contains(t, display, "\x1b[31;1mRePort\x1b[0m",
		"matching is case-insensitive but output keeps the original text")
}

func TestRenderLine_Encoding(t *testing.T) {
	withColor(t, false)

	entry := results.Entry{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/data/my file.txt"}
	safe := results.Entry{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/data/plain.txt"}

	t.Run("always", func(t *testing.T) {
		spec := listSpec([]string{"/data/"}, nil)
		spec.Encode = search.EncodeAlways
		r := New(spec, []results.Entry{entry})

		line := r.RenderLine(entry, 1)
		assert.Equal(t, "/data/my%20file.txt", line.EncodedPath)
		assert.Equal(t, "'/data/my%20file.txt'", line.QuotedPath)
		assert.Contains(t, line.Display, "/data/my%20file.txt")
	})

	t.Run("on demand applies only when it changes the path", func(t *testing.T) {
		spec := listSpec([]string{"/data/"}, nil)
		spec.Encode = search.EncodeOnDemand
		r := New(spec, []results.Entry{entry, safe})

		assert.Equal(t, "/data/my%20file.txt", r.RenderLine(entry, 1).EncodedPath)
		assert.Equal(t, "/data/plain.txt", r.RenderLine(safe, 2).EncodedPath)
	})

	t.Run("never", func(t *testing.T) {
		r := New(listSpec([]string{"/data/"}, nil), []results.Entry{entry})

		line := r.RenderLine(entry, 1)
		assert.Equal(t, "/data/my file.txt", line.EncodedPath)
		assert.Equal(t, "'/data/my file.txt'", line.QuotedPath)
	})
}

func TestRenderLine_EncodedFolderPrefixStillGrays(t *testing.T) {
	withColor(t, true)

	entry := results.Entry{Size: 10, Modified: "2025-03-14 09:26:53", Path: "/data dir/a b.txt"}
	spec := listSpec([]string{"/data dir/"}, nil)
	spec.Encode = search.EncodeAlways
	r := New(spec, []results.Entry{entry})

	display := r.RenderLine(entry, 1).Display
	assert.Contains(t, display, "\x1b[90m/data%20dir/\x1b[0m")
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
