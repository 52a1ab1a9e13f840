package results

import (
	"reflect"
	"testing"
)

func TestParse_WellFormedLines(t *testing.T) {
	raw := []byte("        1024 2025-03-14 09:26:53 /data/a.txt\n" +
		"     2048000 2025-01-01 00:00:00 /data/b/c.pdf\n")

	got := Parse(raw)

	want := []Entry{
		{
			Raw:      "        1024 2025-03-14 09:26:53 /data/a.txt",
			Size:     1024,
			Modified: "2025-03-14 09:26:53",
			Path:     "/data/a.txt",
		},
		{
			Raw:      "     2048000 2025-01-01 00:00:00 /data/b/c.pdf",
			Size:     2048000,
			Modified: "2025-01-01 00:00:00",
			Path:     "/data/b/c.pdf",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_DropsLinesWithoutSeparator(t *testing.T) {
	raw := []byte("some stray warning\n" +
		"        1024 2025-03-14 09:26:53 /data/a.txt\n")

	got := Parse(raw)

	if len(got) != 1 || got[0].Path != "/data/a.txt" {
		t.Errorf("Parse = %+v, want only /data/a.txt", got)
	}
}

func TestParse_DropsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing timestamp", "        1024 /data/a.txt"},
		{"garbled timestamp", "        1024 2025-3-14 9:26:53 /data/a.txt"},
		{"non-numeric size", "        12x4 2025-03-14 09:26:53 /data/a.txt"},
		{"path separator but no metadata", "/data/bare/path.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse([]byte(tt.line + "\n")); len(got) != 0 {
				t.Errorf("Parse(%q) = %+v, want empty", tt.line, got)
			}
		})
	}
}

func TestParse_SizeWidthVaries(t *testing.T) {
	// The size column is minimum-width: huge sizes widen it, and other
	// producers may not pad at all.
	raw := []byte("1234567890123456 2025-03-14 09:26:53 /data/huge.bin\n" +
		"7 2025-03-14 09:26:53 /data/tiny\n")

	got := Parse(raw)

	if len(got) != 2 {
		t.Fatalf("Parse returned %d entries, want 2", len(got))
	}
	if got[0].Size != 1234567890123456 {
		t.Errorf("Size = %d, want 1234567890123456", got[0].Size)
	}
	if got[1].Size != 7 {
		t.Errorf("Size = %d, want 7", got[1].Size)
	}
}

func TestParse_PathsWithSpaces(t *testing.T) {
	raw := []byte("         512 2025-03-14 09:26:53 /data/My Documents/letter final.odt\n")

	got := Parse(raw)

	if len(got) != 1 {
		t.Fatalf("Parse returned %d entries, want 1", len(got))
	}
	if got[0].Path != "/data/My Documents/letter final.odt" {
		t.Errorf("Path = %q", got[0].Path)
	}
}

func TestParse_DeduplicatesOverlappingRoots(t *testing.T) {
	raw := []byte("        1024 2025-03-14 09:26:53 /data/a.txt\n" +
		"        4096 2025-03-14 09:26:53 /data/sub/b.txt\n" +
		"        1024 2025-03-14 09:26:53 /data/a.txt\n")

	got := Parse(raw)

	if len(got) != 2 {
		t.Fatalf("Parse returned %d entries, want 2 after dedup", len(got))
	}
	if got[0].Path != "/data/a.txt" || got[1].Path != "/data/sub/b.txt" {
		t.Errorf("unexpected order: %+v", got)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if got := Parse(nil); len(got) != 0 {
		t.Errorf("Parse(nil) = %+v, want empty", got)
	}
	if got := Parse([]byte("\n\n")); len(got) != 0 {
		t.Errorf("Parse(blank) = %+v, want empty", got)
	}
}
