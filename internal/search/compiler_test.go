package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marek/ff/internal/query"
)

func TestCompile_Defaults(t *testing.T) {
	s := Compile(query.Classification{Folders: []string{"/data/"}})

	assert.Equal(t, []string{"/data/"}, s.Folders)
	assert.Empty(t, s.Matches, "no includes means no match clause")
	assert.Equal(t, KindFile, s.Kind)
	assert.Equal(t, SortModifiedTime, s.SortKey)
	assert.False(t, s.SortAscending, "default order is newest first")
	assert.True(t, s.ShowMetadata)
	assert.Equal(t, OutputList, s.Output)
	assert.Equal(t, EncodeNever, s.Encode)
	assert.False(t, s.Open)
	assert.False(t, s.PrintCommand)
	assert.Equal(t, defaultExclusions, s.Exclusions)
}

func TestCompile_SequentialMatch(t *testing.T) {
	s := Compile(query.Classification{
		Folders:  []string{"/data/"},
		Includes: []string{"a", "b"},
	})

	// One interleaved glob, fragments in the given sequence.
	assert.Equal(t, []string{"*a*b*"}, s.Matches)
}

func TestCompile_AnyOrderMatch(t *testing.T) {
	s := Compile(query.Classification{
		Folders:  []string{"/data/"},
		Includes: []string{"a", "b"},
		Flags:    []query.FlagId{query.FlagAnyOrder},
	})

	assert.Equal(t, []string{"*a*", "*b*"}, s.Matches)
	assert.True(t, s.AnyOrder)
}

func TestCompile_Exclusions(t *testing.T) {
	t.Run("excludes append to defaults", func(t *testing.T) {
		s := Compile(query.Classification{
			Folders:  []string{"/data/"},
			Excludes: []string{"test"},
		})

		assert.Equal(t, append(append([]string{}, defaultExclusions...), "*test*"), s.Exclusions)
	})

	t.Run("include all drops defaults only", func(t *testing.T) {
		s := Compile(query.Classification{
			Folders:  []string{"/data/"},
			Excludes: []string{"test"},
			Flags:    []query.FlagId{query.FlagIncludeAll},
		})

		assert.Equal(t, []string{"*test*"}, s.Exclusions)
	})
}

func TestCompile_FlagEffects(t *testing.T) {
	tests := []struct {
		name  string
		flags []query.FlagId
		check func(t *testing.T, s Spec)
	}{
		{
			name:  "directories",
			flags: []query.FlagId{query.FlagDirectories},
			check: func(t *testing.T, s Spec) { assert.Equal(t, KindDirectory, s.Kind) },
		},
		{
			name:  "hide metadata",
			flags: []query.FlagId{query.FlagHideMetadata},
			check: func(t *testing.T, s Spec) { assert.False(t, s.ShowMetadata) },
		},
		{
			name:  "name ascending",
			flags: []query.FlagId{query.FlagSortNameAsc},
			check: func(t *testing.T, s Spec) {
				assert.Equal(t, SortName, s.SortKey)
				assert.True(t, s.SortAscending)
			},
		},
		{
			name:  "size descending",
			flags: []query.FlagId{query.FlagSortSizeDesc},
			check: func(t *testing.T, s Spec) {
				assert.Equal(t, SortSize, s.SortKey)
				assert.False(t, s.SortAscending)
			},
		},
		{
			name:  "last sort flag wins",
			flags: []query.FlagId{query.FlagSortNameAsc, query.FlagSortSizeDesc},
			check: func(t *testing.T, s Spec) {
				assert.Equal(t, SortSize, s.SortKey)
				assert.False(t, s.SortAscending)
			},
		},
		{
			name:  "last output mode wins",
			flags: []query.FlagId{query.FlagPathOnly, query.FlagFolderOnly},
			check: func(t *testing.T, s Spec) { assert.Equal(t, OutputFolder, s.Output) },
		},
		{
			name:  "open",
			flags: []query.FlagId{query.FlagOpen},
			check: func(t *testing.T, s Spec) { assert.True(t, s.Open) },
		},
		{
			name:  "encode always",
			flags: []query.FlagId{query.FlagEncodeAlways},
			check: func(t *testing.T, s Spec) { assert.Equal(t, EncodeAlways, s.Encode) },
		},
		{
			name:  "encode on demand",
			flags: []query.FlagId{query.FlagEncodeOnDemand},
			check: func(t *testing.T, s Spec) { assert.Equal(t, EncodeOnDemand, s.Encode) },
		},
		{
			name:  "print command",
			flags: []query.FlagId{query.FlagPrintCommand},
			check: func(t *testing.T, s Spec) { assert.True(t, s.PrintCommand) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compile(query.Classification{Folders: []string{"/data/"}, Flags: tt.flags})
			tt.check(t, s)
		})
	}
}

func TestCompile_FromClassifiedTokens(t *testing.T) {
	// The documented scenario: "src -test" matches on src, excludes test.
	c := query.Classify([]string{"src", "-test"}, query.Options{
		DefaultRoot: "/data",
		Home:        "/home/u",
		WorkingDir:  "/work",
	})
	s := Compile(c)

	assert.Equal(t, []string{"/data/"}, s.Folders)
	assert.Equal(t, []string{"*src*"}, s.Matches)
	assert.Contains(t, s.Exclusions, "*test*")
}
