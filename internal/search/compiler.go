package search

import (
	"strings"

	"github.com/marek/ff/internal/query"
)

// defaultExclusions hide dotfile paths and well-known build-artifact
// directories unless the include-all flag is given.
var defaultExclusions = []string{
	"*/.*",
	"*/node_modules/*",
	"*/__pycache__/*",
}

// flagEffects maps each flag to its effect on the spec. Flags are applied
// in classification order, so for conflicting flags (sort keys, output
// modes, encode modes) the last one given wins.
var flagEffects = map[query.FlagId]func(*Spec){
	query.FlagAnyOrder:     func(s *Spec) { s.AnyOrder = true },
	query.FlagDirectories:  func(s *Spec) { s.Kind = KindDirectory },
	query.FlagIncludeAll:   func(s *Spec) { s.IncludeAll = true },
	query.FlagHideMetadata: func(s *Spec) { s.ShowMetadata = false },
	query.FlagSortNameAsc:  func(s *Spec) { s.SortKey = SortName; s.SortAscending = true },
	query.FlagSortNameDesc: func(s *Spec) { s.SortKey = SortName; s.SortAscending = false },
	query.FlagSortSizeAsc:  func(s *Spec) { s.SortKey = SortSize; s.SortAscending = true },
	query.FlagSortSizeDesc: func(s *Spec) { s.SortKey = SortSize; s.SortAscending = false },
	query.FlagSortTimeAsc:  func(s *Spec) { s.SortKey = SortModifiedTime; s.SortAscending = true },
	query.FlagSortTimeDesc: func(s *Spec) { s.SortKey = SortModifiedTime; s.SortAscending = false },
	query.FlagPathOnly:     func(s *Spec) { s.Output = OutputPath },
	query.FlagFolderOnly:   func(s *Spec) { s.Output = OutputFolder },
	query.FlagOpen:         func(s *Spec) { s.Open = true },
	query.FlagEncodeAlways: func(s *Spec) { s.Encode = EncodeAlways },
	query.FlagEncodeOnDemand: func(s *Spec) {
		s.Encode = EncodeOnDemand
	},
	query.FlagPrintCommand: func(s *Spec) { s.PrintCommand = true },
}

// Compile turns a classification into a search specification. It is a pure
// function: no I/O, no errors, degenerate queries are legal and compile to
// a spec that matches everything.
//
// Defaults: files, sorted by modification time descending (newest first),
// metadata columns shown, sequential fragment matching, default exclusions
// active.
func Compile(c query.Classification) Spec {
	s := Spec{
		Folders:       c.Folders,
		Includes:      c.Includes,
		Kind:          KindFile,
		SortKey:       SortModifiedTime,
		SortAscending: false,
		ShowMetadata:  true,
		Output:        OutputList,
		Encode:        EncodeNever,
	}

	for _, f := range c.Flags {
		if effect, ok := flagEffects[f]; ok {
			effect(&s)
		}
	}

	if len(c.Includes) > 0 {
		if s.AnyOrder {
			// Each fragment may appear anywhere, independently.
			for _, frag := range c.Includes {
				s.Matches = append(s.Matches, "*"+frag+"*")
			}
		} else {
			// Fragments must appear as ordered, non-overlapping
			// substrings, in the given sequence.
			s.Matches = []string{"*" + strings.Join(c.Includes, "*") + "*"}
		}
	}

	if !s.IncludeAll {
		s.Exclusions = append(s.Exclusions, defaultExclusions...)
	}
	for _, frag := range c.Excludes {
		s.Exclusions = append(s.Exclusions, "*"+frag+"*")
	}

	return s
}
