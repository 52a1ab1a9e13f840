// Package search compiles a classified query into an immutable search
// specification: the declarative description of what the external find
// pipeline should match, exclude, and how results are sorted and shown.
package search

// EntityKind selects what kind of filesystem entry the search returns.
type EntityKind int

const (
	// KindFile matches regular files
	KindFile EntityKind = iota
	// KindDirectory matches directories, pruning below each match
	KindDirectory
)

// String returns the string representation of the EntityKind
func (k EntityKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	default:
		return "file"
	}
}

// SortKey selects the result ordering column.
type SortKey int

const (
	// SortModifiedTime orders by modification timestamp
	SortModifiedTime SortKey = iota
	// SortName orders by path name
	SortName
	// SortSize orders by size in bytes
	SortSize
)

// String returns the string representation of the SortKey
func (s SortKey) String() string {
	switch s {
	case SortName:
		return "name"
	case SortSize:
		return "size"
	default:
		return "time"
	}
}

// OutputMode selects what is printed per in-scope entry.
type OutputMode int

const (
	// OutputList prints the numbered, highlighted listing (default)
	OutputList OutputMode = iota
	// OutputPath prints the quoted path only
	OutputPath
	// OutputFolder prints the quoted containing folder only
	OutputFolder
)

// String returns the string representation of the OutputMode
func (m OutputMode) String() string {
	switch m {
	case OutputPath:
		return "path"
	case OutputFolder:
		return "folder"
	default:
		return "list"
	}
}

// EncodeMode selects when paths are percent-encoded for file:// use.
type EncodeMode int

const (
	// EncodeNever leaves paths as-is (default)
	EncodeNever EncodeMode = iota
	// EncodeOnDemand encodes only when encoding changes the path
	EncodeOnDemand
	// EncodeAlways encodes unconditionally
	EncodeAlways
)

// String returns the string representation of the EncodeMode
func (m EncodeMode) String() string {
	switch m {
	case EncodeOnDemand:
		return "on-demand"
	case EncodeAlways:
		return "always"
	default:
		return "never"
	}
}

// Spec is the compiled search specification. It is built once per
// invocation by Compile and consumed read-only by the pipeline builder,
// the renderer and the action resolver.
type Spec struct {
	// Folders are the normalized search roots, each with a trailing
	// separator.
	Folders []string

	// Includes are the raw include fragments, kept for highlighting.
	Includes []string

	// Matches are the case-insensitive path globs a result must satisfy,
	// all of them. Sequential mode yields a single interleaved glob;
	// any-order mode yields one glob per fragment. Empty matches
	// everything.
	Matches []string

	// Exclusions are case-insensitive path globs a result must not
	// satisfy.
	Exclusions []string

	// Kind selects file or directory search.
	Kind EntityKind

	// SortKey and SortAscending define the result order.
	SortKey       SortKey
	SortAscending bool

	// ShowMetadata keeps the size/time columns in the listing.
	ShowMetadata bool

	// AnyOrder records the fragment matching policy for the renderer.
	AnyOrder bool

	// IncludeAll drops the default hidden/build-artifact exclusions.
	IncludeAll bool

	// Output selects the per-entry print mode.
	Output OutputMode

	// Open launches each in-scope entry with the configured opener.
	Open bool

	// Encode selects when paths are link-encoded.
	Encode EncodeMode

	// PrintCommand echoes the underlying pipeline before results.
	PrintCommand bool
}
