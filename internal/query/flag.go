package query

// FlagId identifies one recognized query flag.
// Flags are single tokens and are never combined: -pi is not -p -i.
type FlagId int

const (
	// FlagUnknown represents a token that is not a recognized flag
	FlagUnknown FlagId = iota
	// FlagAnyOrder (-a) lets include fragments match in any relative order
	FlagAnyOrder
	// FlagDirectories (-d) searches for directories and prunes below matches
	FlagDirectories
	// FlagIncludeAll (-i) drops the default hidden/build-artifact exclusions
	FlagIncludeAll
	// FlagHideMetadata (-m) strips the size/time columns from output
	FlagHideMetadata
	// FlagSortNameAsc (-n) sorts by path name, ascending
	FlagSortNameAsc
	// FlagSortNameDesc (-N) sorts by path name, descending
	FlagSortNameDesc
	// FlagSortSizeAsc (-s) sorts by size, ascending
	FlagSortSizeAsc
	// FlagSortSizeDesc (-S) sorts by size, descending
	FlagSortSizeDesc
	// FlagSortTimeAsc (-t) sorts by modification time, ascending
	FlagSortTimeAsc
	// FlagSortTimeDesc (-T) sorts by modification time, descending
	FlagSortTimeDesc
	// FlagPathOnly (-p) prints the quoted path per entry instead of the listing
	FlagPathOnly
	// FlagFolderOnly (-f) prints the quoted containing folder per entry
	FlagFolderOnly
	// FlagOpen (-o) opens each in-scope entry with the launcher
	FlagOpen
	// FlagEncodeAlways (-u) link-encodes paths unconditionally
	FlagEncodeAlways
	// FlagEncodeOnDemand (-U) link-encodes paths only when encoding changes them
	FlagEncodeOnDemand
	// FlagPrintCommand (-v) prints the underlying search command before results
	FlagPrintCommand
)

// String returns the flag token as it appears on the command line.
func (f FlagId) String() string {
	for token, id := range reservedFlags {
		if id == f {
			return token
		}
	}
	return "unknown"
}

// reservedFlags maps literal flag tokens to their FlagId.
// Case matters: sort flags pick direction by letter case.
var reservedFlags = map[string]FlagId{
	"-a": FlagAnyOrder,
	"-d": FlagDirectories,
	"-i": FlagIncludeAll,
	"-m": FlagHideMetadata,
	"-n": FlagSortNameAsc,
	"-N": FlagSortNameDesc,
	"-s": FlagSortSizeAsc,
	"-S": FlagSortSizeDesc,
	"-t": FlagSortTimeAsc,
	"-T": FlagSortTimeDesc,
	"-p": FlagPathOnly,
	"-f": FlagFolderOnly,
	"-o": FlagOpen,
	"-u": FlagEncodeAlways,
	"-U": FlagEncodeOnDemand,
	"-v": FlagPrintCommand,
}

// lookupFlag returns the FlagId for a token, or FlagUnknown if the token is
// not a reserved flag literal.
func lookupFlag(token string) FlagId {
	if id, ok := reservedFlags[token]; ok {
		return id
	}
	return FlagUnknown
}
