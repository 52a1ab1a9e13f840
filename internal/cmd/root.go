package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for ff
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ff [query...]",
		Short: "Numbered, colorized file search",
		Long: `ff searches folders for files whose paths contain the given fragments
and prints a numbered, highlighted listing, newest first.

Every token is part of the query language. Flags are single tokens and
are never combined: -pi is the exclude fragment "pi", not -p -i. The
history and config subcommands apply only when named by the first
argument; anywhere else those words are ordinary query tokens.

Tokens:
  word           the path must contain "word"; several fragments must
                 appear in the given order unless -a is set
  -word          the path must not contain "word"
  /dir ~/src .   folder(s) to search; without one the default root is
                 $FF_ROOT, the configured root, or your home directory
  -3             act on result number 3 only (repeatable)
  --             every later token is a result number

Flags:
  -a   match include fragments in any order
  -d   search directories instead of files (no descent past a match)
  -i   include hidden files and build artifacts
  -m   hide the size and date columns
  -n / -N   sort by name, ascending / descending
  -s / -S   sort by size, ascending / descending
  -t / -T   sort by modified time, ascending / descending
  -p   print quoted paths instead of the listing
  -f   print quoted containing folders instead of the listing
  -o   open each selected result with the configured opener
  -u   percent-encode displayed paths for file:// links
  -U   percent-encode only when encoding changes the path
  -v   print the underlying find | sort pipeline before the results

Examples:
  # Newest files mentioning report and pdf, skipping drafts
  ff report pdf -draft

  # Largest directories under /var/log
  ff /var/log -d -S

  # Open the two newest invoices
  ff invoice -o -1 -2

  # Quoted paths for scripting
  ff ~/notes meeting -p`,
		Version: Version,
		// The query language owns dash tokens (-d is a query flag, -draft
		// an exclude fragment), so cobra must hand them through unparsed.
		DisableFlagParsing: true,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main prints the error once; cobra must not print it too
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runSearch,
	}

	// Add subcommands
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewConfigCommand())

	return cmd
}

// Execute builds the command tree for os.Args and runs it.
func Execute() error {
	return newCLI(os.Args[1:]).Execute()
}

// newCLI builds the root command routed for one raw argument list.
//
// Cobra matches subcommands against the first token that does not look
// like a flag, which inside a query can be a word like "config" sitting
// after dash tokens: "ff -draft config" must search, not configure.
// Routing is therefore pinned to the first raw argument. Unless it names
// a subcommand outright, the subcommands are detached and the whole
// argument list belongs to the query.
func newCLI(args []string) *cobra.Command {
	root := NewRootCommand()
	if !routesToSubcommand(root, args) {
		root.RemoveCommand(root.Commands()...)
		root.CompletionOptions.DisableDefaultCmd = true
	}
	root.SetArgs(args)
	return root
}

// routesToSubcommand reports whether the first raw argument names a
// subcommand or one of cobra's built-in commands. Sole help and version
// tokens keep the full tree so that the help output lists the
// subcommands.
func routesToSubcommand(root *cobra.Command, args []string) bool {
	if len(args) == 0 {
		return false
	}
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help", "--version":
			return true
		}
	}
	switch args[0] {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	for _, sub := range root.Commands() {
		if args[0] == sub.Name() || sub.HasAlias(args[0]) {
			return true
		}
	}
	return false
}
