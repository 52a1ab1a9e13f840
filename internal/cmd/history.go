package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marek/ff/internal/config"
	"github.com/marek/ff/internal/history"
)

// NewHistoryCommand creates the 'ff history' command
func NewHistoryCommand() *cobra.Command {
	var limit int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent queries",
		Long: `List the most recent queries, newest first, with their timestamps and
result counts.

Every search is recorded unless disabled with:
  ff config set history false

Examples:
  # The last 20 queries
  ff history

  # The last 5
  ff history --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryList(cmd, limit, dbPath)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of queries to list")
	cmd.Flags().StringVar(&dbPath, "db-path", "", "Path to history database (for testing)")

	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

// runHistoryList executes the history command
func runHistoryList(cmd *cobra.Command, limit int, dbPathOverride string) error {
	output := cmd.OutOrStdout()

	dbPath, err := resolveHistoryDBPath(dbPathOverride)
	if err != nil {
		return err
	}

	// A store is only created once a query is recorded
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintf(output, "No queries recorded yet.\n")
		return nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	records, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(output, "No queries recorded yet.\n")
		return nil
	}

	for _, r := range records {
		q := r.Query
		if q == "" {
			q = "(everything)"
		}
		fmt.Fprintf(output, "%s  %5d  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.ResultCount, q)
	}

	return nil
}

// newHistoryClearCommand creates the 'ff history clear' command
func newHistoryClearCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd, dbPath)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db-path", "", "Path to history database (for testing)")

	return cmd
}

// runHistoryClear executes the clear command
func runHistoryClear(cmd *cobra.Command, dbPathOverride string) error {
	output := cmd.OutOrStdout()

	dbPath, err := resolveHistoryDBPath(dbPathOverride)
	if err != nil {
		return err
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintf(output, "No queries recorded yet.\n")
		return nil
	}

	fmt.Fprintf(output, "WARNING: This will delete all recorded queries.\n")
	if !confirmAction(output) {
		fmt.Fprintf(output, "Operation cancelled.\n")
		return nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(output, "History cleared.\n")
	return nil
}

// resolveHistoryDBPath returns the override when given, else the default
// location under the ff config directory.
func resolveHistoryDBPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	dbPath, err := config.HistoryDBPath()
	if err != nil {
		return "", fmt.Errorf("failed to resolve history database path: %w", err)
	}
	return dbPath, nil
}

// confirmAction prompts the user for confirmation
func confirmAction(output io.Writer) bool {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprintf(output, "Continue? [y/N]: ")

	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return response == "y" || response == "yes"
}
