package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/marek/ff/internal/action"
	"github.com/marek/ff/internal/config"
	"github.com/marek/ff/internal/findexec"
	"github.com/marek/ff/internal/history"
	"github.com/marek/ff/internal/logger"
	"github.com/marek/ff/internal/query"
	"github.com/marek/ff/internal/render"
	"github.com/marek/ff/internal/results"
	"github.com/marek/ff/internal/search"
)

// runPipeline executes the realized find|sort pipeline. Swappable in tests.
var runPipeline = func(ctx context.Context, spec search.Spec) ([]byte, error) {
	return findexec.NewRunner().Run(ctx, spec)
}

// runSearch implements the root command: classify the tokens, compile the
// spec, run the external pipeline, parse, render, and act on selections.
//
// Flag parsing is disabled on the root command, so -h/--help/--version are
// handled here, and only as the sole token: inside a larger query they are
// ordinary query tokens. An empty token list is a legal degenerate query
// that lists everything under the default root, newest first.
func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			fmt.Fprintf(out, "ff version %s\n", Version)
			return nil
		}
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	opts, err := classifierOptions(cfg)
	if err != nil {
		return err
	}

	cls := query.Classify(args, opts)

	warn := color.New(color.FgYellow)
	for _, w := range cls.Warnings {
		fmt.Fprintln(out, warn.Sprint(w))
	}

	spec := search.Compile(cls)
	log.LogDebug(fmt.Sprintf("searching %s", strings.Join(spec.Folders, " ")))

	if spec.PrintCommand {
		fmt.Fprintln(out, color.New(color.FgHiBlack).Sprint(findexec.Pipeline(spec)))
	}

	raw, err := runPipeline(cmd.Context(), spec)
	if err != nil {
		return err
	}

	entries := results.Parse(raw)
	log.LogDebug(fmt.Sprintf("%d results", len(entries)))

	renderer := render.New(spec, entries)
	lines := make([]render.Line, len(entries))
	for i, e := range entries {
		lines[i] = renderer.RenderLine(e, i+1)
	}

	if cfg.History {
		if err := recordQuery(cmd.Context(), strings.Join(args, " "), len(entries)); err != nil {
			log.LogWarn(fmt.Sprintf("history not recorded: %v", err))
		}
	}

	action.NewResolver(cfg.Opener).Run(out, spec, entries, lines, cls.Selectors)

	return nil
}

// classifierOptions resolves the environment-derived values the classifier
// needs: default root, home, and working directory.
func classifierOptions(cfg *config.Config) (query.Options, error) {
	root, err := cfg.DefaultRoot()
	if err != nil {
		return query.Options{}, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return query.Options{}, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return query.Options{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	return query.Options{DefaultRoot: root, Home: home, WorkingDir: wd}, nil
}

// recordQuery appends one run to the history database.
func recordQuery(ctx context.Context, rawQuery string, resultCount int) error {
	dbPath, err := config.HistoryDBPath()
	if err != nil {
		return err
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(ctx, rawQuery, resultCount)
	return err
}
