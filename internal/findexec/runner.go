package findexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/marek/ff/internal/search"
)

// Runner executes the realized find|sort pipeline.
// It follows the http.Client pattern: create once, use many times.
type Runner struct {
	// FindPath is the path to the find binary.
	// Defaults to "find" (found in PATH).
	FindPath string

	// SortPath is the path to the sort binary.
	// Defaults to "sort" (found in PATH).
	SortPath string
}

// NewRunner creates a Runner with default binary paths.
func NewRunner() *Runner {
	return &Runner{
		FindPath: "find",
		SortPath: "sort",
	}
}

// Run executes the pipeline for the spec synchronously and returns sort's
// fully drained stdout. The two processes are connected directly by a pipe
// rather than through a shell, so a non-zero exit from either stage is
// observable and fatal: the error carries the shell form of the pipeline
// and the stage's captured stderr, and no partial results are returned.
// A failed sort is reported over a failed find: once sort abandons the
// pipe, find's own exit is a broken-pipe consequence.
func (r *Runner) Run(ctx context.Context, spec search.Spec) ([]byte, error) {
	findPath := r.FindPath
	if findPath == "" {
		findPath = "find"
	}
	sortPath := r.SortPath
	if sortPath == "" {
		sortPath = "sort"
	}

	findCmd := exec.CommandContext(ctx, findPath, FindArgs(spec)...)
	sortCmd := exec.CommandContext(ctx, sortPath, SortArgs(spec)...)

	pipe, err := findCmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to connect search pipeline: %w", err)
	}
	sortCmd.Stdin = pipe

	var findStderr, sortStderr, output bytes.Buffer
	findCmd.Stderr = &findStderr
	sortCmd.Stdout = &output
	sortCmd.Stderr = &sortStderr

	if err := findCmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start find: %w", err)
	}
	if err := sortCmd.Start(); err != nil {
		findCmd.Process.Kill()
		findCmd.Wait()
		return nil, fmt.Errorf("failed to start sort: %w", err)
	}

	// sort exits once the pipe is drained; only then may find be reaped.
	sortErr := sortCmd.Wait()
	if sortErr != nil {
		// sort died with the pipe undrained: find may be blocked writing
		// into it and will not exit while the read end stays open.
		pipe.Close()
	}
	findErr := findCmd.Wait()

	if sortErr != nil {
		return nil, fmt.Errorf("sort failed: %w (command: %s, output: %s)",
			sortErr, Pipeline(spec), strings.TrimSpace(sortStderr.String()))
	}
	if findErr != nil {
		return nil, fmt.Errorf("search failed: %w (command: %s, output: %s)",
			findErr, Pipeline(spec), strings.TrimSpace(findStderr.String()))
	}

	return output.Bytes(), nil
}
