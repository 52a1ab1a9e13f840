package action

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// launchDetached starts the opener for one path and lets go: the child is
// released so the one-shot CLI never blocks on the user's viewer, and its
// output is discarded so it cannot interleave with the rendered listing.
// The path travels as a single argument vector element, so no shell quoting
// applies.
func launchDetached(opener, path string) error {
	if opener == "" {
		opener = defaultOpener()
	}

	cmd := exec.Command(opener, path)
	cmd.Stdin = nil

	if devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
		cmd.Stdout = devNull
		cmd.Stderr = devNull
		defer devNull.Close()
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", opener, err)
	}

	return cmd.Process.Release()
}

// defaultOpener returns the platform file-opening command.
func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
