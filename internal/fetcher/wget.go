package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

type CLIWget struct {
	BinaryPath string
	Stdout     io.Writer
	Stderr     io.Writer
}

// NewCLIWget resolves the wget binary. An empty path searches PATH.
func NewCLIWget(path string) (*CLIWget, error) {
	if path == "" {
		path = "wget"
	}

	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("wget binary not found (%s): %w", path, err)
	}

	return &CLIWget{
		BinaryPath: resolved,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}, nil
}

// Args builds the wget command line for one file.
func (w *CLIWget) Args(url, dest string) []string {
	// --no-check-certificate: the mirrors' certificate chains are not always complete
	// --progress=bar:force:noscroll: keep the bar even when stdout is not a tty
	return []string{
		"--no-check-certificate",
		"--progress=bar:force:noscroll",
		"-O", dest,
		url,
	}
}

// Fetch runs wget to completion. There is no timeout beyond ctx.
func (w *CLIWget) Fetch(ctx context.Context, url, dest string) error {
	cmd := exec.CommandContext(ctx, w.BinaryPath, w.Args(url, dest)...)
	cmd.Stdout = w.Stdout
	cmd.Stderr = w.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitError *exec.ExitError
	if errors.As(err, &exitError) {
		return fmt.Errorf("%w: wget exited with status %d", ErrFetchFailed, exitError.ExitCode())
	}
	return fmt.Errorf("%w: %v", ErrFetchFailed, err)
}
