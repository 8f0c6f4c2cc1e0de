package fetcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWget writes a shell script standing in for wget. It records its
// arguments next to itself and writes "payload" to the -O destination.
func fakeWget(t *testing.T, exitCode string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in needs a POSIX shell")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "wget")
	content := `#!/bin/sh
printf '%s\n' "$@" > "` + filepath.Join(dir, "args") + `"
printf 'payload' > "$4"
exit ` + exitCode + `
`
	require.NoError(t, os.WriteFile(script, []byte(content), 0755))
	return script
}

func TestCLIWget_Args(t *testing.T) {
	w := &CLIWget{BinaryPath: "wget"}

	assert.Equal(t, []string{
		"--no-check-certificate",
		"--progress=bar:force:noscroll",
		"-O", "/data/a.cdf",
		"https://mirror/a.cdf",
	}, w.Args("https://mirror/a.cdf", "/data/a.cdf"))
}

func TestCLIWget_FetchSuccess(t *testing.T) {
	script := fakeWget(t, "0")

	w, err := NewCLIWget(script)
	require.NoError(t, err)
	w.Stdout, w.Stderr = io.Discard, io.Discard

	dest := filepath.Join(t.TempDir(), "a.cdf")
	require.NoError(t, w.Fetch(context.Background(), "https://mirror/a.cdf", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	args, err := os.ReadFile(filepath.Join(filepath.Dir(script), "args"))
	require.NoError(t, err)
	assert.Equal(t, "--no-check-certificate\n--progress=bar:force:noscroll\n-O\n"+dest+"\nhttps://mirror/a.cdf\n", string(args))
}

func TestCLIWget_FetchNonZeroExit(t *testing.T) {
	script := fakeWget(t, "8")

	w, err := NewCLIWget(script)
	require.NoError(t, err)
	w.Stdout, w.Stderr = io.Discard, io.Discard

	err = w.Fetch(context.Background(), "https://mirror/a.cdf", filepath.Join(t.TempDir(), "a.cdf"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Contains(t, err.Error(), "status 8")
}

func TestNewCLIWget_Missing(t *testing.T) {
	_, err := NewCLIWget(filepath.Join(t.TempDir(), "no-such-wget"))
	assert.Error(t, err)
}
