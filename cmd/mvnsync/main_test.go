package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datallboy/mvnsync/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig keeps the log file and history database inside the test dir.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	content := strings.Join([]string{
		"local:",
		"  root: " + filepath.ToSlash(filepath.Join(dir, "data")),
		"log:",
		"  path: " + filepath.ToSlash(filepath.Join(dir, "mvnsync.log")),
		"  include_stdout: false",
		"store:",
		"  dsn: " + filepath.ToSlash(filepath.Join(dir, "mvnsync.db")),
		"download:",
		"  tool: builtin",
	}, "\n")

	path := filepath.Join(dir, "mvnsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDirsCommand(t *testing.T) {
	cfg := writeTestConfig(t)

	out, err := execute(t, "dirs", "mag", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "l2/sav/1sec\nl2/sav/30sec\nl2/sav/full\n", out)

	out, err = execute(t, "dirs", "swe", "--config", cfg, "--month", "2021-01", "--mirror", "lasp")
	require.NoError(t, err)
	assert.Contains(t, out, "https://lasp.colorado.edu/maven/sdc/public/data/sci/swe/l2/2021/01/")
	assert.Contains(t, out, "https://lasp.colorado.edu/maven/sdc/public/data/sci/swe/ql/2021/01/")
}

func TestListCommand(t *testing.T) {
	mirror := testutils.StartMirror(t)
	mirror.AddDir("swe/l2/2015/01/", "a.cdf", "b.png")

	out, err := execute(t, "list", "swe", "l2", "2015-01", "--config", writeTestConfig(t), "--base-url", mirror.BaseURL())
	require.NoError(t, err)
	assert.Contains(t, out, "1 files")
	assert.Contains(t, out, "a.cdf")
	assert.NotContains(t, out, "b.png")
}

func TestSyncCommand_ThenHistory(t *testing.T) {
	mirror := testutils.StartMirror(t)
	mirror.AddFile("swe/l2/2015/01/a.cdf", []byte("A"))

	cfg := writeTestConfig(t)
	root := filepath.Join(t.TempDir(), "mirror")

	_, err := execute(t, "sync", "-i", "swe", "--start", "2015-01", "--end", "2015-01",
		"--config", cfg, "--base-url", mirror.BaseURL(), "--root", root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "swe", "l2", "2015", "01", "a.cdf"))
	require.NoError(t, err)
	assert.Equal(t, "A", string(data))

	out, err := execute(t, "history", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "2015-01..2015-01")
	assert.Contains(t, out, "completed")
}

func TestSyncCommand_InvalidMonth(t *testing.T) {
	_, err := execute(t, "sync", "-i", "swe", "--start", "2015-13", "--end", "2016-01",
		"--config", writeTestConfig(t), "--dry-run")
	assert.Error(t, err)
}

func TestSyncCommand_RequiresFlags(t *testing.T) {
	_, err := execute(t, "sync", "--config", writeTestConfig(t))
	assert.Error(t, err)
}
