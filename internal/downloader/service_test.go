package downloader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/datallboy/mvnsync/internal/domain"
	"github.com/datallboy/mvnsync/internal/infra/logger"
	"github.com/datallboy/mvnsync/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fileURL = "https://mirror.example/sci/swe/l2/2020/01/a.cdf"

func newService(f *testutils.FakeFetcher) *Service {
	return NewService(f, logger.NewWriter(io.Discard, logger.LevelDebug))
}

func TestDownload_ExistingFileIsSkipped(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		f := testutils.NewFakeFetcher()
		dest := filepath.Join(t.TempDir(), "a.cdf")
		require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

		out := newService(f).Download(context.Background(), fileURL, dest, dryRun)

		assert.Equal(t, domain.OutcomeSkipped, out.Kind, "dryRun=%v", dryRun)
		assert.Zero(t, f.CallCount(), "fetcher must not run for an existing file")

		data, err := os.ReadFile(dest)
		require.NoError(t, err)
		assert.Equal(t, "old", string(data))
	}
}

func TestDownload_DryRunTouchesNothing(t *testing.T) {
	f := testutils.NewFakeFetcher()
	root := t.TempDir()
	dest := filepath.Join(root, "swe", "l2", "2020", "01", "a.cdf")

	out := newService(f).Download(context.Background(), fileURL, dest, true)

	assert.Equal(t, domain.OutcomeDryRun, out.Kind)
	assert.Equal(t, "[DRY-RUN] Would download "+fileURL, out.Message())
	assert.Zero(t, f.CallCount())

	_, err := os.Stat(filepath.Join(root, "swe"))
	assert.True(t, os.IsNotExist(err), "dry run must not create directories")
}

func TestDownload_CreatesParentsAndFetches(t *testing.T) {
	f := testutils.NewFakeFetcher()
	dest := filepath.Join(t.TempDir(), "swe", "l2", "2020", "01", "a.cdf")

	out := newService(f).Download(context.Background(), fileURL, dest, false)

	assert.Equal(t, domain.OutcomeDownloaded, out.Kind)
	assert.Equal(t, "[OK] Downloaded: a.cdf", out.Message())
	assert.Equal(t, []string{fileURL}, f.Calls)
	assert.True(t, Exists(dest))
}

func TestDownload_FailureRemovesPartialFile(t *testing.T) {
	f := testutils.NewFakeFetcher()
	f.Fail[fileURL] = true
	dest := filepath.Join(t.TempDir(), "a.cdf")

	out := newService(f).Download(context.Background(), fileURL, dest, false)

	assert.Equal(t, domain.OutcomeFailed, out.Kind)
	assert.Error(t, out.Err)
	assert.Equal(t, "[FAIL] Download failed: "+fileURL, out.Message())
	assert.False(t, Exists(dest), "a failed transfer must not look synced")
}
