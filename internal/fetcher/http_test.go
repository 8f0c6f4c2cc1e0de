package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/datallboy/mvnsync/internal/infra/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_FetchOverSelfSignedTLS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "cdf-bytes")
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "b.cdf")
	require.NoError(t, NewHTTP("Mozilla/5.0").Fetch(context.Background(), server.URL+"/b.cdf", dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "cdf-bytes", string(data))

	_, err = os.Stat(dest + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestHTTP_FetchNotFoundLeavesNothing(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "missing.cdf")
	err := NewHTTP("").Fetch(context.Background(), server.URL+"/missing.cdf", dest)

	assert.ErrorIs(t, err, ErrFetchFailed)
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNew_SelectsTool(t *testing.T) {
	f, err := New(config.DownloadConfig{Tool: config.ToolBuiltin}, "ua")
	require.NoError(t, err)
	assert.IsType(t, &HTTP{}, f)

	_, err = New(config.DownloadConfig{Tool: "aria2c"}, "ua")
	assert.Error(t, err)
}
