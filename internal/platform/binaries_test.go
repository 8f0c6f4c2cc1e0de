package platform

import (
	"path/filepath"
	"testing"

	"github.com/datallboy/mvnsync/internal/infra/config"
	"github.com/stretchr/testify/assert"
)

func TestValidateDownloadTool(t *testing.T) {
	assert.NoError(t, ValidateDownloadTool(config.DownloadConfig{Tool: config.ToolBuiltin}))

	err := ValidateDownloadTool(config.DownloadConfig{
		Tool:     config.ToolWget,
		WgetPath: filepath.Join(t.TempDir(), "wget-not-here"),
	})
	assert.Error(t, err)
}
