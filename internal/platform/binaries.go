package platform

import (
	"fmt"
	"os/exec"

	"github.com/datallboy/mvnsync/internal/infra/config"
)

// ValidateDownloadTool fails when the configured download tool cannot be run.
// The builtin fetcher needs nothing external.
func ValidateDownloadTool(cfg config.DownloadConfig) error {
	if cfg.Tool == config.ToolBuiltin {
		return nil
	}

	bin := cfg.WgetPath
	if bin == "" {
		bin = "wget"
	}

	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("required dependency: '%s' not found (set download.wget_path or download.tool: builtin)", bin)
	}
	return nil
}
