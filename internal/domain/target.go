package domain

import (
	"path/filepath"
	"strings"
)

// Target is one instrument/subdirectory/month combination to sync.
// The remote URL and the local directory are both derived from it, so the
// two trees always share the same segments.
type Target struct {
	Instrument string `json:"instrument"`
	Subdir     string `json:"subdir"`
	Month      Month  `json:"month"`
}

// RemoteURL builds <base>/<instrument>/<subdir>/<year>/<MM>/
func (t Target) RemoteURL(baseURL string) string {
	segments := []string{
		strings.TrimRight(baseURL, "/"),
		t.Instrument,
		strings.Trim(t.Subdir, "/"),
		t.Month.YearSegment(),
		t.Month.MonthSegment(),
	}
	return strings.Join(segments, "/") + "/"
}

// LocalDir builds <root>/<instrument>/<subdir>/<year>/<MM>
func (t Target) LocalDir(root string) string {
	return filepath.Join(
		root,
		t.Instrument,
		filepath.FromSlash(strings.Trim(t.Subdir, "/")),
		t.Month.YearSegment(),
		t.Month.MonthSegment(),
	)
}
