package domain

import (
	"fmt"
	"path/filepath"
)

type OutcomeKind string

const (
	OutcomeSkipped    OutcomeKind = "skip"
	OutcomeDryRun     OutcomeKind = "dry-run"
	OutcomeFailed     OutcomeKind = "fail"
	OutcomeDownloaded OutcomeKind = "ok"
)

// Outcome reports what happened to a single remote file.
type Outcome struct {
	Kind OutcomeKind
	URL  string
	Path string
	Err  error
}

// Message renders the progress line printed for this outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSkipped:
		return "[SKIP] Already exists"
	case OutcomeDryRun:
		return fmt.Sprintf("[DRY-RUN] Would download %s", o.URL)
	case OutcomeFailed:
		return fmt.Sprintf("[FAIL] Download failed: %s", o.URL)
	case OutcomeDownloaded:
		return fmt.Sprintf("[OK] Downloaded: %s", filepath.Base(o.Path))
	default:
		return fmt.Sprintf("[%s] %s", o.Kind, o.URL)
	}
}
