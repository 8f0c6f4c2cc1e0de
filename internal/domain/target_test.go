package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarget_RemoteAndLocalAreParallel(t *testing.T) {
	target := Target{Instrument: "mag", Subdir: "l2/sav/1sec", Month: Month{2015, 2}}

	assert.Equal(t,
		"https://example.org/data/sci/mag/l2/sav/1sec/2015/02/",
		target.RemoteURL("https://example.org/data/sci/"),
	)
	assert.Equal(t,
		"https://example.org/data/sci/mag/l2/sav/1sec/2015/02/",
		target.RemoteURL("https://example.org/data/sci"),
	)
	assert.Equal(t,
		filepath.Join("root", "mag", "l2", "sav", "1sec", "2015", "02"),
		target.LocalDir("root"),
	)
}

func TestRun_Tallies(t *testing.T) {
	run := NewRun("run1", "swe", "2020-01", "2020-02", false)
	target := Target{Instrument: "swe", Subdir: "l2", Month: Month{2020, 1}}

	e1 := run.ListingEvent(target, NewListingOK("u", []string{"a.cdf"}))
	e2 := run.ListingEvent(target, NewListingAuth("u"))
	e3 := run.DownloadEvent(target, Outcome{Kind: OutcomeDownloaded, URL: "u/a.cdf", Path: "/tmp/a.cdf"})
	run.DownloadEvent(target, Outcome{Kind: OutcomeSkipped})

	assert.Equal(t, 2, run.Checked)
	assert.Equal(t, 1, run.AuthRequired)
	assert.Equal(t, 1, run.Downloaded)
	assert.Equal(t, 1, run.Skipped)

	assert.Equal(t, []int{1, 2, 3}, []int{e1.Seq, e2.Seq, e3.Seq})
	assert.Equal(t, "2020-01", e3.Month)
	assert.Equal(t, "[OK] Downloaded: a.cdf", e3.Message)

	run.Finish(nil)
	assert.Equal(t, RunCompleted, run.Status)
}

func TestOutcome_Message(t *testing.T) {
	assert.Equal(t, "[SKIP] Already exists", Outcome{Kind: OutcomeSkipped}.Message())
	assert.Equal(t, "[DRY-RUN] Would download http://x/a.sav", Outcome{Kind: OutcomeDryRun, URL: "http://x/a.sav"}.Message())
	assert.Equal(t, "[FAIL] Download failed: http://x/a.sav", Outcome{Kind: OutcomeFailed, URL: "http://x/a.sav"}.Message())
}
