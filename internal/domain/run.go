package domain

import "time"

type RunStatus string

const (
	RunRunning     RunStatus = "running"
	RunCompleted   RunStatus = "completed"
	RunInterrupted RunStatus = "interrupted"
)

// Run is one invocation of the sync. It is kept as history only and is never
// used to decide whether a file needs downloading.
type Run struct {
	ID         string    `json:"id"`
	Instrument string    `json:"instrument"`
	Start      string    `json:"start"`
	End        string    `json:"end"`
	DryRun     bool      `json:"dryRun"`
	Status     RunStatus `json:"status"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`

	Checked      int `json:"checked"`
	AuthRequired int `json:"authRequired"`
	ListErrors   int `json:"listErrors"`
	Skipped      int `json:"skipped"`
	Simulated    int `json:"simulated"`
	Failed       int `json:"failed"`
	Downloaded   int `json:"downloaded"`

	seq int
}

type EventKind string

const (
	EventListing  EventKind = "listing"
	EventDownload EventKind = "download"
)

// Event is a single progress line of a run.
type Event struct {
	RunID     string    `json:"runId"`
	Seq       int       `json:"seq"`
	Kind      EventKind `json:"kind"`
	Subdir    string    `json:"subdir"`
	Month     string    `json:"month"`
	URL       string    `json:"url"`
	Path      string    `json:"path,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewRun(id, instrument, start, end string, dryRun bool) *Run {
	return &Run{
		ID:         id,
		Instrument: instrument,
		Start:      start,
		End:        end,
		DryRun:     dryRun,
		Status:     RunRunning,
		StartedAt:  time.Now().UTC(),
	}
}

// ListingEvent tallies a listing result and returns its history event.
func (r *Run) ListingEvent(t Target, l Listing) *Event {
	r.Checked++
	switch l.Status {
	case ListingAuth:
		r.AuthRequired++
	case ListingError:
		r.ListErrors++
	}

	return r.event(EventListing, t, &Event{
		URL:     l.URL,
		Status:  string(l.Status),
		Message: l.Message,
	})
}

// DownloadEvent tallies a download outcome and returns its history event.
func (r *Run) DownloadEvent(t Target, o Outcome) *Event {
	switch o.Kind {
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeDryRun:
		r.Simulated++
	case OutcomeFailed:
		r.Failed++
	case OutcomeDownloaded:
		r.Downloaded++
	}

	e := &Event{
		URL:     o.URL,
		Path:    o.Path,
		Status:  string(o.Kind),
		Message: o.Message(),
	}
	if o.Err != nil {
		e.Message = o.Message() + ": " + o.Err.Error()
	}
	return r.event(EventDownload, t, e)
}

func (r *Run) event(kind EventKind, t Target, e *Event) *Event {
	r.seq++
	e.RunID = r.ID
	e.Seq = r.seq
	e.Kind = kind
	e.Subdir = t.Subdir
	e.Month = t.Month.String()
	e.CreatedAt = time.Now().UTC()
	return e
}

// Finish stamps the final status. A non-nil err marks the run interrupted.
func (r *Run) Finish(err error) {
	r.FinishedAt = time.Now().UTC()
	r.Status = RunCompleted
	if err != nil {
		r.Status = RunInterrupted
		r.Error = err.Error()
	}
}
