package store

import (
	"database/sql"
	"time"

	"github.com/datallboy/mvnsync/internal/domain"
)

// runDBO maps to the runs table
type runDBO struct {
	ID           string         `db:"id"`
	Instrument   string         `db:"instrument"`
	StartMonth   string         `db:"start_month"`
	EndMonth     string         `db:"end_month"`
	DryRun       bool           `db:"dry_run"`
	Status       string         `db:"status"`
	Error        sql.NullString `db:"error"`
	Checked      int            `db:"checked"`
	AuthRequired int            `db:"auth_required"`
	ListErrors   int            `db:"list_errors"`
	Skipped      int            `db:"skipped"`
	Simulated    int            `db:"simulated"`
	Failed       int            `db:"failed"`
	Downloaded   int            `db:"downloaded"`
	StartedAt    int64          `db:"started_at"`
	FinishedAt   int64          `db:"finished_at"`
}

const runColumns = `id, instrument, start_month, end_month, dry_run, status, error,
	checked, auth_required, list_errors, skipped, simulated, failed, downloaded,
	started_at, finished_at`

func (r *runDBO) scanTargets() []any {
	return []any{
		&r.ID, &r.Instrument, &r.StartMonth, &r.EndMonth, &r.DryRun, &r.Status, &r.Error,
		&r.Checked, &r.AuthRequired, &r.ListErrors, &r.Skipped, &r.Simulated, &r.Failed, &r.Downloaded,
		&r.StartedAt, &r.FinishedAt,
	}
}

func (r *runDBO) insertArgs() []any {
	return []any{
		r.ID, r.Instrument, r.StartMonth, r.EndMonth, r.DryRun, r.Status, r.Error,
		r.Checked, r.AuthRequired, r.ListErrors, r.Skipped, r.Simulated, r.Failed, r.Downloaded,
		r.StartedAt, r.FinishedAt,
	}
}

// Mapper: DBO to Domain Run
func (r *runDBO) ToDomain() *domain.Run {
	run := &domain.Run{
		ID:           r.ID,
		Instrument:   r.Instrument,
		Start:        r.StartMonth,
		End:          r.EndMonth,
		DryRun:       r.DryRun,
		Status:       domain.RunStatus(r.Status),
		Error:        r.Error.String,
		Checked:      r.Checked,
		AuthRequired: r.AuthRequired,
		ListErrors:   r.ListErrors,
		Skipped:      r.Skipped,
		Simulated:    r.Simulated,
		Failed:       r.Failed,
		Downloaded:   r.Downloaded,
		StartedAt:    time.UnixMilli(r.StartedAt).UTC(),
	}
	if r.FinishedAt > 0 {
		run.FinishedAt = time.UnixMilli(r.FinishedAt).UTC()
	}
	return run
}

// Mapper: Domain Run to DBO
func (r *runDBO) FromDomain(run *domain.Run) {
	r.ID = run.ID
	r.Instrument = run.Instrument
	r.StartMonth = run.Start
	r.EndMonth = run.End
	r.DryRun = run.DryRun
	r.Status = string(run.Status)
	r.Error = sql.NullString{String: run.Error, Valid: run.Error != ""}
	r.Checked = run.Checked
	r.AuthRequired = run.AuthRequired
	r.ListErrors = run.ListErrors
	r.Skipped = run.Skipped
	r.Simulated = run.Simulated
	r.Failed = run.Failed
	r.Downloaded = run.Downloaded
	r.StartedAt = run.StartedAt.UnixMilli()

	if !run.FinishedAt.IsZero() {
		r.FinishedAt = run.FinishedAt.UnixMilli()
	} else {
		r.FinishedAt = 0
	}
}

// eventDBO maps to the run_events table
type eventDBO struct {
	RunID     string         `db:"run_id"`
	Seq       int            `db:"seq"`
	Kind      string         `db:"kind"`
	Subdir    string         `db:"subdir"`
	Month     string         `db:"month"`
	URL       string         `db:"url"`
	Path      sql.NullString `db:"path"`
	Status    string         `db:"status"`
	Message   sql.NullString `db:"message"`
	CreatedAt int64          `db:"created_at"`
}

// Mapper: DBO to Domain Event
func (e *eventDBO) ToDomain() *domain.Event {
	return &domain.Event{
		RunID:     e.RunID,
		Seq:       e.Seq,
		Kind:      domain.EventKind(e.Kind),
		Subdir:    e.Subdir,
		Month:     e.Month,
		URL:       e.URL,
		Path:      e.Path.String,
		Status:    e.Status,
		Message:   e.Message.String,
		CreatedAt: time.UnixMilli(e.CreatedAt).UTC(),
	}
}

// Mapper: Domain Event to DBO
func (e *eventDBO) FromDomain(ev *domain.Event) {
	e.RunID = ev.RunID
	e.Seq = ev.Seq
	e.Kind = string(ev.Kind)
	e.Subdir = ev.Subdir
	e.Month = ev.Month
	e.URL = ev.URL
	e.Path = sql.NullString{String: ev.Path, Valid: ev.Path != ""}
	e.Status = ev.Status
	e.Message = sql.NullString{String: ev.Message, Valid: ev.Message != ""}
	e.CreatedAt = ev.CreatedAt.UnixMilli()
}
