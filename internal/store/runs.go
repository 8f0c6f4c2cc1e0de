package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/datallboy/mvnsync/internal/domain"
)

// CreateRun inserts a new run row.
func (s *PersistentStore) CreateRun(ctx context.Context, run *domain.Run) error {
	var dbo runDBO
	dbo.FromDomain(run)

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		dbo.insertArgs()...,
	)
	if err != nil {
		return fmt.Errorf("failed to create run %s: %w", run.ID, err)
	}
	return nil
}

// FinishRun stores the final status and tallies of a run.
func (s *PersistentStore) FinishRun(ctx context.Context, run *domain.Run) error {
	var dbo runDBO
	dbo.FromDomain(run)

	res, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE runs SET
			status = ?, error = ?,
			checked = ?, auth_required = ?, list_errors = ?,
			skipped = ?, simulated = ?, failed = ?, downloaded = ?,
			finished_at = ?
		WHERE id = ?`),
		dbo.Status, dbo.Error,
		dbo.Checked, dbo.AuthRequired, dbo.ListErrors,
		dbo.Skipped, dbo.Simulated, dbo.Failed, dbo.Downloaded,
		dbo.FinishedAt, dbo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", run.ID, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, run.ID)
	}
	return nil
}

// AppendEvent adds one progress line to a run.
func (s *PersistentStore) AppendEvent(ctx context.Context, event *domain.Event) error {
	var dbo eventDBO
	dbo.FromDomain(event)

	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO run_events (run_id, seq, kind, subdir, month, url, path, status, message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		dbo.RunID, dbo.Seq, dbo.Kind, dbo.Subdir, dbo.Month, dbo.URL,
		dbo.Path, dbo.Status, dbo.Message, dbo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append event %d to run %s: %w", event.Seq, event.RunID, err)
	}
	return nil
}

// ListRuns returns the most recent runs first. KSUIDs sort chronologically.
func (s *PersistentStore) ListRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT `+runColumns+` FROM runs
		ORDER BY id DESC
		LIMIT ?`), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.Run, 0)
	for rows.Next() {
		var dbo runDBO
		if err := rows.Scan(dbo.scanTargets()...); err != nil {
			return nil, err
		}
		runs = append(runs, dbo.ToDomain())
	}

	return runs, rows.Err()
}

// GetRun fetches a single run
func (s *PersistentStore) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	var dbo runDBO
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT `+runColumns+` FROM runs WHERE id = ? LIMIT 1`), id).
		Scan(dbo.scanTargets()...)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id)
		}
		return nil, err
	}

	return dbo.ToDomain(), nil
}

// GetEvents returns the events of a run in the order they happened.
func (s *PersistentStore) GetEvents(ctx context.Context, runID string) ([]*domain.Event, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT run_id, seq, kind, subdir, month, url, path, status, message, created_at
		FROM run_events
		WHERE run_id = ?
		ORDER BY seq`), runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		var dbo eventDBO
		err := rows.Scan(
			&dbo.RunID, &dbo.Seq, &dbo.Kind, &dbo.Subdir, &dbo.Month, &dbo.URL,
			&dbo.Path, &dbo.Status, &dbo.Message, &dbo.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, dbo.ToDomain())
	}

	return events, rows.Err()
}
