package store

import (
	"fmt"
	"time"

	"github.com/unitctl-tools/cli/internal/log"
)

// InsertEvent appends one entry to the invocation journal.
func (s *Store) InsertEvent(e UnitEvent) error {
	_, err := s.db.Exec(
		`INSERT INTO unit_events
		 (invocation_id, unit, operation, outcome_id, detail, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.InvocationID,
		e.Unit,
		e.Operation,
		int(e.Outcome),
		e.Detail,
		e.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Error("store: insert event failed: %v (unit=%s, op=%s)", err, e.Unit, e.Operation)
	}
	return err
}

// EventFilter narrows ListEvents output. Zero values leave the
// corresponding dimension unfiltered.
type EventFilter struct {
	Unit  string
	Limit int
}

// ListEvents returns journal entries newest first.
func (s *Store) ListEvents(f EventFilter) ([]UnitEvent, error) {
	query := `SELECT id, invocation_id, unit, operation, outcome_id, detail, timestamp
	          FROM unit_events`
	var args []any

	if f.Unit != "" {
		query += " WHERE unit = ?"
		args = append(args, f.Unit)
	}

	query += " ORDER BY timestamp DESC, id DESC"

	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []UnitEvent
	for rows.Next() {
		var e UnitEvent
		var outcome int
		var ts string
		if err := rows.Scan(&e.ID, &e.InvocationID, &e.Unit, &e.Operation, &outcome, &e.Detail, &ts); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parse event timestamp %q: %w", ts, err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountEvents returns the number of journal entries.
func (s *Store) CountEvents() (int64, error) {
	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM unit_events").Scan(&count)
	return count, err
}
