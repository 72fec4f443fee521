package store

import (
	"database/sql"
	"fmt"
	"time"
)

// UnitState is the administrative state recorded for one unit. Enabled
// is NULL until an enable or disable was recorded, so the unit file's
// own default can apply.
type UnitState struct {
	Unit      string
	Active    bool
	Enabled   sql.NullBool
	ChangedAt time.Time
}

// SetActive records whether a unit is administratively started.
func (s *Store) SetActive(unit string, active bool, at time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO unit_state (unit, active, changed_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(unit)
		 DO UPDATE SET active = excluded.active, changed_at = excluded.changed_at`,
		unit, boolToInt(active), at.UTC().Format(time.RFC3339),
	)
	return err
}

// SetEnabled records whether a unit is administratively enabled.
func (s *Store) SetEnabled(unit string, enabled bool, at time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO unit_state (unit, active, enabled, changed_at)
		 VALUES (?, 0, ?, ?)
		 ON CONFLICT(unit)
		 DO UPDATE SET enabled = excluded.enabled, changed_at = excluded.changed_at`,
		unit, boolToInt(enabled), at.UTC().Format(time.RFC3339),
	)
	return err
}

// GetState returns the recorded state for a unit. The second return is
// false when nothing was ever recorded for it.
func (s *Store) GetState(unit string) (UnitState, bool, error) {
	var state UnitState
	var active int
	var ts string
	err := s.db.QueryRow(
		`SELECT unit, active, enabled, changed_at FROM unit_state WHERE unit = ?`,
		unit,
	).Scan(&state.Unit, &active, &state.Enabled, &ts)
	if err == sql.ErrNoRows {
		return UnitState{}, false, nil
	}
	if err != nil {
		return UnitState{}, false, fmt.Errorf("query unit state: %w", err)
	}

	state.Active = active != 0
	state.ChangedAt, err = time.Parse(time.RFC3339, ts)
	if err != nil {
		return UnitState{}, false, fmt.Errorf("parse state timestamp %q: %w", ts, err)
	}
	return state, true, nil
}

// ListStates returns all recorded unit states keyed by unit name.
func (s *Store) ListStates() (map[string]UnitState, error) {
	rows, err := s.db.Query(`SELECT unit, active, enabled, changed_at FROM unit_state`)
	if err != nil {
		return nil, fmt.Errorf("query unit states: %w", err)
	}
	defer func() { _ = rows.Close() }()

	states := make(map[string]UnitState)
	for rows.Next() {
		var state UnitState
		var active int
		var ts string
		if err := rows.Scan(&state.Unit, &active, &state.Enabled, &ts); err != nil {
			return nil, fmt.Errorf("scan unit state: %w", err)
		}
		state.Active = active != 0
		state.ChangedAt, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parse state timestamp %q: %w", ts, err)
		}
		states[state.Unit] = state
	}

	return states, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
