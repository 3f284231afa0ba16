// Package sqlite persists activity instances, learner answers, and
// step statuses for the CLI and HTTP hosts. The grading core never
// touches this package: it receives values and returns values, and the
// host decides what to keep.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/drillbook-dev/drillbook/internal/model"
	"github.com/drillbook-dev/drillbook/internal/progress"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store is a SQLite-backed activity store.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS activities (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	data       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS answers (
	activity_id TEXT NOT NULL,
	step        INTEGER NOT NULL,
	data        TEXT NOT NULL,
	updated_at  TEXT NOT NULL,
	PRIMARY KEY (activity_id, step)
);

CREATE TABLE IF NOT EXISTS step_status (
	activity_id TEXT NOT NULL,
	step        INTEGER NOT NULL,
	attempts    INTEGER NOT NULL,
	completed   INTEGER NOT NULL,
	correct     INTEGER NOT NULL,
	PRIMARY KEY (activity_id, step)
);
`

// New opens (or creates) a store at path. Use ":memory:" for tests.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveActivity stores a generated activity and returns its instance ID.
func (s *Store) SaveActivity(a *model.Activity) (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("encoding activity: %w", err)
	}
	instanceID := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO activities (id, created_at, data) VALUES (?, ?, ?)`,
		instanceID, time.Now().UTC().Format(time.RFC3339), string(data),
	)
	if err != nil {
		return "", fmt.Errorf("inserting activity: %w", err)
	}
	return instanceID, nil
}

// GetActivity loads an activity by instance ID.
func (s *Store) GetActivity(instanceID string) (*model.Activity, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM activities WHERE id = ?`, instanceID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying activity: %w", err)
	}
	var a model.Activity
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, fmt.Errorf("decoding activity: %w", err)
	}
	return &a, nil
}

// SaveAnswer upserts the learner's raw answer payload for a step.
func (s *Store) SaveAnswer(instanceID string, step int, raw []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO answers (activity_id, step, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(activity_id, step) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		instanceID, step, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving answer: %w", err)
	}
	return nil
}

// GetAnswer returns the learner's stored answer for a step, or
// ErrNotFound.
func (s *Store) GetAnswer(instanceID string, step int) ([]byte, error) {
	var data string
	err := s.db.QueryRow(
		`SELECT data FROM answers WHERE activity_id = ? AND step = ?`, instanceID, step,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying answer: %w", err)
	}
	return []byte(data), nil
}

// SaveStatus upserts the progression status for a step.
func (s *Store) SaveStatus(instanceID string, step int, st progress.Status) error {
	_, err := s.db.Exec(
		`INSERT INTO step_status (activity_id, step, attempts, completed, correct) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(activity_id, step) DO UPDATE SET
		   attempts = excluded.attempts, completed = excluded.completed, correct = excluded.correct`,
		instanceID, step, st.Attempts, boolInt(st.Completed), boolInt(st.Correct),
	)
	if err != nil {
		return fmt.Errorf("saving status: %w", err)
	}
	return nil
}

// GetStatuses returns all stored step statuses for an activity.
func (s *Store) GetStatuses(instanceID string) (map[int]progress.Status, error) {
	rows, err := s.db.Query(
		`SELECT step, attempts, completed, correct FROM step_status WHERE activity_id = ?`, instanceID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying statuses: %w", err)
	}
	defer rows.Close()

	out := make(map[int]progress.Status)
	for rows.Next() {
		var step, attempts, completed, correct int
		if err := rows.Scan(&step, &attempts, &completed, &correct); err != nil {
			return nil, fmt.Errorf("scanning status: %w", err)
		}
		out[step] = progress.Status{
			Attempts:  attempts,
			Completed: completed != 0,
			Correct:   correct != 0,
		}
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
