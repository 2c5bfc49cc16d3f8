package savestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/appengine-ltd/trailbound/internal/game"
)

// ErrNotFound is returned when no saved run matches the requested id.
var ErrNotFound = errors.New("run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	day        INTEGER NOT NULL,
	ending     TEXT NOT NULL DEFAULT '',
	state      BLOB NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_updated_at ON runs(updated_at);
`

// Store persists run state documents in a single SQLite file.
type Store struct {
	db *sql.DB
}

// RunSummary is one row of the saved-run listing.
type RunSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Day       int       `json:"day"`
	Ending    string    `json:"ending,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open opens (creating if needed) the save database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening save db: %w", err)
	}
	// SQLite allows one writer; keep the pool at a single connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing save schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// NewRunID mints an id for a fresh run.
func NewRunID() string {
	return uuid.NewString()
}

// Save upserts the run under id. The state document is the run's own JSON
// contract; day and ending are denormalized for the listing.
func (s *Store) Save(ctx context.Context, id, name string, g *game.GameState) error {
	if id == "" {
		return fmt.Errorf("save needs a run id")
	}
	doc, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding run state: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, name, day, ending, state, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			day = excluded.day,
			ending = excluded.ending,
			state = excluded.state,
			updated_at = excluded.updated_at`,
		id, name, g.Day, string(g.Ending.Kind), doc, now, now)
	if err != nil {
		return fmt.Errorf("saving run %s: %w", id, err)
	}
	return nil
}

// Load reads the run saved under id. The returned state still needs
// Rehydrate before play resumes.
func (s *Store) Load(ctx context.Context, id string) (*game.GameState, error) {
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM runs WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", id, err)
	}
	var g game.GameState
	if err := json.Unmarshal(doc, &g); err != nil {
		return nil, fmt.Errorf("decoding run %s: %w", id, err)
	}
	return &g, nil
}

// List returns saved runs newest first.
func (s *Store) List(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, day, ending, updated_at
		FROM runs ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var summary RunSummary
		var updated string
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.Day, &summary.Ending, &updated); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, updated); err == nil {
			summary.UpdatedAt = ts
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// Delete removes a saved run. Deleting a missing id is ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
