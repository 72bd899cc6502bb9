package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/lifebridge/lifebridge/internal/domain"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	profile    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS profiles_created_at ON profiles (created_at);
`

// SQLiteStore persists profiles in a SQLite database, one JSON document per row
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (creating if needed) the database at path and migrates it.
// Use ":memory:" for a throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases shared across queries
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}
	return &SQLiteStore{db: db, now: time.Now}, nil
}

func (s *SQLiteStore) Save(ctx context.Context, p StoredProfile) (StoredProfile, error) {
	if err := domain.Validate(&p.Profile); err != nil {
		return StoredProfile{}, err
	}

	doc, err := json.Marshal(p.Profile)
	if err != nil {
		return StoredProfile{}, fmt.Errorf("failed to encode profile: %w", err)
	}

	now := s.now().UTC()
	p.UpdatedAt = now

	if p.ID == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = now
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO profiles (id, name, profile, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.Name, string(doc), formatTime(p.CreatedAt), formatTime(p.UpdatedAt))
		if err != nil {
			return StoredProfile{}, fmt.Errorf("failed to insert profile: %w", err)
		}
		return p, nil
	}

	existing, err := s.Get(ctx, p.ID)
	if err != nil {
		return StoredProfile{}, err
	}
	p.CreatedAt = existing.CreatedAt
	_, err = s.db.ExecContext(ctx,
		`UPDATE profiles SET name = ?, profile = ?, updated_at = ? WHERE id = ?`,
		p.Name, string(doc), formatTime(p.UpdatedAt), p.ID)
	if err != nil {
		return StoredProfile{}, fmt.Errorf("failed to update profile %s: %w", p.ID, err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (StoredProfile, error) {
	var (
		p                StoredProfile
		doc              string
		created, updated string
	)
	if err := row.Scan(&p.ID, &p.Name, &doc, &created, &updated); err != nil {
		return StoredProfile{}, err
	}
	if err := json.Unmarshal([]byte(doc), &p.Profile); err != nil {
		return StoredProfile{}, fmt.Errorf("failed to decode profile %s: %w", p.ID, err)
	}
	var err error
	if p.CreatedAt, err = parseTime(created); err != nil {
		return StoredProfile{}, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return StoredProfile{}, err
	}
	return p, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (StoredProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, profile, created_at, updated_at FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredProfile{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return StoredProfile{}, fmt.Errorf("failed to load profile %s: %w", id, err)
	}
	return p, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]StoredProfile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, profile, created_at, updated_at FROM profiles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	out := []StoredProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timeLayout is fixed width so that text order in SQLite is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}
