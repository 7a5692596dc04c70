package layoutstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/log"
)

// Schema creates the layouts table.
const Schema = `
CREATE TABLE IF NOT EXISTS layouts (
	name TEXT PRIMARY KEY,
	description TEXT NOT NULL DEFAULT '',
	definition TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

// Open opens (creating if needed) the database at path. ":memory:" gives a
// private in-memory store.
func Open(path string) (*SQLiteStore, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
		dsn = "file:" + path
	}

	log.Debug(log.CatStore, "Opening layout store", "path", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.ErrorErr(log.CatStore, "Failed to open layout store", err, "path", path)
		return nil, fmt.Errorf("opening layout store: %w", err)
	}
	// One connection: SQLite serializes writers anyway and an in-memory
	// database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating layout schema: %w", err)
	}
	log.Info(log.CatStore, "Layout store ready", "path", path)
	return &SQLiteStore{db: db, path: path, now: time.Now}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, l Layout) error {
	if l.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLayout)
	}
	if l.Definition == nil {
		return fmt.Errorf("%w: %q has no definition", ErrInvalidLayout, l.Name)
	}
	if err := l.Definition.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidLayout, l.Name, err)
	}

	def, err := json.Marshal(l.Definition)
	if err != nil {
		return fmt.Errorf("encoding layout %q: %w", l.Name, err)
	}
	now := s.now().UnixNano()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO layouts (name, description, definition, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			definition = excluded.definition,
			updated_at = excluded.updated_at`,
		l.Name, l.Description, string(def), now, now)
	if err != nil {
		return fmt.Errorf("saving layout %q: %w", l.Name, err)
	}
	log.Debug(log.CatStore, "Saved layout", "name", l.Name)
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (Layout, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT name, description, definition, created_at, updated_at
		FROM layouts WHERE name = ?`, name)
	l, err := scanLayout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Layout{}, fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("loading layout %q: %w", name, err)
	}
	return l, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]Layout, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description, definition, created_at, updated_at
		FROM layouts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Layout
	for rows.Next() {
		l, err := scanLayout(rows)
		if err != nil {
			return nil, fmt.Errorf("listing layouts: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing layouts: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM layouts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting layout %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting layout %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrLayoutNotFound, name)
	}
	log.Debug(log.CatStore, "Deleted layout", "name", name)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLayout(row scanner) (Layout, error) {
	var (
		l                Layout
		def              string
		created, updated int64
	)
	if err := row.Scan(&l.Name, &l.Description, &def, &created, &updated); err != nil {
		return Layout{}, err
	}
	var node layout.Node
	if err := json.Unmarshal([]byte(def), &node); err != nil {
		return Layout{}, fmt.Errorf("decoding definition: %w", err)
	}
	l.Definition = &node
	l.CreatedAt = time.Unix(0, created)
	l.UpdatedAt = time.Unix(0, updated)
	return l, nil
}
