package notebook

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mithrel/notepolish/pkg/api"
)

type sqliteStore struct{ db *sql.DB }

func openSQLite(ctx context.Context, path string) (*sqliteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL; PRAGMA foreign_keys=ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := bootstrap(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

func bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS folders (
  name TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS notes (
  id TEXT PRIMARY KEY,
  folder TEXT NOT NULL,
  name TEXT NOT NULL,
  body TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  FOREIGN KEY(folder) REFERENCES folders(name)
);
CREATE INDEX IF NOT EXISTS idx_notes_folder_created ON notes(folder, created_at, id);
-- Polished-copy ledger keyed by source content hash
CREATE TABLE IF NOT EXISTS polished (
  source_hash TEXT PRIMARY KEY,
  folder TEXT NOT NULL,
  note_id TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);
`)
	return err
}

func (s *sqliteStore) Close() error { return s.db.Close() }

func (s *sqliteStore) Folders(ctx context.Context) ([]api.Folder, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT f.name, COUNT(n.id)
FROM folders f
LEFT JOIN notes n ON n.folder = f.name
GROUP BY f.name
ORDER BY f.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Folder
	for rows.Next() {
		var f api.Folder
		if err := rows.Scan(&f.Name, &f.Notes); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Notes(ctx context.Context, folder string) ([]api.Note, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, folder, name, body, created_at, updated_at
FROM notes
WHERE folder = ?
ORDER BY created_at, id`, folder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []api.Note
	for rows.Next() {
		var n api.Note
		if err := rows.Scan(&n.ID, &n.Folder, &n.Name, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Body(ctx context.Context, folder, name string) (string, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `
SELECT body FROM notes
WHERE folder = ? AND name = ?
ORDER BY updated_at DESC LIMIT 1`, folder, name).Scan(&body)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("note %q in %q: %w", name, folder, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return body, nil
}

func (s *sqliteStore) EnsureFolder(ctx context.Context, folder string) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO folders(name) VALUES (?)`, folder)
	return err
}

func (s *sqliteStore) CreateNote(ctx context.Context, folder, name, htmlBody, sourceHash string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO folders(name) VALUES (?)`, folder); err != nil {
		return err
	}
	id := api.NewID()
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, `
INSERT INTO notes(id, folder, name, body, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`, id, folder, name, htmlBody, now, now); err != nil {
		return err
	}
	if sourceHash != "" {
		if _, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO polished(source_hash, folder, note_id, created_at)
VALUES (?, ?, ?, ?)`, sourceHash, folder, id, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) HasPolished(ctx context.Context, sourceHash string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM polished WHERE source_hash = ?`, sourceHash).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PutNote stores a raw note, creating its folder as needed. Used by import.
func (s *sqliteStore) PutNote(ctx context.Context, n api.Note) (api.Note, error) {
	if n.ID == "" {
		n.ID = api.NewID()
	}
	now := time.Now().UTC()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return api.Note{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO folders(name) VALUES (?)`, n.Folder); err != nil {
		return api.Note{}, err
	}
	if _, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO notes(id, folder, name, body, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`, n.ID, n.Folder, n.Name, n.Body, n.CreatedAt, n.UpdatedAt); err != nil {
		return api.Note{}, err
	}
	if err := tx.Commit(); err != nil {
		return api.Note{}, err
	}
	return n, nil
}
