package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/urth"
	"github.com/google/uuid"
)

// hashContent computes xxHash of content as a fixed-width hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// Ensure GlossaryWriter implements urth.GlossaryWriter at compile time.
var _ urth.GlossaryWriter = (*GlossaryWriter)(nil)

// GlossaryWriter writes a glossary into a new SQLite database file.
type GlossaryWriter struct {
	path string
}

// NewGlossaryWriter creates a new GlossaryWriter writing to path.
func NewGlossaryWriter(path string) *GlossaryWriter {
	return &GlossaryWriter{path: path}
}

// Write builds the database next to path and renames it into place once
// every entry is committed. An existing file at path is replaced.
func (w *GlossaryWriter) Write(ctx context.Context, g *urth.Glossary) (err error) {
	if err := g.Validate(); err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	db := NewDB(tmp)
	if err = db.Open(); err != nil {
		return err
	}
	if err = insertGlossary(ctx, db, g); err != nil {
		db.Close()
		return err
	}
	if err = db.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, w.path)
}

func insertGlossary(ctx context.Context, db *DB, g *urth.Glossary) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, field := range [][2]string{
		{"title", g.Info.Title},
		{"author", g.Info.Author},
		{"description", g.Info.Description},
	} {
		if _, err := tx.ExecContext(ctx, `INSERT INTO info (name, value) VALUES (?, ?)`, field[0], field[1]); err != nil {
			return fmt.Errorf("insert info %s: %w", field[0], err)
		}
	}

	for pos, e := range g.Entries {
		id := uuid.New().String()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO entries (id, headword, definition, format, content_hash, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, e.Headword(), e.Definition, string(e.Format), hashContent(e.Definition), pos); err != nil {
			return fmt.Errorf("insert entry %q: %w", e.Headword(), err)
		}

		for i, key := range e.Keys {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO entry_keys (key, entry_id, position) VALUES (?, ?, ?)
			`, key, id, i); err != nil {
				return fmt.Errorf("insert key %q: %w", key, err)
			}
		}
	}

	return tx.Commit()
}

// EntryService reads entries back from a glossary database.
type EntryService struct {
	db *DB
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB) *EntryService {
	return &EntryService{db: db}
}

// FindEntryByKey returns the last entry reachable under key.
// Returns ENOTFOUND if no entry has that key.
func (s *EntryService) FindEntryByKey(ctx context.Context, key string) (*urth.Entry, error) {
	var id, format string
	var e urth.Entry

	err := s.db.QueryRowContext(ctx, `
		SELECT e.id, e.definition, e.format
		FROM entries e
		JOIN entry_keys k ON k.entry_id = e.id
		WHERE k.key = ?
		ORDER BY e.position DESC
		LIMIT 1
	`, key).Scan(&id, &e.Definition, &format)
	if err == sql.ErrNoRows {
		return nil, urth.Errorf(urth.ENOTFOUND, "entry %q not found", key)
	}
	if err != nil {
		return nil, err
	}
	e.Format = urth.DefinitionFormat(format)

	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM entry_keys WHERE entry_id = ? ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		e.Keys = append(e.Keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &e, nil
}

// Info returns the glossary metadata.
func (s *EntryService) Info(ctx context.Context) (urth.Info, error) {
	var info urth.Info

	rows, err := s.db.QueryContext(ctx, `SELECT name, value FROM info`)
	if err != nil {
		return info, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return info, err
		}
		switch name {
		case "title":
			info.Title = value
		case "author":
			info.Author = value
		case "description":
			info.Description = value
		}
	}
	return info, rows.Err()
}

// CountEntries returns the number of entries.
func (s *EntryService) CountEntries(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}
