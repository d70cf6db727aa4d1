// Package store keeps a catalog of named Life patterns in SQLite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/text/unicode/norm"

	"bitlife/pkg/sims/life"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - initial patterns table
// 1 - index on created_at for listing by age
const currentSchemaVersion = 1

var (
	// ErrNotFound is returned when no pattern has the requested name.
	ErrNotFound = errors.New("store: pattern not found")
	// ErrInvalidName is returned for names that are empty or contain
	// whitespace.
	ErrInvalidName = errors.New("store: invalid pattern name")
)

// Record is a stored pattern.
type Record struct {
	ID        string
	Pattern   life.Pattern
	Rows      int
	Cols      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the pattern catalog.
type Store struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// Open creates or opens the catalog at path. A nil logger discards.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Debug("pattern store opened", "path", path)
	return &Store{db: db, log: logger, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < 1 {
		if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_patterns_created ON patterns(created_at)`); err != nil {
			return fmt.Errorf("migrate to v1: %w", err)
		}
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// CanonicalName returns the NFC form of name with surrounding space removed,
// or ErrInvalidName.
func CanonicalName(name string) (string, error) {
	n := norm.NFC.String(strings.TrimSpace(name))
	if n == "" || strings.ContainsFunc(n, unicode.IsSpace) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return n, nil
}

// Save inserts p or replaces the cells of the pattern with the same
// canonical name. The record keeps its ID and creation time on replace.
func (s *Store) Save(ctx context.Context, p life.Pattern) (Record, error) {
	name, err := CanonicalName(p.Name)
	if err != nil {
		return Record{}, err
	}
	if err := p.Validate(); err != nil {
		return Record{}, err
	}
	cells, err := json.Marshal(p.Cells)
	if err != nil {
		return Record{}, fmt.Errorf("save pattern: %w", err)
	}
	rows, cols := p.Bounds()
	id, err := uuid.NewV7()
	if err != nil {
		return Record{}, fmt.Errorf("save pattern: %w", err)
	}
	now := s.now().UnixMilli()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO patterns (id, name, height, width, cells, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			height = excluded.height,
			width = excluded.width,
			cells = excluded.cells,
			updated_at = excluded.updated_at
	`, id.String(), name, rows, cols, string(cells), now, now)
	if err != nil {
		return Record{}, fmt.Errorf("save pattern: %w", err)
	}
	s.log.Debug("pattern saved", "name", name, "cells", len(p.Cells))
	return s.Get(ctx, name)
}

// Get returns the pattern stored under name.
func (s *Store) Get(ctx context.Context, name string) (Record, error) {
	n, err := CanonicalName(name)
	if err != nil {
		return Record{}, err
	}
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, height, width, cells, created_at, updated_at
		FROM patterns WHERE name = ?
	`, n)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, n)
	}
	return rec, err
}

// List returns every stored pattern ordered by name.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, height, width, cells, created_at, updated_at
		FROM patterns ORDER BY name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query patterns: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate patterns: %w", err)
	}
	return records, nil
}

// Delete removes the pattern stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	n, err := CanonicalName(name)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM patterns WHERE name = ?`, n)
	if err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pattern: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, n)
	}
	s.log.Debug("pattern deleted", "name", n)
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec              Record
		cells            string
		created, updated int64
	)
	if err := sc.Scan(&rec.ID, &rec.Pattern.Name, &rec.Rows, &rec.Cols, &cells, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scan pattern: %w", err)
	}
	if err := json.Unmarshal([]byte(cells), &rec.Pattern.Cells); err != nil {
		return Record{}, fmt.Errorf("decode cells of %q: %w", rec.Pattern.Name, err)
	}
	rec.CreatedAt = time.UnixMilli(created)
	rec.UpdatedAt = time.UnixMilli(updated)
	return rec, nil
}
