// Package store persists analyzed string records in SQLite.
// Records are immutable after creation: the store supports create,
// read and delete, never update.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"strlens/src/pkg/analyzer"
)

var (
	// ErrExists is returned when creating a record whose value is already stored.
	ErrExists = errors.New("string already exists")

	// ErrNotFound is returned when no record matches the requested value.
	ErrNotFound = errors.New("string not found")
)

// Record is the persisted result of analyzing one input string.
// ID is the SHA-256 digest of Value.
type Record struct {
	ID         string              `json:"id"`
	Value      string              `json:"value"`
	Properties analyzer.Properties `json:"properties"`
	CreatedAt  time.Time           `json:"created_at"`
}

// Store manages the string record database.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates or opens the record store at dbPath.
func Open(dbPath string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// initSchema creates the database schema.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS strings (
		id TEXT PRIMARY KEY,
		value TEXT NOT NULL UNIQUE,
		length INTEGER NOT NULL,
		is_palindrome INTEGER NOT NULL,
		unique_characters INTEGER NOT NULL,
		word_count INTEGER NOT NULL,
		sha256_hash TEXT NOT NULL,
		character_frequency_json TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_strings_value ON strings(value);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Insert stores a new record. Returns ErrExists when a record with the
// same value (or id) is already present; existing records are never
// overwritten.
func (s *Store) Insert(ctx context.Context, rec Record) error {
	freqJSON, err := json.Marshal(rec.Properties.CharacterFrequency)
	if err != nil {
		return fmt.Errorf("failed to encode frequency map: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO strings (id, value, length, is_palindrome, unique_characters,
			word_count, sha256_hash, character_frequency_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Value,
		rec.Properties.Length,
		boolToInt(rec.Properties.IsPalindrome),
		rec.Properties.UniqueCharacters,
		rec.Properties.WordCount,
		rec.Properties.SHA256Hash,
		string(freqJSON),
		rec.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrExists
		}
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return nil
}

// GetByValue retrieves the record for the exact string value.
func (s *Store) GetByValue(ctx context.Context, value string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		selectColumns+` FROM strings WHERE value = ?`, value)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query record: %w", err)
	}

	return rec, nil
}

// DeleteByValue removes the record for the given value.
// Returns ErrNotFound when no such record exists.
func (s *Store) DeleteByValue(ctx context.Context, value string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM strings WHERE value = ?`, value)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// List returns every stored record in insertion order.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM strings ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM strings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

const selectColumns = `SELECT id, value, length, is_palindrome, unique_characters,
	word_count, sha256_hash, character_frequency_json, created_at`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord reads one row into a Record, decoding the frequency map.
func scanRecord(sc scanner) (*Record, error) {
	var rec Record
	var palindrome int
	var freqJSON string

	err := sc.Scan(
		&rec.ID,
		&rec.Value,
		&rec.Properties.Length,
		&palindrome,
		&rec.Properties.UniqueCharacters,
		&rec.Properties.WordCount,
		&rec.Properties.SHA256Hash,
		&freqJSON,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec.Properties.IsPalindrome = palindrome != 0
	if err := json.Unmarshal([]byte(freqJSON), &rec.Properties.CharacterFrequency); err != nil {
		return nil, fmt.Errorf("failed to decode frequency map: %w", err)
	}

	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
