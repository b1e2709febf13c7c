package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlagunovs/watertrack/internal/common"
	"github.com/mlagunovs/watertrack/internal/migrations"
)

// SQLiteStore persists slots in a single sqlite table, standing in for the
// browser's localStorage as the durable single-file store. Revision checks
// are expressed as conditional statements, so two processes sharing the
// file race safely at the CAS level.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the sqlite database at dsn, applies
// the embedded migrations, and returns a store bound to it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := migrations.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-opened database. The slots table must
// exist (see internal/migrations).
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, int64, error) {
	var value []byte
	var rev int64
	query := `SELECT value, rev FROM slots WHERE key = ?`
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value, &rev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, 0, common.ErrNotFound
		}
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	return value, rev, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO slots (key, value, rev) VALUES (?, ?, 1)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value, rev = slots.rev + 1`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CompareAndSwap(ctx context.Context, key string, value []byte, rev int64) error {
	if rev == 0 {
		query := `INSERT INTO slots (key, value, rev) VALUES (?, ?, 1)
		          ON CONFLICT(key) DO NOTHING`
		res, err := s.db.ExecContext(ctx, query, key, value)
		if err != nil {
			return fmt.Errorf("failed to create slot: %w", err)
		}
		return s.checkAffected(res)
	}

	query := `UPDATE slots SET value = ?, rev = rev + 1 WHERE key = ? AND rev = ?`
	res, err := s.db.ExecContext(ctx, query, value, key, rev)
	if err != nil {
		return fmt.Errorf("failed to update slot: %w", err)
	}
	return s.checkAffected(res)
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM slots WHERE key = ?`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}

// checkAffected maps "no row changed" onto ErrRevisionConflict: the slot's
// revision moved (or the key already existed) between read and write.
func (s *SQLiteStore) checkAffected(res sql.Result) error {
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrRevisionConflict
	}
	return nil
}
