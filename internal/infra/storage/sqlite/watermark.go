// Package sqlite implements the storage interfaces on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/gabapcia/paynotify/internal/transfers"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// watermarkKey is the state row holding the watermark named name.
func watermarkKey(name string) string {
	return "watermark:" + name
}

type watermarkStorage struct {
	db  *sql.DB
	key string
}

var _ transfers.WatermarkStorage = (*watermarkStorage)(nil)

func (w *watermarkStorage) LastBlockNotified(ctx context.Context) (uint64, error) {
	var value string
	err := w.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, w.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = transfers.ErrNoWatermarkFound
		}
		return 0, err
	}

	return strconv.ParseUint(value, 10, 64)
}

// SetLastBlockNotified stores block unless a higher watermark is already
// stored, and returns the stored value.
func (w *watermarkStorage) SetLastBlockNotified(ctx context.Context, block uint64) (uint64, error) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
		WHERE CAST(excluded.value AS INTEGER) > CAST(state.value AS INTEGER)`,
		w.key, strconv.FormatUint(block, 10))
	if err != nil {
		return 0, err
	}

	var value string
	if err := tx.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, w.key).Scan(&value); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return strconv.ParseUint(value, 10, 64)
}

// OverwriteLastBlockNotified stores block even if it is lower than the
// current watermark.
func (w *watermarkStorage) OverwriteLastBlockNotified(ctx context.Context, block uint64) error {
	_, err := w.db.ExecContext(ctx, `INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		w.key, strconv.FormatUint(block, 10))
	return err
}

func (w *watermarkStorage) Close() error {
	return w.db.Close()
}

// NewWatermarkStorage opens (creating it if needed) the database at path and
// returns the watermark named name.
func NewWatermarkStorage(ctx context.Context, path, name string) (*watermarkStorage, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &watermarkStorage{
		db:  db,
		key: watermarkKey(name),
	}, nil
}
