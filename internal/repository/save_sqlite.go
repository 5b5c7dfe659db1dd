package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/stones/internal/apperror"
)

type sqliteSave struct {
	conn *sql.DB
}

// NewSQLiteSaveRepository - stores saves in the saves table created by storage.SQLiteStorage.Init.
func NewSQLiteSaveRepository(conn *sql.DB) SaveRepository {
	return &sqliteSave{
		conn: conn,
	}
}

func (that *sqliteSave) Save(ctx context.Context, name string, data []byte) error {
	query := `INSERT INTO saves (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	_, err := that.conn.ExecContext(ctx, query, name, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("%w: can't save game: %w", apperror.ErrPersistence, err)
	}

	return nil
}

func (that *sqliteSave) Load(ctx context.Context, name string) ([]byte, error) {
	query := `SELECT data FROM saves WHERE name = ?`

	var data []byte

	err := that.conn.QueryRowContext(ctx, query, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSaveNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: can't load game: %w", apperror.ErrPersistence, err)
	}

	return data, nil
}
