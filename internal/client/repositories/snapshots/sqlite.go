package snapshots

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Rajatbisht12/EmiterA/internal/client/migrations"
	"github.com/Rajatbisht12/EmiterA/internal/client/session"
	"github.com/pressly/goose/v3"
)

// slotSession is the fixed slot holding the one session snapshot.
const slotSession = "session"

// Open opens (or creates) the snapshot database at dsn and applies the
// embedded migrations. The caller owns the returned handle.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return db, nil
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, state session.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO snapshots (slot, state) VALUES (?, ?)
		ON CONFLICT(slot) DO UPDATE SET state = excluded.state
	`, slotSession, payload)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (session.State, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT state FROM snapshots WHERE slot = ?`, slotSession).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return session.State{}, false, nil
	}
	if err != nil {
		return session.State{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	var state session.State
	if err := json.Unmarshal(payload, &state); err != nil {
		return session.State{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return state, true, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE slot = ?`, slotSession)
	if err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
