package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/luismoralesarg/micro-log/internal/common"
	"github.com/luismoralesarg/micro-log/internal/dbx"
	"github.com/luismoralesarg/micro-log/internal/repositories/remote/migrations"
)

// PostgresStore keeps one row per account in the journals table.
// Single-row upserts give the read-after-write consistency the adapter
// relies on.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a pgx-backed connection and runs pending
// migrations.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.runMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) GetRecord(ctx context.Context, accountID string) (*Record, error) {
	return getRecord(ctx, s.db, accountID)
}

func getRecord(ctx context.Context, db dbx.DBTX, accountID string) (*Record, error) {
	var r Record
	err := db.QueryRowContext(ctx,
		`SELECT encrypted, updated_at FROM journals WHERE account_id = $1`,
		accountID,
	).Scan(&r.Encrypted, &r.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record for %s: %w", accountID, err)
	}
	return &r, nil
}

// PutRecord replaces the account's row, but only with a strictly newer
// record. Read and write run in one transaction so a stale writer cannot
// clobber a newer save that landed in between.
func (s *PostgresStore) PutRecord(ctx context.Context, accountID string, r *Record) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cur, err := getRecord(ctx, tx, accountID)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return err
		}
		if cur != nil && cur.UpdatedAt.After(r.UpdatedAt) {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO journals (account_id, encrypted, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (account_id) DO UPDATE
			SET encrypted = excluded.encrypted, updated_at = excluded.updated_at
		`, accountID, r.Encrypted, r.UpdatedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("put record for %s: %w", accountID, err)
	}
	return nil
}
