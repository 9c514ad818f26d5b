package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/dcode-github/property_valuation/models"
)

// uniqueViolation is the SQLSTATE for a duplicate primary key.
const uniqueViolation = "23505"

// PostgresStore keeps saved valuations in PostgreSQL, descriptors and
// results as JSONB.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection, waits for the server to answer and
// runs the schema migration.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("postgres: ping: %w", ctx.Err())
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) migrate(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS valuations (
			id          TEXT         PRIMARY KEY,
			owner       TEXT         NOT NULL,
			descriptor  JSONB        NOT NULL,
			price       BIGINT       NOT NULL,
			confidence  NUMERIC(4,3) NOT NULL,
			result      JSONB        NOT NULL,
			created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_valuations_owner ON valuations(owner, created_at DESC);
	`)
	return err
}

func (ps *PostgresStore) Save(ctx context.Context, v *models.SavedValuation) error {
	descriptor, err := json.Marshal(v.Descriptor)
	if err != nil {
		return fmt.Errorf("postgres: encode descriptor: %w", err)
	}
	result, err := json.Marshal(v.Result)
	if err != nil {
		return fmt.Errorf("postgres: encode result: %w", err)
	}

	_, err = ps.db.ExecContext(ctx, `
		INSERT INTO valuations (id, owner, descriptor, price, confidence, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, v.ID, v.Owner, descriptor, v.Result.Price, v.Result.Confidence, result, v.CreatedAt)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("postgres: insert valuation: %w", err)
	}
	return nil
}

func (ps *PostgresStore) List(ctx context.Context, owner string, limit int64) ([]models.SavedValuation, error) {
	rows, err := ps.db.QueryContext(ctx, `
		SELECT id, owner, descriptor, result, created_at
		FROM valuations
		WHERE owner = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, owner, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: list valuations: %w", err)
	}
	defer rows.Close()

	valuations := []models.SavedValuation{}
	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, err
		}
		valuations = append(valuations, *v)
	}
	return valuations, rows.Err()
}

func (ps *PostgresStore) Get(ctx context.Context, owner, id string) (*models.SavedValuation, error) {
	row := ps.db.QueryRowContext(ctx, `
		SELECT id, owner, descriptor, result, created_at
		FROM valuations
		WHERE id = $1 AND owner = $2
	`, id, owner)

	v, err := scanValuation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return v, err
}

func (ps *PostgresStore) Delete(ctx context.Context, owner, id string) (bool, error) {
	res, err := ps.db.ExecContext(ctx, "DELETE FROM valuations WHERE id = $1 AND owner = $2", id, owner)
	if err != nil {
		return false, fmt.Errorf("postgres: delete valuation %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("postgres: rows affected: %w", err)
	}
	return n > 0, nil
}

func (ps *PostgresStore) Close(context.Context) error {
	return ps.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanValuation(row rowScanner) (*models.SavedValuation, error) {
	var (
		v                  models.SavedValuation
		descriptor, result []byte
	)
	if err := row.Scan(&v.ID, &v.Owner, &descriptor, &result, &v.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("postgres: scan row: %w", err)
	}
	if err := decodeColumns(&v, descriptor, result); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeColumns(v *models.SavedValuation, descriptor, result []byte) error {
	if err := json.Unmarshal(descriptor, &v.Descriptor); err != nil {
		return fmt.Errorf("postgres: decode descriptor: %w", err)
	}
	if err := json.Unmarshal(result, &v.Result); err != nil {
		return fmt.Errorf("postgres: decode result: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
