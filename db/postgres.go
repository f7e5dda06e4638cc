package db

import (
	"context"
	"fmt"

	"github.com/extremtechniker/mailtxt/logger"
	"github.com/extremtechniker/mailtxt/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps a history of saved reports in Postgres.
type Store struct {
	Pool *pgxpool.Pool
}

func InitPostgres(ctx context.Context, pgUrl string) (*Store, error) {
	pool, err := pgxpool.New(ctx, pgUrl)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	s := &Store{Pool: pool}
	if err := s.EnsureTables(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure tables: %w", err)
	}
	return s, nil
}

func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// Creates tables if not exist
func (s *Store) EnsureTables(ctx context.Context) error {
	q1 := `CREATE TABLE IF NOT EXISTS txt_lookups (
		id SERIAL PRIMARY KEY,
		domain TEXT NOT NULL,
		spf TEXT NOT NULL,
		dmarc TEXT NOT NULL,
		dkim TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`
	q2 := `CREATE INDEX IF NOT EXISTS txt_lookups_domain_idx ON txt_lookups (lower(domain), created_at DESC);`

	if _, err := s.Pool.Exec(ctx, q1); err != nil {
		return err
	}
	if _, err := s.Pool.Exec(ctx, q2); err != nil {
		return err
	}
	return nil
}

// Persist inserts r as a new history row.
func (s *Store) Persist(ctx context.Context, r model.Report) error {
	q := `INSERT INTO txt_lookups (domain, spf, dmarc, dkim) VALUES ($1,$2,$3,$4)`
	if _, err := s.Pool.Exec(ctx, q, r.Domain, r.SPF, r.DMARC, r.DKIM); err != nil {
		return fmt.Errorf("insert txt_lookups: %w", err)
	}
	logger.Logger.Debugf("stored %s in postgres", r.Domain)
	return nil
}

// FetchReports returns saved reports for domain, newest first. A limit of
// zero or less returns all of them.
func (s *Store) FetchReports(ctx context.Context, domain string, limit int) ([]model.Report, error) {
	q := `SELECT domain, spf, dmarc, dkim, created_at FROM txt_lookups
	WHERE lower(domain) = lower($1) ORDER BY created_at DESC`
	args := []any{domain}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Report
	for rows.Next() {
		var r model.Report
		if err := rows.Scan(&r.Domain, &r.SPF, &r.DMARC, &r.DKIM, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
