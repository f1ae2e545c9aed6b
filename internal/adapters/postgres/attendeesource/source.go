package attendeesource

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Overland-East-Bay/workshop-checkin/internal/domain"
	"github.com/Overland-East-Bay/workshop-checkin/internal/ports/out/attendeesource"
)

// undefinedTable is the SQLSTATE for a missing relation.
const undefinedTable = "42P01"

// Source is a Postgres implementation of attendeesource.Source backed by the
// attendees table (see Schema).
type Source struct {
	pool *pgxpool.Pool
}

func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

func (s *Source) Describe() string { return "postgres:attendees" }

func (s *Source) Load(ctx context.Context) ([]domain.Attendee, error) {
	if s.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := s.pool.Query(ctx, `
		SELECT
			name,
			COALESCE(department, ''),
			identifier,
			assignment
		FROM attendees
		ORDER BY position ASC
	`)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
			return nil, fmt.Errorf("%w: %s", attendeesource.ErrSourceNotFound, pgErr.Message)
		}
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Attendee, 0)
	for rows.Next() {
		var (
			a  domain.Attendee
			id string
		)
		if err := rows.Scan(&a.Name, &a.Department, &id, &a.Assignment); err != nil {
			return nil, err
		}
		a.Identifier = domain.NormalizeIdentifier(id)
		if a.Identifier == "" {
			continue
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Seed creates the attendees table if needed and replaces its contents with rows.
func (s *Source) Seed(ctx context.Context, rows []domain.Attendee) error {
	if s.pool == nil {
		return errors.New("nil postgres pool")
	}
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, Schema); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `TRUNCATE attendees RESTART IDENTITY`); err != nil {
			return err
		}
		batch := &pgx.Batch{}
		for _, a := range rows {
			batch.Queue(`
				INSERT INTO attendees (name, department, identifier, assignment)
				VALUES ($1, $2, $3, $4)
			`, a.Name, a.Department, string(a.Identifier), a.Assignment)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}

// Schema is the DDL for the attendees table. position preserves source row order.
const Schema = `
CREATE TABLE IF NOT EXISTS attendees (
	position   BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	department TEXT NOT NULL DEFAULT '',
	identifier TEXT NOT NULL,
	assignment TEXT NOT NULL
)`
