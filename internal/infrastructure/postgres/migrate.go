package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema de la base local. Idempotente: se ejecuta en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pending_writes (
		id          uuid PRIMARY KEY,
		seq         bigserial UNIQUE,
		tenant_id   text NOT NULL,
		kind        text NOT NULL,
		pharmacy_id text,
		month       text,
		page_id     text,
		target_key  text NOT NULL,
		payload     jsonb NOT NULL,
		attempts    integer NOT NULL DEFAULT 0,
		last_error  text,
		created_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS pending_writes_target_idx ON pending_writes (target_key)`,
	`CREATE TABLE IF NOT EXISTS cached_sheets (
		tenant_id   text NOT NULL,
		pharmacy_id text NOT NULL,
		month       text NOT NULL,
		items       jsonb NOT NULL,
		updated_at  timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (tenant_id, pharmacy_id, month)
	)`,
	`CREATE TABLE IF NOT EXISTS cached_profiles (
		user_id    text PRIMARY KEY,
		owner_id   text NOT NULL,
		role       text NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// Migrate crea las tablas de la cola offline y la caché en una sola transacción.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return NewTxRunner(pool).Run(ctx, func(q Querier) error {
		for i, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate paso %d: %w", i+1, err)
			}
		}
		return nil
	})
}
