package migrations

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Migrations struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Migrations {
	return &Migrations{pool: pool}
}

func (m *Migrations) Setup(ctx context.Context) error {
	if err := m.setupRatesTables(ctx); err != nil {
		return fmt.Errorf("setup rates: %w", err)
	}
	if err := m.setupRequestLogTable(ctx); err != nil {
		return fmt.Errorf("setup request_log: %w", err)
	}
	if err := m.setupAPIKeysTable(ctx); err != nil {
		return fmt.Errorf("setup api_keys: %w", err)
	}
	return nil
}

func (m *Migrations) setupRatesTables(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists rate_snapshot (
  id         bigserial primary key,
  fetched_at timestamptz not null
);

create index if not exists idx_rate_snapshot_fetched_at
  on rate_snapshot (fetched_at desc, id desc);

create table if not exists exchange_rate (
  snapshot_id     bigint not null references rate_snapshot (id) on delete cascade,
  position        integer not null,
  currency_code_a smallint not null,
  currency_code_b smallint not null,
  quoted_at       timestamptz not null,
  rate_sell       double precision,
  rate_buy        double precision,
  rate_cross      double precision,
  primary key (snapshot_id, position)
);
`)
	if err != nil {
		return fmt.Errorf("ensure tables rate_snapshot, exchange_rate: %w", err)
	}
	return nil
}

func (m *Migrations) setupRequestLogTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists request_log (
  id          bigserial primary key,
  path        text not null,
  status      integer,
  account_id  text,
  created_at  timestamptz not null default now()
);

create index if not exists idx_request_log_created_at
  on request_log (created_at desc);

create index if not exists idx_request_log_account_created_at
  on request_log (account_id, created_at desc);
`)
	if err != nil {
		return fmt.Errorf("ensure table request_log: %w", err)
	}
	return nil
}

func (m *Migrations) setupAPIKeysTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `
create table if not exists api_keys (
  id         bigserial primary key,
  key_hash   text not null unique,
  label      text not null default '',
  is_active  boolean not null default true,
  created_at timestamptz not null default now()
);
`)
	if err != nil {
		return fmt.Errorf("ensure table api_keys: %w", err)
	}
	return nil
}
