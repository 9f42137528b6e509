package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mono-statements/internal"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RatesStorage struct {
	pgpool *pgxpool.Pool
}

func NewRatesStorage(pgpool *pgxpool.Pool) *RatesStorage {
	return &RatesStorage{pgpool: pgpool}
}

// SaveSnapshot stores the snapshot and its rates in one transaction, keeping
// the order the bank returned them in.
func (s *RatesStorage) SaveSnapshot(ctx context.Context, snap *internal.RateSnapshot) error {
	if snap.IsEmpty() {
		return errors.New("snapshot is empty")
	}

	tx, err := s.pgpool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var snapshotID int64
	err = tx.QueryRow(ctx, `
insert into rate_snapshot (fetched_at)
values ($1)
returning id;
`, snap.FetchedAt.UTC()).Scan(&snapshotID)
	if err != nil {
		return fmt.Errorf("insert rate_snapshot: %w", err)
	}

	for i, r := range snap.Rates {
		_, err := tx.Exec(ctx, `
insert into exchange_rate (snapshot_id, position, currency_code_a, currency_code_b, quoted_at, rate_sell, rate_buy, rate_cross)
values ($1, $2, $3, $4, $5, $6, $7, $8);
`, snapshotID, i, int(r.CurrencyCodeA), int(r.CurrencyCodeB), r.Date.UTC(), r.RateSell, r.RateBuy, r.RateCross)
		if err != nil {
			return fmt.Errorf("insert %s/%s #%d: %w", r.CurrencyCodeA, r.CurrencyCodeB, i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recently fetched snapshot, or nil when
// nothing has been stored yet.
func (s *RatesStorage) LatestSnapshot(ctx context.Context) (*internal.RateSnapshot, error) {
	var (
		snapshotID int64
		fetchedAt  time.Time
	)
	err := s.pgpool.QueryRow(ctx, `
select id, fetched_at
from rate_snapshot
order by fetched_at desc, id desc
limit 1;
`).Scan(&snapshotID, &fetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select rate_snapshot: %w", err)
	}

	rows, err := s.pgpool.Query(ctx, `
select currency_code_a, currency_code_b, quoted_at, rate_sell, rate_buy, rate_cross
from exchange_rate
where snapshot_id = $1
order by position;
`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("query exchange_rate: %w", err)
	}
	defer rows.Close()

	var out []internal.ExchangeRate
	for rows.Next() {
		var (
			r        internal.ExchangeRate
			codeA    int
			codeB    int
			quotedAt time.Time
		)
		if err := rows.Scan(&codeA, &codeB, &quotedAt, &r.RateSell, &r.RateBuy, &r.RateCross); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}

		r.CurrencyCodeA = internal.CurrencyCode(codeA)
		r.CurrencyCodeB = internal.CurrencyCode(codeB)
		if !r.CurrencyCodeA.IsSupported() || !r.CurrencyCodeB.IsSupported() {
			return nil, fmt.Errorf("bad currency pair from db %d/%d", codeA, codeB)
		}
		r.Date = internal.UnixTime{Time: quotedAt.UTC()}

		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return internal.NewRateSnapshot(out, fetchedAt.UTC()), nil
}

// PruneSnapshots drops everything but the newest keep snapshots.
func (s *RatesStorage) PruneSnapshots(ctx context.Context, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}

	tag, err := s.pgpool.Exec(ctx, `
delete from rate_snapshot
where id not in (
  select id from rate_snapshot
  order by fetched_at desc, id desc
  limit $1
);
`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune rate_snapshot: %w", err)
	}
	return tag.RowsAffected(), nil
}
