package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// APIKeyStorage holds hashes of keys that may call the local HTTP API. Raw
// keys are never stored.
type APIKeyStorage struct {
	pool *pgxpool.Pool
}

func NewAPIKeyStorage(pool *pgxpool.Pool) *APIKeyStorage {
	return &APIKeyStorage{pool: pool}
}

func (s *APIKeyStorage) GetStatusByHash(ctx context.Context, keyHash string) (exists bool, isActive bool, err error) {
	keyHash = strings.TrimSpace(keyHash)
	if keyHash == "" {
		return false, false, nil
	}

	err = s.pool.QueryRow(ctx, `
select is_active
from api_keys
where key_hash = $1;
`, keyHash).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("select api_keys: %w", err)
	}

	return true, isActive, nil
}

func (s *APIKeyStorage) Insert(ctx context.Context, keyHash, label string) error {
	_, err := s.pool.Exec(ctx, `
insert into api_keys (key_hash, label, is_active)
values ($1, $2, true)
on conflict (key_hash) do update set is_active = true, label = excluded.label;
`, keyHash, strings.TrimSpace(label))
	if err != nil {
		return fmt.Errorf("insert api_keys: %w", err)
	}
	return nil
}

func (s *APIKeyStorage) Deactivate(ctx context.Context, keyHash string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
update api_keys set is_active = false
where key_hash = $1;
`, keyHash)
	if err != nil {
		return false, fmt.Errorf("update api_keys: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
