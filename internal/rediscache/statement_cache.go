package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mono-statements/internal"

	"github.com/redis/go-redis/v9"
)

const statementsNamespace = "statements"

type StatementCache struct {
	client redis.UniversalClient
}

// New connects to a single node, or to a cluster when more than one address
// is given.
func New(addrs []string, password string) *StatementCache {
	var rdb redis.UniversalClient
	if len(addrs) > 1 {
		rdb = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    addrs,
			Password: password,
		})
	} else {
		rdb = redis.NewClient(&redis.Options{
			Addr:     addrs[0],
			Password: password,
			DB:       0,
		})
	}
	return &StatementCache{client: rdb}
}

func NewWithClient(client redis.UniversalClient) *StatementCache {
	return &StatementCache{client: client}
}

func (c *StatementCache) Get(ctx context.Context, key string) ([]internal.Statement, bool, error) {
	raw, err := c.client.Get(ctx, namespaced(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var out []internal.Statement
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false, fmt.Errorf("unmarshal statements: %w", err)
	}
	return out, true, nil
}

func (c *StatementCache) Set(ctx context.Context, key string, stmts []internal.Statement, ttl time.Duration) error {
	raw, err := json.Marshal(stmts)
	if err != nil {
		return fmt.Errorf("marshal statements: %w", err)
	}
	if err := c.client.Set(ctx, namespaced(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *StatementCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *StatementCache) Close() error {
	return c.client.Close()
}

func namespaced(key string) string {
	return statementsNamespace + ":" + key
}
