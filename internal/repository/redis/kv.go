// Package redis provides a snapshot backend on Redis. Both snapshot keys are
// written with a single MSET, so the write is applied as a unit.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbrell/centsible/centsible-backend/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "ledger:"

// KV stores snapshot values under ledger:-prefixed keys.
type KV struct {
	client *goredis.Client
}

// Open connects to addr and verifies the connection.
func Open(ctx context.Context, addr string) (*KV, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return &KV{client: client}, nil
}

// Get returns the stored value for key.
func (s *KV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Put writes every pair with one MSET.
func (s *KV) Put(ctx context.Context, pairs map[string][]byte) error {
	args := make([]interface{}, 0, len(pairs)*2)
	for key, value := range pairs {
		args = append(args, keyPrefix+key, value)
	}
	return s.client.MSet(ctx, args...).Err()
}

// Close closes the client connection.
func (s *KV) Close() error {
	return s.client.Close()
}
