package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/nonce"
)

const keyPrefix = "gmod:nonce"

// nonceKey returns the Redis key marking a signer's nonce as used
func nonceKey(signer model.Identity, n string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, signer, n)
}

// Store is a Redis-backed nonce store. Each claim is a SET NX with an expiry.
type Store struct {
	client *redis.Client
}

// New creates a nonce store on an existing client
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

var _ nonce.Store = (*Store)(nil)

func (s *Store) Claim(ctx context.Context, signer model.Identity, n string, ttl time.Duration) error {
	ok, err := s.client.SetNX(ctx, nonceKey(signer, n), 1, ttl).Result()
	if err != nil {
		return fmt.Errorf("claim nonce: %w", err)
	}
	if !ok {
		return nonce.ErrReplayed
	}
	return nil
}
