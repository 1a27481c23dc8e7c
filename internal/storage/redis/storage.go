package redis

import (
	"context"
	"encoding"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Records are stored in their fixed binary layout without expiry.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	return connect(redis.NewClient(opts), cfg)
}

// connect verifies the client can reach the server, closing it if not
func connect(client *redis.Client, cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Client exposes the underlying connection so other Redis-backed components can share it
func (s *Storage) Client() *redis.Client {
	return s.client
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Profile operations

func (s *Storage) CreateProfile(ctx context.Context, addr model.Address, p *model.ProfileRecord) error {
	return create(ctx, s.client, profileKey(addr), p)
}

func (s *Storage) GetProfile(ctx context.Context, addr model.Address) (*model.ProfileRecord, error) {
	return get[model.ProfileRecord](ctx, s.client, profileKey(addr))
}

func (s *Storage) PutProfile(ctx context.Context, addr model.Address, p *model.ProfileRecord) error {
	return put(ctx, s.client, profileKey(addr), p)
}

func (s *Storage) UpdateProfile(ctx context.Context, addr model.Address, fn storage.ProfileMutator) (*model.ProfileRecord, error) {
	return update[model.ProfileRecord](ctx, s.client, profileKey(addr), fn)
}

// Combatant operations

func (s *Storage) CreateCombatant(ctx context.Context, addr model.Address, c *model.CombatRecord) error {
	return create(ctx, s.client, combatantKey(addr), c)
}

func (s *Storage) GetCombatant(ctx context.Context, addr model.Address) (*model.CombatRecord, error) {
	return get[model.CombatRecord](ctx, s.client, combatantKey(addr))
}

func (s *Storage) PutCombatant(ctx context.Context, addr model.Address, c *model.CombatRecord) error {
	return put(ctx, s.client, combatantKey(addr), c)
}

func (s *Storage) UpdateCombatant(ctx context.Context, addr model.Address, fn storage.CombatMutator) (*model.CombatRecord, error) {
	return update[model.CombatRecord](ctx, s.client, combatantKey(addr), fn)
}

// getter is satisfied by both *redis.Client and *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// recordPtr is satisfied by *ProfileRecord and *CombatRecord
type recordPtr[T any] interface {
	*T
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// create writes the record only if the key is free (SETNX)
func create(ctx context.Context, client *redis.Client, key string, rec encoding.BinaryMarshaler) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	ok, err := client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAlreadyExists
	}
	return nil
}

// put overwrites an existing record only (SET XX)
func put(ctx context.Context, client *redis.Client, key string, rec encoding.BinaryMarshaler) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	ok, err := client.SetXX(ctx, key, data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrNotFound
	}
	return nil
}

func get[T any, PT recordPtr[T]](ctx context.Context, client getter, key string) (PT, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	rec := PT(new(T))
	if err := rec.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return rec, nil
}

// update performs an optimistic read-modify-write under WATCH. A concurrent
// write to the key aborts the transaction with storage.ErrConflict.
func update[T any, PT recordPtr[T]](ctx context.Context, client *redis.Client, key string, fn func(PT) error) (PT, error) {
	var updated PT

	err := client.Watch(ctx, func(tx *redis.Tx) error {
		rec, err := get[T, PT](ctx, tx, key)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}

		data, err := rec.MarshalBinary()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		if err != nil {
			return err
		}

		updated = rec
		return nil
	}, key)

	if errors.Is(err, redis.TxFailedErr) {
		return nil, storage.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}
