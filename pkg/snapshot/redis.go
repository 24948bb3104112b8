package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implements Store on top of a go-redis client. Snapshots are stored
// as JSON under prefix+id, optionally with a TTL.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ Store = (*Redis)(nil)

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithKeyPrefix overrides the key prefix. The default is "fsm:snapshot:".
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// WithTTL sets an expiry on saved snapshots. Zero, the default, keeps them
// forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// NewRedis creates a snapshot store over an established Redis client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) (*Redis, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	r := &Redis{
		client: client,
		prefix: "fsm:snapshot:",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Redis) key(id string) string {
	return r.prefix + id
}

func (r *Redis) Save(ctx context.Context, snap Snapshot) error {
	if snap.ID == "" {
		return ErrEmptyID
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return errors.Join(ErrFailedToEncodeSnapshot, err)
	}

	if err := r.client.Set(ctx, r.key(snap.ID), payload, r.ttl).Err(); err != nil {
		return errors.Join(ErrFailedToSaveSnapshot, err)
	}
	return nil
}

func (r *Redis) Load(ctx context.Context, id string) (Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, errors.Join(ErrFailedToLoadSnapshot, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return Snapshot{}, errors.Join(ErrFailedToDecodeSnapshot, err)
	}
	return snap, nil
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return errors.Join(ErrFailedToDeleteSnapshot, err)
	}
	return nil
}
