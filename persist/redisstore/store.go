// Package redisstore keeps persisted objects in redis, one key per save slot.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amp-labs/shadowmap/logger"
	"github.com/amp-labs/shadowmap/persist"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client is the subset of the go-redis API the store needs. *redis.Client,
// *redis.ClusterClient and *redis.Ring all satisfy it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store saves and loads objects through persist using a fixed codec.
type Store struct {
	client Client
	codec  persist.Codec
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithCodec sets the codec used for slot payloads. The default is persist.MsgPack.
func WithCodec(codec persist.Codec) Option {
	return func(s *Store) {
		s.codec = codec
	}
}

// WithPrefix sets the key namespace. The default is "shadowmap".
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL sets an expiration on saved slots. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// New creates a Store on top of client.
func New(client Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		codec:  persist.MsgPack,
		prefix: "shadowmap",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewSlot returns a fresh random slot name.
func NewSlot() string {
	return uuid.NewString()
}

// Key returns the redis key a slot is stored under.
func (s *Store) Key(slot string) string {
	return fmt.Sprintf("%s:%s", s.prefix, slot)
}

// Save encodes obj with persist.Save and writes it to the slot.
func (s *Store) Save(ctx context.Context, slot string, obj any) error {
	data, err := persist.Save(ctx, s.codec, obj)
	if err != nil {
		return err
	}

	key := s.Key(slot)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		logger.Get(ctx).Error("failed to write slot", "key", key, "error", err)

		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}

// Load reads the slot into obj. A missing slot is reported as found=false
// with a nil error and leaves obj untouched.
func (s *Store) Load(ctx context.Context, slot string, obj any) (bool, error) {
	key := s.Key(slot)

	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		logger.Get(ctx).Error("failed to read slot", "key", key, "error", err)

		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := persist.Load(ctx, s.codec, data, obj); err != nil {
		return true, err
	}

	return true, nil
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (s *Store) Delete(ctx context.Context, slot string) error {
	key := s.Key(slot)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}

	return nil
}
