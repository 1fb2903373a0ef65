package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps documents as string values under prefix:location.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a store using client. An empty prefix stores keys as-is.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisGateway returns a document gateway backed by Redis.
func NewRedisGateway(client *redis.Client, prefix string) *DocumentGateway {
	return NewDocumentGateway(NewRedisStore(client, prefix))
}

func (s *RedisStore) key(location string) string {
	if s.prefix == "" {
		return location
	}
	return s.prefix + ":" + location
}

// ReadBlob fetches the document stored under location.
func (s *RedisStore) ReadBlob(ctx context.Context, location string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(location)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotExist
	}
	return data, err
}

// WriteBlob stores the document under location without expiry.
func (s *RedisStore) WriteBlob(ctx context.Context, location string, data []byte) error {
	return s.client.Set(ctx, s.key(location), data, 0).Err()
}
