package kv

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("kv backend unavailable")

// Backend stores opaque values under string keys. Writes replace the whole value.
type Backend interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	Close() error
}
