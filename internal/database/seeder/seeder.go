package seeder

import (
	"context"

	"projectlink/internal/infrastructure/kv"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, store *kv.Store) error
}

// seedIfAbsent writes value under key only when the key holds nothing, so
// data edited by the user is never replaced.
func seedIfAbsent(ctx context.Context, store *kv.Store, key string, value any) (bool, error) {
	var written bool
	err := store.Locked(key, func() error {
		exists, err := store.Exists(ctx, key)
		if err != nil || exists {
			return err
		}
		written = true
		return store.SetJSON(ctx, key, value)
	})
	return written, err
}
