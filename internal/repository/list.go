package repository

import (
	"context"

	"projectlink/internal/infrastructure/kv"
)

// jsonList is an ordered JSON array stored whole under one key.
type jsonList[T any] struct {
	store *kv.Store
	key   string
}

// load returns the stored items and whether the key held a list. Absent keys
// load as an empty, non-nil slice.
func (l jsonList[T]) load(ctx context.Context) ([]T, bool, error) {
	var items []T
	ok, err := l.store.GetJSON(ctx, l.key, &items)
	if err != nil {
		return nil, false, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, ok, nil
}

func (l jsonList[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = make([]T, 0)
	}
	return l.store.SetJSON(ctx, l.key, items)
}

// update runs a read-modify-write under the key's lock. fn reports whether
// the list changed; unchanged lists are not written back.
func (l jsonList[T]) update(ctx context.Context, fn func(items []T) ([]T, bool, error)) error {
	return l.store.Locked(l.key, func() error {
		items, _, err := l.load(ctx)
		if err != nil {
			return err
		}
		next, changed, err := fn(items)
		if err != nil || !changed {
			return err
		}
		return l.save(ctx, next)
	})
}
