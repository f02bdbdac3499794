package repository

import (
	"context"
	"slices"

	"projectlink/internal/domain/project"
	"projectlink/internal/infrastructure/kv"
)

type JoinedRepository interface {
	IDs(ctx context.Context) ([]string, error)
	// Add appends id when absent and reports whether it was added.
	Add(ctx context.Context, id string) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Details(ctx context.Context) ([]project.Summary, error)
	SaveDetails(ctx context.Context, details []project.Summary) error
}

type KVJoinedRepository struct {
	ids     jsonList[string]
	details jsonList[project.Summary]
}

func NewKVJoinedRepository(store *kv.Store) *KVJoinedRepository {
	return &KVJoinedRepository{
		ids:     jsonList[string]{store: store, key: KeyJoinedProjects},
		details: jsonList[project.Summary]{store: store, key: KeyJoinedDetails},
	}
}

func (r *KVJoinedRepository) IDs(ctx context.Context) ([]string, error) {
	items, _, err := r.ids.load(ctx)
	return items, err
}

func (r *KVJoinedRepository) Add(ctx context.Context, id string) (bool, error) {
	var added bool
	err := r.ids.update(ctx, func(items []string) ([]string, bool, error) {
		if slices.Contains(items, id) {
			return items, false, nil
		}
		added = true
		return append(items, id), true, nil
	})
	return added, err
}

func (r *KVJoinedRepository) Remove(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.ids.update(ctx, func(items []string) ([]string, bool, error) {
		out := items[:0]
		for _, it := range items {
			if it == id {
				removed = true
				continue
			}
			out = append(out, it)
		}
		return out, removed, nil
	})
	return removed, err
}

func (r *KVJoinedRepository) Details(ctx context.Context) ([]project.Summary, error) {
	items, _, err := r.details.load(ctx)
	return items, err
}

func (r *KVJoinedRepository) SaveDetails(ctx context.Context, details []project.Summary) error {
	return r.details.store.Locked(r.details.key, func() error {
		return r.details.save(ctx, details)
	})
}
