package repository

import (
	"context"

	"projectlink/internal/infrastructure/kv"
)

type SessionRepository interface {
	Clear(ctx context.Context) error
	SelectedSkills(ctx context.Context) ([]string, error)
	SaveSelectedSkills(ctx context.Context, skills []string) error
}

type KVSessionRepository struct {
	store    *kv.Store
	selected jsonList[string]
}

func NewKVSessionRepository(store *kv.Store) *KVSessionRepository {
	return &KVSessionRepository{
		store:    store,
		selected: jsonList[string]{store: store, key: KeySelectedSkills},
	}
}

func (r *KVSessionRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, SessionKeys...)
}

func (r *KVSessionRepository) SelectedSkills(ctx context.Context) ([]string, error) {
	items, _, err := r.selected.load(ctx)
	return items, err
}

func (r *KVSessionRepository) SaveSelectedSkills(ctx context.Context, skills []string) error {
	return r.store.Locked(KeySelectedSkills, func() error {
		return r.selected.save(ctx, skills)
	})
}
