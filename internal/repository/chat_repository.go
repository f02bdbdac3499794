package repository

import (
	"context"

	"projectlink/internal/domain/chat"
	"projectlink/internal/infrastructure/kv"
)

type ChatRepository interface {
	History(ctx context.Context, key string) ([]chat.Message, error)
	Append(ctx context.Context, key string, msg chat.Message) error
	// Roster reports false when the project's roster was never written.
	Roster(ctx context.Context, projectID string) ([]chat.Member, bool, error)
	UpdateRoster(ctx context.Context, projectID string, fn func(roster []chat.Member, exists bool) ([]chat.Member, bool)) ([]chat.Member, error)
}

type KVChatRepository struct {
	store *kv.Store
}

func NewKVChatRepository(store *kv.Store) *KVChatRepository {
	return &KVChatRepository{store: store}
}

func (r *KVChatRepository) History(ctx context.Context, key string) ([]chat.Message, error) {
	items, _, err := jsonList[chat.Message]{store: r.store, key: key}.load(ctx)
	return items, err
}

func (r *KVChatRepository) Append(ctx context.Context, key string, msg chat.Message) error {
	return jsonList[chat.Message]{store: r.store, key: key}.update(ctx, func(items []chat.Message) ([]chat.Message, bool, error) {
		return append(items, msg), true, nil
	})
}

func (r *KVChatRepository) Roster(ctx context.Context, projectID string) ([]chat.Member, bool, error) {
	return jsonList[chat.Member]{store: r.store, key: chat.MembersKey(projectID)}.load(ctx)
}

func (r *KVChatRepository) UpdateRoster(ctx context.Context, projectID string, fn func(roster []chat.Member, exists bool) ([]chat.Member, bool)) ([]chat.Member, error) {
	l := jsonList[chat.Member]{store: r.store, key: chat.MembersKey(projectID)}
	var out []chat.Member
	err := r.store.Locked(l.key, func() error {
		items, ok, err := l.load(ctx)
		if err != nil {
			return err
		}
		next, changed := fn(items, ok)
		out = next
		if !changed {
			return nil
		}
		return l.save(ctx, next)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]chat.Member, 0)
	}
	return out, nil
}
