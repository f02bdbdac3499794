package repository

import (
	"context"
	"errors"
	"strings"

	"projectlink/internal/domain/user"
	"projectlink/internal/infrastructure/kv"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Current(ctx context.Context) (user.Profile, bool, error)
	SaveCurrent(ctx context.Context, p user.Profile) error
	List(ctx context.Context) ([]user.Profile, error)
	// Mirror replaces the record with the same id in the users list. It does
	// nothing when the list was never created.
	Mirror(ctx context.Context, p user.Profile) error
	FindByEmail(ctx context.Context, email string) (user.Profile, error)
}

type KVUserRepository struct {
	store *kv.Store
	users jsonList[user.Profile]
}

func NewKVUserRepository(store *kv.Store) *KVUserRepository {
	return &KVUserRepository{
		store: store,
		users: jsonList[user.Profile]{store: store, key: KeyUsers},
	}
}

// Current reports false when no session user is stored. A stored profile
// without an id is cleared and read as absent.
func (r *KVUserRepository) Current(ctx context.Context) (user.Profile, bool, error) {
	var p user.Profile
	ok, err := r.store.GetJSON(ctx, KeyUser, &p)
	if err != nil || !ok {
		return user.Profile{}, false, err
	}
	if strings.TrimSpace(p.ID) == "" {
		r.store.Discard(ctx, KeyUser, "profile without id")
		return user.Profile{}, false, nil
	}
	return p, true, nil
}

func (r *KVUserRepository) SaveCurrent(ctx context.Context, p user.Profile) error {
	return r.store.Locked(KeyUser, func() error {
		return r.store.SetJSON(ctx, KeyUser, p)
	})
}

func (r *KVUserRepository) List(ctx context.Context) ([]user.Profile, error) {
	items, _, err := r.users.load(ctx)
	return items, err
}

func (r *KVUserRepository) Mirror(ctx context.Context, p user.Profile) error {
	return r.store.Locked(KeyUsers, func() error {
		items, ok, err := r.users.load(ctx)
		if err != nil || !ok {
			return err
		}
		for i := range items {
			if items[i].ID == p.ID {
				items[i] = p
				return r.users.save(ctx, items)
			}
		}
		return nil
	})
}

// FindByEmail looks at the session user first, then the users list.
func (r *KVUserRepository) FindByEmail(ctx context.Context, email string) (user.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return user.Profile{}, ErrUserNotFound
	}

	cur, ok, err := r.Current(ctx)
	if err != nil {
		return user.Profile{}, err
	}
	if ok && strings.EqualFold(cur.Email, email) {
		return cur, nil
	}

	items, err := r.List(ctx)
	if err != nil {
		return user.Profile{}, err
	}
	for _, p := range items {
		if strings.EqualFold(p.Email, email) {
			return p, nil
		}
	}
	return user.Profile{}, ErrUserNotFound
}
