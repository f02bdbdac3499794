package repository

import (
	"context"
	"errors"

	"projectlink/internal/domain/member"
	"projectlink/internal/infrastructure/kv"
)

var ErrMemberNotFound = errors.New("member not found")

// MemberRepository serves one of the people lists (peers or mentors).
type MemberRepository interface {
	List(ctx context.Context) ([]member.Member, error)
	Get(ctx context.Context, id string) (member.Member, error)
	Save(ctx context.Context, items []member.Member) error
}

type KVMemberRepository struct {
	list jsonList[member.Member]
}

func NewKVPeerRepository(store *kv.Store) *KVMemberRepository {
	return &KVMemberRepository{list: jsonList[member.Member]{store: store, key: KeyPeers}}
}

func NewKVMentorRepository(store *kv.Store) *KVMemberRepository {
	return &KVMemberRepository{list: jsonList[member.Member]{store: store, key: KeyMentors}}
}

func (r *KVMemberRepository) List(ctx context.Context) ([]member.Member, error) {
	items, _, err := r.list.load(ctx)
	return items, err
}

func (r *KVMemberRepository) Get(ctx context.Context, id string) (member.Member, error) {
	items, err := r.List(ctx)
	if err != nil {
		return member.Member{}, err
	}
	for _, m := range items {
		if m.ID == id {
			return m, nil
		}
	}
	return member.Member{}, ErrMemberNotFound
}

func (r *KVMemberRepository) Save(ctx context.Context, items []member.Member) error {
	return r.list.store.Locked(r.list.key, func() error {
		return r.list.save(ctx, items)
	})
}
