package repository

import (
	"context"
	"errors"

	"projectlink/internal/domain/project"
	"projectlink/internal/infrastructure/kv"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id string) (project.Project, error)
	Create(ctx context.Context, p project.Project) error
	// Update applies fn to the stored project under the projects lock and
	// returns the result.
	Update(ctx context.Context, id string, fn func(p project.Project) (project.Project, bool)) (project.Project, error)
}

type KVProjectRepository struct {
	list jsonList[project.Project]
}

func NewKVProjectRepository(store *kv.Store) *KVProjectRepository {
	return &KVProjectRepository{list: jsonList[project.Project]{store: store, key: KeyProjects}}
}

func (r *KVProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	items, _, err := r.list.load(ctx)
	return items, err
}

func (r *KVProjectRepository) Get(ctx context.Context, id string) (project.Project, error) {
	items, err := r.List(ctx)
	if err != nil {
		return project.Project{}, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, nil
		}
	}
	return project.Project{}, ErrProjectNotFound
}

func (r *KVProjectRepository) Create(ctx context.Context, p project.Project) error {
	return r.list.update(ctx, func(items []project.Project) ([]project.Project, bool, error) {
		return append(items, p), true, nil
	})
}

func (r *KVProjectRepository) Update(ctx context.Context, id string, fn func(p project.Project) (project.Project, bool)) (project.Project, error) {
	var out project.Project
	err := r.list.update(ctx, func(items []project.Project) ([]project.Project, bool, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			next, changed := fn(items[i])
			out = next
			if changed {
				items[i] = next
			}
			return items, changed, nil
		}
		return nil, false, ErrProjectNotFound
	})
	if err != nil {
		return project.Project{}, err
	}
	return out, nil
}
