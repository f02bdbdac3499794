package usecase

import (
	"context"
	"encoding/json"

	"projectlink/internal/domain/matching"
	"projectlink/internal/domain/member"
	"projectlink/internal/domain/project"
	"projectlink/internal/repository"
)

type Recommendations struct {
	Kind     matching.Kind                       `json:"kind"`
	Members  []matching.Scored[member.Member]   `json:"members,omitempty"`
	Projects []matching.Scored[project.Project] `json:"projects,omitempty"`
}

// MarshalJSON writes only the list of the requested kind, as [] when empty.
func (r Recommendations) MarshalJSON() ([]byte, error) {
	if r.Kind == matching.KindProject {
		items := r.Projects
		if items == nil {
			items = []matching.Scored[project.Project]{}
		}
		return json.Marshal(struct {
			Kind     matching.Kind                       `json:"kind"`
			Projects []matching.Scored[project.Project] `json:"projects"`
		}{r.Kind, items})
	}
	items := r.Members
	if items == nil {
		items = []matching.Scored[member.Member]{}
	}
	return json.Marshal(struct {
		Kind    matching.Kind                     `json:"kind"`
		Members []matching.Scored[member.Member] `json:"members"`
	}{r.Kind, items})
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, kind string, limit int) (Recommendations, error)
}

type Recommendation struct {
	users        repository.UserRepository
	projects     repository.ProjectRepository
	peers        repository.MemberRepository
	mentors      repository.MemberRepository
	defaultLimit int
}

func NewRecommendationUsecase(
	users repository.UserRepository,
	projects repository.ProjectRepository,
	peers, mentors repository.MemberRepository,
	defaultLimit int,
) *Recommendation {
	if defaultLimit <= 0 {
		defaultLimit = matching.DefaultLimit
	}
	return &Recommendation{
		users:        users,
		projects:     projects,
		peers:        peers,
		mentors:      mentors,
		defaultLimit: defaultLimit,
	}
}

// Recommend ranks entities of kind against the session user. Without a
// session the user has no skills and nothing is recommended.
func (u *Recommendation) Recommend(ctx context.Context, kind string, limit int) (Recommendations, error) {
	k, ok := matching.ParseKind(kind)
	if !ok {
		return Recommendations{}, ErrUnknownKind
	}
	if limit <= 0 {
		limit = u.defaultLimit
	}

	cur, _, err := u.users.Current(ctx)
	if err != nil {
		return Recommendations{}, ErrInternal
	}

	out := Recommendations{Kind: k}
	switch k {
	case matching.KindProject:
		items, err := u.projects.List(ctx)
		if err != nil {
			return Recommendations{}, ErrInternal
		}
		out.Projects = matching.RankOf(items, cur, k, limit, matching.ProjectCandidate)
	default:
		repo := u.peers
		if k == matching.KindMentor {
			repo = u.mentors
		}
		items, err := repo.List(ctx)
		if err != nil {
			return Recommendations{}, ErrInternal
		}
		out.Members = matching.RankOf(items, cur, k, limit, matching.MemberCandidate)
	}
	return out, nil
}
