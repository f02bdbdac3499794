package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"projectlink/internal/domain"
	"projectlink/internal/domain/matching"
	"projectlink/internal/domain/member"
	"projectlink/internal/domain/project"
	"projectlink/internal/domain/skill"
	"projectlink/internal/domain/user"
	"projectlink/internal/repository"
)

// KindUser lists the registered user profiles. It is not a recommendation kind.
const KindUser matching.Kind = "user"

// Entities is the listing of one entity kind. Only the kind's slice is set.
type Entities struct {
	Kind     matching.Kind
	Members  []member.Member
	Projects []project.Project
	Users    []user.Profile
}

// MarshalJSON writes only the list of the listed kind, as [] when empty.
func (e Entities) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case KindUser:
		items := e.Users
		if items == nil {
			items = []user.Profile{}
		}
		return json.Marshal(struct {
			Kind  matching.Kind  `json:"kind"`
			Users []user.Profile `json:"users"`
		}{e.Kind, items})
	case matching.KindProject:
		items := e.Projects
		if items == nil {
			items = []project.Project{}
		}
		return json.Marshal(struct {
			Kind     matching.Kind     `json:"kind"`
			Projects []project.Project `json:"projects"`
		}{e.Kind, items})
	}

	items := e.Members
	if items == nil {
		items = []member.Member{}
	}
	return json.Marshal(struct {
		Kind    matching.Kind   `json:"kind"`
		Members []member.Member `json:"members"`
	}{e.Kind, items})
}

type ProjectUsecase interface {
	ListEntities(ctx context.Context, kind string) (Entities, error)
	CreateProject(ctx context.Context, in project.NewInput) (project.Project, error)
	FilterProjects(ctx context.Context, f project.FilterOptions) ([]project.Project, error)
	Suggestions(ctx context.Context, prefs matching.SuggestionPrefs) ([]project.Project, error)
	Skills() []skill.Skill
}

type Project struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	peers    repository.MemberRepository
	mentors  repository.MemberRepository
	clock    *Clock
}

func NewProjectUsecase(projects repository.ProjectRepository, users repository.UserRepository, peers, mentors repository.MemberRepository, clock *Clock) *Project {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Project{projects: projects, users: users, peers: peers, mentors: mentors, clock: clock}
}

func (u *Project) ListEntities(ctx context.Context, kind string) (Entities, error) {
	k, ok := parseEntityKind(kind)
	if !ok {
		return Entities{}, ErrUnknownKind
	}

	out := Entities{Kind: k}
	var err error
	switch k {
	case matching.KindPeer:
		out.Members, err = u.peers.List(ctx)
	case matching.KindMentor:
		out.Members, err = u.mentors.List(ctx)
	case matching.KindProject:
		out.Projects, err = u.projects.List(ctx)
	case KindUser:
		out.Users, err = u.users.List(ctx)
	}
	if err != nil {
		return Entities{}, ErrInternal
	}
	return out, nil
}

// parseEntityKind accepts the singular kinds and the plural storage key names.
func parseEntityKind(s string) (matching.Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case repository.KeyPeers:
		return matching.KindPeer, true
	case repository.KeyMentors:
		return matching.KindMentor, true
	case repository.KeyProjects:
		return matching.KindProject, true
	case repository.KeyUsers, string(KindUser):
		return KindUser, true
	}
	return matching.ParseKind(s)
}

func (u *Project) CreateProject(ctx context.Context, in project.NewInput) (project.Project, error) {
	if err := project.ValidateNew(in); err != nil {
		return project.Project{}, invalidInput(err)
	}
	p := project.New(in, u.clock.Now())
	if err := u.projects.Create(ctx, p); err != nil {
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *Project) FilterProjects(ctx context.Context, f project.FilterOptions) ([]project.Project, error) {
	if f.Type != "" && f.Type != domain.FilterAll {
		if _, ok := domain.ParseProjectType(f.Type); !ok {
			return nil, invalidField("Project type must be solo or group")
		}
	}
	if f.RequiredLevel != "" && f.RequiredLevel != domain.FilterAll {
		if _, ok := domain.ParseExperienceLevel(f.RequiredLevel); !ok {
			return nil, invalidField("Experience level must be beginner, intermediate or advanced")
		}
	}

	all, err := u.projects.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return project.Filter(all, f), nil
}

func (u *Project) Suggestions(ctx context.Context, prefs matching.SuggestionPrefs) ([]project.Project, error) {
	all, err := u.projects.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return matching.ProjectSuggestions(all, prefs), nil
}

func (u *Project) Skills() []skill.Skill {
	return skill.All()
}
