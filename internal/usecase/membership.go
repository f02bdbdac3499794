package usecase

import (
	"context"
	"errors"
	"slices"
	"time"

	"projectlink/internal/domain"
	"projectlink/internal/domain/chat"
	"projectlink/internal/domain/matching"
	"projectlink/internal/domain/member"
	"projectlink/internal/domain/project"
	"projectlink/internal/domain/user"
	"projectlink/internal/repository"
)

type JoinResult struct {
	Project project.Project `json:"project"`
	// Joined is false when the project was already in the joined list.
	Joined       bool          `json:"joined"`
	GroupChatKey string        `json:"groupChatKey,omitempty"`
	Roster       []chat.Member `json:"roster,omitempty"`
}

type MembershipUsecase interface {
	JoinProject(ctx context.Context, projectID string) (JoinResult, error)
	LeaveProject(ctx context.Context, projectID string) error
	JoinedProjects(ctx context.Context) ([]project.Summary, error)
	SelectProjectSkills(ctx context.Context, projectID string) ([]string, error)
	MentorsForSelection(ctx context.Context, limit int) ([]matching.Scored[member.Member], error)
	TeamMatches(ctx context.Context, projectID string) ([]member.Member, error)
}

type Membership struct {
	projects repository.ProjectRepository
	joined   repository.JoinedRepository
	chats    repository.ChatRepository
	sessions repository.SessionRepository
	users    repository.UserRepository
	peers    repository.MemberRepository
	mentors  repository.MemberRepository
	clock    *Clock
}

type MembershipDeps struct {
	Projects repository.ProjectRepository
	Joined   repository.JoinedRepository
	Chats    repository.ChatRepository
	Sessions repository.SessionRepository
	Users    repository.UserRepository
	Peers    repository.MemberRepository
	Mentors  repository.MemberRepository
	Clock    *Clock
}

func NewMembershipUsecase(d MembershipDeps) *Membership {
	clock := d.Clock
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Membership{
		projects: d.Projects,
		joined:   d.Joined,
		chats:    d.Chats,
		sessions: d.Sessions,
		users:    d.Users,
		peers:    d.Peers,
		mentors:  d.Mentors,
		clock:    clock,
	}
}

// JoinProject marks the project in progress, records it as joined, refreshes
// the joined snapshot and opens the group roster for mentored group projects.
// Joining twice is a no-op that returns the project again.
func (u *Membership) JoinProject(ctx context.Context, projectID string) (JoinResult, error) {
	if projectID == "" {
		return JoinResult{}, invalidField("Project id is required")
	}

	now := u.clock.Now().UTC().Format(time.RFC3339)
	p, err := u.projects.Update(ctx, projectID, func(p project.Project) (project.Project, bool) {
		if p.Status == project.StatusInProgress || !p.Status.CanAdvanceTo(project.StatusInProgress) {
			return p, false
		}
		p.Status = project.StatusInProgress
		p.UpdatedAt = now
		return p, true
	})
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return JoinResult{}, ErrProjectNotFound
		}
		return JoinResult{}, ErrInternal
	}

	added, err := u.joined.Add(ctx, p.ID)
	if err != nil {
		return JoinResult{}, ErrInternal
	}
	if _, err := u.refreshJoined(ctx); err != nil {
		return JoinResult{}, err
	}

	res := JoinResult{Project: p, Joined: added}
	if p.Type == domain.ProjectGroup && p.HasMentor() {
		roster, err := seedRoster(ctx, u.chats, p)
		if err != nil {
			return JoinResult{}, ErrInternal
		}
		res.GroupChatKey = chat.GroupKey(p.ID)
		res.Roster = roster
	}
	return res, nil
}

func (u *Membership) LeaveProject(ctx context.Context, projectID string) error {
	if projectID == "" {
		return invalidField("Project id is required")
	}
	if _, err := u.joined.Remove(ctx, projectID); err != nil {
		return ErrInternal
	}
	_, err := u.refreshJoined(ctx)
	return err
}

func (u *Membership) JoinedProjects(ctx context.Context) ([]project.Summary, error) {
	return u.refreshJoined(ctx)
}

// refreshJoined rebuilds the joined summaries from the canonical projects.
// Ids whose project no longer exists are skipped. The snapshot is written
// only when it differs from what is stored.
func (u *Membership) refreshJoined(ctx context.Context) ([]project.Summary, error) {
	ids, err := u.joined.IDs(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	all, err := u.projects.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	byID := make(map[string]project.Project, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	out := make([]project.Summary, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p.Summary())
		}
	}

	stored, err := u.joined.Details(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if !slices.EqualFunc(stored, out, sameSummary) {
		if err := u.joined.SaveDetails(ctx, out); err != nil {
			return nil, ErrInternal
		}
	}
	return out, nil
}

func sameSummary(a, b project.Summary) bool {
	return a.ID == b.ID && a.Title == b.Title && a.Type == b.Type && slices.Equal(a.Skills, b.Skills)
}

// SelectProjectSkills remembers the project's skills for the mentorship page.
func (u *Membership) SelectProjectSkills(ctx context.Context, projectID string) ([]string, error) {
	p, err := u.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}
	skills := slices.Clone(p.Skills)
	if skills == nil {
		skills = make([]string, 0)
	}
	if err := u.sessions.SaveSelectedSkills(ctx, skills); err != nil {
		return nil, ErrInternal
	}
	return skills, nil
}

// MentorsForSelection ranks mentors against the selected project skills,
// or the session user's skills when nothing was selected.
func (u *Membership) MentorsForSelection(ctx context.Context, limit int) ([]matching.Scored[member.Member], error) {
	skills, err := u.sessions.SelectedSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	cur, _, err := u.users.Current(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	target := user.Profile{ID: cur.ID, Skills: skills}
	if len(skills) == 0 {
		target.Skills = cur.Skills
	}

	mentors, err := u.mentors.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return matching.RankOf(mentors, target, matching.KindMentor, limit, matching.MemberCandidate), nil
}

func (u *Membership) TeamMatches(ctx context.Context, projectID string) ([]member.Member, error) {
	p, err := u.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}
	peers, err := u.peers.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return matching.TeamMatches(p.Skills, peers), nil
}

// seedRoster writes the project's mentors as the group roster the first time
// the roster is needed. An existing roster is returned unchanged.
func seedRoster(ctx context.Context, chats repository.ChatRepository, p project.Project) ([]chat.Member, error) {
	return chats.UpdateRoster(ctx, p.ID, func(roster []chat.Member, exists bool) ([]chat.Member, bool) {
		if exists {
			return roster, false
		}
		out := make([]chat.Member, 0, len(p.Mentors))
		for _, m := range p.Mentors {
			out = append(out, chat.Member{ID: m.ID, Name: m.Name, Role: chat.RoleMentor})
		}
		return out, true
	})
}
