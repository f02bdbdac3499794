package usecase

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"projectlink/internal/domain"
	"projectlink/internal/domain/member"
	"projectlink/internal/domain/project"
	"projectlink/internal/domain/user"
	"projectlink/internal/infrastructure/kv"
	"projectlink/internal/repository"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *kv.Store
	users    *repository.KVUserRepository
	sessions *repository.KVSessionRepository
	projects *repository.KVProjectRepository
	peers    *repository.KVMemberRepository
	mentors  *repository.KVMemberRepository
	joined   *repository.KVJoinedRepository
	chats    *repository.KVChatRepository
	clock    *Clock

	session    *Session
	project    *Project
	recommend  *Recommendation
	membership *Membership
	chat       *Chat
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewStore(kv.NewMemory(), log.New(io.Discard, "", 0))
	f := &fixture{
		store:    store,
		users:    repository.NewKVUserRepository(store),
		sessions: repository.NewKVSessionRepository(store),
		projects: repository.NewKVProjectRepository(store),
		peers:    repository.NewKVPeerRepository(store),
		mentors:  repository.NewKVMentorRepository(store),
		joined:   repository.NewKVJoinedRepository(store),
		chats:    repository.NewKVChatRepository(store),
		clock:    NewClock(func() time.Time { return fixedNow }),
	}
	f.session = NewSessionUsecase(f.users, f.sessions, f.clock)
	f.project = NewProjectUsecase(f.projects, f.users, f.peers, f.mentors, f.clock)
	f.recommend = NewRecommendationUsecase(f.users, f.projects, f.peers, f.mentors, 3)
	f.membership = NewMembershipUsecase(MembershipDeps{
		Projects: f.projects,
		Joined:   f.joined,
		Chats:    f.chats,
		Sessions: f.sessions,
		Users:    f.users,
		Peers:    f.peers,
		Mentors:  f.mentors,
		Clock:    f.clock,
	})
	f.chat = NewChatUsecase(f.chats, f.users, f.projects, f.clock)
	return f
}

func (f *fixture) signIn(t *testing.T, p user.Profile) {
	t.Helper()
	require.NoError(t, f.users.SaveCurrent(context.Background(), p))
}

func (f *fixture) seedProjects(t *testing.T, ps ...project.Project) {
	t.Helper()
	for _, p := range ps {
		require.NoError(t, f.projects.Create(context.Background(), p))
	}
}

func (f *fixture) seedPeople(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.peers.Save(ctx, []member.Member{
		{ID: "p1", Name: "Alex", Skills: []string{"react", "typescript", "node"}, Role: member.RolePeer},
		{ID: "p2", Name: "Sarah", Skills: []string{"python", "machine-learning"}, Role: member.RolePeer},
		{ID: "p3", Name: "Mike", Skills: []string{"javascript", "react", "css"}, Role: member.RolePeer},
	}))
	require.NoError(t, f.mentors.Save(ctx, []member.Member{
		{ID: "m1", Name: "Emily", Skills: []string{"python", "machine-learning", "data-science"}, Role: member.RoleMentor},
		{ID: "m2", Name: "James", Skills: []string{"react", "typescript", "node"}, Role: member.RoleMentor},
	}))
}

func completeUser(id string, skills ...string) user.Profile {
	return user.Profile{
		ID:                  id,
		Name:                "Test User",
		Email:               id + "@example.com",
		Skills:              skills,
		ExperienceLevel:     domain.LevelIntermediate,
		OnboardingCompleted: true,
	}
}

func groupProject(id string, mentors ...project.MentorRef) project.Project {
	return project.Project{
		ID:            id,
		Title:         "Project " + id,
		Skills:        []string{"react", "node"},
		Type:          domain.ProjectGroup,
		Status:        project.StatusNotStarted,
		RequiredLevel: domain.LevelIntermediate,
		Mentors:       mentors,
	}
}
