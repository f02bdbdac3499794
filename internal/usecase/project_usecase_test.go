package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"projectlink/internal/domain"
	"projectlink/internal/domain/matching"
	"projectlink/internal/domain/project"
	"projectlink/internal/domain/user"
	"projectlink/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProjectInput() project.NewInput {
	return project.NewInput{
		Title:         "Portfolio Builder",
		Description:   "Build a portfolio site",
		Skills:        []string{"react", "css"},
		Type:          "solo",
		RequiredLevel: "beginner",
	}
}

func TestProject_CreateProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	p1, err := f.project.CreateProject(ctx, validProjectInput())
	require.NoError(t, err)
	p2, err := f.project.CreateProject(ctx, validProjectInput())
	require.NoError(t, err)

	assert.NotEqual(t, p1.ID, p2.ID)
	assert.Equal(t, project.StatusNotStarted, p1.Status)

	all, err := f.projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProject_CreateProject_Invalid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := validProjectInput()
	in.Title = "   "
	in.Type = "team"
	_, err := f.project.CreateProject(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	all, err := f.projects.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProject_CreateProject_BlankSkills(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	in := validProjectInput()
	in.Skills = []string{"react", "", "  "}
	p, err := f.project.CreateProject(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"react"}, p.Skills)

	in.Skills = []string{"", " "}
	_, err = f.project.CreateProject(ctx, in)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Messages, "Please select at least one skill")
}

func TestProject_ListEntities(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedPeople(t)
	f.seedProjects(t, groupProject("proj1"))

	e, err := f.project.ListEntities(ctx, "mentors")
	require.NoError(t, err)
	assert.Equal(t, matching.KindMentor, e.Kind)
	assert.Len(t, e.Members, 2)

	e, err = f.project.ListEntities(ctx, "peer")
	require.NoError(t, err)
	assert.Len(t, e.Members, 3)

	e, err = f.project.ListEntities(ctx, "projects")
	require.NoError(t, err)
	assert.Len(t, e.Projects, 1)

	_, err = f.project.ListEntities(ctx, "teams")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestProject_ListEntities_Users(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	e, err := f.project.ListEntities(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, KindUser, e.Kind)
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"user","users":[]}`, string(b))

	require.NoError(t, f.store.SetJSON(ctx, repository.KeyUsers, []user.Profile{
		completeUser("user-1", "react"),
		completeUser("user-2", "go"),
	}))
	e, err = f.project.ListEntities(ctx, "user")
	require.NoError(t, err)
	require.Len(t, e.Users, 2)
	assert.Equal(t, "user-2", e.Users[1].ID)
}

func TestEntities_MarshalOnlyListedKind(t *testing.T) {
	b, err := json.Marshal(Entities{Kind: matching.KindMentor})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"mentor","members":[]}`, string(b))

	b, err = json.Marshal(Entities{Kind: matching.KindProject})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"project","projects":[]}`, string(b))
}

func TestProject_FilterProjects(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	solo := groupProject("solo1")
	solo.Type = domain.ProjectSolo
	mentored := groupProject("grp2", project.MentorRef{ID: "m1", Name: "Emily", Role: "mentor"})
	f.seedProjects(t, groupProject("grp1"), solo, mentored)

	yes := true
	got, err := f.project.FilterProjects(ctx, project.FilterOptions{Type: "group", HasMentor: &yes})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grp2", got[0].ID)

	got, err = f.project.FilterProjects(ctx, project.FilterOptions{Type: "all", RequiredLevel: "advanced"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = f.project.FilterProjects(ctx, project.FilterOptions{Type: "team"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProject_Suggestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	mentored := groupProject("grp2", project.MentorRef{ID: "m1", Name: "Emily", Role: "mentor"})
	f.seedProjects(t, groupProject("grp1"), mentored)

	got, err := f.project.Suggestions(ctx, matching.SuggestionPrefs{
		Skills:          []string{"node"},
		ProjectType:     domain.ProjectGroup,
		ExperienceLevel: domain.LevelIntermediate,
		NeedsMentor:     true,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grp2", got[0].ID)
}

func TestProject_Skills(t *testing.T) {
	f := newFixture(t)
	assert.NotEmpty(t, f.project.Skills())
}
