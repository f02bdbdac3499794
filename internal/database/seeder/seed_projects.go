package seeder

import (
	"context"

	"projectlink/internal/domain"
	"projectlink/internal/domain/project"
	"projectlink/internal/infrastructure/kv"
	"projectlink/internal/repository"
)

type ProjectsSeeder struct{}

func (ProjectsSeeder) Name() string { return "projects" }

func (ProjectsSeeder) Run(ctx context.Context, store *kv.Store) error {
	_, err := seedIfAbsent(ctx, store, repository.KeyProjects, DemoProjects())
	return err
}

func DemoProjects() []project.Project {
	return []project.Project{
		{
			ID:            "proj1",
			Title:         "AI Image Recognition App",
			Description:   "Build an AI-powered image recognition application using Python and TensorFlow.",
			Skills:        []string{"python", "machine-learning", "tensorflow"},
			Type:          domain.ProjectGroup,
			Status:        project.StatusInProgress,
			RequiredLevel: domain.LevelIntermediate,
			Mentors:       []project.MentorRef{},
		},
		{
			ID:            "proj2",
			Title:         "React Portfolio Builder",
			Description:   "Create a portfolio website builder using React and TypeScript.",
			Skills:        []string{"react", "typescript", "css"},
			Type:          domain.ProjectSolo,
			Status:        project.StatusNotStarted,
			RequiredLevel: domain.LevelBeginner,
			Mentors:       []project.MentorRef{},
		},
		{
			ID:            "proj3",
			Title:         "Node.js REST API",
			Description:   "Develop a RESTful API using Node.js and Express.",
			Skills:        []string{"node", "javascript", "express"},
			Type:          domain.ProjectGroup,
			Status:        project.StatusNotStarted,
			RequiredLevel: domain.LevelIntermediate,
			Mentors:       []project.MentorRef{},
		},
	}
}
