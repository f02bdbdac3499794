package seeder

import (
	"context"

	"projectlink/internal/domain"
	"projectlink/internal/domain/member"
	"projectlink/internal/infrastructure/kv"
	"projectlink/internal/repository"
)

type PeersSeeder struct{}

func (PeersSeeder) Name() string { return "peers" }

func (PeersSeeder) Run(ctx context.Context, store *kv.Store) error {
	_, err := seedIfAbsent(ctx, store, repository.KeyPeers, DemoPeers())
	return err
}

type MentorsSeeder struct{}

func (MentorsSeeder) Name() string { return "mentors" }

func (MentorsSeeder) Run(ctx context.Context, store *kv.Store) error {
	_, err := seedIfAbsent(ctx, store, repository.KeyMentors, DemoMentors())
	return err
}

func DemoPeers() []member.Member {
	return []member.Member{
		{
			ID:              "p1",
			Name:            "Alex Johnson",
			Skills:          []string{"react", "typescript", "node"},
			Bio:             "Frontend developer passionate about React and TypeScript.",
			ExperienceLevel: domain.LevelIntermediate,
			Role:            member.RolePeer,
		},
		{
			ID:              "p2",
			Name:            "Sarah Chen",
			Skills:          []string{"python", "machine-learning", "data-science"},
			Bio:             "ML enthusiast working on deep learning projects.",
			ExperienceLevel: domain.LevelAdvanced,
			Role:            member.RolePeer,
		},
		{
			ID:              "p3",
			Name:            "Mike Brown",
			Skills:          []string{"javascript", "react", "css"},
			Bio:             "Web developer learning modern frontend technologies.",
			ExperienceLevel: domain.LevelBeginner,
			Role:            member.RolePeer,
		},
	}
}

func DemoMentors() []member.Member {
	return []member.Member{
		{
			ID:              "m1",
			Name:            "Dr. Emily Zhang",
			Skills:          []string{"python", "machine-learning", "data-science"},
			Bio:             "Senior Data Scientist with 10 years of experience.",
			ExperienceLevel: domain.LevelAdvanced,
			Role:            member.RoleMentor,
			Specialization:  "Machine Learning",
			Availability:    "Weekends",
		},
		{
			ID:              "m2",
			Name:            "James Wilson",
			Skills:          []string{"react", "typescript", "node"},
			Bio:             "Tech Lead at a major tech company.",
			ExperienceLevel: domain.LevelAdvanced,
			Role:            member.RoleMentor,
			Specialization:  "Web Development",
			Availability:    "Evenings",
		},
	}
}
