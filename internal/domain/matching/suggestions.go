package matching

import (
	"projectlink/internal/domain"
	"projectlink/internal/domain/member"
	"projectlink/internal/domain/project"
)

type SuggestionPrefs struct {
	Skills          []string
	ProjectType     domain.ProjectType
	ExperienceLevel domain.ExperienceLevel
	NeedsMentor     bool
}

// ProjectSuggestions keeps projects matching type, level and at least one
// skill; when NeedsMentor is set the project must have a mentor. Input order is kept.
func ProjectSuggestions(projects []project.Project, prefs SuggestionPrefs) []project.Project {
	selected := skillSet(prefs.Skills)
	out := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if p.Type != prefs.ProjectType {
			continue
		}
		if p.RequiredLevel != prefs.ExperienceLevel {
			continue
		}
		if Score(p.Skills, selected) == 0 {
			continue
		}
		if prefs.NeedsMentor && !p.HasMentor() {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TeamMatches returns the peers sharing at least one of the required skills.
func TeamMatches(required []string, members []member.Member) []member.Member {
	req := skillSet(required)
	out := make([]member.Member, 0, len(members))
	if len(req) == 0 {
		return out
	}
	for _, m := range members {
		if m.IsMentor() {
			continue
		}
		if Score(m.Skills, req) > 0 {
			out = append(out, m)
		}
	}
	return out
}

func MemberCandidate(m member.Member) Candidate {
	return Candidate{ID: m.ID, Skills: m.Skills, IsMentor: m.IsMentor()}
}

func ProjectCandidate(p project.Project) Candidate {
	return Candidate{ID: p.ID, Skills: p.Skills, RequiredLevel: p.RequiredLevel}
}
