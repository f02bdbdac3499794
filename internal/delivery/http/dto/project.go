package dto

import (
	"projectlink/internal/domain"
	"projectlink/internal/domain/matching"
)

type SuggestionsRequest struct {
	Skills          []string `json:"skills"`
	ProjectType     string   `json:"projectType"`
	ExperienceLevel string   `json:"experienceLevel"`
	NeedsMentor     bool     `json:"needsMentor"`
}

func (r SuggestionsRequest) Prefs() matching.SuggestionPrefs {
	return matching.SuggestionPrefs{
		Skills:          r.Skills,
		ProjectType:     domain.ProjectType(r.ProjectType),
		ExperienceLevel: domain.ExperienceLevel(r.ExperienceLevel),
		NeedsMentor:     r.NeedsMentor,
	}
}
