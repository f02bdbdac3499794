package user

import (
	"strconv"
	"strings"
	"time"

	"projectlink/internal/domain"
	"projectlink/internal/pkg/validation"
)

type Profile struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Email                string                 `json:"email"`
	Bio                  string                 `json:"bio"`
	Skills               []string               `json:"skills"`
	PreferredProjectType []domain.ProjectType   `json:"preferredProjectType"`
	ExperienceLevel      domain.ExperienceLevel `json:"experienceLevel"`
	NeedsMentor          bool                   `json:"needsMentor"`
	IsMentor             bool                   `json:"isMentor,omitempty"`
	OnboardingCompleted  bool                   `json:"onboardingCompleted"`
	JoinedDate           string                 `json:"joinedDate,omitempty"`
	ProjectsCompleted    int                    `json:"projectsCompleted,omitempty"`
	GithubURL            string                 `json:"githubUrl,omitempty"`
	LinkedinURL          string                 `json:"linkedinUrl,omitempty"`
}

type OnboardingInput struct {
	Name                 string               `json:"name" validate:"required,not_blank,max=100"`
	Email                string               `json:"email" validate:"omitempty,email"`
	Bio                  string               `json:"bio" validate:"max=500"`
	Skills               []string             `json:"skills" validate:"any_not_blank"`
	PreferredProjectType []domain.ProjectType `json:"preferredProjectType" validate:"dive,project_type"`
	ExperienceLevel      string               `json:"experienceLevel" validate:"required,experience_level"`
	NeedsMentor          bool                 `json:"needsMentor"`
}

// Patch carries profile edits; nil fields are left untouched.
type Patch struct {
	Name                 *string                 `json:"name,omitempty" validate:"omitempty,not_blank,max=100"`
	Email                *string                 `json:"email,omitempty" validate:"omitempty,email"`
	Bio                  *string                 `json:"bio,omitempty" validate:"omitempty,max=500"`
	Skills               []string                `json:"skills,omitempty" validate:"omitempty,dive,required"`
	PreferredProjectType []domain.ProjectType    `json:"preferredProjectType,omitempty" validate:"omitempty,dive,project_type"`
	ExperienceLevel      *string                 `json:"experienceLevel,omitempty" validate:"omitempty,experience_level"`
	NeedsMentor          *bool                   `json:"needsMentor,omitempty"`
	GithubURL            *string                 `json:"githubUrl,omitempty" validate:"omitempty,url"`
	LinkedinURL          *string                 `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
}

func ValidateOnboarding(in OnboardingInput) error {
	return validation.Struct(in)
}

func ValidatePatch(p Patch) error {
	return validation.Struct(p)
}

// NewID returns the timestamp-derived id given to a profile at onboarding.
func NewID(now time.Time) string {
	return "user-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// FromOnboarding builds a completed profile. It does not validate.
func FromOnboarding(in OnboardingInput, now time.Time) Profile {
	level, _ := domain.ParseExperienceLevel(in.ExperienceLevel)
	return Profile{
		ID:                   NewID(now),
		Name:                 strings.TrimSpace(in.Name),
		Email:                normalizeEmail(in.Email),
		Bio:                  strings.TrimSpace(in.Bio),
		Skills:               cleanSkills(in.Skills),
		PreferredProjectType: in.PreferredProjectType,
		ExperienceLevel:      level,
		NeedsMentor:          in.NeedsMentor,
		OnboardingCompleted:  true,
		JoinedDate:           now.UTC().Format(time.RFC3339),
	}
}

// Apply merges p into a copy of the profile.
func (p Profile) Apply(patch Patch) Profile {
	out := p
	if patch.Name != nil {
		out.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		out.Email = normalizeEmail(*patch.Email)
	}
	if patch.Bio != nil {
		out.Bio = strings.TrimSpace(*patch.Bio)
	}
	if patch.Skills != nil {
		out.Skills = cleanSkills(patch.Skills)
	}
	if patch.PreferredProjectType != nil {
		out.PreferredProjectType = patch.PreferredProjectType
	}
	if patch.ExperienceLevel != nil {
		if lvl, ok := domain.ParseExperienceLevel(*patch.ExperienceLevel); ok {
			out.ExperienceLevel = lvl
		}
	}
	if patch.NeedsMentor != nil {
		out.NeedsMentor = *patch.NeedsMentor
	}
	if patch.GithubURL != nil {
		out.GithubURL = strings.TrimSpace(*patch.GithubURL)
	}
	if patch.LinkedinURL != nil {
		out.LinkedinURL = strings.TrimSpace(*patch.LinkedinURL)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
