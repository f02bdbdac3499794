package project

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"projectlink/internal/domain"
	"projectlink/internal/pkg/validation"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) rank() int {
	switch s {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 0
	}
}

// CanAdvanceTo reports whether moving from s to next keeps status monotonic.
func (s Status) CanAdvanceTo(next Status) bool {
	return next.rank() >= s.rank()
}

// UnmarshalJSON reads unknown statuses (older seeds used "open") as not-started.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch Status(raw) {
	case StatusInProgress, StatusCompleted:
		*s = Status(raw)
	default:
		*s = StatusNotStarted
	}
	return nil
}

type MentorRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Project struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Skills        []string               `json:"skills"`
	Type          domain.ProjectType     `json:"type"`
	Status        Status                 `json:"status"`
	RequiredLevel domain.ExperienceLevel `json:"requiredLevel"`
	Mentors       []MentorRef            `json:"mentors,omitempty"`
	CreatedAt     string                 `json:"createdAt,omitempty"`
	UpdatedAt     string                 `json:"updatedAt,omitempty"`
}

func (p Project) HasMentor() bool {
	return len(p.Mentors) > 0
}

// Summary is the lightweight snapshot stored alongside the joined-project ids.
type Summary struct {
	ID     string             `json:"id"`
	Title  string             `json:"title"`
	Type   domain.ProjectType `json:"type"`
	Skills []string           `json:"skills"`
}

func (p Project) Summary() Summary {
	skills := make([]string, len(p.Skills))
	copy(skills, p.Skills)
	return Summary{ID: p.ID, Title: p.Title, Type: p.Type, Skills: skills}
}

type NewInput struct {
	Title         string      `json:"title" validate:"required,not_blank,max=120"`
	Description   string      `json:"description" validate:"required,not_blank,max=2000"`
	Skills        []string    `json:"skills" validate:"any_not_blank"`
	Type          string      `json:"type" validate:"required,project_type"`
	RequiredLevel string      `json:"requiredLevel" validate:"required,experience_level"`
	Mentors       []MentorRef `json:"mentors" validate:"dive"`
}

func ValidateNew(in NewInput) error {
	return validation.Struct(in)
}

func NewID(now time.Time) string {
	return "project-" + strconv.FormatInt(now.UnixMilli(), 10)
}

// New builds a not-started project from validated input.
func New(in NewInput, now time.Time) Project {
	ts := now.UTC().Format(time.RFC3339)
	typ, _ := domain.ParseProjectType(in.Type)
	lvl, _ := domain.ParseExperienceLevel(in.RequiredLevel)

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	mentors := make([]MentorRef, 0, len(in.Mentors))
	for _, m := range in.Mentors {
		if strings.TrimSpace(m.ID) == "" {
			continue
		}
		mentors = append(mentors, MentorRef{ID: m.ID, Name: m.Name, Role: "mentor"})
	}

	return Project{
		ID:            NewID(now),
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Skills:        skills,
		Type:          typ,
		Status:        StatusNotStarted,
		RequiredLevel: lvl,
		Mentors:       mentors,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}
