package domain

import "strings"

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	l := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}

type ProjectType string

const (
	ProjectSolo  ProjectType = "solo"
	ProjectGroup ProjectType = "group"
)

func (t ProjectType) Valid() bool {
	return t == ProjectSolo || t == ProjectGroup
}

func ParseProjectType(s string) (ProjectType, bool) {
	t := ProjectType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// FilterAll is the browse sentinel meaning "do not filter on this field".
const FilterAll = "all"
