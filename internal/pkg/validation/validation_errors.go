package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels the forms show.
var FieldLabels = map[string]string{
	"Name":                 "Name",
	"Email":                "Email",
	"Bio":                  "Bio",
	"Skills":               "Skills",
	"ExperienceLevel":      "Experience level",
	"PreferredProjectType": "Preferred project type",
	"Title":                "Project title",
	"Description":          "Project description",
	"Type":                 "Project type",
	"RequiredLevel":        "Required experience level",
	"Text":                 "Message",
	"ID":                   "ID",
}

type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	if e == nil || len(e.Messages) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Messages, "; ")
}

func FormatValidationErrors(err error) []string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(ves))
	for _, e := range ves {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label, ok := FieldLabels[e.StructField()]
	if !ok {
		label = e.StructField()
	}

	switch e.Tag() {
	case "required", "not_blank":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("Please select at least %s %s", e.Param(), strings.ToLower(label))
		}
		return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
	case "any_not_blank":
		return fmt.Sprintf("Please select at least one %s", strings.TrimSuffix(strings.ToLower(label), "s"))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "experience_level":
		return fmt.Sprintf("%s must be beginner, intermediate or advanced", label)
	case "project_type":
		return fmt.Sprintf("%s must be solo or group", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
