package validation

import (
	"reflect"
	"strings"
	"sync"

	"projectlink/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	instance     *validator.Validate
	instanceOnce sync.Once
)

// Validator returns the shared validator with the project tags registered.
func Validator() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New()
		RegisterValidators(v)
		instance = v
	})
	return instance
}

func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("experience_level", ExperienceLevel)
	_ = v.RegisterValidation("project_type", ProjectType)
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("any_not_blank", AnyNotBlank)
}

func ExperienceLevel(fl validator.FieldLevel) bool {
	return domain.ExperienceLevel(fl.Field().String()).Valid()
}

func ProjectType(fl validator.FieldLevel) bool {
	return domain.ProjectType(fl.Field().String()).Valid()
}

// NotBlank rejects strings made only of whitespace. Empty strings are left to `required`.
func NotBlank(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return strings.TrimSpace(val) != ""
}

// AnyNotBlank accepts a string slice holding at least one non-blank entry.
// Blank entries are dropped later by the constructors.
func AnyNotBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Slice {
		return false
	}
	for i := 0; i < f.Len(); i++ {
		if strings.TrimSpace(f.Index(i).String()) != "" {
			return true
		}
	}
	return false
}

// Struct validates s and converts failures into readable messages.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	return &Error{Messages: FormatValidationErrors(err)}
}
