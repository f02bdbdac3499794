package project

import (
	"strings"

	"projectlink/internal/domain"
)

// FilterOptions fields are ignored when empty or set to "all".
type FilterOptions struct {
	Type          string
	RequiredLevel string
	HasMentor     *bool
}

// ParseHasMentor maps the browse select values ("yes"/"no"/"true"/"false"/"all") to a filter value.
func ParseHasMentor(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "true", "1":
		v := true
		return &v
	case "no", "false", "0":
		v := false
		return &v
	default:
		return nil
	}
}

func Filter(all []Project, f FilterOptions) []Project {
	typ := normalizeFilterValue(f.Type)
	lvl := normalizeFilterValue(f.RequiredLevel)

	out := make([]Project, 0, len(all))
	for _, p := range all {
		if typ != "" && string(p.Type) != typ {
			continue
		}
		if lvl != "" && string(p.RequiredLevel) != lvl {
			continue
		}
		if f.HasMentor != nil && p.HasMentor() != *f.HasMentor {
			continue
		}
		out = append(out, p)
	}
	return out
}

func normalizeFilterValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == domain.FilterAll {
		return ""
	}
	return v
}
