package matching

import (
	"sort"
	"strings"

	"projectlink/internal/domain"
	"projectlink/internal/domain/user"
)

type Kind string

const (
	KindPeer    Kind = "peer"
	KindMentor  Kind = "mentor"
	KindProject Kind = "project"
)

const DefaultLimit = 3

func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindPeer, KindMentor, KindProject:
		return k, true
	}
	return "", false
}

// Candidate is the view of an entity the engine scores.
type Candidate struct {
	ID            string
	Skills        []string
	IsMentor      bool
	RequiredLevel domain.ExperienceLevel
}

type Scored[T any] struct {
	Item  T   `json:"item"`
	Score int `json:"score"`
}

func Recommend(candidates []Candidate, u user.Profile, kind Kind, limit int) []Candidate {
	return RecommendOf(candidates, u, kind, limit, func(c Candidate) Candidate { return c })
}

// RecommendOf filters items by kind, ranks them by skill overlap with u and
// returns at most limit of them. Equal scores keep their input order.
func RecommendOf[T any](items []T, u user.Profile, kind Kind, limit int, view func(T) Candidate) []T {
	ranked := RankOf(items, u, kind, limit, view)
	out := make([]T, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Item)
	}
	return out
}

func RankOf[T any](items []T, u user.Profile, kind Kind, limit int, view func(T) Candidate) []Scored[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}

	userSkills := skillSet(u.Skills)
	if len(userSkills) == 0 {
		return []Scored[T]{}
	}

	out := make([]Scored[T], 0, len(items))
	for _, it := range items {
		c := view(it)
		if !accepts(kind, c, u) {
			continue
		}
		score := Score(c.Skills, userSkills)
		if score == 0 {
			continue
		}
		out = append(out, Scored[T]{Item: it, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func accepts(kind Kind, c Candidate, u user.Profile) bool {
	switch kind {
	case KindPeer:
		return c.ID != u.ID && !c.IsMentor
	case KindMentor:
		return c.IsMentor
	case KindProject:
		return c.RequiredLevel == u.ExperienceLevel
	default:
		return false
	}
}

// Score counts the distinct skills shared by the candidate and the user.
func Score(candidateSkills []string, userSkills map[string]struct{}) int {
	seen := make(map[string]struct{}, len(candidateSkills))
	n := 0
	for _, s := range candidateSkills {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		if _, ok := userSkills[s]; ok {
			n++
		}
	}
	return n
}

func Overlaps(a, b []string) bool {
	return Score(a, skillSet(b)) > 0
}

func skillSet(skills []string) map[string]struct{} {
	m := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if s == "" {
			continue
		}
		m[s] = struct{}{}
	}
	return m
}
