package skill

import "strings"

type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

var catalog = []Skill{
	{ID: "react", Name: "React", Category: "Frontend"},
	{ID: "typescript", Name: "TypeScript", Category: "Programming Language"},
	{ID: "javascript", Name: "JavaScript", Category: "Programming Language"},
	{ID: "python", Name: "Python", Category: "Programming Language"},
	{ID: "node", Name: "Node.js", Category: "Backend"},
	{ID: "java", Name: "Java", Category: "Programming Language"},
	{ID: "spring", Name: "Spring", Category: "Backend"},
	{ID: "machine-learning", Name: "Machine Learning", Category: "Data"},
	{ID: "data-science", Name: "Data Science", Category: "Data"},
	{ID: "css", Name: "CSS", Category: "Frontend"},
	{ID: "html", Name: "HTML", Category: "Frontend"},
	{ID: "ui-design", Name: "UI Design", Category: "Design"},
	{ID: "figma", Name: "Figma", Category: "Design"},
	{ID: "postgresql", Name: "PostgreSQL", Category: "Database"},
	{ID: "django", Name: "Django", Category: "Backend"},
	{ID: "vue", Name: "Vue.js", Category: "Frontend"},
	{ID: "react-native", Name: "React Native", Category: "Mobile"},
	{ID: "mobile-dev", Name: "Mobile Development", Category: "Mobile"},
	{ID: "microservices", Name: "Microservices", Category: "Backend"},
	{ID: "angular", Name: "Angular", Category: "Frontend"},
	{ID: "rxjs", Name: "RxJS", Category: "Frontend"},
	{ID: "devops", Name: "DevOps", Category: "DevOps"},
	{ID: "aws", Name: "AWS", Category: "Cloud"},
	{ID: "docker", Name: "Docker", Category: "DevOps"},
	{ID: "blockchain", Name: "Blockchain", Category: "Web3"},
	{ID: "solidity", Name: "Solidity", Category: "Web3"},
	{ID: "web3", Name: "Web3", Category: "Web3"},
	{ID: "tensorflow", Name: "TensorFlow", Category: "Data"},
	{ID: "express", Name: "Express.js", Category: "Backend"},
}

var byID = func() map[string]Skill {
	m := make(map[string]Skill, len(catalog))
	for _, s := range catalog {
		m[s.ID] = s
	}
	return m
}()

// All returns a copy of the catalog in display order.
func All() []Skill {
	out := make([]Skill, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id string) (Skill, bool) {
	s, ok := byID[strings.TrimSpace(id)]
	return s, ok
}

func Known(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Names resolves ids to display names, dropping ids the catalog does not know.
func Names(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := Lookup(id); ok {
			out = append(out, s.Name)
		}
	}
	return out
}
