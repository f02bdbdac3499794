package member

import (
	"encoding/json"

	"projectlink/internal/domain"
)

type Role string

const (
	RolePeer   Role = "peer"
	RoleMentor Role = "mentor"
)

// Member is a peer or mentor record. Role is explicit; the stored layout keeps
// the older isMentor flag and both are reconciled at decode time.
type Member struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Skills          []string               `json:"skills"`
	Bio             string                 `json:"bio"`
	ExperienceLevel domain.ExperienceLevel `json:"experienceLevel"`
	Role            Role                   `json:"role"`
	Availability    string                 `json:"availability,omitempty"`
	Specialization  string                 `json:"specialization,omitempty"`
}

func (m Member) IsMentor() bool {
	return m.Role == RoleMentor
}

type wireMember struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Skills          []string               `json:"skills"`
	Bio             string                 `json:"bio"`
	ExperienceLevel domain.ExperienceLevel `json:"experienceLevel"`
	Role            Role                   `json:"role,omitempty"`
	IsMentor        bool                   `json:"isMentor"`
	Availability    string                 `json:"availability,omitempty"`
	Specialization  string                 `json:"specialization,omitempty"`
}

func (m Member) MarshalJSON() ([]byte, error) {
	role := m.Role
	if role == "" {
		role = RolePeer
	}
	return json.Marshal(wireMember{
		ID:              m.ID,
		Name:            m.Name,
		Skills:          m.Skills,
		Bio:             m.Bio,
		ExperienceLevel: m.ExperienceLevel,
		Role:            role,
		IsMentor:        role == RoleMentor,
		Availability:    m.Availability,
		Specialization:  m.Specialization,
	})
}

func (m *Member) UnmarshalJSON(b []byte) error {
	var w wireMember
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	role := w.Role
	if role != RoleMentor && role != RolePeer {
		role = RolePeer
	}
	if w.IsMentor {
		role = RoleMentor
	}
	*m = Member{
		ID:              w.ID,
		Name:            w.Name,
		Skills:          w.Skills,
		Bio:             w.Bio,
		ExperienceLevel: w.ExperienceLevel,
		Role:            role,
		Availability:    w.Availability,
		Specialization:  w.Specialization,
	}
	return nil
}
