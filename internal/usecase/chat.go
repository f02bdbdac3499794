package usecase

import (
	"context"
	"errors"
	"strings"

	"projectlink/internal/domain/chat"
	"projectlink/internal/repository"
)

type AddMemberInput struct {
	ID   string `json:"id" validate:"required,not_blank"`
	Name string `json:"name" validate:"required,not_blank,max=100"`
}

type ChatUsecase interface {
	AppendMessage(ctx context.Context, key, text string) (chat.Message, error)
	LoadHistory(ctx context.Context, key string) ([]chat.Message, error)
	GroupMembers(ctx context.Context, projectID string) ([]chat.Member, error)
	AddGroupMember(ctx context.Context, projectID string, in AddMemberInput) ([]chat.Member, error)
	RemoveGroupMember(ctx context.Context, projectID, memberID string) ([]chat.Member, error)
}

type Chat struct {
	chats    repository.ChatRepository
	users    repository.UserRepository
	projects repository.ProjectRepository
	clock    *Clock
}

func NewChatUsecase(chats repository.ChatRepository, users repository.UserRepository, projects repository.ProjectRepository, clock *Clock) *Chat {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Chat{chats: chats, users: users, projects: projects, clock: clock}
}

// AppendMessage stores text as a message from the session user. Group
// messages also carry the sender name and roster role.
func (u *Chat) AppendMessage(ctx context.Context, key, text string) (chat.Message, error) {
	if !chat.IsConversationKey(key) {
		return chat.Message{}, invalidField("Conversation key is invalid")
	}
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, invalidField("Message text is required")
	}

	cur, ok, err := u.users.Current(ctx)
	if err != nil {
		return chat.Message{}, ErrInternal
	}
	if !ok {
		return chat.Message{}, ErrNoSession
	}

	msg := chat.NewMessage(cur.ID, text, u.clock.Now())
	if projectID, isGroup := chat.GroupProjectID(key); isGroup {
		roster, err := u.GroupMembers(ctx, projectID)
		if err != nil && !errors.Is(err, ErrProjectNotFound) {
			return chat.Message{}, err
		}
		msg.SenderName = cur.Name
		msg.Role = chat.RoleOf(roster, cur.ID)
	}

	if err := u.chats.Append(ctx, key, msg); err != nil {
		return chat.Message{}, ErrInternal
	}
	return msg, nil
}

func (u *Chat) LoadHistory(ctx context.Context, key string) ([]chat.Message, error) {
	if !chat.IsConversationKey(key) {
		return nil, invalidField("Conversation key is invalid")
	}
	items, err := u.chats.History(ctx, key)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// GroupMembers returns the roster, seeding it from the project's mentors on
// first access.
func (u *Chat) GroupMembers(ctx context.Context, projectID string) ([]chat.Member, error) {
	roster, ok, err := u.chats.Roster(ctx, projectID)
	if err != nil {
		return nil, ErrInternal
	}
	if ok {
		return roster, nil
	}

	p, err := u.projects.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, ErrInternal
	}
	roster, err = seedRoster(ctx, u.chats, p)
	if err != nil {
		return nil, ErrInternal
	}
	return roster, nil
}

func (u *Chat) AddGroupMember(ctx context.Context, projectID string, in AddMemberInput) ([]chat.Member, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if _, err := u.GroupMembers(ctx, projectID); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	roster, err := u.chats.UpdateRoster(ctx, projectID, func(r []chat.Member, _ bool) ([]chat.Member, bool) {
		for _, m := range r {
			if m.ID == id {
				return r, false
			}
		}
		return append(r, chat.Member{ID: id, Name: name, Role: chat.RoleMember}), true
	})
	if err != nil {
		return nil, ErrInternal
	}
	return roster, nil
}

func (u *Chat) RemoveGroupMember(ctx context.Context, projectID, memberID string) ([]chat.Member, error) {
	if _, err := u.GroupMembers(ctx, projectID); err != nil {
		return nil, err
	}
	roster, err := u.chats.UpdateRoster(ctx, projectID, func(r []chat.Member, _ bool) ([]chat.Member, bool) {
		out := make([]chat.Member, 0, len(r))
		for _, m := range r {
			if m.ID != memberID {
				out = append(out, m)
			}
		}
		return out, len(out) != len(r)
	})
	if err != nil {
		return nil, ErrInternal
	}
	return roster, nil
}
