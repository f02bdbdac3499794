package chat

import (
	"strconv"
	"strings"
	"time"
)

const (
	peerKeyPrefix    = "chat_"
	groupKeyPrefix   = "group_chat_"
	membersKeyPrefix = "group_members_"
)

type MemberRole string

const (
	RoleMentor MemberRole = "mentor"
	RoleMember MemberRole = "member"
)

type Message struct {
	ID         string     `json:"id"`
	SenderID   string     `json:"senderId"`
	SenderName string     `json:"senderName,omitempty"`
	Text       string     `json:"text"`
	Timestamp  int64      `json:"timestamp"`
	Role       MemberRole `json:"role,omitempty"`
}

type Member struct {
	ID   string     `json:"id"`
	Name string     `json:"name"`
	Role MemberRole `json:"role"`
}

func NewMessage(senderID, text string, now time.Time) Message {
	ms := now.UnixMilli()
	return Message{
		ID:        strconv.FormatInt(ms, 10),
		SenderID:  senderID,
		Text:      strings.TrimSpace(text),
		Timestamp: ms,
	}
}

// PeerKey is the conversation key of a one-to-one chat with peerID.
func PeerKey(peerID string) string {
	return peerKeyPrefix + peerID
}

// GroupKey is the conversation key of a project's group chat.
func GroupKey(projectID string) string {
	return groupKeyPrefix + projectID
}

func MembersKey(projectID string) string {
	return membersKeyPrefix + projectID
}

// IsConversationKey reports whether key addresses a chat log.
func IsConversationKey(key string) bool {
	return strings.HasPrefix(key, peerKeyPrefix) && len(key) > len(peerKeyPrefix) ||
		strings.HasPrefix(key, groupKeyPrefix) && len(key) > len(groupKeyPrefix)
}

// GroupProjectID extracts the project id from a group conversation key.
func GroupProjectID(key string) (string, bool) {
	if !strings.HasPrefix(key, groupKeyPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(key, groupKeyPrefix)
	return id, id != ""
}

// RoleOf returns the roster role of id, or member when id is not listed.
func RoleOf(roster []Member, id string) MemberRole {
	for _, m := range roster {
		if m.ID == id {
			if m.Role == RoleMentor {
				return RoleMentor
			}
			return RoleMember
		}
	}
	return RoleMember
}
