package dto

import "projectlink/internal/domain/chat"

type AppendMessageRequest struct {
	Text string `json:"text"`
}

type HistoryResponse struct {
	Key      string         `json:"key"`
	Messages []chat.Message `json:"messages"`
}

type RosterResponse struct {
	ProjectID string        `json:"projectId"`
	Members   []chat.Member `json:"members"`
}
