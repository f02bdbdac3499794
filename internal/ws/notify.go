package ws

import (
	"encoding/json"
	"strings"
	"time"
)

// KeyChangedEvent tells the UI that a stored key was written or removed and
// any view built from it should reload.
type KeyChangedEvent struct {
	Type      string `json:"type"`
	Key       string `json:"key"`
	Timestamp string `json:"timestamp"`
}

const EventKeyChanged = "key_changed"

// NotifyKeyChanged broadcasts a key_changed event. It matches kv.ChangeFunc.
func (h *Hub) NotifyKeyChanged(key string) {
	if h == nil {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	evt := KeyChangedEvent{
		Type:      EventKeyChanged,
		Key:       key,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
