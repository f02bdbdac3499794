package ws

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades plain net/http requests. It is served on its own listener
// because the upgrade needs a hijackable connection.
type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.hub == nil {
		http.Error(w, "websocket unavailable", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("WS upgrade error | error=%v", err)
		}
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}

// Mux serves the handler at /ws.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}
