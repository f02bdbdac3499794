package handler

import (
	"context"
	"time"

	"projectlink/internal/delivery/http/response"
	"projectlink/internal/domain"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ClientCounter interface {
	ClientCount() int
}

type HealthHandler struct {
	store   Pinger
	driver  string
	clients ClientCounter
}

func NewHealthHandler(store Pinger, driver string, clients ClientCounter) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, clients: clients}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	st := domain.HealthStatus{
		StoreDriver:  h.driver,
		StoreHealthy: h.store != nil && h.store.Ping(ctx) == nil,
		ServerTime:   time.Now().UTC(),
	}
	if h.clients != nil {
		st.WSClients = h.clients.ClientCount()
	}

	if !st.StoreHealthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "Store unavailable", st)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
