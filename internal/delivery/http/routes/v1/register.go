package v1

import (
	"projectlink/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Session        *handler.SessionHandler
	Project        *handler.ProjectHandler
	Recommendation *handler.RecommendationHandler
	Chat           *handler.ChatHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Session != nil {
		h.Session.RegisterRoutes(r)
	}
	if h.Project != nil {
		h.Project.RegisterRoutes(r)
	}
	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r)
	}
	if h.Chat != nil {
		h.Chat.RegisterRoutes(r)
	}
}
