package routes

import (
	v1 "projectlink/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Handlers = v1.Handlers

func RegisterV1(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	v1.Register(r, h)
}
