package handler

import (
	"projectlink/internal/delivery/http/response"
	"projectlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations/:kind", h.Recommend)
}

func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		return err
	}
	res, err := h.uc.Recommend(c.Context(), c.Params("kind"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
