package handler

import (
	"projectlink/internal/delivery/http/dto"
	"projectlink/internal/delivery/http/response"
	"projectlink/internal/domain/user"
	"projectlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/session")
	grp.Get("/user", h.CurrentUser)
	grp.Put("/user", h.SetCurrentUser)
	grp.Patch("/user", h.UpdateProfile)
	grp.Post("/onboarding", h.CompleteOnboarding)
	grp.Post("/signin", h.SignIn)
	grp.Delete("/", h.Clear)
	grp.Get("/state", h.State)
	grp.Get("/navigate", h.Navigate)
}

func (h *SessionHandler) CurrentUser(c fiber.Ctx) error {
	p, err := h.uc.Current(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func (h *SessionHandler) SetCurrentUser(c fiber.Ctx) error {
	var req user.Profile
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	p, err := h.uc.SetCurrentUser(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "User saved", p)
}

func (h *SessionHandler) UpdateProfile(c fiber.Ctx) error {
	var req user.Patch
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	p, err := h.uc.UpdateProfile(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", p)
}

func (h *SessionHandler) CompleteOnboarding(c fiber.Ctx) error {
	var req user.OnboardingInput
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	p, err := h.uc.CompleteOnboarding(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Onboarding completed", p)
}

func (h *SessionHandler) SignIn(c fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	st, err := h.uc.SignIn(c.Context(), req.Email)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Signed in", st)
}

func (h *SessionHandler) Clear(c fiber.Ctx) error {
	if err := h.uc.ClearSession(c.Context()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Signed out", nil)
}

func (h *SessionHandler) State(c fiber.Ctx) error {
	st, err := h.uc.State(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

func (h *SessionHandler) Navigate(c fiber.Ctx) error {
	route := c.Query("route")
	d, err := h.uc.Navigate(c.Context(), route)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NavigateResponse{
		Route:    route,
		Decision: d,
		Redirect: dto.RedirectTarget(d),
	})
}
