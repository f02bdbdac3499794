package handler

import (
	"strconv"

	"projectlink/internal/delivery/http/dto"
	"projectlink/internal/delivery/http/response"
	"projectlink/internal/domain/project"
	"projectlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	projects   usecase.ProjectUsecase
	membership usecase.MembershipUsecase
}

func NewProjectHandler(projects usecase.ProjectUsecase, membership usecase.MembershipUsecase) *ProjectHandler {
	return &ProjectHandler{projects: projects, membership: membership}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/skills", h.Skills)
	r.Get("/entities/:kind", h.ListEntities)
	r.Get("/mentors/selection", h.MentorsForSelection)

	grp := r.Group("/projects")
	grp.Get("/", h.Filter)
	grp.Post("/", h.Create)
	grp.Get("/joined", h.Joined)
	grp.Post("/suggestions", h.Suggestions)
	grp.Post("/:id/join", h.Join)
	grp.Delete("/:id/join", h.Leave)
	grp.Get("/:id/team", h.TeamMatches)
	grp.Post("/:id/select-skills", h.SelectSkills)
}

func (h *ProjectHandler) Skills(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.projects.Skills())
}

func (h *ProjectHandler) ListEntities(c fiber.Ctx) error {
	e, err := h.projects.ListEntities(c.Context(), c.Params("kind"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, e)
}

func (h *ProjectHandler) Filter(c fiber.Ctx) error {
	f := project.FilterOptions{
		Type:          c.Query("type"),
		RequiredLevel: c.Query("level"),
		HasMentor:     project.ParseHasMentor(c.Query("hasMentor")),
	}
	items, err := h.projects.FilterProjects(c.Context(), f)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	var req project.NewInput
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	p, err := h.projects.CreateProject(c.Context(), req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Project created", p)
}

func (h *ProjectHandler) Suggestions(c fiber.Ctx) error {
	var req dto.SuggestionsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	items, err := h.projects.Suggestions(c.Context(), req.Prefs())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ProjectHandler) Join(c fiber.Ctx) error {
	res, err := h.membership.JoinProject(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	msg := "Joined project"
	if !res.Joined {
		msg = "Already joined"
	}
	return response.Success(c, fiber.StatusOK, msg, res)
}

func (h *ProjectHandler) Leave(c fiber.Ctx) error {
	if err := h.membership.LeaveProject(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Left project", nil)
}

func (h *ProjectHandler) Joined(c fiber.Ctx) error {
	items, err := h.membership.JoinedProjects(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ProjectHandler) TeamMatches(c fiber.Ctx) error {
	items, err := h.membership.TeamMatches(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ProjectHandler) SelectSkills(c fiber.Ctx) error {
	skills, err := h.membership.SelectProjectSkills(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, skills)
}

func (h *ProjectHandler) MentorsForSelection(c fiber.Ctx) error {
	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		return err
	}
	items, err := h.membership.MentorsForSelection(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

// parseLimit reads an optional limit. Zero means the configured default.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "limit must be an integer")
	}
	return n, nil
}
