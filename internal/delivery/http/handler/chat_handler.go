package handler

import (
	"projectlink/internal/delivery/http/dto"
	"projectlink/internal/delivery/http/response"
	"projectlink/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ChatHandler struct {
	uc usecase.ChatUsecase
}

func NewChatHandler(uc usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	chats := r.Group("/chats")
	chats.Get("/:key/messages", h.History)
	chats.Post("/:key/messages", h.Append)

	groups := r.Group("/groups")
	groups.Get("/:projectId/members", h.Members)
	groups.Post("/:projectId/members", h.AddMember)
	groups.Delete("/:projectId/members/:memberId", h.RemoveMember)
}

func (h *ChatHandler) History(c fiber.Ctx) error {
	key := c.Params("key")
	items, err := h.uc.LoadHistory(c.Context(), key)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.HistoryResponse{Key: key, Messages: items})
}

func (h *ChatHandler) Append(c fiber.Ctx) error {
	var req dto.AppendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	msg, err := h.uc.AppendMessage(c.Context(), c.Params("key"), req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Message sent", msg)
}

func (h *ChatHandler) Members(c fiber.Ctx) error {
	id := c.Params("projectId")
	items, err := h.uc.GroupMembers(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RosterResponse{ProjectID: id, Members: items})
}

func (h *ChatHandler) AddMember(c fiber.Ctx) error {
	var req usecase.AddMemberInput
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}
	id := c.Params("projectId")
	items, err := h.uc.AddGroupMember(c.Context(), id, req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member added", dto.RosterResponse{ProjectID: id, Members: items})
}

func (h *ChatHandler) RemoveMember(c fiber.Ctx) error {
	id := c.Params("projectId")
	items, err := h.uc.RemoveGroupMember(c.Context(), id, c.Params("memberId"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Member removed", dto.RosterResponse{ProjectID: id, Members: items})
}
