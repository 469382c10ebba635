package handler

import (
	"strings"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.SessionUsecase
}

func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// RegisterPublicRoutes mounts the endpoints used before a session exists.
func (h *SessionHandler) RegisterPublicRoutes(r fiber.Router) {
	r.Get("/users", h.HandleListUsers)
	r.Post("/session", h.HandleStartSession)
}

func (h *SessionHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/me", h.HandleMe)
	r.Get("/me/navigation", h.HandleNavigation)
}

type startSessionRequest struct {
	UserID string `json:"userId"`
}

func (h *SessionHandler) HandleListUsers(c fiber.Ctx) error {
	users := h.uc.Users(c.Context())
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return response.OK(c, response.MessageOK, out)
}

func (h *SessionHandler) HandleStartSession(c fiber.Ctx) error {
	var req startSessionRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	if strings.TrimSpace(req.UserID) == "" {
		return badRequestMessage("userId is required")
	}

	s, err := h.uc.Start(c.Context(), strings.TrimSpace(req.UserID))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Created(c, "Session started", dto.SessionResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC(),
		User:      toUserResponse(s.User),
	})
}

func (h *SessionHandler) HandleMe(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return response.OK(c, response.MessageOK, toUserResponse(actor.User))
}

func (h *SessionHandler) HandleNavigation(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	items := h.uc.Navigation(c.Context(), actor)
	out := make([]dto.NavItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NavItemResponse{ID: it.ID, Title: it.Title, Href: it.Href})
	}
	return response.OK(c, response.MessageOK, out)
}
