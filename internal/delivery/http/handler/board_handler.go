package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type BoardHandler struct {
	uc usecase.BoardUsecase
}

func NewBoardHandler(uc usecase.BoardUsecase) *BoardHandler {
	return &BoardHandler{uc: uc}
}

func (h *BoardHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/board")
	g.Get("", h.HandleSnapshot)
	g.Put("/query", h.HandleSetQuery)
	g.Post("/sort/:field", h.HandleToggleSort)
	g.Post("/selection/all", h.HandleSelectAll)
	g.Post("/selection/clear", h.HandleClearSelection)
	g.Post("/selection/:id", h.HandleToggleSelection)
}

func (h *BoardHandler) HandleSnapshot(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	snap, err := h.uc.Snapshot(c.Context(), actor)
	return h.render(c, snap, err)
}

func (h *BoardHandler) HandleSetQuery(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req dto.BoardQueryRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	from, err := parseDate(req.From, false)
	if err != nil {
		return badRequest(err)
	}
	to, err := parseDate(req.To, true)
	if err != nil {
		return badRequest(err)
	}

	snap, err := h.uc.SetQuery(c.Context(), actor, usecase.BoardQuery{
		Text:     req.Query,
		Statuses: req.Status,
		Tags:     req.Tags,
		From:     from,
		To:       to,
		Limit:    req.Limit,
		Offset:   req.Offset,
		Flush:    req.Flush,
	})
	return h.render(c, snap, err)
}

func (h *BoardHandler) HandleToggleSort(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	snap, err := h.uc.ToggleSort(c.Context(), actor, c.Params("field"))
	return h.render(c, snap, err)
}

func (h *BoardHandler) HandleSelectAll(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	snap, err := h.uc.SelectAll(c.Context(), actor)
	return h.render(c, snap, err)
}

func (h *BoardHandler) HandleClearSelection(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	snap, err := h.uc.ClearSelection(c.Context(), actor)
	return h.render(c, snap, err)
}

func (h *BoardHandler) HandleToggleSelection(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	snap, err := h.uc.ToggleSelection(c.Context(), actor, c.Params("id"))
	return h.render(c, snap, err)
}

func (h *BoardHandler) render(c fiber.Ctx, snap usecase.BoardSnapshot, err error) error {
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, toBoardResponse(snap))
}
