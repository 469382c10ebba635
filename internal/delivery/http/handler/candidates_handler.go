package handler

import (
	"fmt"
	"time"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/domain/candidate"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CandidatesHandler struct {
	uc usecase.CandidateUsecase
}

func NewCandidatesHandler(uc usecase.CandidateUsecase) *CandidatesHandler {
	return &CandidatesHandler{uc: uc}
}

func (h *CandidatesHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/candidates")
	g.Get("", h.HandleListCandidates)
	g.Post("", h.HandleAddCandidate)
	g.Post("/bulk/delete", h.HandleBulkDelete)
	g.Post("/bulk/restore", h.HandleRestore)
	g.Post("/bulk/export", h.HandleExport)
	g.Post("/bulk/email", h.HandleEmail)
}

func (h *CandidatesHandler) HandleListCandidates(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	params, err := parseListParams(c, "status", "tags")
	if err != nil {
		return badRequest(err)
	}

	page, err := h.uc.List(c.Context(), actor, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, toListResponse(page, toCandidateResponse))
}

func (h *CandidatesHandler) HandleAddCandidate(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req candidate.NewCandidate
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	created, err := h.uc.Add(c.Context(), actor, req)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Created(c, "Candidate added", toCandidateResponse(created))
}

func (h *CandidatesHandler) HandleBulkDelete(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req dto.BulkIDsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	ids, err := h.uc.BulkDelete(c.Context(), actor, req.IDs, req.Confirm)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Candidates deleted", dto.BulkResultResponse{IDs: ids, Count: len(ids)})
}

func (h *CandidatesHandler) HandleRestore(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req dto.BulkIDsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	ids, err := h.uc.Restore(c.Context(), actor, req.IDs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, "Candidates restored", dto.BulkResultResponse{IDs: ids, Count: len(ids)})
}

func (h *CandidatesHandler) HandleExport(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req dto.BulkIDsRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	b, n, err := h.uc.Export(c.Context(), actor, req.IDs)
	if err != nil {
		return mapUsecaseError(err)
	}

	name := fmt.Sprintf("candidates-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	c.Set("X-Export-Count", fmt.Sprint(n))
	return c.Status(fiber.StatusOK).Send(b)
}

func (h *CandidatesHandler) HandleEmail(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req dto.BulkEmailRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	n, err := h.uc.Email(c.Context(), actor, usecase.EmailParams{
		IDs:     req.IDs,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusAccepted, "Emails queued", fiber.Map{"queued": n})
}
