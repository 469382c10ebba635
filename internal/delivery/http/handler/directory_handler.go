package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DirectoryHandler struct {
	uc usecase.DirectoryUsecase
}

func NewDirectoryHandler(uc usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

func (h *DirectoryHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs", h.HandleListJobs)
	r.Get("/employers", h.HandleListEmployers)
	r.Get("/agencies", h.HandleListAgencies)
	r.Get("/contacts", h.HandleListContacts)
	r.Get("/interviews", h.HandleListInterviews)
}

func (h *DirectoryHandler) HandleListJobs(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	params, err := parseListParams(c, "status", "type")
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Jobs(c.Context(), actor, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	out := toListResponse(res.Page, toJobResponse)
	out.Stats = dto.JobStatsResponse{
		Total:       res.Stats.Total,
		Active:      res.Stats.Active,
		Submissions: res.Stats.Submissions,
		Interviews:  res.Stats.Interviews,
	}
	return response.OK(c, response.MessageOK, out)
}

func (h *DirectoryHandler) HandleListEmployers(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	params, err := parseListParams(c, "industry", "size")
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Employers(c.Context(), actor, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	out := toListResponse(res.Page, toEmployerResponse)
	out.Stats = dto.EmployerStatsResponse{
		Count:             res.Stats.Count,
		ActiveJobs:        res.Stats.ActiveJobs,
		TotalHires:        res.Stats.TotalHires,
		AverageTimeToHire: res.Stats.AverageTimeToHire,
	}
	return response.OK(c, response.MessageOK, out)
}

func (h *DirectoryHandler) HandleListAgencies(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	params, err := parseListParams(c, "tier", "specialization")
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Agencies(c.Context(), actor, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	out := toListResponse(res.Page, toAgencyResponse)
	out.Stats = dto.AgencyStatsResponse{
		Count:              res.Stats.Count,
		ActiveRecruiters:   res.Stats.ActiveRecruiters,
		TotalPlacements:    res.Stats.TotalPlacements,
		AverageSuccessRate: res.Stats.AverageSuccessRate,
	}
	return response.OK(c, response.MessageOK, out)
}

func (h *DirectoryHandler) HandleListContacts(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	params, err := parseListParams(c, "type", "tags")
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Contacts(c.Context(), actor, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	out := toListResponse(res.Page, toContactResponse)
	out.Stats = dto.ContactStatsResponse{
		Count:  res.Stats.Count,
		ByType: stringKeys(res.Stats.ByType),
	}
	return response.OK(c, response.MessageOK, out)
}

func (h *DirectoryHandler) HandleListInterviews(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	params, err := parseListParams(c, "status", "type")
	if err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Interviews(c.Context(), actor, params)
	if err != nil {
		return mapUsecaseError(err)
	}
	out := toListResponse(res.Page, toInterviewResponse)
	out.Stats = dto.InterviewStatsResponse{
		Count:          res.Stats.Count,
		ByStatus:       stringKeys(res.Stats.ByStatus),
		CompletionRate: res.Stats.CompletionRate,
	}
	return response.OK(c, response.MessageOK, out)
}

func stringKeys[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
