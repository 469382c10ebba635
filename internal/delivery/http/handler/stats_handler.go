package handler

import (
	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc usecase.StatsUsecase
}

func NewStatsHandler(uc usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", h.HandleDashboard)
	r.Get("/analytics", h.HandleAnalytics)
}

func (h *StatsHandler) HandleDashboard(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	cards, err := h.uc.Dashboard(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, toMetricResponses(cards))
}

func (h *StatsHandler) HandleAnalytics(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	a, err := h.uc.Analytics(c.Context(), actor)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, response.MessageOK, dto.AnalyticsResponse{
		Metrics:            toMetricResponses(a.Metrics),
		CandidatesByStatus: stringKeys(a.CandidatesByStatus),
		JobsByStatus:       stringKeys(a.JobsByStatus),
	})
}

func toMetricResponses(cards []usecase.MetricCard) []dto.MetricResponse {
	out := make([]dto.MetricResponse, 0, len(cards))
	for _, m := range cards {
		out = append(out, dto.MetricResponse{
			ID:          m.ID,
			Title:       m.Title,
			Value:       m.Value,
			Description: m.Description,
		})
	}
	return out
}
