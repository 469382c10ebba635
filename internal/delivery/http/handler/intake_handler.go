package handler

import (
	"errors"
	"strconv"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/intake"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type IntakeHandler struct {
	uc usecase.IntakeUsecase
}

func NewIntakeHandler(uc usecase.IntakeUsecase) *IntakeHandler {
	return &IntakeHandler{uc: uc}
}

func (h *IntakeHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/intake")
	g.Get("", h.HandleState)
	g.Patch("/fields", h.HandleSetFields)
	g.Post("/next", h.HandleNext)
	g.Post("/previous", h.HandlePrevious)
	g.Post("/steps/:index", h.HandleGoTo)
	g.Post("/submit", h.HandleSubmit)
	// skills and tags; registered last so the fixed paths above win
	g.Post("/:list", h.HandleAddItem)
	g.Delete("/:list", h.HandleRemoveItem)
}

func (h *IntakeHandler) HandleState(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	return response.OK(c, response.MessageOK, toIntakeStateResponse(h.uc.State(c.Context(), actor)))
}

func (h *IntakeHandler) HandleSetFields(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req map[string]string
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	st, err := h.uc.SetFields(c.Context(), actor, req)
	return h.render(c, st, err)
}

func (h *IntakeHandler) HandleAddItem(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	list, value, err := h.itemRequest(c)
	if err != nil {
		return err
	}

	st, added, err := h.uc.AddItem(c.Context(), actor, list, value)
	if err != nil {
		return intakeAppError(st, err)
	}
	status := fiber.StatusOK
	if added {
		status = fiber.StatusCreated
	}
	return response.Success(c, status, "", toIntakeStateResponse(st))
}

func (h *IntakeHandler) HandleRemoveItem(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	list, value, err := h.itemRequest(c)
	if err != nil {
		return err
	}

	st, _, err := h.uc.RemoveItem(c.Context(), actor, list, value)
	return h.render(c, st, err)
}

func (h *IntakeHandler) HandleNext(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	st, err := h.uc.Next(c.Context(), actor)
	return h.render(c, st, err)
}

func (h *IntakeHandler) HandlePrevious(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	st, err := h.uc.Previous(c.Context(), actor)
	return h.render(c, st, err)
}

func (h *IntakeHandler) HandleGoTo(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return badRequest(err)
	}
	st, err := h.uc.GoTo(c.Context(), actor, idx)
	return h.render(c, st, err)
}

func (h *IntakeHandler) HandleSubmit(c fiber.Ctx) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	created, st, err := h.uc.Submit(c.Context(), actor)
	if err != nil {
		return intakeAppError(st, err)
	}
	return response.Created(c, "Candidate added", dto.IntakeSubmitResponse{
		Candidate: toCandidateResponse(created),
		State:     toIntakeStateResponse(st),
	})
}

// itemRequest reads the list name from the path and the value from the
// JSON body, or from ?value= when there is no body.
func (h *IntakeHandler) itemRequest(c fiber.Ctx) (usecase.IntakeList, string, error) {
	list := usecase.IntakeList(c.Params("list"))
	if list != usecase.IntakeSkills && list != usecase.IntakeTags {
		return "", "", middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, nil)
	}

	var req dto.IntakeItemRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return "", "", badRequest(err)
		}
	} else {
		req.Value = c.Query("value")
	}
	return list, req.Value, nil
}

func (h *IntakeHandler) render(c fiber.Ctx, st intake.State, err error) error {
	if err != nil {
		return intakeAppError(st, err)
	}
	return response.OK(c, response.MessageOK, toIntakeStateResponse(st))
}

type intakeErrorResponse struct {
	Fields map[string]string       `json:"fields"`
	State  dto.IntakeStateResponse `json:"state"`
}

// intakeAppError reports validation failures with the form state so the
// client can show the step the errors belong to.
func intakeAppError(st intake.State, err error) error {
	var verr *intake.ValidationError
	if !errors.As(err, &verr) {
		return mapUsecaseError(err)
	}
	state := toIntakeStateResponse(st)
	fields := make(map[string]string, len(verr.Fields))
	for f, msg := range verr.Fields {
		fields[string(f)] = msg
	}
	return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", intakeErrorResponse{Fields: fields, State: state}, err)
}
