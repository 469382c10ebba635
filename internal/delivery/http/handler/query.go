package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hireboard/internal/delivery/http/dto"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/domain/user"
	"hireboard/internal/intake"
	"hireboard/internal/pkg/response"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// parseDate accepts RFC3339 or a bare date. A bare end date covers the
// whole day.
func parseDate(s string, endOfDay bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// parseListParams reads the shared list query string. Only the facets
// named are read.
func parseListParams(c fiber.Ctx, facets ...string) (usecase.ListParams, error) {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return usecase.ListParams{}, err
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return usecase.ListParams{}, err
	}
	from, err := parseDate(c.Query("from"), false)
	if err != nil {
		return usecase.ListParams{}, err
	}
	to, err := parseDate(c.Query("to"), true)
	if err != nil {
		return usecase.ListParams{}, err
	}

	params := usecase.ListParams{
		Text:      c.Query("q"),
		From:      from,
		To:        to,
		Sort:      c.Query("sort"),
		Direction: c.Query("dir"),
		Limit:     limit,
		Offset:    offset,
	}
	for _, name := range facets {
		values := parseListQuery(c.Query(name))
		if len(values) == 0 {
			continue
		}
		if params.Facets == nil {
			params.Facets = map[string][]string{}
		}
		params.Facets[name] = values
	}
	return params, nil
}

func actorFrom(c fiber.Ctx) (user.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return user.Actor{}, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return actor, nil
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}

func badRequestMessage(message string) error {
	return middleware.NewAppError(fiber.StatusBadRequest, message, nil, nil)
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *intake.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make(map[string]string, len(verr.Fields))
		for f, msg := range verr.Fields {
			fields[string(f)] = msg
		}
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", dto.ValidationErrorResponse{Fields: fields}, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return middleware.NewAppError(fiber.StatusConflict, "Confirmation required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := formatTime(*t)
	return &s
}
