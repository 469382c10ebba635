package v1

import (
	"hireboard/internal/delivery/http/handler"
	"hireboard/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Actor      *middleware.ActorMiddleware
	Session    *handler.SessionHandler
	Candidates *handler.CandidatesHandler
	Board      *handler.BoardHandler
	Directory  *handler.DirectoryHandler
	Stats      *handler.StatsHandler
	Intake     *handler.IntakeHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Session != nil {
		h.Session.RegisterPublicRoutes(r)
	}
	if h.Actor == nil {
		return
	}

	protected := r.Group("", h.Actor.Middleware())

	if h.Session != nil {
		h.Session.RegisterRoutes(protected)
	}
	RegisterCandidates(protected, h.Candidates, h.Board, h.Intake)
	RegisterDirectory(protected, h.Directory, h.Stats)
}
