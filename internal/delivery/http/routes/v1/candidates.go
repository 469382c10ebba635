package v1

import (
	"hireboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCandidates(r fiber.Router, candidates *handler.CandidatesHandler, board *handler.BoardHandler, intake *handler.IntakeHandler) {
	if r == nil {
		return
	}

	if candidates != nil {
		candidates.RegisterRoutes(r)
	}
	if board != nil {
		board.RegisterRoutes(r)
	}
	if intake != nil {
		intake.RegisterRoutes(r)
	}
}
