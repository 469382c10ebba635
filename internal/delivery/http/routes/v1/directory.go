package v1

import (
	"hireboard/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterDirectory(r fiber.Router, directory *handler.DirectoryHandler, stats *handler.StatsHandler) {
	if r == nil {
		return
	}

	if directory != nil {
		directory.RegisterRoutes(r)
	}
	if stats != nil {
		stats.RegisterRoutes(r)
	}
}
