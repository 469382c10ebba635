package routes

import (
	"hireboard/internal/delivery/http/handler"
	v1 "hireboard/internal/delivery/http/routes/v1"
	"hireboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	ws     *ws.Handler
}

func NewRegistry(api v1.Handlers, wsHandler *ws.Handler) *Registry {
	return &Registry{health: handler.NewHealthHandler(), v1: api, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1)
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.ws == nil || r.v1.Actor == nil {
		return
	}
	app.Get("/ws", r.v1.Actor.Middleware(), r.ws.HandleCandidatesWS)
}
