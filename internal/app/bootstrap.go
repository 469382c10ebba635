package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"hireboard/internal/config"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, registry *routes.Registry, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	if registry != nil {
		registry.Register(f)
	}

	return &App{Fiber: f}
}

// Bootstrap wires the container and the HTTP app and starts the background
// workers. The returned cleanup stops them and releases connections.
func Bootstrap(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.Start(runCtx)

	app := New(cfg, c.Routes, logger)
	app.Container = c

	cleanup := func() error {
		cancel()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	// access log sits outside the error middleware so it sees the final status
	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
