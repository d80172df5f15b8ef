package app

import (
	"fmt"
	"strings"

	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	// Access log first so it observes the status the error middleware wrote.
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())

	routes.Register(f, c.Config, c.DB, c.Sessions, c.LLM)

	return &App{Fiber: f}
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
