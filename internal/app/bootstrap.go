package app

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"projectlink/internal/config"
	"projectlink/internal/delivery/http/handler"
	"projectlink/internal/delivery/http/middleware"
	"projectlink/internal/delivery/http/routes"
	"projectlink/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	// WS serves /ws on its own listener.
	WS  *http.Server
	Hub *ws.Hub
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	return &App{
		Fiber: f,
		WS: &http.Server{
			Handler:           wsHandler.Mux(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		Hub: c.Hub,
	}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Printf("[KV] store ready | driver=%s backend=%s", cfg.Store.Driver, c.Store.Backend().Name())

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger, "/health")
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	health := handler.NewHealthHandler(c.Store, c.Store.Backend().Name(), c.Hub)
	registry := routes.NewRegistry(health, routes.Handlers{
		Session:        handler.NewSessionHandler(c.Session),
		Project:        handler.NewProjectHandler(c.Projects, c.Membership),
		Recommendation: handler.NewRecommendationHandler(c.Recommendation),
		Chat:           handler.NewChatHandler(c.Chat),
	})
	registry.Register(app)
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
