// Package server bootstraps the HTTP relay.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/glamure/hannah/internal/profile"
	"github.com/glamure/hannah/plugin/shopify"
	"github.com/glamure/hannah/server/ai"
	"github.com/glamure/hannah/server/chat"
	apiv1 "github.com/glamure/hannah/server/router/api/v1"
)

// Server is the relay HTTP server. The API clients it owns are constructed
// once here and injected down the pipeline; nothing in the pipeline reaches
// for ambient globals.
type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
	logger     *slog.Logger
}

// NewServer creates the server and wires the chat pipeline.
func NewServer(p *profile.Profile, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	// The widget is embedded on the storefront; CORS stays permissive.
	e.Use(echomw.CORS())
	e.Use(requestLogger(logger))

	gateway := shopify.NewClient(p, logger)
	llm := ai.NewProvider(&ai.Config{
		BaseURL:   p.OpenAIBaseURL,
		APIKey:    p.OpenAIAPIKey,
		ChatModel: p.ChatModel,
	})
	chatService := chat.NewService(p, gateway, llm, logger)

	apiV1 := apiv1.NewAPIV1Service(p, chatService, logger)
	apiV1.Register(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": p.Version})
	})

	return &Server{
		Profile:    p,
		echoServer: e,
		logger:     logger,
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	s.logger.Info("server started",
		"addr", addr,
		"mode", s.Profile.Mode,
		"store", s.Profile.ShopifyStoreDomain)
	err := s.echoServer.Start(addr)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		s.logger.Error("failed to shutdown server gracefully", "error", err)
	}
	s.logger.Info("server stopped")
}

// requestLogger emits one structured log line per request.
func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}
