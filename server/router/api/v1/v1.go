// Package v1 exposes the relay's HTTP API.
package v1

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/glamure/hannah/internal/profile"
	"github.com/glamure/hannah/plugin/markdown"
	"github.com/glamure/hannah/server/chat"
	"github.com/glamure/hannah/server/middleware"
)

// APIV1Service wires the chat pipeline to the HTTP surface.
type APIV1Service struct {
	Profile         *profile.Profile
	ChatService     *chat.Service
	MarkdownService markdown.Service

	limiter *middleware.RateLimiter
	logger  *slog.Logger
}

// NewAPIV1Service creates the API service with its injected collaborators.
func NewAPIV1Service(p *profile.Profile, chatService *chat.Service, logger *slog.Logger) *APIV1Service {
	service := &APIV1Service{
		Profile:         p,
		ChatService:     chatService,
		MarkdownService: markdown.NewService(),
		logger:          logger,
	}
	if p.RateLimitEnabled {
		service.limiter = middleware.NewRateLimiter()
	}
	return service
}

// Register registers the API routes with the given Echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	e.POST("/api/chat", s.handleChat)
	e.GET("/api/products/:handle", s.handleProductByHandle)
}
