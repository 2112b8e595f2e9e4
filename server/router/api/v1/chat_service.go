package v1

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	relayerrors "github.com/glamure/hannah/internal/errors"
	"github.com/glamure/hannah/internal/observability"
	"github.com/glamure/hannah/server/chat"
)

// ChatRequest is the body of POST /api/chat: the full client-held history.
type ChatRequest struct {
	Messages []chat.Message `json:"messages"`
}

// ChatResponse carries the reply as raw Markdown plus rendered HTML so thin
// clients can inject it directly.
type ChatResponse struct {
	Reply     string `json:"reply"`
	ReplyHTML string `json:"replyHtml"`
}

// ErrorResponse is the single error shape of the API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleChat runs one chat turn. Any pipeline failure is trapped here and
// mapped to a generic error response; no partial reply is ever sent.
func (s *APIV1Service) handleChat(c echo.Context) error {
	reqCtx := observability.NewRequestContext(s.logger)
	ctx := observability.WithRequestContext(c.Request().Context(), reqCtx)

	if s.limiter != nil && !s.limiter.Allow(c.RealIP()) {
		reqCtx.Warn("chat turn rate limited",
			slog.String(observability.LogFieldClientIP, c.RealIP()))
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests, please slow down"})
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if len(req.Messages) == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one message is required"})
	}

	reply, err := s.ChatService.Reply(ctx, req.Messages)
	if err != nil {
		code := relayerrors.GetCodeFromError(err, relayerrors.ErrCodeCompletionFailed)
		reqCtx.Error("chat turn failed", err,
			slog.String(observability.LogFieldErrorCode, string(code)),
			slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Something went wrong"})
	}

	replyHTML, err := s.MarkdownService.RenderHTML(reply)
	if err != nil {
		// The raw reply is still usable; rendering is best effort.
		reqCtx.Warn("reply rendering failed", slog.String("error", err.Error()))
	}

	reqCtx.Info("chat turn completed",
		slog.Int64(observability.LogFieldDuration, reqCtx.DurationMs()),
		slog.Int(observability.LogFieldMessageLen, len(reply)))

	return c.JSON(http.StatusOK, ChatResponse{Reply: reply, ReplyHTML: replyHTML})
}

// ProductResponse is the body of GET /api/products/:handle.
type ProductResponse struct {
	Context     string `json:"context"`
	ContextHTML string `json:"contextHtml"`
}

func (s *APIV1Service) handleProductByHandle(c echo.Context) error {
	handle := c.Param("handle")
	if handle == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Product handle is required"})
	}

	card, ok := s.ChatService.ProductCard(c.Request().Context(), handle)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
	}

	cardHTML, err := s.MarkdownService.RenderHTML(card)
	if err != nil {
		s.logger.Warn("product card rendering failed", "error", err, "handle", handle)
	}

	return c.JSON(http.StatusOK, ProductResponse{Context: card, ContextHTML: cardHTML})
}
