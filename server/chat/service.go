// Package chat orchestrates a single support-chat turn: classify the latest
// message, gather store context, and produce one reply.
package chat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/glamure/hannah/internal/errors"
	"github.com/glamure/hannah/internal/observability"
	"github.com/glamure/hannah/internal/profile"
	"github.com/glamure/hannah/plugin/shopify"
	"github.com/glamure/hannah/server/ai"
	"github.com/glamure/hannah/server/compose"
	"github.com/glamure/hannah/server/intent"
)

// SenderUser is the sender value the widget uses for customer messages.
// Every other sender maps to the assistant role.
const SenderUser = "user"

// Message is one turn of the client-held conversation history.
type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// StoreGateway is the read-only boundary to the e-commerce backend.
// Lookups never fail loudly: nil/empty results stand in for errors.
type StoreGateway interface {
	FindOrdersByEmail(ctx context.Context, email string) []shopify.Order
	FindProductByTitle(ctx context.Context, query string) []shopify.Product
	FindProductByHandle(ctx context.Context, handle string) *shopify.Product
}

// CompletionProvider performs one chat completion per turn.
type CompletionProvider interface {
	Chat(ctx context.Context, messages []ai.Message) (string, error)
}

// Service builds one reply per chat turn. It holds no per-request state;
// the full history arrives with every call.
type Service struct {
	gateway    StoreGateway
	llm        CompletionProvider
	classifier *intent.Classifier
	composer   *compose.Composer
	logger     *slog.Logger

	systemPrompt    string
	escalationReply string
}

// NewService creates the orchestrator with its injected collaborators.
func NewService(p *profile.Profile, gateway StoreGateway, llm CompletionProvider, logger *slog.Logger) *Service {
	return &Service{
		gateway:    gateway,
		llm:        llm,
		classifier: intent.NewClassifier(),
		composer:   compose.NewComposer(p.ShopifyStoreDomain),
		logger:     logger,
		systemPrompt: fmt.Sprintf(`You are Hannah, a friendly customer support assistant for a Shopify store %s.
If the user asks to speak with a human, acknowledge their request warmly and let them know someone from the team will reach out shortly.
Also mention they can contact us via email at %s or through Messenger if needed.
Otherwise, answer using the knowledge provided or ask for clarification. Be concise, helpful, and empathetic.`,
			p.ShopifyStoreDomain, p.SupportEmail),
		escalationReply: fmt.Sprintf(`👋 Absolutely! A member of our support team will reach out shortly.
You can also email us at **%s** or chat live via [Messenger](%s).`,
			p.SupportEmail, p.MessengerURL),
	}
}

// Reply produces the assistant reply for the given conversation history.
//
// Escalation is checked before any store lookup: its reply never depends on
// gathered context, so the lookups the original pipeline ran speculatively
// are skipped outright. Observable behavior is unchanged — escalation always
// wins and the model is never invoked for it.
func (s *Service) Reply(ctx context.Context, history []Message) (string, error) {
	latest := ""
	if len(history) > 0 {
		latest = history[len(history)-1].Text
	}

	classified := s.classifier.Classify(latest)
	s.log(ctx, classified, latest)

	if classified.Escalation {
		return s.escalationReply, nil
	}

	// Two context slots. Order-status context always wins over product
	// context when both are present; checked explicitly below rather than
	// by overwrite order.
	additionalContext := ""
	productDescription := ""

	if classified.OrderStatus {
		if classified.Email == "" {
			additionalContext = s.composer.AskForEmail()
		} else {
			orders := s.gateway.FindOrdersByEmail(ctx, classified.Email)
			additionalContext = s.composer.OrderStatus(classified.Email, orders)
		}
	}

	if classified.ProductInfo {
		products := s.gateway.FindProductByTitle(ctx, classified.Query)
		if len(products) > 0 {
			productDescription = s.composer.ProductInfo(&products[0])
		} else {
			productDescription = s.composer.ProductNotFound(classified.Query)
		}
	}

	injected := additionalContext
	if injected == "" {
		injected = productDescription
	}

	messages := make([]ai.Message, 0, len(history)+2)
	messages = append(messages, ai.SystemMessage(s.systemPrompt))
	for _, m := range history {
		if m.Sender == SenderUser {
			messages = append(messages, ai.UserMessage(m.Text))
		} else {
			messages = append(messages, ai.AssistantMessage(m.Text))
		}
	}
	if injected != "" {
		messages = append(messages, ai.SystemMessage(injected))
	}

	reply, err := s.llm.Chat(ctx, messages)
	if err != nil {
		return "", errors.CompletionFailed("chat completion failed", err)
	}
	return reply, nil
}

// ProductCard renders the product context for a direct handle lookup.
// Returns false when the product does not exist or the backend is down.
func (s *Service) ProductCard(ctx context.Context, handle string) (string, bool) {
	product := s.gateway.FindProductByHandle(ctx, handle)
	if product == nil {
		return "", false
	}
	return s.composer.ProductInfo(product), true
}

func (s *Service) log(ctx context.Context, classified intent.Intent, latest string) {
	attrs := []slog.Attr{
		slog.String(observability.LogFieldIntent, classified.Label()),
		slog.Int(observability.LogFieldMessageLen, len(latest)),
	}
	if reqCtx, ok := observability.FromContext(ctx); ok {
		reqCtx.Debug("classified chat turn", attrs...)
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "classified chat turn", attrs...)
}
