// Package markdown renders model replies to HTML for the chat widget.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Service converts Markdown reply text into sanitized HTML.
//
// Replies originate from the language model, which in turn echoes store data,
// so raw HTML inside the Markdown is escaped rather than passed through
// (goldmark's default). This is the only sanitation the widget relies on.
type Service interface {
	RenderHTML(text string) (string, error)
}

type service struct {
	md goldmark.Markdown
}

// NewService creates a markdown rendering service.
func NewService() Service {
	return &service{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}
}

func (s *service) RenderHTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
