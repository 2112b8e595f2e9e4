package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderHTML(t *testing.T) {
	svc := NewService()

	html, err := svc.RenderHTML("### Silk Dress\n\n**Price:** €89.00\n\n[View the product](https://www.glamure.co.uk/products/silk-dress)")
	require.NoError(t, err)
	require.Contains(t, html, "<h3>Silk Dress</h3>")
	require.Contains(t, html, "<strong>Price:</strong>")
	require.Contains(t, html, `<a href="https://www.glamure.co.uk/products/silk-dress">View the product</a>`)
}

func TestRenderHTMLEscapesRawHTML(t *testing.T) {
	svc := NewService()

	html, err := svc.RenderHTML(`hello <script>alert("x")</script>`)
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTMLPlainText(t *testing.T) {
	svc := NewService()

	html, err := svc.RenderHTML("plain reply")
	require.NoError(t, err)
	require.Contains(t, html, "<p>plain reply</p>")
}
