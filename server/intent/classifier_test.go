package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	testCases := []struct {
		name  string
		input string
		want  Intent
	}{
		{
			name:  "no_trigger_phrase",
			input: "hello, do you ship to France?",
			want:  Intent{},
		},
		{
			name:  "order_status_with_email",
			input: "where is my order, jane@example.com",
			want:  Intent{OrderStatus: true, Email: "jane@example.com"},
		},
		{
			name:  "track_my_order_without_email",
			input: "track my order",
			want:  Intent{OrderStatus: true},
		},
		{
			name:  "order_status_case_insensitive",
			input: "WHERE IS MY ORDER jane.doe@mail.co.uk",
			want:  Intent{OrderStatus: true, Email: "jane.doe@mail.co.uk"},
		},
		{
			name:  "product_info_preserves_case",
			input: "tell me about the Silk Dress",
			want:  Intent{ProductInfo: true, Query: "the Silk Dress"},
		},
		{
			name:  "product_info_mixed_case_trigger",
			input: "Tell Me About velvet scarf",
			want:  Intent{ProductInfo: true, Query: "velvet scarf"},
		},
		{
			name:  "escalation_talk_to_a_human",
			input: "I want to talk to a human please",
			want:  Intent{Escalation: true},
		},
		{
			name:  "escalation_real_person",
			input: "Can I chat with a REAL PERSON?",
			want:  Intent{Escalation: true},
		},
		{
			name:  "escalation_speak_to_agent",
			input: "speak to agent now",
			want:  Intent{Escalation: true},
		},
		{
			name:  "order_and_product_both_match",
			input: "track my order jane@example.com and tell me about the Silk Dress",
			want:  Intent{OrderStatus: true, Email: "jane@example.com", ProductInfo: true, Query: "track my order jane@example.com and  the Silk Dress"},
		},
		{
			name:  "escalation_alongside_order",
			input: "where is my order? I need live support",
			want:  Intent{Escalation: true, OrderStatus: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.input)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestIsNone(t *testing.T) {
	c := NewClassifier()

	require.True(t, c.Classify("what's your return policy?").IsNone())
	require.False(t, c.Classify("track my order").IsNone())
	require.False(t, c.Classify("customer support").IsNone())
}

func TestLabel(t *testing.T) {
	require.Equal(t, "none", Intent{}.Label())
	require.Equal(t, "escalation", Intent{Escalation: true, OrderStatus: true}.Label())
	require.Equal(t, "order_status", Intent{OrderStatus: true}.Label())
	require.Equal(t, "product_info", Intent{ProductInfo: true}.Label())
	require.Equal(t, "order_status+product_info", Intent{OrderStatus: true, ProductInfo: true}.Label())
}
