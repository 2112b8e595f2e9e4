// Package intent classifies the latest user utterance of a chat turn.
package intent

import (
	"regexp"
	"strings"
)

// Intent is the classified purpose of the latest user message.
//
// Matching is not mutually exclusive: a single message can carry both an
// order-status and a product-info intent. The composer decides precedence;
// the classifier only reports what matched.
type Intent struct {
	// Escalation is set when the user asks for a human agent.
	Escalation bool

	// OrderStatus is set when the user asks about an order.
	// Email holds the extracted address; empty means the user must be asked
	// for the email they ordered with.
	OrderStatus bool
	Email       string

	// ProductInfo is set when the user asks about a product.
	// Query is the raw product title fragment, case-preserved and trimmed.
	ProductInfo bool
	Query       string
}

// IsNone reports whether no intent matched at all.
func (i Intent) IsNone() bool {
	return !i.Escalation && !i.OrderStatus && !i.ProductInfo
}

// Label returns a short name for logging.
func (i Intent) Label() string {
	switch {
	case i.Escalation:
		return "escalation"
	case i.OrderStatus && i.ProductInfo:
		return "order_status+product_info"
	case i.OrderStatus:
		return "order_status"
	case i.ProductInfo:
		return "product_info"
	default:
		return "none"
	}
}

// Classifier classifies user input into support intents using fixed phrase
// matching. Rule-based on purpose: the escalation path must never depend on
// a model call, and the trigger phrases are a stable product decision.
type Classifier struct {
	escalationPattern *regexp.Regexp
	emailPattern      *regexp.Regexp
	productPattern    *regexp.Regexp

	orderPhrases []string
}

// NewClassifier creates a Classifier with the default trigger phrases.
func NewClassifier() *Classifier {
	return &Classifier{
		escalationPattern: regexp.MustCompile(`(?i)(talk to (a )?human|real person|speak to (an )?agent|live support|customer support)`),
		// Permissive on purpose: good enough to pull an address out of free
		// text, 2-6 letter TLD.
		emailPattern:   regexp.MustCompile(`[\w.-]+@[\w.-]+\.[A-Za-z]{2,6}`),
		productPattern: regexp.MustCompile(`(?i)tell me about`),
		orderPhrases: []string{
			"track my order",
			"where is my order",
		},
	}
}

// Classify determines the intent of the latest user message.
func (c *Classifier) Classify(input string) Intent {
	var result Intent
	lower := strings.ToLower(input)

	if c.escalationPattern.MatchString(input) {
		result.Escalation = true
	}

	for _, phrase := range c.orderPhrases {
		if strings.Contains(lower, phrase) {
			result.OrderStatus = true
			result.Email = c.emailPattern.FindString(input)
			break
		}
	}

	if c.productPattern.MatchString(input) {
		result.ProductInfo = true
		result.Query = strings.TrimSpace(c.productPattern.ReplaceAllString(input, ""))
	}

	return result
}
