// Package compose renders store data into context strings for the model request.
package compose

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/glamure/hannah/plugin/shopify"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripHTML removes markup tags from a product description. It is a generic
// tag-stripping pass, not an HTML parser; entities are left undecoded.
func StripHTML(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// Composer renders order and product data into short context strings that
// ground the model reply in live store data.
type Composer struct {
	storeDomain string
}

// NewComposer creates a Composer for the given storefront domain.
func NewComposer(storeDomain string) *Composer {
	return &Composer{storeDomain: storeDomain}
}

// OrderStatus renders the order-status context for the given lookup result.
// Only the first order is described when a customer has several; there is no
// disambiguation. A nil result (transport failure) reads the same as an empty
// one, so the customer is never shown a backend error.
func (c *Composer) OrderStatus(email string, orders []shopify.Order) string {
	if len(orders) == 0 {
		return fmt.Sprintf("No orders found for email %s.", email)
	}

	order := orders[0]
	status := order.FulfillmentStatus
	if status == "" {
		status = "Processing"
	}
	carrier := "N/A"
	tracking := "Unavailable"
	if len(order.ShippingLines) > 0 {
		if order.ShippingLines[0].CarrierIdentifier != "" {
			carrier = order.ShippingLines[0].CarrierIdentifier
		}
		if order.ShippingLines[0].TrackingNumber != "" {
			tracking = order.ShippingLines[0].TrackingNumber
		}
	}

	return fmt.Sprintf("Order #%s was placed on %s. Current status: %s via %s with tracking: %s",
		order.Name, order.CreatedAt, status, carrier, tracking)
}

// AskForEmail renders the request for the order email when none could be
// extracted from the message.
func (c *Composer) AskForEmail() string {
	return "Can you please provide the email you used to place the order?"
}

// ProductInfo renders a Markdown block describing the product: title heading,
// tag-stripped description, first-variant price, all variants with prices,
// the product page link and the image reference (empty src when the product
// has no image).
func (c *Composer) ProductInfo(product *shopify.Product) string {
	productURL := fmt.Sprintf("https://%s/products/%s", c.storeDomain, product.Handle)

	price := ""
	if len(product.Variants) > 0 {
		price = product.Variants[0].Price
	}

	var variants strings.Builder
	for i, v := range product.Variants {
		if i > 0 {
			variants.WriteString("\n")
		}
		variants.WriteString(fmt.Sprintf("- %s — €%s", v.Title, v.Price))
	}

	imageSrc := ""
	if product.Image != nil {
		imageSrc = product.Image.Src
	}

	return fmt.Sprintf(`### 🛍️ %s

%s

**Price:** €%s
**Sizes Available:**
%s

[View the product](%s)
![Product image](%s)
`,
		product.Title,
		StripHTML(product.BodyHTML),
		price,
		variants.String(),
		productURL,
		imageSrc,
	)
}

// ProductNotFound renders the miss message containing the literal query term.
func (c *Composer) ProductNotFound(query string) string {
	return fmt.Sprintf("Sorry, I couldn't find any product matching %q.", query)
}
