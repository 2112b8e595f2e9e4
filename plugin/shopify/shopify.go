// Package shopify implements the read-only gateway to the Shopify admin API.
//
// All lookups swallow transport failures at this boundary: a failed order
// lookup returns nil, a failed product lookup returns an empty slice. Callers
// always get a usable result and never see a transport error.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/glamure/hannah/internal/profile"
)

// catalogPageLimit bounds the product scan to the first page of the catalog.
// Products beyond it are invisible to title search. Known limitation.
const catalogPageLimit = 250

// ShippingLine is one shipping entry on an order.
type ShippingLine struct {
	CarrierIdentifier string `json:"carrier_identifier"`
	TrackingNumber    string `json:"tracking_number"`
}

// Order is a read-only view of a Shopify order.
type Order struct {
	Name              string         `json:"name"`
	CreatedAt         string         `json:"created_at"`
	FulfillmentStatus string         `json:"fulfillment_status"`
	ShippingLines     []ShippingLine `json:"shipping_lines"`
}

// Variant is one purchasable variant of a product.
type Variant struct {
	Title string `json:"title"`
	Price string `json:"price"`
}

// Image is the primary product image.
type Image struct {
	Src string `json:"src"`
}

// Product is a read-only view of a Shopify product.
type Product struct {
	Title    string    `json:"title"`
	BodyHTML string    `json:"body_html"`
	Handle   string    `json:"handle"`
	Image    *Image    `json:"image"`
	Variants []Variant `json:"variants"`
}

// Client performs authenticated read operations against the Shopify admin API.
// Construct once at startup and inject; it holds no per-request state.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client from the profile.
func NewClient(p *profile.Profile, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    p.StoreBaseURL(),
		token:      p.ShopifyAdminToken,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// FindOrdersByEmail looks up orders placed with the given email.
// Returns nil on transport failure, an empty slice when the customer has no
// orders. The two are distinct: nil means the answer is unknown.
func (c *Client) FindOrdersByEmail(ctx context.Context, email string) []Order {
	u := fmt.Sprintf("%s/orders.json?email=%s", c.baseURL, url.QueryEscape(email))

	var payload struct {
		Orders []Order `json:"orders"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		c.logger.Error("shopify order fetch failed", "error", err)
		return nil
	}
	if payload.Orders == nil {
		return []Order{}
	}
	return payload.Orders
}

// FindProductByTitle scans the first page of the catalog for a product whose
// title contains the query, case-insensitively. First match wins; the result
// holds zero or one product. Failures yield an empty slice.
func (c *Client) FindProductByTitle(ctx context.Context, query string) []Product {
	u := fmt.Sprintf("%s/products.json?limit=%d", c.baseURL, catalogPageLimit)

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		c.logger.Error("shopify product fetch failed", "error", err)
		return []Product{}
	}

	needle := strings.ToLower(query)
	for _, p := range payload.Products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			return []Product{p}
		}
	}
	return []Product{}
}

// FindProductByHandle looks up a single product by its URL handle.
// Returns nil on failure or when the product does not exist.
func (c *Client) FindProductByHandle(ctx context.Context, handle string) *Product {
	u := fmt.Sprintf("%s/products/%s.json", c.baseURL, url.PathEscape(handle))

	var payload struct {
		Product *Product `json:"product"`
	}
	if err := c.getJSON(ctx, u, &payload); err != nil {
		c.logger.Error("shopify product fetch failed", "error", err, "handle", handle)
		return nil
	}
	return payload.Product
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "shopify request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return errors.Errorf("shopify api error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}
