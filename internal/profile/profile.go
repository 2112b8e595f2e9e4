package profile

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the relay server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Version is the current version of server
	Version string

	// Shopify Configuration
	ShopifyStoreDomain string // HANNAH_SHOPIFY_STORE_DOMAIN, e.g. "www.glamure.co.uk"
	ShopifyAdminToken  string // HANNAH_SHOPIFY_ADMIN_TOKEN
	ShopifyAPIVersion  string // HANNAH_SHOPIFY_API_VERSION (default: 2023-04)

	// OpenAI Configuration
	OpenAIAPIKey  string // HANNAH_OPENAI_API_KEY
	OpenAIBaseURL string // HANNAH_OPENAI_BASE_URL (default: https://api.openai.com/v1)
	ChatModel     string // HANNAH_CHAT_MODEL (default: gpt-4o)

	// Support escalation contact points surfaced in the canned escalation reply.
	SupportEmail string // HANNAH_SUPPORT_EMAIL (default: support@yourstore.com)
	MessengerURL string // HANNAH_MESSENGER_URL (default: https://m.me/yourpage)

	// RateLimitEnabled toggles the per-client request limiter.
	RateLimitEnabled bool // HANNAH_RATE_LIMIT_ENABLED (default: true)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// StoreBaseURL returns the base URL of the Shopify admin API.
func (p *Profile) StoreBaseURL() string {
	return fmt.Sprintf("https://%s/admin/api/%s", p.ShopifyStoreDomain, p.ShopifyAPIVersion)
}

// Validate normalizes the profile and fails fast on missing credentials.
// The gateway and the completion provider both depend on these being present
// at call time, so a partial profile is rejected at startup rather than
// surfacing as per-request transport failures.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}
	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	p.ShopifyStoreDomain = strings.TrimSuffix(strings.TrimPrefix(p.ShopifyStoreDomain, "https://"), "/")
	if p.ShopifyStoreDomain == "" {
		return errors.New("shopify store domain is required")
	}
	if p.ShopifyAdminToken == "" {
		return errors.New("shopify admin token is required")
	}
	if p.ShopifyAPIVersion == "" {
		p.ShopifyAPIVersion = "2023-04"
	}

	if p.OpenAIAPIKey == "" {
		return errors.New("openai api key is required")
	}
	if p.OpenAIBaseURL == "" {
		p.OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if p.ChatModel == "" {
		p.ChatModel = "gpt-4o"
	}

	if p.SupportEmail == "" {
		p.SupportEmail = "support@yourstore.com"
	}
	if p.MessengerURL == "" {
		p.MessengerURL = "https://m.me/yourpage"
	}
	return nil
}
