package shopify

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		baseURL:    srv.URL,
		token:      "shpat_test",
		httpClient: &http.Client{Timeout: time.Second},
		logger:     slog.Default(),
	}
}

func TestFindOrdersByEmail(t *testing.T) {
	var gotToken, gotEmail string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Shopify-Access-Token")
		gotEmail = r.URL.Query().Get("email")
		w.Write([]byte(`{"orders":[{"name":"1001","created_at":"2024-05-01T10:00:00Z","fulfillment_status":null,"shipping_lines":[{"carrier_identifier":"dhl","tracking_number":"JD001"}]}]}`))
	})

	orders := client.FindOrdersByEmail(context.Background(), "jane@example.com")
	require.Len(t, orders, 1)
	require.Equal(t, "1001", orders[0].Name)
	require.Empty(t, orders[0].FulfillmentStatus)
	require.Equal(t, "JD001", orders[0].ShippingLines[0].TrackingNumber)
	require.Equal(t, "shpat_test", gotToken)
	require.Equal(t, "jane@example.com", gotEmail)
}

func TestFindOrdersByEmailEmptyResult(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"orders":[]}`))
	})

	orders := client.FindOrdersByEmail(context.Background(), "nobody@example.com")
	require.NotNil(t, orders)
	require.Empty(t, orders)
}

func TestFindOrdersByEmailTransportFailureReturnsNil(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	require.Nil(t, client.FindOrdersByEmail(context.Background(), "jane@example.com"))
}

func TestFindProductByTitle(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "250", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"products":[
			{"title":"Velvet Scarf","handle":"velvet-scarf","variants":[{"title":"One Size","price":"19.99"}]},
			{"title":"Silk Dress","handle":"silk-dress","variants":[{"title":"S","price":"89.00"}]}
		]}`))
	})

	testCases := []struct {
		name       string
		query      string
		wantHandle string
	}{
		{"case_insensitive_substring", "silk", "silk-dress"},
		{"mixed_case_query", "VELVET", "velvet-scarf"},
		{"first_match_wins", "s", "velvet-scarf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := client.FindProductByTitle(context.Background(), tc.query)
			require.Len(t, products, 1)
			require.Equal(t, tc.wantHandle, products[0].Handle)
		})
	}
}

func TestFindProductByTitleNoMatch(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"products":[{"title":"Silk Dress","handle":"silk-dress"}]}`))
	})

	require.Empty(t, client.FindProductByTitle(context.Background(), "snowboard"))
}

func TestFindProductByTitleTransportFailureReturnsEmpty(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	products := client.FindProductByTitle(context.Background(), "dress")
	require.NotNil(t, products)
	require.Empty(t, products)
}

func TestFindProductByHandle(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/silk-dress.json", r.URL.Path)
		w.Write([]byte(`{"product":{"title":"Silk Dress","handle":"silk-dress","image":{"src":"https://cdn.example.com/dress.jpg"}}}`))
	})

	product := client.FindProductByHandle(context.Background(), "silk-dress")
	require.NotNil(t, product)
	require.Equal(t, "Silk Dress", product.Title)
	require.Equal(t, "https://cdn.example.com/dress.jpg", product.Image.Src)
}

func TestFindProductByHandleFailureReturnsNil(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	require.Nil(t, client.FindProductByHandle(context.Background(), "missing"))
}
