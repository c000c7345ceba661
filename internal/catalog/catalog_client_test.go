package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-storefront/internal/catalog"
	catalogerrors "go-storefront/internal/catalog/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	t.Run("decodes_products_and_ignores_extra_fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"products": [
					{"id": 1, "title": "Mouse", "price": 10.99, "thumbnail": "m.png", "category": "peripherals", "stock": 44, "rating": 4.5},
					{"id": 2, "title": "Pad", "price": 5, "category": "peripherals"}
				],
				"total": 2,
				"skip": 0,
				"limit": 30
			}`))
		}))
		defer srv.Close()

		client := catalog.NewClient(srv.URL, time.Second)
		products, err := client.Fetch(context.Background())

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, "Mouse", products[0].Title)
		assert.True(t, products[0].Price.Equal(decimal.RequireFromString("10.99")))
		assert.Equal(t, "peripherals", products[1].Category)
	})

	t.Run("non_2xx_is_fetch_failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := catalog.NewClient(srv.URL, time.Second)
		_, err := client.Fetch(context.Background())
		assert.ErrorIs(t, err, catalogerrors.ErrFetchFailed)
	})

	t.Run("malformed_payload_is_fetch_failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"products": [{`))
		}))
		defer srv.Close()

		client := catalog.NewClient(srv.URL, time.Second)
		_, err := client.Fetch(context.Background())
		assert.ErrorIs(t, err, catalogerrors.ErrFetchFailed)
	})

	t.Run("unreachable_host_is_fetch_failed", func(t *testing.T) {
		client := catalog.NewClient("http://127.0.0.1:1", 100*time.Millisecond)
		_, err := client.Fetch(context.Background())
		assert.ErrorIs(t, err, catalogerrors.ErrFetchFailed)
	})
}
