package product_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/msa-lab/order-service/internal/config"
	"github.com/msa-lab/order-service/internal/entities"
	"github.com/msa-lab/order-service/internal/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, attempts int) *product.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return product.NewClient(logger, config.Product{
		BaseURL:       baseURL,
		Timeout:       time.Second,
		RetryAttempts: attempts,
		RetryDelay:    time.Millisecond,
	})
}

func TestClient_GetProduct(t *testing.T) {
	t.Run("returns product snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/products/42", r.URL.Path)
			fmt.Fprint(w, `{"id":42,"name":"Keyboard","description":"Mechanical","price":500,"quantity":7}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 1)

		got, err := client.GetProduct(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, entities.ProductSnapshot{
			ID:          42,
			Name:        "Keyboard",
			Description: "Mechanical",
			Price:       500,
			Quantity:    7,
		}, got)
	})

	t.Run("serves fallback when service responds with 500", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 3)

		got, err := client.GetProduct(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, "Unavailable Product", got.Name)
		assert.Equal(t, "Product service is down. This is fallback response.", got.Description)
		assert.Equal(t, int64(42), got.ID)
		assert.Zero(t, got.Quantity)
		assert.EqualValues(t, 3, calls.Load(), "all attempts should be exhausted before fallback")
	})

	t.Run("serves fallback when service is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL, 2)

		got, err := client.GetProduct(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Unavailable Product", got.Name)
		assert.Zero(t, got.Quantity)
	})

	t.Run("recovers on retry", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			fmt.Fprint(w, `{"id":7,"name":"Mouse","quantity":3}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 3)

		got, err := client.GetProduct(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Mouse", got.Name)
		assert.Equal(t, 3, got.Quantity)
		assert.EqualValues(t, 2, calls.Load())
	})
}

func TestClient_ReduceQuantity(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/products/42/reduce-quantity", r.URL.Path)
			assert.Equal(t, "3", r.URL.Query().Get("quantity"))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 1)

		err := client.ReduceQuantity(context.Background(), 42, 3)
		assert.NoError(t, err)
	})

	t.Run("no fallback on error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := newTestClient(server.URL, 1)

		err := client.ReduceQuantity(context.Background(), 42, 3)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProductUnavailable)
	})

	t.Run("no fallback when service is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL, 1)

		err := client.ReduceQuantity(context.Background(), 42, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrProductUnavailable)
	})
}
