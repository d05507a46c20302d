package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/msa-lab/order-service/internal/entities"
	"github.com/msa-lab/order-service/internal/handler"
	mocks "github.com/msa-lab/order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validOrder := entities.Order{ID: 1, ItemIDs: []int64{10, 20}, Status: entities.StatusCreated}

	testCases := []struct {
		name         string
		body         string
		userID       string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			body:   `{"order_item_ids":[10,20]}`,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, []int64{10, 20}, "user-1").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_item_ids":[10,20]`,
		},
		{
			name:   "out of stock",
			body:   `{"order_item_ids":[10,20]}`,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, []int64{10, 20}, "user-1").
					Return(entities.Order{}, fmt.Errorf("product 20: %w", entities.ErrOutOfStock)).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `out of stock`,
		},
		{
			name:   "product service unavailable",
			body:   `{"order_item_ids":[10]}`,
			userID: "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, []int64{10}, "user-1").
					Return(entities.Order{}, fmt.Errorf("failed to reserve product 10: %w", entities.ErrProductUnavailable)).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `unavailable`,
		},
		{
			name:         "missing user header",
			body:         `{"order_item_ids":[10]}`,
			userID:       "",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid request`,
		},
		{
			name:         "empty items",
			body:         `{"order_item_ids":[]}`,
			userID:       "user-1",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `invalid request`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			if tc.userID != "" {
				req.Header.Set("X-User-Id", tc.userID)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: 123, ItemIDs: []int64{10}, Status: entities.StatusCreated}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, int64(123)).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":123`,
		},
		{
			name:    "not found",
			orderID: "404",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found or has been deleted"`,
		},
		{
			name:         "invalid id",
			orderID:      "abc",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid order id"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, int64(123)).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				err := json.Unmarshal(body, &resp)
				require.NoError(t, err)
				assert.Equal(t, float64(123), resp["id"])
			}
		})
	}
}

func TestHTTPHandler_GetOrders(t *testing.T) {
	page := entities.OrderPage{
		Orders: []entities.Order{{ID: 1, Status: entities.StatusCreated}},
		Total:  1,
		Page:   2,
		Size:   5,
	}

	t.Run("passes filters, paging and identity", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			GetOrders(mock.Anything, mock.Anything, entities.Page{Number: 2, Size: 5}, "ADMIN", "admin-1").
			RunAndReturn(func(_ context.Context, criteria entities.SearchCriteria, _ entities.Page, _, _ string) (entities.OrderPage, error) {
				require.NotNil(t, criteria.Status)
				assert.Equal(t, entities.StatusCreated, *criteria.Status)
				return page, nil
			}).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?status=CREATED&page=2&size=5", nil)
		req.Header.Set("X-User-Id", "admin-1")
		req.Header.Set("X-User-Role", "ADMIN")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total":1`)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		_, r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/orders?status=NOPE", nil)
		req.Header.Set("X-User-Id", "user-1")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_UpdateOrder(t *testing.T) {
	updated := entities.Order{ID: 123, ItemIDs: []int64{10, 30}, Status: entities.StatusShipped}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"order_item_ids":[10,30],"status":"SHIPPED"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, int64(123), []int64{10, 30}, "SHIPPED", "user-1").
					Return(updated, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"SHIPPED"`,
		},
		{
			name: "invalid status",
			body: `{"order_item_ids":[10],"status":"SHIPPING"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, int64(123), []int64{10}, "SHIPPING", "user-1").
					Return(entities.Order{}, fmt.Errorf("%w: %q", entities.ErrInvalidStatus, "SHIPPING")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `invalid order status`,
		},
		{
			name: "not found",
			body: `{"order_item_ids":[10],"status":"SHIPPED"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					UpdateOrder(mock.Anything, int64(123), []int64{10}, "SHIPPED", "user-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found or has been deleted"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newTestRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/orders/123", strings.NewReader(tc.body))
			req.Header.Set("X-User-Id", "user-1")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, int64(123), "user-1").
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orders/123", nil)
		req.Header.Set("X-User-Id", "user-1")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc, r := newTestRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, int64(404), "user-1").
			Return(entities.ErrOrderNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orders/404", nil)
		req.Header.Set("X-User-Id", "user-1")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
