package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/liwei-dev/food-order-api/internal/metrics"
	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/liwei-dev/food-order-api/internal/repository"
	"github.com/liwei-dev/food-order-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int { return &v }

func testRouter() (chi.Router, *repository.InMemoryOrderRepository) {
	catalog := models.Catalog{Products: []models.Product{
		{
			ID:    1,
			Title: "Chicken Waffle",
			Price: decimal.RequireFromString("10.00"),
			OptionGroups: []models.OptionGroup{
				{
					ID:       10,
					Title:    "Toppings",
					MinCount: 1,
					MaxCount: intPtr(2),
					Options: []models.Option{
						{ID: 101, Title: "Maple Syrup", Price: decimal.RequireFromString("1.00")},
						{ID: 102, Title: "Whipped Cream", Price: decimal.RequireFromString("2.00")},
						{ID: 103, Title: "Strawberries", Price: decimal.RequireFromString("3.00")},
					},
				},
			},
		},
		{ID: 2, Title: "Garden Salad", Price: decimal.RequireFromString("7.99")},
	}}

	log := testLogger()
	productRepo := repository.NewProductRepositoryFromCatalog(catalog)
	orderRepo := repository.NewInMemoryOrderRepository()
	m := metrics.NewWithRegisterer(prometheus.NewRegistry())

	orderService := service.NewOrderService(productRepo, orderRepo)
	handler := NewOrderHandler(orderService, m, log)

	r := chi.NewRouter()
	r.Post("/api/order", handler.CreateOrder)
	r.Get("/api/order/{orderId}", handler.GetOrder)
	r.Get("/api/order", handler.ListOrders)
	return r, orderRepo
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "valid order",
			body:       `{"items":[{"product":1,"quantity":2,"options":[101,102]}]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid JSON",
			body:       `{"items":[`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeMalformedRequest,
		},
		{
			name:       "wrong field type",
			body:       `{"items":[{"product":"one","quantity":2}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeMalformedRequest,
		},
		{
			name:       "empty items",
			body:       `{"items":[]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeMalformedRequest,
		},
		{
			name:       "zero quantity",
			body:       `{"items":[{"product":1,"quantity":0}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeMalformedRequest,
		},
		{
			name:       "unknown product",
			body:       `{"items":[{"product":42,"quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeUnknownProduct,
		},
		{
			name:       "selection below minimum",
			body:       `{"items":[{"product":1,"quantity":1}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeSelectionCount,
		},
		{
			name:       "selection above maximum",
			body:       `{"items":[{"product":1,"quantity":1,"options":[101,102,103]}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeSelectionCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, orderRepo := testRouter()

			req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantStatus == http.StatusCreated {
				var order models.Order
				if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
					t.Fatalf("decode order: %v", err)
				}
				if !order.Total.Equal(decimal.RequireFromString("26.00")) {
					t.Errorf("total = %s, want 26.00", order.Total)
				}

				stored, err := orderRepo.GetByID(context.Background(), order.ID)
				if err != nil {
					t.Fatalf("order not persisted: %v", err)
				}
				if !stored.Total.Equal(order.Total) {
					t.Errorf("stored total = %s, want %s", stored.Total, order.Total)
				}
				return
			}

			var resp ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q (error %q)", resp.Code, tt.wantCode, resp.Error)
			}
			if resp.Error == "" {
				t.Error("error message is empty")
			}

			orders, _ := orderRepo.List(context.Background())
			if len(orders) != 0 {
				t.Errorf("rejected request persisted %d order(s)", len(orders))
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	router, _ := testRouter()

	// Create one order first.
	body := `{"items":[{"product":2,"quantity":1}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created models.Order
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode created order: %v", err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/order/"+created.ID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var fetched models.Order
	if err := json.NewDecoder(rec.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode fetched order: %v", err)
	}
	if fetched.ID != created.ID || !fetched.Total.Equal(created.Total) {
		t.Errorf("fetched order %s/%s, want %s/%s", fetched.ID, fetched.Total, created.ID, created.Total)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/order/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing order status = %d, want 404", rec.Code)
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	router, _ := testRouter()

	for i := 0; i < 3; i++ {
		body := `{"items":[{"product":2,"quantity":1}]}`
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewBufferString(body)))
		if rec.Code != http.StatusCreated {
			t.Fatalf("create status = %d", rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/order", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	var orders []models.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 3 {
		t.Errorf("listed %d orders, want 3", len(orders))
	}
}
