package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/liwei-dev/food-order-api/internal/repository"
	"github.com/liwei-dev/food-order-api/internal/service"
)

func productTestRouter() chi.Router {
	repo := repository.NewInMemoryProductRepository()
	handler := NewProductHandler(service.NewProductService(repo), testLogger())

	r := chi.NewRouter()
	r.Get("/api/product", handler.ListProducts)
	r.Get("/api/product/{productId}", handler.GetProduct)
	return r
}

func TestProductHandler_ListProducts(t *testing.T) {
	router := productTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/product", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var products []models.Product
	if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
		t.Fatalf("decode products: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("no products returned")
	}

	// Option groups ride along with the product.
	found := false
	for _, p := range products {
		if len(p.OptionGroups) > 0 && len(p.OptionGroups[0].Options) > 0 {
			found = true
			break
		}
	}
	if !found {
		t.Error("no product carries populated option groups")
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	tests := []struct {
		name       string
		productID  string
		wantStatus int
	}{
		{name: "existing product", productID: "1", wantStatus: http.StatusOK},
		{name: "unknown product", productID: "99999", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", productID: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := productTestRouter()

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/product/"+tt.productID, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				var product models.Product
				if err := json.NewDecoder(rec.Body).Decode(&product); err != nil {
					t.Fatalf("decode product: %v", err)
				}
				if product.ID != 1 {
					t.Errorf("product id = %d, want 1", product.ID)
				}
			}
		})
	}
}
