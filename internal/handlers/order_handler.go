package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/liwei-dev/food-order-api/internal/metrics"
	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/liwei-dev/food-order-api/internal/repository"
	"github.com/liwei-dev/food-order-api/internal/service"
)

// Rejection codes returned in the error body for order creation failures
const (
	CodeMalformedRequest = "MALFORMED_REQUEST"
	CodeUnknownProduct   = "UNKNOWN_PRODUCT"
	CodeSelectionCount   = "SELECTION_COUNT"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	metrics      *metrics.Metrics
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, m *metrics.Metrics, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		metrics:      m,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		h.metrics.OrderRejected(CodeMalformedRequest)
		WriteRejection(w, http.StatusBadRequest, CodeMalformedRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), req)
	if err != nil {
		h.writeOrderError(w, err)
		return
	}

	h.metrics.OrderCreated()
	h.log.Info("order created",
		"order_id", order.ID,
		"items_count", len(order.Items),
		"total", order.Total.String(),
	)
	WriteJSON(w, http.StatusCreated, order, h.log)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	order, err := h.orderService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}

		h.log.Error("failed to get order", "orderId", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, order, h.log)
}

// ListOrders handles GET /api/order
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, orders, h.log)
}

// writeOrderError maps engine errors to client rejections; anything else
// is an infrastructure failure
func (h *OrderHandler) writeOrderError(w http.ResponseWriter, err error) {
	var malformed *service.MalformedRequestError
	var unknownProduct *service.UnknownProductError
	var selectionCount *service.SelectionCountError

	switch {
	case errors.As(err, &malformed):
		h.log.Warn("order rejected", "reason", err)
		h.metrics.OrderRejected(CodeMalformedRequest)
		WriteRejection(w, http.StatusBadRequest, CodeMalformedRequest, err.Error(), h.log)
	case errors.As(err, &unknownProduct):
		h.log.Warn("order rejected", "reason", err)
		h.metrics.OrderRejected(CodeUnknownProduct)
		WriteRejection(w, http.StatusBadRequest, CodeUnknownProduct, err.Error(), h.log)
	case errors.As(err, &selectionCount):
		h.log.Warn("order rejected", "reason", err)
		h.metrics.OrderRejected(CodeSelectionCount)
		WriteRejection(w, http.StatusBadRequest, CodeSelectionCount, err.Error(), h.log)
	default:
		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
