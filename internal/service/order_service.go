package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/liwei-dev/food-order-api/internal/repository"
	"github.com/shopspring/decimal"
)

// OrderService validates, prices and persists customer orders against a
// point-in-time catalog snapshot
type OrderService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// CreateOrder validates the request, fetches the referenced products in a
// single batch, validates and prices every line, and persists the
// composed order. Validation is all-or-nothing: the first failing line
// aborts the whole request and nothing is persisted.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := validateRequestShape(req); err != nil {
		return nil, err
	}

	snapshot, err := s.fetchSnapshot(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	// Validate and price every line before touching persistence.
	items := make([]models.OrderItem, 0, len(req.Items))
	subtotal := decimal.Zero
	for _, line := range req.Items {
		product := snapshot[line.ProductID]

		selected, err := validateSelections(product, optionIDSet(line.Options))
		if err != nil {
			return nil, err
		}

		amount := lineAmount(unitPrice(product, selected), line.Quantity)
		items = append(items, composeLine(product, selected, line.Quantity, amount))
		subtotal = subtotal.Add(amount)
	}

	order := composeOrder(req.Remark, items, subtotal)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	return order, nil
}

// GetOrder returns a persisted order by its ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

// ListOrders returns all persisted orders in creation order
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.List(ctx)
}

// fetchSnapshot batch-fetches every distinct product referenced by the
// request in one repository call and verifies all of them resolved.
// A missing product rejects the request as a whole.
func (s *OrderService) fetchSnapshot(ctx context.Context, lines []models.OrderItemRequest) (map[int64]models.Product, error) {
	ids := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	snapshot := make(map[int64]models.Product, len(products))
	for _, p := range products {
		snapshot[p.ID] = p
	}

	for _, id := range ids {
		if _, ok := snapshot[id]; !ok {
			return nil, &UnknownProductError{ProductID: id}
		}
	}

	return snapshot, nil
}

// validateRequestShape checks the structural constraints of the request
// before any catalog lookup is attempted. Product and option ids are not
// judged here: an id that resolves to nothing is either an unknown
// product (caught by the snapshot fetch) or an inert option.
func validateRequestShape(req models.OrderRequest) error {
	if len(req.Items) == 0 {
		return &MalformedRequestError{Field: "items", Reason: "must contain at least one item"}
	}

	for i, line := range req.Items {
		if line.Quantity <= 0 {
			return &MalformedRequestError{
				Field:  fmt.Sprintf("items[%d].quantity", i),
				Reason: "must be greater than zero",
			}
		}
	}

	return nil
}

// composeLine snapshots the product title and the selected options'
// titles into an immutable order line
func composeLine(product models.Product, selected []selectedOption, quantity int, amount decimal.Decimal) models.OrderItem {
	var options []models.OptionSnapshot
	for _, sel := range selected {
		options = append(options, models.OptionSnapshot{
			Title:      sel.Option.Title,
			GroupTitle: sel.Group.Title,
		})
	}

	return models.OrderItem{
		Title:    product.Title,
		Amount:   amount,
		Quantity: quantity,
		Options:  options,
	}
}

// composeOrder assembles the final order record from already-validated,
// already-priced lines
func composeOrder(remark string, items []models.OrderItem, subtotal decimal.Decimal) *models.Order {
	return &models.Order{
		ID:        uuid.New().String(),
		SubTotal:  subtotal,
		Total:     orderTotal(subtotal),
		Remark:    remark,
		Items:     items,
		CreatedAt: time.Now().UTC(),
	}
}
