package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	// GetByIDs fetches all requested products in one lookup. Ids that do
	// not resolve are simply absent from the result; callers decide
	// whether that is an error.
	GetByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage
type InMemoryProductRepository struct {
	products map[int64]models.Product
}

// NewInMemoryProductRepository creates an in-memory product repository
// seeded with the built-in demo menu
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return NewProductRepositoryFromCatalog(defaultCatalog())
}

// NewProductRepositoryFromCatalog creates an in-memory product repository
// holding the given catalog
func NewProductRepositoryFromCatalog(catalog models.Catalog) *InMemoryProductRepository {
	products := make(map[int64]models.Product, len(catalog.Products))
	for _, p := range catalog.Products {
		products[p.ID] = p
	}
	return &InMemoryProductRepository{products: products}
}

// NewProductRepositoryFromFile loads a catalog JSON file (as written by
// the seedgen tool) into an in-memory product repository
func NewProductRepositoryFromFile(path string) (*InMemoryProductRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	return NewProductRepositoryFromCatalog(catalog), nil
}

// GetAll returns all products ordered by id
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetByID returns a product by its ID
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}

// GetByIDs returns the products matching the given ids, in the order the
// ids were requested. Unknown ids are skipped, not reported.
func (r *InMemoryProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Product, error) {
	products := make([]models.Product, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, exists := r.products[id]; exists {
			products = append(products, product)
		}
	}
	return products, nil
}

func intPtr(v int) *int { return &v }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// defaultCatalog is the built-in demo menu used when no catalog file is
// configured
func defaultCatalog() models.Catalog {
	sizeGroup := models.OptionGroup{
		ID:       1,
		Title:    "Size",
		MinCount: 1,
		MaxCount: intPtr(1),
		Options: []models.Option{
			{ID: 1, Title: "Regular", Price: price("0.00")},
			{ID: 2, Title: "Large", Price: price("2.50")},
		},
	}
	toppingsGroup := models.OptionGroup{
		ID:       2,
		Title:    "Toppings",
		MinCount: 0,
		MaxCount: intPtr(3),
		Options: []models.Option{
			{ID: 3, Title: "Maple Syrup", Price: price("1.00")},
			{ID: 4, Title: "Whipped Cream", Price: price("1.50")},
			{ID: 5, Title: "Strawberries", Price: price("2.00")},
			{ID: 6, Title: "Chocolate Chips", Price: price("1.50")},
		},
	}
	dressingGroup := models.OptionGroup{
		ID:       3,
		Title:    "Dressing",
		MinCount: 1,
		MaxCount: intPtr(1),
		Options: []models.Option{
			{ID: 7, Title: "Caesar", Price: price("0.00")},
			{ID: 8, Title: "Ranch", Price: price("0.00")},
			{ID: 9, Title: "Balsamic", Price: price("0.50")},
		},
	}
	extrasGroup := models.OptionGroup{
		ID:       4,
		Title:    "Extras",
		MinCount: 0,
		Options: []models.Option{
			{ID: 10, Title: "Extra Cheese", Price: price("1.25")},
			{ID: 11, Title: "Bacon", Price: price("2.00")},
			{ID: 12, Title: "Avocado", Price: price("1.75")},
		},
	}

	return models.Catalog{Products: []models.Product{
		{ID: 1, Title: "Chicken Waffle", Price: price("12.99"), Category: "Waffle", OptionGroups: []models.OptionGroup{sizeGroup, toppingsGroup}},
		{ID: 2, Title: "Belgian Waffle", Price: price("10.99"), Category: "Waffle", OptionGroups: []models.OptionGroup{sizeGroup, toppingsGroup}},
		{ID: 3, Title: "Chocolate Waffle", Price: price("11.99"), Category: "Waffle", OptionGroups: []models.OptionGroup{sizeGroup, toppingsGroup}},
		{ID: 4, Title: "Caesar Salad", Price: price("8.99"), Category: "Salad", OptionGroups: []models.OptionGroup{dressingGroup, extrasGroup}},
		{ID: 5, Title: "Greek Salad", Price: price("9.49"), Category: "Salad", OptionGroups: []models.OptionGroup{dressingGroup, extrasGroup}},
		{ID: 6, Title: "Garden Salad", Price: price("7.99"), Category: "Salad", OptionGroups: []models.OptionGroup{dressingGroup, extrasGroup}},
		{ID: 7, Title: "Margherita Pizza", Price: price("14.99"), Category: "Pizza", OptionGroups: []models.OptionGroup{sizeGroup, extrasGroup}},
		{ID: 8, Title: "Pepperoni Pizza", Price: price("16.99"), Category: "Pizza", OptionGroups: []models.OptionGroup{sizeGroup, extrasGroup}},
		{ID: 9, Title: "Veggie Pizza", Price: price("15.49"), Category: "Pizza", OptionGroups: []models.OptionGroup{sizeGroup, extrasGroup}},
		{ID: 10, Title: "Classic Burger", Price: price("13.99"), Category: "Burger", OptionGroups: []models.OptionGroup{extrasGroup}},
	}}
}
