package models

import "github.com/shopspring/decimal"

// Product represents a menu item available for order, with its base price
// and the option groups a customer may choose from
type Product struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category,omitempty"`
	OptionGroups []OptionGroup   `json:"optionGroups,omitempty"`
}

// OptionGroup is a named cluster of selectable options on a product
// (e.g. "size", "toppings") with selection-count bounds.
// MaxCount nil means no upper limit.
type OptionGroup struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	MinCount int      `json:"minCount"`
	MaxCount *int     `json:"maxCount,omitempty"`
	Options  []Option `json:"options"`
}

// Option is a single selectable choice within a group. Price is the
// delta added to the product's base price when the option is selected.
type Option struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

// Catalog is the on-disk catalog format shared by the seed generator
// and the file-backed product repository
type Catalog struct {
	Products []Product `json:"products"`
}
