package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest represents an incoming order request
type OrderRequest struct {
	Remark string             `json:"remark,omitempty"`
	Items  []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single requested line: a product, a quantity and
// the ids of the options the customer picked. Option ids may reference
// options the product does not offer; those are ignored during validation.
type OrderItemRequest struct {
	ProductID int64   `json:"product"`
	Quantity  int     `json:"quantity"`
	Options   []int64 `json:"options,omitempty"`
}

// OptionSnapshot records a selected option as it was at order time,
// so the order stays meaningful if catalog entries are later renamed
type OptionSnapshot struct {
	Title      string `json:"title"`
	GroupTitle string `json:"groupTitle"`
}

// OrderItem is a priced order line. Amount is the extended amount:
// (base price + selected option deltas) multiplied by quantity.
type OrderItem struct {
	Title    string           `json:"title"`
	Amount   decimal.Decimal  `json:"amount"`
	Quantity int              `json:"quantity"`
	Options  []OptionSnapshot `json:"options,omitempty"`
}

// Order represents a confirmed order. It is self-contained: once created
// it never re-reads the catalog.
type Order struct {
	ID        string          `json:"id"`
	SubTotal  decimal.Decimal `json:"subTotal"`
	Total     decimal.Decimal `json:"total"`
	Remark    string          `json:"remark,omitempty"`
	Items     []OrderItem     `json:"items"`
	CreatedAt time.Time       `json:"createdAt"`
}
