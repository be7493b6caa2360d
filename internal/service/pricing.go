package service

import (
	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/shopspring/decimal"
)

// unitPrice is the product's base price plus the deltas of every
// selected option
func unitPrice(product models.Product, selected []selectedOption) decimal.Decimal {
	price := product.Price
	for _, sel := range selected {
		price = price.Add(sel.Option.Price)
	}
	return price
}

// lineAmount is the extended amount for one order line: unit price
// multiplied by quantity
func lineAmount(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// orderTotal maps the subtotal to the order total. Today these are equal;
// surcharges and other additive adjustments would be applied here.
func orderTotal(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal
}
