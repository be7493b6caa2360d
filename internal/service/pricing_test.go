package service

import (
	"testing"

	"github.com/liwei-dev/food-order-api/internal/models"
)

func TestPricing_ExactDecimalArithmetic(t *testing.T) {
	// 0.10 + 0.20 would drift under binary floats; decimals must not.
	product := models.Product{Price: d("0.10")}
	selected := []selectedOption{
		{Option: models.Option{Price: d("0.20")}},
	}

	unit := unitPrice(product, selected)
	if !unit.Equal(d("0.30")) {
		t.Errorf("unit price = %s, want exactly 0.30", unit)
	}

	amount := lineAmount(unit, 3)
	if !amount.Equal(d("0.90")) {
		t.Errorf("line amount = %s, want exactly 0.90", amount)
	}
}

func TestUnitPrice(t *testing.T) {
	product := models.Product{Price: d("10.00")}

	tests := []struct {
		name     string
		deltas   []string
		quantity int
		want     string
	}{
		{name: "no options", deltas: nil, quantity: 1, want: "10.00"},
		{name: "two deltas times two", deltas: []string{"1.00", "2.00"}, quantity: 2, want: "26.00"},
		{name: "zero delta option", deltas: []string{"0.00"}, quantity: 4, want: "40.00"},
		{name: "negative delta", deltas: []string{"-1.50"}, quantity: 2, want: "17.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := make([]selectedOption, len(tt.deltas))
			for i, delta := range tt.deltas {
				selected[i] = selectedOption{Option: models.Option{Price: d(delta)}}
			}

			got := lineAmount(unitPrice(product, selected), tt.quantity)
			if !got.Equal(d(tt.want)) {
				t.Errorf("line amount = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOrderTotal_EqualsSubtotal(t *testing.T) {
	subtotal := d("33.99")
	if !orderTotal(subtotal).Equal(subtotal) {
		t.Errorf("orderTotal(%s) = %s", subtotal, orderTotal(subtotal))
	}
}
