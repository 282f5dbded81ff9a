package services

import (
	"github.com/abhignanvemu2/restaurant-demo/entity"

	"github.com/shopspring/decimal"
)

var (
	taxRate     = decimal.RequireFromString("0.10")
	deliveryFee = decimal.RequireFromString("2.99")
)

// computeTotals derives the four money fields from a line list.
// subtotal = Σ price×qty, tax = round2(subtotal×10%), fee is flat,
// total = subtotal + tax + fee.
func computeTotals(items []entity.CartItem) (subtotal, tax, fee, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax = subtotal.Mul(taxRate).Round(2)
	fee = deliveryFee
	total = subtotal.Add(tax).Add(fee)
	return
}

func applyTotals(c *entity.Cart) {
	c.Subtotal, c.Tax, c.DeliveryFee, c.Total = computeTotals(c.Items)
}
