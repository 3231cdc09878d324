package cart

import (
	"github.com/shopspring/decimal"

	"github.com/bestshop/storefront-backend/pkg/config"
	"github.com/bestshop/storefront-backend/pkg/types"
)

// Summary is the order-summary panel for a cart: subtotal, the threshold
// discount, flat shipping, and the resulting total.
type Summary struct {
	Subtotal              types.Money `json:"subtotal"`
	Discount              types.Money `json:"discount"`
	SubtotalAfterDiscount types.Money `json:"subtotalAfterDiscount"`
	Shipping              types.Money `json:"shipping"`
	Total                 types.Money `json:"total"`
	ItemCount             int         `json:"itemCount"`
	HasItems              bool        `json:"hasItems"`
}

// Summarize computes the order summary for the given lines. The discount
// applies once the subtotal reaches the configured threshold; shipping is a
// flat fee charged only when the cart has items. An empty cart is all zeros.
func Summarize(lines []Line, cfg config.CartConfig) Summary {
	subtotal := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	hasItems := Count(lines) > 0

	discount := decimal.Zero
	threshold := decimal.NewFromInt(int64(cfg.DiscountThreshold))
	if hasItems && subtotal.GreaterThanOrEqual(threshold) {
		discount = subtotal.Mul(decimal.NewFromFloat(cfg.DiscountRate))
	}

	shipping := decimal.Zero
	if hasItems {
		shipping = decimal.NewFromInt(int64(cfg.ShippingCost))
	}

	discounted := subtotal.Sub(discount)

	return Summary{
		Subtotal:              types.NewMoney(subtotal),
		Discount:              types.NewMoney(discount),
		SubtotalAfterDiscount: types.NewMoney(discounted),
		Shipping:              types.NewMoney(shipping),
		Total:                 types.NewMoney(discounted.Add(shipping)),
		ItemCount:             Count(lines),
		HasItems:              hasItems,
	}
}
