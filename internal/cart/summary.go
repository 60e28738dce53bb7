package cart

import "github.com/shopspring/decimal"

// Summary is the derived order total breakdown. It is never stored; callers
// recompute it from the current lines whenever the cart changes.
type Summary struct {
	SubtotalCents int64
	ShippingCents int64
	TotalCents    int64
}

// Summarize computes subtotal, shipping and total for the given lines.
// Shipping is the flat fee whenever the cart is non-empty, zero otherwise.
func Summarize(lines []Line, shippingFeeCents int64) Summary {
	var subtotal int64
	for _, line := range lines {
		subtotal += line.SubtotalCents()
	}

	var shipping int64
	if len(lines) > 0 {
		shipping = shippingFeeCents
	}

	return Summary{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TotalCents:    subtotal + shipping,
	}
}

// Subtotal returns the subtotal as a display decimal.
func (s Summary) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(s.SubtotalCents).Shift(-2)
}

// Shipping returns the shipping fee as a display decimal.
func (s Summary) Shipping() decimal.Decimal {
	return decimal.NewFromInt(s.ShippingCents).Shift(-2)
}

// Total returns the grand total as a display decimal.
func (s Summary) Total() decimal.Decimal {
	return decimal.NewFromInt(s.TotalCents).Shift(-2)
}
