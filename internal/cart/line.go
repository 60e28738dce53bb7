package cart

import (
	"github.com/cafeoro/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line is one product's entry in the cart. Name, price and artwork are
// denormalized copies taken from the catalog at add-time, so a later catalog
// change never rewrites what the shopper put in the cart.
type Line struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Icon       string `json:"icon,omitempty"`
	Image      string `json:"image,omitempty"`
	Quantity   int    `json:"quantity"`
}

func lineFromProduct(p catalog.Product) Line {
	return Line{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Icon:       p.Icon,
		Image:      p.Image,
		Quantity:   1,
	}
}

// UnitPrice returns the line's unit price as a display decimal.
func (l Line) UnitPrice() decimal.Decimal {
	return decimal.NewFromInt(l.PriceCents).Shift(-2)
}

// SubtotalCents returns price times quantity for the line.
func (l Line) SubtotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}
