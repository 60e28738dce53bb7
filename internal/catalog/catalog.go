package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is one purchasable item. Products are defined at process start and
// never change at runtime.
type Product struct {
	ID         int
	Name       string
	PriceCents int64
	Icon       string
	Image      string
}

// Price returns the unit price as a display decimal.
func (p Product) Price() decimal.Decimal {
	return decimal.NewFromInt(p.PriceCents).Shift(-2)
}

// Catalog is a read-only product list with id lookup.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// New builds a catalog from the provided products. Later duplicates of an id
// are ignored.
func New(products []Product) *Catalog {
	byID := make(map[int]Product, len(products))
	kept := make([]Product, 0, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			continue
		}
		byID[p.ID] = p
		kept = append(kept, p)
	}
	return &Catalog{products: kept, byID: byID}
}

// Default returns the Café Oro storefront catalog.
func Default() *Catalog {
	return New([]Product{
		{
			ID:         2,
			Name:       "Café Oro Soluble Liofilizado 170g",
			PriceCents: 26000,
			Icon:       "fa-mug-hot",
			Image:      "images/cafe-oro-soluble.jpg",
		},
		{
			ID:         3,
			Name:       "Café Oro Molido 378g",
			PriceCents: 14500,
			Icon:       "fa-mortar-pestle",
			Image:      "images/cafe-oro-molido-378g.jpg",
		},
		{
			ID:         4,
			Name:       "Café Oro Quintal 100 Libras",
			PriceCents: 950000,
			Icon:       "fa-weight-hanging",
			Image:      "images/cafe-oro-quintal.jpg",
		},
	})
}

// Products returns the catalog contents in definition order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Lookup returns the product with the given id.
func (c *Catalog) Lookup(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}
