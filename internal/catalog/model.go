package catalog

import (
	"github.com/bestshop/storefront-backend/pkg/enums"
)

// Product is one catalog entry as published by the upstream feed.
// Products are immutable once fetched; the service never writes them back.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Blocks      []string `json:"blocks"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Category    string   `json:"category"`
	SalesStatus bool     `json:"salesStatus"`
	Popularity  int      `json:"popularity"`
	Rating      float64  `json:"rating"`
}

// InBlock reports whether the product is tagged for the named placement block.
func (p Product) InBlock(block enums.Block) bool {
	for _, b := range p.Blocks {
		if b == string(block) {
			return true
		}
	}
	return false
}

// ByBlock returns the products tagged for the named placement block,
// preserving catalog order.
func ByBlock(products []Product, block enums.Block) []Product {
	out := make([]Product, 0)
	for _, p := range products {
		if p.InBlock(block) {
			out = append(out, p)
		}
	}
	return out
}

// FindByID returns the product with the given id, if present.
func FindByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
