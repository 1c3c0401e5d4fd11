package domain

import (
	"strings"

	"github.com/srujan0404/coffee-main/pkg/money"
)

// Product type constants.
const (
	ProductTypeCoffee = "Coffee"
	ProductTypeBean   = "Bean"
)

// Product is an immutable catalog entry. Instances are built once by the
// catalog loader and never mutated afterwards.
type Product struct {
	ID                string         `json:"id"`
	Type              string         `json:"type"`
	Name              string         `json:"name"`
	Roasted           string         `json:"roasted"`
	ImageRef          string         `json:"image_ref"`
	SpecialIngredient string         `json:"special_ingredient"`
	Ingredients       string         `json:"ingredients"`
	Description       string         `json:"description"`
	AverageRating     float64        `json:"average_rating"`
	RatingsCount      int            `json:"ratings_count"`
	Variants          []PriceVariant `json:"price_variants"`
}

// PriceVariant is one purchasable size of a product.
type PriceVariant struct {
	Size     string      `json:"size"`
	Price    money.Cents `json:"price"`
	Currency string      `json:"currency"`
}

// FindVariant returns the price variant for the given size.
func (p *Product) FindVariant(size string) (PriceVariant, bool) {
	for _, v := range p.Variants {
		if v.Size == size {
			return v, true
		}
	}
	return PriceVariant{}, false
}

// IsValidType reports whether t is a known product type.
func IsValidType(t string) bool {
	return t == ProductTypeCoffee || t == ProductTypeBean
}

// Categories derives the storefront category list from a product list:
// "All" first, then distinct product names in first-seen order. Several
// catalog entries share a name (one per image/roast variation), so names
// are the category axis.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := []string{"All"}
	for _, p := range products {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		categories = append(categories, p.Name)
	}
	return categories
}

// FilterByCategory returns the products whose name matches the category;
// "All" (or empty) returns the input unchanged.
func FilterByCategory(products []Product, category string) []Product {
	if category == "" || category == "All" {
		return products
	}
	var out []Product
	for _, p := range products {
		if p.Name == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchByName returns products whose name contains the query,
// case-insensitively. An empty query returns the input unchanged.
func SearchByName(products []Product, query string) []Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}
