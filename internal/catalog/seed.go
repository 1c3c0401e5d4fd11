// Package catalog loads the embedded product seed data. All normalization
// of raw catalog records happens here, at the load boundary: prices arrive
// as decimal strings and leave as integer cents, and malformed entries fail
// the load instead of leaking loosely-typed data into the store.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/pkg/money"
)

//go:embed seed.json
var seedData []byte

// rawProduct mirrors the seed file schema before normalization.
type rawProduct struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	Name              string     `json:"name"`
	Roasted           string     `json:"roasted"`
	ImageRef          string     `json:"image_ref"`
	SpecialIngredient string     `json:"special_ingredient"`
	Ingredients       string     `json:"ingredients"`
	Description       string     `json:"description"`
	AverageRating     float64    `json:"average_rating"`
	RatingsCount      int        `json:"ratings_count"`
	Prices            []rawPrice `json:"prices"`
}

type rawPrice struct {
	Size     string `json:"size"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type seedFile struct {
	Products []rawProduct `json:"products"`
}

// Load parses and validates the embedded seed catalog.
func Load() ([]domain.Product, error) {
	return Parse(seedData)
}

// Parse normalizes raw seed bytes into immutable catalog products. Any
// malformed entry aborts the whole load; a storefront with a partial
// catalog is worse than one that fails to start.
func Parse(data []byte) ([]domain.Product, error) {
	var file seedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode seed catalog: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("seed catalog contains no products")
	}

	products := make([]domain.Product, 0, len(file.Products))
	seenIDs := make(map[string]struct{}, len(file.Products))

	for i, raw := range file.Products {
		p, err := normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("seed product %d (%q): %w", i, raw.ID, err)
		}
		if _, dup := seenIDs[p.ID]; dup {
			return nil, fmt.Errorf("seed product %d: duplicate id %q", i, p.ID)
		}
		seenIDs[p.ID] = struct{}{}
		products = append(products, p)
	}

	return products, nil
}

func normalize(raw rawProduct) (domain.Product, error) {
	if raw.ID == "" {
		return domain.Product{}, fmt.Errorf("missing id")
	}
	if raw.Name == "" {
		return domain.Product{}, fmt.Errorf("missing name")
	}
	if !domain.IsValidType(raw.Type) {
		return domain.Product{}, fmt.Errorf("unknown product type %q", raw.Type)
	}
	if len(raw.Prices) == 0 {
		return domain.Product{}, fmt.Errorf("no price variants")
	}

	variants := make([]domain.PriceVariant, 0, len(raw.Prices))
	seenSizes := make(map[string]struct{}, len(raw.Prices))
	for _, rp := range raw.Prices {
		if rp.Size == "" {
			return domain.Product{}, fmt.Errorf("price variant with empty size")
		}
		if _, dup := seenSizes[rp.Size]; dup {
			return domain.Product{}, fmt.Errorf("duplicate size %q", rp.Size)
		}
		seenSizes[rp.Size] = struct{}{}

		if rp.Currency == "" {
			return domain.Product{}, fmt.Errorf("size %q: missing currency", rp.Size)
		}
		price, err := money.ParseDecimal(rp.Price)
		if err != nil {
			return domain.Product{}, fmt.Errorf("size %q: %w", rp.Size, err)
		}

		variants = append(variants, domain.PriceVariant{
			Size:     rp.Size,
			Price:    price,
			Currency: rp.Currency,
		})
	}

	return domain.Product{
		ID:                raw.ID,
		Type:              raw.Type,
		Name:              raw.Name,
		Roasted:           raw.Roasted,
		ImageRef:          raw.ImageRef,
		SpecialIngredient: raw.SpecialIngredient,
		Ingredients:       raw.Ingredients,
		Description:       raw.Description,
		AverageRating:     raw.AverageRating,
		RatingsCount:      raw.RatingsCount,
		Variants:          variants,
	}, nil
}
