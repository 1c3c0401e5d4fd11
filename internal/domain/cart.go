package domain

import (
	"time"

	"github.com/srujan0404/coffee-main/pkg/money"
)

// Cart is a user's shopping cart: an ordered collection of lines, one per
// distinct product.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	Currency  string     `json:"currency"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// CartLine is the cart entry for one product. Display fields are
// denormalized from the catalog so the cart renders without a live lookup.
// Quantity lives per size variant, not per line: the same product can sit in
// the cart at several sizes at once.
type CartLine struct {
	ProductID         string        `json:"product_id"`
	Type              string        `json:"type"`
	Name              string        `json:"name"`
	ImageRef          string        `json:"image_ref"`
	SpecialIngredient string        `json:"special_ingredient"`
	Variants          []LineVariant `json:"variants"`
}

// LineVariant is one selected size of a product with its quantity.
type LineVariant struct {
	Size     string      `json:"size"`
	Price    money.Cents `json:"price"`
	Currency string      `json:"currency"`
	Quantity int         `json:"quantity"`
}

// findLine returns the index of the line for productID, or -1.
func (c *Cart) findLine(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// findVariant returns the index of the variant row for size, or -1.
func (l *CartLine) findVariant(size string) int {
	for i := range l.Variants {
		if l.Variants[i].Size == size {
			return i
		}
	}
	return -1
}

// Merge folds a candidate line into the cart. A line for the same product
// absorbs the candidate's variants: an existing size row has its quantity
// increased, a new size is appended as its own row. Without an existing line
// the candidate is appended whole. This is the only way lines enter the
// cart, so two lines for one product cannot exist.
func (c *Cart) Merge(candidate CartLine) {
	i := c.findLine(candidate.ProductID)
	if i < 0 {
		c.Lines = append(c.Lines, candidate)
		return
	}

	line := &c.Lines[i]
	for _, v := range candidate.Variants {
		if j := line.findVariant(v.Size); j >= 0 {
			line.Variants[j].Quantity += v.Quantity
		} else {
			line.Variants = append(line.Variants, v)
		}
	}
}

// IncrementVariant adds one to the quantity of the given product/size row.
// Returns false when the line or size is absent; nothing is created
// implicitly.
func (c *Cart) IncrementVariant(productID, size string) bool {
	i := c.findLine(productID)
	if i < 0 {
		return false
	}
	j := c.Lines[i].findVariant(size)
	if j < 0 {
		return false
	}
	c.Lines[i].Variants[j].Quantity++
	return true
}

// DecrementVariant subtracts one from the quantity of the given product/size
// row. A row at quantity 1 is removed, and a line left with no rows is
// removed from the cart. Returns false when the line or size is absent.
func (c *Cart) DecrementVariant(productID, size string) bool {
	i := c.findLine(productID)
	if i < 0 {
		return false
	}
	line := &c.Lines[i]
	j := line.findVariant(size)
	if j < 0 {
		return false
	}

	if line.Variants[j].Quantity > 1 {
		line.Variants[j].Quantity--
		return true
	}

	line.Variants = append(line.Variants[:j], line.Variants[j+1:]...)
	if len(line.Variants) == 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
	return true
}

// TotalAmount recomputes the cart total from scratch: the sum of
// price x quantity over every variant row of every line.
func (c *Cart) TotalAmount() money.Cents {
	var total money.Cents
	for _, line := range c.Lines {
		for _, v := range line.Variants {
			total += v.Price.MulQty(v.Quantity)
		}
	}
	return total
}

// ItemCount returns the total unit count across all lines and sizes.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		for _, v := range line.Variants {
			count += v.Quantity
		}
	}
	return count
}

// Clear empties the line collection.
func (c *Cart) Clear() {
	c.Lines = []CartLine{}
}
