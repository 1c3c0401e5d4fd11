package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srujan0404/coffee-main/pkg/money"
)

func candidateLine(productID, size string, price money.Cents) CartLine {
	return CartLine{
		ProductID:         productID,
		Type:              ProductTypeCoffee,
		Name:              "Cappuccino",
		ImageRef:          "cappuccino_square",
		SpecialIngredient: "With Steamed Milk",
		Variants: []LineVariant{
			{Size: size, Price: price, Currency: "$", Quantity: 1},
		},
	}
}

// ---------------------------------------------------------------------------
// Merge
// ---------------------------------------------------------------------------

func TestMerge_NewProductAppendsLine(t *testing.T) {
	cart := &Cart{}

	cart.Merge(candidateLine("C1", "M", 450))

	require.Len(t, cart.Lines, 1)
	require.Len(t, cart.Lines[0].Variants, 1)
	assert.Equal(t, "M", cart.Lines[0].Variants[0].Size)
	assert.Equal(t, 1, cart.Lines[0].Variants[0].Quantity)
}

func TestMerge_SameSizeIncrementsQuantity(t *testing.T) {
	cart := &Cart{}

	for i := 0; i < 3; i++ {
		cart.Merge(candidateLine("C1", "M", 450))
	}

	require.Len(t, cart.Lines, 1, "repeated adds must never duplicate the line")
	require.Len(t, cart.Lines[0].Variants, 1, "repeated adds must never duplicate the size row")
	assert.Equal(t, 3, cart.Lines[0].Variants[0].Quantity)
}

func TestMerge_NewSizeAppendsVariantRow(t *testing.T) {
	cart := &Cart{}

	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "L", 550))

	require.Len(t, cart.Lines, 1)
	require.Len(t, cart.Lines[0].Variants, 2)
	assert.Equal(t, "M", cart.Lines[0].Variants[0].Size)
	assert.Equal(t, "L", cart.Lines[0].Variants[1].Size)
	assert.Equal(t, 1, cart.Lines[0].Variants[0].Quantity)
	assert.Equal(t, 1, cart.Lines[0].Variants[1].Quantity)
}

func TestMerge_DistinctProductsKeepSeparateLines(t *testing.T) {
	cart := &Cart{}

	cart.Merge(candidateLine("C1", "M", 450))
	other := candidateLine("B2", "250gm", 1050)
	other.Type = ProductTypeBean
	other.Name = "Arabica Beans"
	cart.Merge(other)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "C1", cart.Lines[0].ProductID)
	assert.Equal(t, "B2", cart.Lines[1].ProductID)
}

// ---------------------------------------------------------------------------
// Increment / Decrement
// ---------------------------------------------------------------------------

func TestIncrementVariant(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))

	assert.True(t, cart.IncrementVariant("C1", "M"))
	assert.Equal(t, 2, cart.Lines[0].Variants[0].Quantity)
}

func TestIncrementVariant_MissingKeysAreNoops(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))

	assert.False(t, cart.IncrementVariant("C9", "M"), "unknown product")
	assert.False(t, cart.IncrementVariant("C1", "XL"), "unknown size")

	// The miss must not create anything.
	require.Len(t, cart.Lines, 1)
	require.Len(t, cart.Lines[0].Variants, 1)
	assert.Equal(t, 1, cart.Lines[0].Variants[0].Quantity)
}

func TestDecrementVariant_AboveOne(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "M", 450))

	assert.True(t, cart.DecrementVariant("C1", "M"))
	assert.Equal(t, 1, cart.Lines[0].Variants[0].Quantity)
}

func TestDecrementVariant_AtOneRemovesRow(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "L", 550))

	assert.True(t, cart.DecrementVariant("C1", "M"))

	require.Len(t, cart.Lines, 1, "line keeps its remaining size")
	require.Len(t, cart.Lines[0].Variants, 1)
	assert.Equal(t, "L", cart.Lines[0].Variants[0].Size)
}

func TestDecrementVariant_LastRowRemovesLine(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))

	assert.True(t, cart.DecrementVariant("C1", "M"))
	assert.Empty(t, cart.Lines, "a product with no selected sizes has no cart presence")
}

func TestDecrementVariant_MissingKeysAreNoops(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))

	assert.False(t, cart.DecrementVariant("C9", "M"))
	assert.False(t, cart.DecrementVariant("C1", "S"))
	assert.Equal(t, 1, cart.Lines[0].Variants[0].Quantity)
}

// ---------------------------------------------------------------------------
// Totals
// ---------------------------------------------------------------------------

func TestTotalAmount_EmptyCart(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, money.Cents(0), cart.TotalAmount())
}

func TestTotalAmount_MatchesIndependentRecomputation(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "L", 550))
	bean := candidateLine("B1", "250gm", 1050)
	cart.Merge(bean)

	var want money.Cents
	for _, line := range cart.Lines {
		for _, v := range line.Variants {
			want += v.Price * money.Cents(v.Quantity)
		}
	}
	assert.Equal(t, want, cart.TotalAmount())
	assert.Equal(t, money.Cents(2500), cart.TotalAmount())
}

// Scenario from the storefront: add size M at 4.50 twice, decrement twice.
func TestScenario_AddTwiceThenDecrementToEmpty(t *testing.T) {
	cart := &Cart{}

	cart.Merge(candidateLine("A", "M", 450))
	cart.Merge(candidateLine("A", "M", 450))

	require.Len(t, cart.Lines, 1)
	require.Len(t, cart.Lines[0].Variants, 1)
	assert.Equal(t, 2, cart.Lines[0].Variants[0].Quantity)
	assert.Equal(t, "9.00", cart.TotalAmount().String())

	require.True(t, cart.DecrementVariant("A", "M"))
	assert.Equal(t, 1, cart.Lines[0].Variants[0].Quantity)
	assert.Equal(t, "4.50", cart.TotalAmount().String())

	require.True(t, cart.DecrementVariant("A", "M"))
	assert.Empty(t, cart.Lines)
	assert.Equal(t, "0.00", cart.TotalAmount().String())
}

// Scenario from the storefront: same product at two sizes.
func TestScenario_TwoSizesOneLine(t *testing.T) {
	cart := &Cart{}

	cart.Merge(candidateLine("A", "M", 450))
	cart.Merge(candidateLine("A", "L", 550))

	require.Len(t, cart.Lines, 1)
	require.Len(t, cart.Lines[0].Variants, 2)
	assert.Equal(t, "10.00", cart.TotalAmount().String())
}

// ---------------------------------------------------------------------------
// Clear / counts
// ---------------------------------------------------------------------------

func TestClear(t *testing.T) {
	cart := &Cart{}
	cart.Merge(candidateLine("C1", "M", 450))

	cart.Clear()

	assert.Empty(t, cart.Lines)
	assert.Equal(t, money.Cents(0), cart.TotalAmount())
}

func TestItemCount(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, 0, cart.ItemCount())

	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "M", 450))
	cart.Merge(candidateLine("C1", "L", 550))
	assert.Equal(t, 3, cart.ItemCount())
}
