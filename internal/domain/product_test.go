package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coffeeList() []Product {
	return []Product{
		{ID: "C1", Name: "Americano", Type: ProductTypeCoffee},
		{ID: "C2", Name: "Americano", Type: ProductTypeCoffee},
		{ID: "C3", Name: "Cappuccino", Type: ProductTypeCoffee},
		{ID: "C4", Name: "Latte", Type: ProductTypeCoffee},
		{ID: "C5", Name: "Cappuccino", Type: ProductTypeCoffee},
	}
}

func TestCategories(t *testing.T) {
	got := Categories(coffeeList())
	assert.Equal(t, []string{"All", "Americano", "Cappuccino", "Latte"}, got)
}

func TestCategories_Empty(t *testing.T) {
	assert.Equal(t, []string{"All"}, Categories(nil))
}

func TestFilterByCategory(t *testing.T) {
	products := coffeeList()

	assert.Len(t, FilterByCategory(products, "All"), 5)
	assert.Len(t, FilterByCategory(products, ""), 5)

	capps := FilterByCategory(products, "Cappuccino")
	require.Len(t, capps, 2)
	assert.Equal(t, "C3", capps[0].ID)
	assert.Equal(t, "C5", capps[1].ID)

	assert.Empty(t, FilterByCategory(products, "Mocha"))
}

func TestSearchByName(t *testing.T) {
	products := coffeeList()

	assert.Len(t, SearchByName(products, ""), 5)
	assert.Len(t, SearchByName(products, "cap"), 2)
	assert.Len(t, SearchByName(products, "AMERICANO"), 2)
	assert.Empty(t, SearchByName(products, "espresso"))
}

func TestFindVariant(t *testing.T) {
	p := Product{
		ID:   "C1",
		Name: "Americano",
		Variants: []PriceVariant{
			{Size: "S", Price: 138, Currency: "$"},
			{Size: "M", Price: 315, Currency: "$"},
		},
	}

	v, ok := p.FindVariant("M")
	require.True(t, ok)
	assert.EqualValues(t, 315, v.Price)

	_, ok = p.FindVariant("XL")
	assert.False(t, ok)
}

func TestIsValidType(t *testing.T) {
	assert.True(t, IsValidType(ProductTypeCoffee))
	assert.True(t, IsValidType(ProductTypeBean))
	assert.False(t, IsValidType("Tea"))
}
