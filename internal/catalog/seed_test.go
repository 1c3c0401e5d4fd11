package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srujan0404/coffee-main/internal/domain"
	"github.com/srujan0404/coffee-main/pkg/money"
)

func TestLoad_EmbeddedSeed(t *testing.T) {
	products, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	var coffees, beans int
	ids := make(map[string]struct{})
	for _, p := range products {
		switch p.Type {
		case domain.ProductTypeCoffee:
			coffees++
		case domain.ProductTypeBean:
			beans++
		default:
			t.Fatalf("unexpected product type %q", p.Type)
		}

		_, dup := ids[p.ID]
		assert.False(t, dup, "duplicate id %s", p.ID)
		ids[p.ID] = struct{}{}

		require.NotEmpty(t, p.Variants, "product %s has no variants", p.ID)
		for _, v := range p.Variants {
			assert.Greater(t, int64(v.Price), int64(0), "product %s size %s", p.ID, v.Size)
			assert.NotEmpty(t, v.Currency)
		}
	}

	assert.NotZero(t, coffees)
	assert.NotZero(t, beans)
}

func TestParse_NormalizesPricesToCents(t *testing.T) {
	data := []byte(`{"products":[{
		"id":"C1","type":"Coffee","name":"Americano",
		"prices":[{"size":"M","price":"4.50","currency":"$"}]
	}]}`)

	products, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, money.Cents(450), products[0].Variants[0].Price)
}

func TestParse_Malformed(t *testing.T) {
	valid := `{"size":"M","price":"4.50","currency":"$"}`
	tests := []struct {
		name    string
		product string
	}{
		{"missing id", fmt.Sprintf(`{"type":"Coffee","name":"A","prices":[%s]}`, valid)},
		{"missing name", fmt.Sprintf(`{"id":"C1","type":"Coffee","prices":[%s]}`, valid)},
		{"unknown type", fmt.Sprintf(`{"id":"C1","type":"Tea","name":"A","prices":[%s]}`, valid)},
		{"no prices", `{"id":"C1","type":"Coffee","name":"A","prices":[]}`},
		{"bad price", `{"id":"C1","type":"Coffee","name":"A","prices":[{"size":"M","price":"4.5x","currency":"$"}]}`},
		{"three fraction digits", `{"id":"C1","type":"Coffee","name":"A","prices":[{"size":"M","price":"4.505","currency":"$"}]}`},
		{"empty size", `{"id":"C1","type":"Coffee","name":"A","prices":[{"size":"","price":"4.50","currency":"$"}]}`},
		{"missing currency", `{"id":"C1","type":"Coffee","name":"A","prices":[{"size":"M","price":"4.50"}]}`},
		{"duplicate size", fmt.Sprintf(`{"id":"C1","type":"Coffee","name":"A","prices":[%s,%s]}`, valid, valid)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(fmt.Sprintf(`{"products":[%s]}`, tt.product)))
			assert.Error(t, err)
		})
	}
}

func TestParse_DuplicateIDs(t *testing.T) {
	data := []byte(`{"products":[
		{"id":"C1","type":"Coffee","name":"A","prices":[{"size":"M","price":"4.50","currency":"$"}]},
		{"id":"C1","type":"Coffee","name":"B","prices":[{"size":"M","price":"4.50","currency":"$"}]}
	]}`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestParse_EmptyCatalog(t *testing.T) {
	_, err := Parse([]byte(`{"products":[]}`))
	assert.Error(t, err)
}
