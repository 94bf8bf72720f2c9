//go:build unit

package product_test

import (
	"strings"
	"testing"

	"vicqa-tradehub/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	vendorID := uuid.New()

	build := func(mutate func(*args)) (*product.Product, error) {
		a := &args{
			name:     "Kente Throw Pillow",
			price:    49.99,
			category: "Home & Living",
			features: []string{"Handwoven"},
		}
		if mutate != nil {
			mutate(a)
		}
		return product.NewProduct(vendorID, a.name, "desc", a.price, a.category, "", a.features)
	}

	t.Run("valid product is owned by its vendor", func(t *testing.T) {
		p, err := build(nil)
		require.NoError(t, err)
		assert.True(t, p.IsOwnedBy(vendorID))
		assert.False(t, p.IsOwnedBy(uuid.New()))
	})

	t.Run("name is trimmed", func(t *testing.T) {
		p, err := build(func(a *args) { a.name = "  Shea Butter  " })
		require.NoError(t, err)
		assert.Equal(t, "Shea Butter", p.Name())
	})

	t.Run("zero price is valid, negative is not", func(t *testing.T) {
		_, err := build(func(a *args) { a.price = 0 })
		assert.NoError(t, err)

		_, err = build(func(a *args) { a.price = -0.01 })
		assert.ErrorIs(t, err, product.ErrNegativePrice)
	})

	t.Run("validation boundaries", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*args)
			wantErr error
		}{
			{"blank name", func(a *args) { a.name = "   " }, product.ErrEmptyName},
			{"name at limit", func(a *args) { a.name = strings.Repeat("a", product.MaxNameLength) }, nil},
			{"name over limit", func(a *args) { a.name = strings.Repeat("a", product.MaxNameLength+1) }, product.ErrNameTooLong},
			{"blank category", func(a *args) { a.category = " " }, product.ErrEmptyCategory},
			{"features at limit", func(a *args) { a.features = make([]string, product.MaxFeatureCount) }, nil},
			{"features over limit", func(a *args) { a.features = make([]string, product.MaxFeatureCount+1) }, product.ErrTooManyFeature},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := build(tc.mutate)
				if tc.wantErr == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tc.wantErr)
				}
			})
		}
	})
}

type args struct {
	name     string
	price    float64
	category string
	features []string
}
