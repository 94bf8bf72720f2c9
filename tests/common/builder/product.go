//go:build unit || e2e

package builder

import (
	"time"

	"vicqa-tradehub/internal/domain/product"

	"github.com/google/uuid"
)

// ProductBuilder assembles valid products for tests; mutate single fields to
// probe validation boundaries.
type ProductBuilder struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	features    []string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		id:          uuid.New(),
		vendorID:    uuid.New(),
		name:        "Kente Throw Pillow",
		description: "Handwoven accent pillow",
		price:       49.99,
		category:    "Home & Living",
		imageURL:    "https://cdn.example.com/kente-pillow.jpg",
		features:    []string{"Handwoven", "Washable cover"},
	}
}

func (b *ProductBuilder) WithVendorID(id uuid.UUID) *ProductBuilder { b.vendorID = id; return b }
func (b *ProductBuilder) WithName(name string) *ProductBuilder      { b.name = name; return b }
func (b *ProductBuilder) WithPrice(price float64) *ProductBuilder   { b.price = price; return b }
func (b *ProductBuilder) WithCategory(c string) *ProductBuilder     { b.category = c; return b }
func (b *ProductBuilder) WithFeatures(f []string) *ProductBuilder   { b.features = f; return b }

func (b *ProductBuilder) BuildDomain() (*product.Product, error) {
	return product.NewProduct(b.vendorID, b.name, b.description, b.price, b.category, b.imageURL, b.features)
}

// BuildReconstructed skips validation, for wiring carts and orders in tests.
func (b *ProductBuilder) BuildReconstructed() *product.Product {
	now := time.Now()
	return product.ReconstructProduct(
		b.id, b.vendorID, b.name, b.description, b.price, b.category, b.imageURL, b.features, now, now,
	)
}
