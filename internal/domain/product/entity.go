package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("product name is required")
	ErrNegativePrice  = errors.New("product price cannot be negative")
	ErrEmptyCategory  = errors.New("product category is required")
	ErrNameTooLong    = errors.New("product name exceeds maximum length")
	ErrTooManyFeature = errors.New("too many product features")
)

const (
	MaxNameLength   = 200
	MaxFeatureCount = 20
)

// Product is a catalog listing owned by a vendor. The cart only ever holds a
// reference to it; price and name are snapshotted at checkout time.
type Product struct {
	id          uuid.UUID
	vendorID    uuid.UUID
	name        string
	description string
	price       float64
	category    string
	imageURL    string
	features    []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(
	vendorID uuid.UUID,
	name, description string,
	price float64,
	category, imageURL string,
	features []string,
) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if len(features) > MaxFeatureCount {
		return nil, ErrTooManyFeature
	}

	return &Product{
		id:          uuid.New(),
		vendorID:    vendorID,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		category:    category,
		imageURL:    imageURL,
		features:    features,
	}, nil
}

func ReconstructProduct(
	id, vendorID uuid.UUID,
	name, description string,
	price float64,
	category, imageURL string,
	features []string,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		vendorID:    vendorID,
		name:        name,
		description: description,
		price:       price,
		category:    category,
		imageURL:    imageURL,
		features:    features,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) IsOwnedBy(vendorID uuid.UUID) bool {
	return p.vendorID == vendorID
}

func (p *Product) ID() uuid.UUID       { return p.id }
func (p *Product) VendorID() uuid.UUID { return p.vendorID }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() float64      { return p.price }
func (p *Product) Category() string    { return p.category }
func (p *Product) ImageURL() string    { return p.imageURL }
func (p *Product) Features() []string  { return p.features }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
