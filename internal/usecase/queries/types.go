package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	VendorID    uuid.UUID `json:"vendor_id"`
	StoreName   string    `json:"store_name"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	Features    []string  `json:"features,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CartLineView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
}

type CartView struct {
	Token    uuid.UUID      `json:"token"`
	Lines    []CartLineView `json:"lines"`
	Subtotal float64        `json:"subtotal"`
	IsEmpty  bool           `json:"is_empty"`
}

type OrderLineView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
}

type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	Reference   string          `json:"reference"`
	Customer    string          `json:"customer"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Address     string          `json:"address"`
	Lines       []OrderLineView `json:"lines"`
	Subtotal    float64         `json:"subtotal"`
	ShippingFee float64         `json:"shipping_fee"`
	Discount    float64         `json:"discount"`
	CouponCode  *string         `json:"coupon_code,omitempty"`
	Total       float64         `json:"total"`
	Amount      int64           `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}

type VendorView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	StoreName   string    `json:"store_name"`
	Status      string    `json:"status"`
	MemberSince time.Time `json:"member_since"`
}

type ZoneView struct {
	Region string   `json:"region"`
	Fee    float64  `json:"fee"`
	Towns  []string `json:"towns"`
}
