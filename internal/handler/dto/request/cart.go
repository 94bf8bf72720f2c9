package request

import (
	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

type SetCartQuantityRequest struct {
	// 0 is meaningful (removes the line), so required cannot be used here
	Quantity int `json:"quantity" binding:"gte=0"`
}

type QuoteRequest struct {
	Region     string  `form:"region"`
	Town       string  `form:"town"`
	CouponCode *string `form:"coupon"`
}
