package request

import (
	"vicqa-tradehub/internal/usecase/commands"
)

type CheckoutRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	Region     string  `json:"region" binding:"required"`
	Town       string  `json:"town" binding:"required"`
	CouponCode *string `json:"coupon_code"`
}

func (r *CheckoutRequest) ToParams() commands.CheckoutParams {
	return commands.CheckoutParams{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Region:     r.Region,
		Town:       r.Town,
		CouponCode: r.CouponCode,
	}
}
