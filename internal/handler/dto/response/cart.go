package response

import (
	"vicqa-tradehub/internal/usecase/commands"
	"vicqa-tradehub/internal/usecase/queries"
)

type CartLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type CartResponse struct {
	Token    string             `json:"token"`
	Lines    []CartLineResponse `json:"lines"`
	Subtotal float64            `json:"subtotal"`
	IsEmpty  bool               `json:"is_empty"`
	// Warning is set when the mutation succeeded in memory but could not be
	// persisted; the client should not treat the request as failed.
	Warning string `json:"warning,omitempty"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLineResponse{
			ProductID: l.ProductID.String(),
			Name:      l.Name,
			Price:     l.Price,
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		}
	}
	return &CartResponse{
		Token:    v.Token.String(),
		Lines:    lines,
		Subtotal: v.Subtotal,
		IsEmpty:  v.IsEmpty,
	}
}

func FromCartResult(r *commands.CartResult) *CartResponse {
	resp := FromCartView(r.View)
	if r.PersistWarning != nil {
		resp.Warning = "cart could not be persisted; changes may not survive a restart"
	}
	return resp
}

type QuoteResponse struct {
	Subtotal       float64 `json:"subtotal"`
	ShippingFee    float64 `json:"shipping_fee"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
	Amount         int64   `json:"amount"`
	AppliedCoupon  *string `json:"applied_coupon,omitempty"`
	CouponRejected bool    `json:"coupon_rejected"`
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		Subtotal:       v.Subtotal,
		ShippingFee:    v.ShippingFee,
		Discount:       v.Discount,
		Total:          v.Total,
		Amount:         v.Amount,
		AppliedCoupon:  v.AppliedCoupon,
		CouponRejected: v.CouponRejected,
	}
}
