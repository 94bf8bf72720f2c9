package response

import (
	"vicqa-tradehub/internal/usecase/queries"
)

type OrderLineResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	Reference   string              `json:"reference"`
	Customer    string              `json:"customer"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	Address     string              `json:"address"`
	Lines       []OrderLineResponse `json:"lines"`
	Subtotal    float64             `json:"subtotal"`
	ShippingFee float64             `json:"shipping_fee"`
	Discount    float64             `json:"discount"`
	CouponCode  *string             `json:"coupon_code,omitempty"`
	Total       float64             `json:"total"`
	Amount      int64               `json:"amount"`
	Status      string              `json:"status"`
	CreatedAt   int64               `json:"created_at"`
	PaidAt      *int64              `json:"paid_at,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	lines := make([]OrderLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = OrderLineResponse{
			ProductID: l.ProductID.String(),
			Name:      l.Name,
			Quantity:  l.Quantity,
			Price:     l.Price,
		}
	}

	var paidAt *int64
	if v.PaidAt != nil {
		ts := v.PaidAt.Unix()
		paidAt = &ts
	}

	return &OrderResponse{
		ID:          v.ID.String(),
		Reference:   v.Reference,
		Customer:    v.Customer,
		Email:       v.Email,
		Phone:       v.Phone,
		Address:     v.Address,
		Lines:       lines,
		Subtotal:    v.Subtotal,
		ShippingFee: v.ShippingFee,
		Discount:    v.Discount,
		CouponCode:  v.CouponCode,
		Total:       v.Total,
		Amount:      v.Amount,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Unix(),
		PaidAt:      paidAt,
	}
}

func FromOrderList(items []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(items))
	for i, it := range items {
		res[i] = FromOrderView(it)
	}
	return res
}
