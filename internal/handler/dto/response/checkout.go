package response

import (
	"vicqa-tradehub/internal/domain/checkout"
	"vicqa-tradehub/internal/usecase/commands"
)

type CheckoutResponse struct {
	OrderID     string             `json:"order_id"`
	Reference   string             `json:"reference"`
	Subtotal    float64            `json:"subtotal"`
	ShippingFee float64            `json:"shipping_fee"`
	Discount    float64            `json:"discount"`
	Total       float64            `json:"total"`
	Amount      int64              `json:"amount"`
	Popup       checkout.PopupInit `json:"popup"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:     r.OrderID.String(),
		Reference:   r.Reference,
		Subtotal:    r.Quote.Subtotal,
		ShippingFee: r.Quote.ShippingFee,
		Discount:    r.Quote.Discount,
		Total:       r.Quote.Total,
		Amount:      r.Amount,
		Popup:       r.Popup,
	}
}
