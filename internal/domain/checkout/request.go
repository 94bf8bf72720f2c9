package checkout

import (
	"encoding/json"
	"errors"
	"fmt"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/domain/user"

	"github.com/google/uuid"
)

var ErrEmptyCart = errors.New("cart has no purchasable items")

// Request is the checkout-preparation output: everything the payment gateway
// popup needs, derived and never persisted as such. The reference is a fresh
// UUID per attempt; the original's millisecond-timestamp references collided
// under retry and were replaced.
type Request struct {
	Reference string
	Amount    int64
	Currency  string
	Customer  user.Contact
	Address   string
	Snapshot  []order.LineSnapshot
	Quote     pricing.Quote
}

// BuildRequest assembles a checkout request from materialized cart lines and
// an already-policy-checked quote.
func BuildRequest(
	lines []cart.MaterializedLine,
	customer user.Contact,
	address string,
	quote pricing.Quote,
	currency string,
) (*Request, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	snapshot := make([]order.LineSnapshot, 0, len(lines))
	for _, l := range lines {
		snapshot = append(snapshot, order.LineSnapshot{
			ProductID: l.Product.ID(),
			Name:      l.Product.Name(),
			Quantity:  l.Quantity,
			Price:     l.Product.Price(),
		})
	}

	return &Request{
		Reference: uuid.NewString(),
		Amount:    pricing.MinorUnits(quote.Total),
		Currency:  currency,
		Customer:  customer,
		Address:   address,
		Snapshot:  snapshot,
		Quote:     quote,
	}, nil
}

// PopupMetadata travels inside the gateway init object and comes back on the
// webhook, so the admin notification can be rendered without a DB round trip.
type PopupMetadata struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Address  string  `json:"address"`
	Cart     string  `json:"cart"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
}

// PopupInit is the initialization object for the hosted payment popup.
// Amount is in integer minor units: round(total * 100), rounded exactly once.
type PopupInit struct {
	Reference string        `json:"reference"`
	Email     string        `json:"email"`
	Amount    int64         `json:"amount"`
	PublicKey string        `json:"publicKey"`
	Currency  string        `json:"currency"`
	Metadata  PopupMetadata `json:"metadata"`
}

// PopupInit renders the gateway configuration for this request. The cart
// snapshot is JSON-stringified inside metadata, matching the wire shape the
// gateway echoes back to the webhook.
func (r *Request) PopupInit(publicKey string) (PopupInit, error) {
	cartJSON, err := json.Marshal(r.Snapshot)
	if err != nil {
		return PopupInit{}, fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	return PopupInit{
		Reference: r.Reference,
		Email:     r.Customer.Email().Value(),
		Amount:    r.Amount,
		PublicKey: publicKey,
		Currency:  r.Currency,
		Metadata: PopupMetadata{
			Name:     r.Customer.Name(),
			Phone:    r.Customer.Phone(),
			Address:  r.Address,
			Cart:     string(cartJSON),
			Subtotal: r.Quote.Subtotal,
			Shipping: r.Quote.ShippingFee,
			Discount: r.Quote.Discount,
		},
	}, nil
}
