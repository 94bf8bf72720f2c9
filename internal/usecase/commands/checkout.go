package commands

import (
	"context"
	"errors"
	"log/slog"

	"vicqa-tradehub/internal/domain/checkout"
	"vicqa-tradehub/internal/domain/coupon"
	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/domain/shipping"
	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/internal/pkg/clock"
	"vicqa-tradehub/internal/pkg/config"
	"vicqa-tradehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired    = errs.New("customer name is required")
	ErrInvalidEmail    = errs.New("a valid email address is required")
	ErrPhoneRequired   = errs.New("customer phone is required")
	ErrRegionRequired  = errs.New("a delivery region must be selected")
	ErrRegionUnknown   = errs.New("unknown delivery region")
	ErrTownInvalid     = errs.New("town is not served in the selected region")
	ErrCouponRejected  = errs.New("coupon code was rejected")
	ErrEmptyCart       = errs.New("cart is empty")
	ErrNegativeTotal   = errs.New("discount exceeds the payable total")
	ErrOrderSaveFailed = errs.New("failed to record order")
)

type CheckoutParams struct {
	Name       string
	Email      string
	Phone      string
	Region     string
	Town       string
	CouponCode *string
}

type CheckoutResult struct {
	OrderID   uuid.UUID
	Reference string
	Amount    int64
	Quote     pricing.Quote
	Popup     checkout.PopupInit
}

// GatewayEvent is the decoded webhook payload, delivered after the handler
// has verified the HMAC signature over the raw body.
type GatewayEvent struct {
	Event string           `json:"event"`
	Data  GatewayEventData `json:"data"`
}

type GatewayEventData struct {
	Reference string          `json:"reference"`
	Amount    int64           `json:"amount"`
	Currency  string          `json:"currency"`
	Customer  GatewayCustomer `json:"customer"`
	Metadata  map[string]any  `json:"metadata"`
}

type GatewayCustomer struct {
	Email string `json:"email"`
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, token uuid.UUID, params CheckoutParams) (*CheckoutResult, error)
	HandleGatewayEvent(ctx context.Context, event GatewayEvent) error
}

type checkoutCommandsImpl struct {
	store       CartStore
	productRepo ProductRepository
	orderRepo   OrderRepository
	zones       *shipping.Resolver
	coupons     *coupon.Table
	notifier    AdminNotifier
	policy      pricing.NegativeTotalPolicy
	paystack    config.PaystackConfig
	clock       clock.Clock
}

func NewCheckoutCommands(
	store CartStore,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	zones *shipping.Resolver,
	coupons *coupon.Table,
	notifier AdminNotifier,
	policy pricing.NegativeTotalPolicy,
	paystackCfg config.PaystackConfig,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		store:       store,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		zones:       zones,
		coupons:     coupons,
		notifier:    notifier,
		policy:      policy,
		paystack:    paystackCfg,
		clock:       clk,
	}
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, token uuid.UUID, params CheckoutParams) (*CheckoutResult, error) {
	crt, err := c.store.Load(ctx, token)
	if err != nil {
		return nil, errs.Mark(err, ErrCartLoadFailed)
	}

	materialized, err := materializeLines(ctx, crt, c.productRepo)
	if err != nil {
		return nil, err
	}
	if len(materialized) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal float64
	for _, m := range materialized {
		subtotal += m.Product.Price() * float64(m.Quantity)
	}

	contact, err := c.validateContact(params)
	if err != nil {
		return nil, err
	}

	zone, err := c.zones.ResolveDestination(params.Region, params.Town)
	if err != nil {
		switch {
		case errors.Is(err, shipping.ErrRegionRequired):
			return nil, ErrRegionRequired
		case errors.Is(err, shipping.ErrZoneNotFound):
			return nil, ErrRegionUnknown
		default:
			return nil, ErrTownInvalid
		}
	}

	// An empty code means no coupon, same as the quote preview.
	var applied coupon.Applied
	if params.CouponCode != nil && *params.CouponCode != "" {
		applied, err = c.coupons.Apply(*params.CouponCode, subtotal)
		if err != nil {
			return nil, errs.Mark(err, ErrCouponRejected)
		}
	}

	quote := pricing.ComputeQuote(materialized, zone.Fee(), applied.Discount)
	quote, err = quote.EnforcePolicy(c.policy)
	if err != nil {
		return nil, errs.Mark(err, ErrNegativeTotal)
	}

	address := params.Town + ", " + zone.Region()

	req, err := checkout.BuildRequest(materialized, contact, address, quote, c.paystack.Currency)
	if err != nil {
		return nil, errs.Mark(err, ErrEmptyCart)
	}

	ord, err := order.NewOrder(
		req.Reference,
		token,
		contact,
		address,
		req.Snapshot,
		quote.Subtotal, quote.ShippingFee, quote.Discount,
		applied.Code,
		quote.Total,
		req.Amount,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrEmptyCart)
	}

	if err := c.orderRepo.Create(ctx, ord); err != nil {
		return nil, errs.Mark(err, ErrOrderSaveFailed)
	}

	popup, err := req.PopupInit(c.paystack.PublicKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build popup config")
	}

	return &CheckoutResult{
		OrderID:   ord.ID(),
		Reference: req.Reference,
		Amount:    req.Amount,
		Quote:     quote,
		Popup:     popup,
	}, nil
}

// HandleGatewayEvent processes a verified webhook delivery. Only
// charge.success has an effect; everything else is acknowledged and dropped.
// Unknown references and replayed deliveries are acknowledged too, so the
// gateway stops retrying.
func (c *checkoutCommandsImpl) HandleGatewayEvent(ctx context.Context, event GatewayEvent) error {
	if event.Event != "charge.success" {
		return nil
	}

	ord, err := c.orderRepo.FindByReference(ctx, event.Data.Reference)
	if err != nil {
		slog.Warn("charge.success for unknown reference", "reference", event.Data.Reference)
		return nil
	}

	if err := ord.MarkPaid(c.clock.Now()); err != nil {
		// Replayed delivery; the first one already did the work.
		return nil
	}

	if err := c.orderRepo.UpdateStatus(ctx, ord); err != nil {
		return errs.Wrap(err, "failed to mark order paid")
	}

	c.clearCartForOrder(ctx, ord)

	if err := c.notifier.NotifyOrderPaid(ctx, ord); err != nil {
		// Notification failure must not bounce the webhook.
		slog.Error("admin notification failed", "reference", ord.Reference(), "error", err)
	}

	return nil
}

// Successful payment clears the cart bound to the order. Best effort: the
// order is already paid, a surviving cart is an annoyance not a fault.
func (c *checkoutCommandsImpl) clearCartForOrder(ctx context.Context, ord *order.Order) {
	crt, err := c.store.Load(ctx, ord.CartToken())
	if err != nil {
		slog.Warn("failed to load cart for post-payment clear", "cart_token", ord.CartToken(), "error", err)
		return
	}
	crt.Clear()
	if err := c.store.Save(ctx, crt); err != nil {
		slog.Warn("failed to clear cart after payment", "cart_token", ord.CartToken(), "error", err)
	}
}

func (c *checkoutCommandsImpl) validateContact(params CheckoutParams) (user.Contact, error) {
	contact, err := user.NewContact(params.Name, params.Email, params.Phone)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmptyName):
			return user.Contact{}, ErrNameRequired
		case errors.Is(err, user.ErrInvalidEmail):
			return user.Contact{}, ErrInvalidEmail
		default:
			return user.Contact{}, ErrPhoneRequired
		}
	}
	return contact, nil
}
