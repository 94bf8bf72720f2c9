package queries

import (
	"context"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/coupon"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/domain/shipping"
	"vicqa-tradehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrTownWithoutRegion = errs.New("a region must be selected before a town")
	ErrQuoteDestination  = errs.New("invalid delivery destination")
)

// CartReader loads the raw persisted cart for a token.
type CartReader interface {
	Load(ctx context.Context, token uuid.UUID) (*cart.Cart, error)
}

// CatalogLookup resolves product references during materialization.
type CatalogLookup interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*product.Product, error)
}

type QuoteParams struct {
	Region     string
	Town       string
	CouponCode *string
}

// QuoteView previews the order total for the current cart. CouponRejected is
// a reported condition, not an error: the previous discount has been cleared
// and the quote is computed without one.
type QuoteView struct {
	Subtotal       float64 `json:"subtotal"`
	ShippingFee    float64 `json:"shipping_fee"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
	Amount         int64   `json:"amount"`
	AppliedCoupon  *string `json:"applied_coupon,omitempty"`
	CouponRejected bool    `json:"coupon_rejected"`
}

type CartQueries interface {
	Get(ctx context.Context, token uuid.UUID) (*CartView, error)
	Quote(ctx context.Context, token uuid.UUID, params QuoteParams) (*QuoteView, error)
}

type cartQueriesImpl struct {
	carts   CartReader
	catalog CatalogLookup
	zones   *shipping.Resolver
	coupons *coupon.Table
	policy  pricing.NegativeTotalPolicy
}

func NewCartQueries(
	carts CartReader,
	catalog CatalogLookup,
	zones *shipping.Resolver,
	coupons *coupon.Table,
	policy pricing.NegativeTotalPolicy,
) CartQueries {
	return &cartQueriesImpl{
		carts:   carts,
		catalog: catalog,
		zones:   zones,
		coupons: coupons,
		policy:  policy,
	}
}

func (q *cartQueriesImpl) Get(ctx context.Context, token uuid.UUID) (*CartView, error) {
	crt, materialized, err := q.materialize(ctx, token)
	if err != nil {
		return nil, err
	}

	view := &CartView{
		Token: crt.Token(),
		Lines: make([]CartLineView, 0, len(materialized)),
	}
	for _, m := range materialized {
		lineTotal := m.Product.Price() * float64(m.Quantity)
		view.Lines = append(view.Lines, CartLineView{
			ProductID: m.Product.ID(),
			Name:      m.Product.Name(),
			Price:     m.Product.Price(),
			ImageURL:  m.Product.ImageURL(),
			Quantity:  m.Quantity,
			LineTotal: lineTotal,
		})
		view.Subtotal += lineTotal
	}
	view.IsEmpty = len(view.Lines) == 0

	return view, nil
}

// Quote combines the materialized cart with shipping and coupon selections.
// An empty region means no shipping selection yet (fee 0); a town without a
// region is refused outright.
func (q *cartQueriesImpl) Quote(ctx context.Context, token uuid.UUID, params QuoteParams) (*QuoteView, error) {
	_, materialized, err := q.materialize(ctx, token)
	if err != nil {
		return nil, err
	}

	var shippingFee float64
	if params.Region == "" {
		if params.Town != "" {
			return nil, ErrTownWithoutRegion
		}
	} else {
		zone, err := q.zones.ResolveDestination(params.Region, params.Town)
		if err != nil {
			return nil, errs.Mark(err, ErrQuoteDestination)
		}
		shippingFee = zone.Fee()
	}

	var subtotal float64
	for _, m := range materialized {
		subtotal += m.Product.Price() * float64(m.Quantity)
	}

	view := &QuoteView{}
	var discount float64
	if params.CouponCode != nil && *params.CouponCode != "" {
		applied, err := q.coupons.Apply(*params.CouponCode, subtotal)
		if err != nil {
			// Rejection clears the discount and is reported, not raised.
			view.CouponRejected = true
		} else {
			discount = applied.Discount
			code := applied.Code
			view.AppliedCoupon = &code
		}
	}

	quote := pricing.ComputeQuote(materialized, shippingFee, discount)
	quote, err = quote.EnforcePolicy(q.policy)
	if err != nil {
		return nil, err
	}

	view.Subtotal = quote.Subtotal
	view.ShippingFee = quote.ShippingFee
	view.Discount = quote.Discount
	view.Total = quote.Total
	view.Amount = pricing.MinorUnits(quote.Total)

	return view, nil
}

func (q *cartQueriesImpl) materialize(ctx context.Context, token uuid.UUID) (*cart.Cart, []cart.MaterializedLine, error) {
	crt, err := q.carts.Load(ctx, token)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to load cart")
	}

	lines := crt.Lines()
	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}

	catalog := map[uuid.UUID]*product.Product{}
	if len(ids) > 0 {
		catalog, err = q.catalog.FindByIDs(ctx, ids)
		if err != nil {
			return nil, nil, errs.Wrap(err, "failed to materialize cart")
		}
	}

	return crt, crt.Materialize(catalog), nil
}
