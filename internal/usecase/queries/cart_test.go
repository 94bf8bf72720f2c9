//go:build unit

package queries_test

import (
	"context"
	"testing"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/internal/infra/staticdata"
	"vicqa-tradehub/internal/usecase/queries"
	"vicqa-tradehub/tests/common/builder"
	commandsmock "vicqa-tradehub/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quoteFixture struct {
	carts   *commandsmock.MockCartStore
	catalog *commandsmock.MockProductRepository
	queries queries.CartQueries
}

func newQuoteFixture(t *testing.T) *quoteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &quoteFixture{
		carts:   commandsmock.NewMockCartStore(ctrl),
		catalog: commandsmock.NewMockProductRepository(ctrl),
	}
	f.queries = queries.NewCartQueries(
		f.carts, f.catalog, staticdata.DefaultZones(), staticdata.DefaultCoupons(), pricing.PolicyClamp,
	)
	return f
}

func (f *quoteFixture) stock(token uuid.UUID, quantities map[*product.Product]int) {
	lines := make([]cart.Line, 0, len(quantities))
	catalog := make(map[uuid.UUID]*product.Product, len(quantities))
	for p, q := range quantities {
		lines = append(lines, cart.Line{ProductID: p.ID(), Quantity: q})
		catalog[p.ID()] = p
	}
	f.carts.EXPECT().Load(gomock.Any(), token).Return(cart.ReconstructCart(token, lines), nil)
	f.catalog.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(catalog, nil)
}

func TestCartQueries_Quote(t *testing.T) {
	t.Run("prices the reference basket", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		f.stock(token, map[*product.Product]int{
			builder.NewProductBuilder().WithPrice(29.99).BuildReconstructed(): 1,
			builder.NewProductBuilder().WithPrice(79.99).BuildReconstructed(): 2,
		})

		code := "SAVE10"
		view, err := f.queries.Quote(context.Background(), token, queries.QuoteParams{
			Region: "Greater Accra", Town: "Accra", CouponCode: &code,
		})
		require.NoError(t, err)

		assert.InDelta(t, 189.97, view.Subtotal, 1e-9)
		assert.InDelta(t, 11.96, view.ShippingFee, 1e-9)
		assert.InDelta(t, 18.997, view.Discount, 1e-9)
		assert.InDelta(t, 182.933, view.Total, 1e-9)
		assert.Equal(t, int64(18293), view.Amount)
		require.NotNil(t, view.AppliedCoupon)
		assert.Equal(t, "SAVE10", *view.AppliedCoupon)
		assert.False(t, view.CouponRejected)
	})

	t.Run("unknown coupon is reported and priced without a discount", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		f.stock(token, map[*product.Product]int{
			builder.NewProductBuilder().WithPrice(100).BuildReconstructed(): 1,
		})

		code := "NOSUCHCODE"
		view, err := f.queries.Quote(context.Background(), token, queries.QuoteParams{
			Region: "Greater Accra", Town: "Accra", CouponCode: &code,
		})
		require.NoError(t, err)

		assert.True(t, view.CouponRejected)
		assert.Nil(t, view.AppliedCoupon)
		assert.Equal(t, 0.0, view.Discount)
		assert.InDelta(t, 111.96, view.Total, 1e-9)
	})

	t.Run("no region yet means no shipping fee", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		f.stock(token, map[*product.Product]int{
			builder.NewProductBuilder().WithPrice(50).BuildReconstructed(): 1,
		})

		view, err := f.queries.Quote(context.Background(), token, queries.QuoteParams{})
		require.NoError(t, err)

		assert.Equal(t, 0.0, view.ShippingFee)
		assert.InDelta(t, 50.0, view.Total, 1e-9)
	})

	t.Run("a town without a region is refused", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		f.stock(token, map[*product.Product]int{
			builder.NewProductBuilder().BuildReconstructed(): 1,
		})

		_, err := f.queries.Quote(context.Background(), token, queries.QuoteParams{Town: "Accra"})
		assert.ErrorIs(t, err, queries.ErrTownWithoutRegion)
	})

	t.Run("a town from another region is refused", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		f.stock(token, map[*product.Product]int{
			builder.NewProductBuilder().BuildReconstructed(): 1,
		})

		_, err := f.queries.Quote(context.Background(), token, queries.QuoteParams{
			Region: "Ashanti", Town: "Accra",
		})
		assert.ErrorIs(t, err, queries.ErrQuoteDestination)
	})

	t.Run("zero-fee region prices shipping at zero", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		f.stock(token, map[*product.Product]int{
			builder.NewProductBuilder().WithPrice(40).BuildReconstructed(): 1,
		})

		view, err := f.queries.Quote(context.Background(), token, queries.QuoteParams{
			Region: "Central", Town: "Cape Coast",
		})
		require.NoError(t, err)

		assert.Equal(t, 0.0, view.ShippingFee)
		assert.InDelta(t, 40.0, view.Total, 1e-9)
	})
}

func TestCartQueries_Get(t *testing.T) {
	t.Run("stale lines are excluded from the view", func(t *testing.T) {
		f := newQuoteFixture(t)
		token := uuid.New()
		live := builder.NewProductBuilder().WithPrice(25).BuildReconstructed()
		stale := uuid.New()

		f.carts.EXPECT().Load(gomock.Any(), token).Return(cart.ReconstructCart(token, []cart.Line{
			{ProductID: live.ID(), Quantity: 2},
			{ProductID: stale, Quantity: 1},
		}), nil)
		f.catalog.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]*product.Product{live.ID(): live}, nil)

		view, err := f.queries.Get(context.Background(), token)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, live.ID(), view.Lines[0].ProductID)
		assert.InDelta(t, 50.0, view.Subtotal, 1e-9)
		assert.False(t, view.IsEmpty)
	})
}
