//go:build unit

package pricing_test

import (
	"testing"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, priceQty ...float64) []cart.MaterializedLine {
	t.Helper()
	require.Zero(t, len(priceQty)%2, "priceQty must come in pairs")

	out := make([]cart.MaterializedLine, 0, len(priceQty)/2)
	for i := 0; i < len(priceQty); i += 2 {
		p := builder.NewProductBuilder().WithPrice(priceQty[i]).BuildReconstructed()
		out = append(out, cart.MaterializedLine{Product: p, Quantity: int(priceQty[i+1])})
	}
	return out
}

func TestComputeQuote(t *testing.T) {
	t.Run("worked example keeps full precision until minor units", func(t *testing.T) {
		// 2 x 59.99 + 1 x 69.99 = 189.97, 10% off, shipping 11.96
		q := pricing.ComputeQuote(lines(t, 59.99, 2, 69.99, 1), 11.96, 18.997)

		assert.InDelta(t, 189.97, q.Subtotal, 1e-9)
		assert.InDelta(t, 11.96, q.ShippingFee, 1e-9)
		assert.InDelta(t, 18.997, q.Discount, 1e-9)
		assert.InDelta(t, 182.933, q.Total, 1e-9)

		// rounding happens exactly once, at conversion time
		assert.Equal(t, int64(18293), pricing.MinorUnits(q.Total))
	})

	t.Run("line order does not change the quote", func(t *testing.T) {
		forward := pricing.ComputeQuote(lines(t, 29.99, 1, 79.99, 2, 5.25, 3), 11.96, 10)
		reversed := pricing.ComputeQuote(lines(t, 5.25, 3, 79.99, 2, 29.99, 1), 11.96, 10)
		assert.InDelta(t, forward.Total, reversed.Total, 1e-9)
		assert.Equal(t, pricing.MinorUnits(forward.Total), pricing.MinorUnits(reversed.Total))
	})

	t.Run("empty lines quote to the fee minus discount", func(t *testing.T) {
		q := pricing.ComputeQuote(nil, 25, 0)
		assert.Equal(t, 0.0, q.Subtotal)
		assert.Equal(t, 25.0, q.Total)
	})
}

func TestQuote_EnforcePolicy(t *testing.T) {
	negative := pricing.Quote{Subtotal: 10, ShippingFee: 0, Discount: 30, Total: -20}

	t.Run("clamp floors the total at zero", func(t *testing.T) {
		q, err := negative.EnforcePolicy(pricing.PolicyClamp)
		require.NoError(t, err)
		assert.Equal(t, 0.0, q.Total)
		// the breakdown is untouched
		assert.Equal(t, 30.0, q.Discount)
	})

	t.Run("reject refuses the quote", func(t *testing.T) {
		_, err := negative.EnforcePolicy(pricing.PolicyReject)
		assert.ErrorIs(t, err, pricing.ErrNegativeTotal)
	})

	t.Run("allow passes the negative amount through", func(t *testing.T) {
		q, err := negative.EnforcePolicy(pricing.PolicyAllow)
		require.NoError(t, err)
		assert.Equal(t, -20.0, q.Total)
	})

	t.Run("a non-negative total ignores the policy", func(t *testing.T) {
		q := pricing.Quote{Total: 5}
		got, err := q.EnforcePolicy(pricing.PolicyReject)
		require.NoError(t, err)
		assert.Equal(t, q, got)
	})
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{0, 0},
		{1, 100},
		{182.933, 18293},
		{182.935, 18294}, // rounds half up
		{0.005, 1},
		{-1.5, -150},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pricing.MinorUnits(tc.amount), "amount %v", tc.amount)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, valid := range []string{"clamp", "reject", "allow"} {
		_, err := pricing.ParsePolicy(valid)
		assert.NoError(t, err, valid)
	}

	_, err := pricing.ParsePolicy("ignore")
	assert.ErrorIs(t, err, pricing.ErrUnknownPolicy)
}
