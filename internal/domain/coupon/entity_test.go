//go:build unit

package coupon_test

import (
	"testing"

	"vicqa-tradehub/internal/domain/coupon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) *coupon.Table {
	t.Helper()
	save10, err := coupon.NewCoupon("SAVE10", coupon.KindPercentage, 10)
	require.NoError(t, err)
	fixed20, err := coupon.NewCoupon("ghs20off", coupon.KindFixed, 20)
	require.NoError(t, err)
	return coupon.NewTable([]coupon.Coupon{save10, fixed20})
}

func TestTable_Resolve(t *testing.T) {
	table := newTable(t)

	t.Run("codes match case-insensitively", func(t *testing.T) {
		for _, code := range []string{"SAVE10", "save10", "Save10", "  save10  "} {
			c, err := table.Resolve(code)
			require.NoError(t, err, code)
			assert.Equal(t, "SAVE10", c.Code())
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := table.Resolve("NOPE")
		assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
	})

	t.Run("empty code", func(t *testing.T) {
		_, err := table.Resolve("   ")
		assert.ErrorIs(t, err, coupon.ErrEmptyCode)
	})
}

func TestTable_Apply(t *testing.T) {
	table := newTable(t)

	t.Run("percentage discount scales with subtotal", func(t *testing.T) {
		applied, err := table.Apply("SAVE10", 189.97)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", applied.Code)
		assert.InDelta(t, 18.997, applied.Discount, 1e-9)
	})

	t.Run("fixed discount ignores subtotal", func(t *testing.T) {
		applied, err := table.Apply("GHS20OFF", 5)
		require.NoError(t, err)
		assert.Equal(t, 20.0, applied.Discount)
	})

	t.Run("rejection returns the zero value so a previous discount is cleared", func(t *testing.T) {
		applied, err := table.Apply("EXPIRED", 100)
		assert.ErrorIs(t, err, coupon.ErrCouponNotFound)
		assert.Zero(t, applied.Code)
		assert.Zero(t, applied.Discount)
	})
}

func TestNewCoupon(t *testing.T) {
	t.Run("code is canonicalized to upper case", func(t *testing.T) {
		c, err := coupon.NewCoupon(" akwaaba ", coupon.KindPercentage, 5)
		require.NoError(t, err)
		assert.Equal(t, "AKWAABA", c.Code())
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon("  ", coupon.KindFixed, 5)
		assert.ErrorIs(t, err, coupon.ErrEmptyCode)
	})

	t.Run("unknown kind is rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon("X", coupon.Kind("bogus"), 5)
		assert.Error(t, err)
	})

	t.Run("negative value is rejected", func(t *testing.T) {
		_, err := coupon.NewCoupon("X", coupon.KindFixed, -1)
		assert.Error(t, err)
	})
}
