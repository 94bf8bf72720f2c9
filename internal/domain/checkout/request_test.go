//go:build unit

package checkout_test

import (
	"encoding/json"
	"testing"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/checkout"
	"vicqa-tradehub/internal/domain/order"
	"vicqa-tradehub/internal/domain/pricing"
	"vicqa-tradehub/internal/domain/user"
	"vicqa-tradehub/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buyer(t *testing.T) user.Contact {
	t.Helper()
	c, err := user.NewContact("Kofi Owusu", "kofi@example.com", "+233245556677")
	require.NoError(t, err)
	return c
}

func TestBuildRequest(t *testing.T) {
	pillow := builder.NewProductBuilder().WithName("Kente Throw Pillow").WithPrice(59.99).BuildReconstructed()
	basket := builder.NewProductBuilder().WithName("Bolga Basket").WithPrice(69.99).BuildReconstructed()
	lines := []cart.MaterializedLine{
		{Product: pillow, Quantity: 2},
		{Product: basket, Quantity: 1},
	}
	quote := pricing.ComputeQuote(lines, 11.96, 18.997)

	t.Run("freezes the catalog state into the snapshot", func(t *testing.T) {
		req, err := checkout.BuildRequest(lines, buyer(t), "Accra, Greater Accra", quote, "GHS")
		require.NoError(t, err)

		require.Len(t, req.Snapshot, 2)
		assert.Equal(t, order.LineSnapshot{
			ProductID: pillow.ID(), Name: "Kente Throw Pillow", Quantity: 2, Price: 59.99,
		}, req.Snapshot[0])
		assert.Equal(t, order.LineSnapshot{
			ProductID: basket.ID(), Name: "Bolga Basket", Quantity: 1, Price: 69.99,
		}, req.Snapshot[1])
	})

	t.Run("amount is the quote total in minor units", func(t *testing.T) {
		req, err := checkout.BuildRequest(lines, buyer(t), "Accra", quote, "GHS")
		require.NoError(t, err)

		assert.Equal(t, pricing.MinorUnits(quote.Total), req.Amount)
	})

	t.Run("each attempt gets its own reference", func(t *testing.T) {
		first, err := checkout.BuildRequest(lines, buyer(t), "Accra", quote, "GHS")
		require.NoError(t, err)
		second, err := checkout.BuildRequest(lines, buyer(t), "Accra", quote, "GHS")
		require.NoError(t, err)

		assert.NotEmpty(t, first.Reference)
		assert.NotEqual(t, first.Reference, second.Reference)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		_, err := checkout.BuildRequest(nil, buyer(t), "Accra", pricing.Quote{}, "GHS")
		assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	})
}

func TestRequest_PopupInit(t *testing.T) {
	pillow := builder.NewProductBuilder().WithName("Kente Throw Pillow").WithPrice(59.99).BuildReconstructed()
	lines := []cart.MaterializedLine{{Product: pillow, Quantity: 2}}
	quote := pricing.ComputeQuote(lines, 11.96, 5.00)

	req, err := checkout.BuildRequest(lines, buyer(t), "Adenta, Greater Accra", quote, "GHS")
	require.NoError(t, err)

	init, err := req.PopupInit("pk_test_abc123")
	require.NoError(t, err)

	assert.Equal(t, req.Reference, init.Reference)
	assert.Equal(t, "kofi@example.com", init.Email)
	assert.Equal(t, req.Amount, init.Amount)
	assert.Equal(t, "pk_test_abc123", init.PublicKey)
	assert.Equal(t, "GHS", init.Currency)

	assert.Equal(t, "Kofi Owusu", init.Metadata.Name)
	assert.Equal(t, "+233245556677", init.Metadata.Phone)
	assert.Equal(t, "Adenta, Greater Accra", init.Metadata.Address)
	assert.Equal(t, quote.Subtotal, init.Metadata.Subtotal)
	assert.Equal(t, 11.96, init.Metadata.Shipping)
	assert.Equal(t, 5.00, init.Metadata.Discount)

	// the cart travels as a JSON string inside metadata
	var snapshot []order.LineSnapshot
	require.NoError(t, json.Unmarshal([]byte(init.Metadata.Cart), &snapshot))
	assert.Equal(t, req.Snapshot, snapshot)
}
