//go:build unit

package cart_test

import (
	"testing"

	"vicqa-tradehub/internal/domain/cart"
	"vicqa-tradehub/internal/domain/product"
	"vicqa-tradehub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add(t *testing.T) {
	t.Run("appends a new line with quantity 1", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		productID := uuid.New()

		c.Add(productID)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, productID, lines[0].ProductID)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("adding the same product increments the existing line", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		productID := uuid.New()

		c.Add(productID)
		c.Add(productID)
		c.Add(productID)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 3, lines[0].Quantity)
	})

	t.Run("insertion order survives quantity updates", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		first, second, third := uuid.New(), uuid.New(), uuid.New()

		c.Add(first)
		c.Add(second)
		c.Add(third)
		c.Add(first)
		c.SetQuantity(second, 9)

		lines := c.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, first, lines[0].ProductID)
		assert.Equal(t, second, lines[1].ProductID)
		assert.Equal(t, third, lines[2].ProductID)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("removes an existing line", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		keep, drop := uuid.New(), uuid.New()
		c.Add(keep)
		c.Add(drop)

		c.Remove(drop)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, keep, lines[0].ProductID)
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		c.Add(uuid.New())

		c.Remove(uuid.New())

		assert.Len(t, c.Lines(), 1)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("replaces the quantity", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		productID := uuid.New()
		c.Add(productID)

		c.SetQuantity(productID, 7)

		assert.Equal(t, 7, c.Lines()[0].Quantity)
	})

	t.Run("quantity below 1 removes the line", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		productID := uuid.New()
		c.Add(productID)

		c.SetQuantity(productID, 0)

		assert.True(t, c.IsEmpty())
	})

	t.Run("setting quantity on an absent product is a no-op", func(t *testing.T) {
		c := cart.NewCart(uuid.New())

		c.SetQuantity(uuid.New(), 5)

		assert.True(t, c.IsEmpty())
	})
}

func TestCart_Clear(t *testing.T) {
	c := cart.NewCart(uuid.New())
	c.Add(uuid.New())
	c.Add(uuid.New())

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.Lines())
}

func TestReconstructCart(t *testing.T) {
	t.Run("drops lines below quantity 1 and duplicate products", func(t *testing.T) {
		dup := uuid.New()
		lines := []cart.Line{
			{ProductID: dup, Quantity: 2},
			{ProductID: uuid.New(), Quantity: 0},
			{ProductID: dup, Quantity: 5},
			{ProductID: uuid.New(), Quantity: 1},
		}

		c := cart.ReconstructCart(uuid.New(), lines)

		kept := c.Lines()
		require.Len(t, kept, 2)
		assert.Equal(t, dup, kept[0].ProductID)
		assert.Equal(t, 2, kept[0].Quantity)
	})
}

func TestCart_Materialize(t *testing.T) {
	t.Run("unresolvable lines are excluded but stay stored", func(t *testing.T) {
		resolvable := builder.NewProductBuilder().BuildReconstructed()
		stale := uuid.New()

		c := cart.ReconstructCart(uuid.New(), []cart.Line{
			{ProductID: resolvable.ID(), Quantity: 2},
			{ProductID: stale, Quantity: 1},
		})

		materialized := c.Materialize(map[uuid.UUID]*product.Product{
			resolvable.ID(): resolvable,
		})

		require.Len(t, materialized, 1)
		assert.Equal(t, resolvable.ID(), materialized[0].Product.ID())
		assert.Equal(t, 2, materialized[0].Quantity)

		// the stale reference is not dropped from the cart itself
		assert.Len(t, c.Lines(), 2)
		assert.True(t, c.IsInCart(stale))
	})
}
